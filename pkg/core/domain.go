// Document is the central entity of the domain.
package core

import (
	"path/filepath"
	"time"
)

// Ext is the file extension a document must carry to be versioned.
const Ext = ".blend"

const (
	historySuffix = ".history"
	stagingSuffix = ".staging"
)

// Document identifies the primary versioned file.
// Path is always absolute; the bookkeeping locations (repository handle
// and staging directory) are derived from it and never stored.
type Document struct {
	Path string
}

// Dir returns the document's parent directory. Document-relative
// dependency paths resolve against it.
func (d Document) Dir() string {
	return filepath.Dir(d.Path)
}

// Name returns the document's base name.
func (d Document) Name() string {
	return filepath.Base(d.Path)
}

// RepoDir returns the repository handle location. Its existence on disk
// is the sole signal that history has been initialized for the document.
func (d Document) RepoDir() string {
	return d.Path + historySuffix
}

// StagingDir returns the ephemeral staging location used during write
// operations.
func (d Document) StagingDir() string {
	return d.Path + stagingSuffix
}

// CommitRecord is one immutable snapshot in a document's history.
type CommitRecord struct {
	Hash    string
	Time    time.Time
	Subject string
}
