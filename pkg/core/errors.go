package core

import "errors"

// Common errors.
//
// ErrNotDocument is a usage error: it is raised before any filesystem
// access. The others are precondition errors, checked before any
// mutating backend call is issued.
var (
	ErrNotDocument      = errors.New("not a " + Ext + " document")
	ErrAlreadyVersioned = errors.New("document history already initialized")
	ErrNotVersioned     = errors.New("document history not initialized")
	ErrEmptyMessage     = errors.New("commit message is empty")
	ErrNoCommits        = errors.New("document history has no commits")
)
