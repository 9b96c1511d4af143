package blendver

import (
	"github.com/aretw0/introspection"
)

// HistoryState exposes internal state for observability.
type HistoryState struct {
	Document  string `json:"document"`
	Versioned bool   `json:"versioned"`
	Excludes  int    `json:"excludes"`
}

// State implements introspection.Introspectable.
func (h *History) State() any {
	return HistoryState{
		Document:  h.doc.Path,
		Versioned: h.Versioned(),
		Excludes:  len(h.exclude),
	}
}

// ComponentType implements introspection.Component.
func (h *History) ComponentType() string {
	return "history"
}

var _ introspection.Introspectable = (*History)(nil)
var _ introspection.Component = (*History)(nil)
