package blendver

import (
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// relPrefix marks a dependency path as relative to the document's own
// directory. Entries using any other addressing form (absolute, or
// relative to something else) are not owned by this document's history
// and are dropped without error.
const relPrefix = "//"

// FilterDependencies reduces the raw dependency list reported by the
// scanner to the set eligible for versioning: document-relative, not
// escaping above the document's directory, and not matching any exclude
// glob. The result is deduplicated and sorted so that repeated commits
// of an unchanged document stage a byte-identical file set.
func FilterDependencies(raw []string, exclude []string) []string {
	seen := make(map[string]struct{})
	keep := make([]string, 0, len(raw))
	for _, entry := range raw {
		rel, ok := eligible(entry)
		if !ok {
			continue
		}
		if matchesAny(rel, exclude) {
			continue
		}
		if _, dup := seen[rel]; dup {
			continue
		}
		seen[rel] = struct{}{}
		keep = append(keep, rel)
	}
	sort.Strings(keep)
	return keep
}

// eligible reports whether a raw entry is document-relative and stays
// inside the document's directory tree, and returns its cleaned
// relative path.
func eligible(entry string) (string, bool) {
	if !strings.HasPrefix(entry, relPrefix) {
		return "", false
	}
	rel := strings.TrimPrefix(entry, relPrefix)
	rel = strings.ReplaceAll(rel, "\\", "/")
	if rel == "" || path.IsAbs(rel) {
		return "", false
	}
	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	return clean, true
}

func matchesAny(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
