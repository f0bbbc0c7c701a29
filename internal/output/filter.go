package output

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/masmgr/pkgsnap-go/internal/vcs"
)

// FilterEntries applies include/exclude glob patterns to status entries.
// Exclude patterns win over include patterns; an empty include list accepts
// everything.
func FilterEntries(entries []vcs.StatusEntry, include, exclude []string) []vcs.StatusEntry {
	filtered := make([]vcs.StatusEntry, 0, len(entries))
	for _, entry := range entries {
		if matchesFilters(entry.Path, include, exclude) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func matchesFilters(path string, include, exclude []string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}

	for _, pattern := range include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}
