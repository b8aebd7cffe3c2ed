// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(toSlash(p), "/go-bqpost/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForAssetNotFound returns hints for a header or footer asset that no
// search location holds.
func ForAssetNotFound(attribute string) string {
	hints := []string{"asset names are relative to the document directory or an --asset-dir"}
	if attribute == "bq-header" {
		hints = append(hints, `use "front-matter" for an empty front matter block`)
	}
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidTOCMode lists the accepted TOC modes.
func ForInvalidTOCMode(modes []string) string {
	if len(modes) == 0 {
		return ""
	}
	return format("available: " + strings.Join(modes, ", "))
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
