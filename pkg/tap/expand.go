package tap

import (
	"github.com/arthur-debert/tap/pkg/tap/filesystem"
)

// ExpandPaths expands each pattern against the filesystem, preserving
// pattern order. A pattern that matches nothing expands to itself, so
// brand-new targets pass through unchanged. A malformed pattern is reported
// and skipped; it never aborts the run. Matches are not deduplicated across
// patterns.
func ExpandPaths(fsys filesystem.FileSystem, patterns []string) []string {
	expanded := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		matches, err := fsys.Glob(pattern)
		if err != nil {
			Logger().Error().
				Str("pattern", pattern).
				Err(err).
				Msg("invalid glob pattern, skipping")
			continue
		}
		if len(matches) == 0 {
			// No matches: the pattern names a new file or directory.
			expanded = append(expanded, pattern)
			continue
		}
		expanded = append(expanded, matches...)
	}

	return expanded
}
