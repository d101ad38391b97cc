package tap

import (
	"fmt"
	"time"

	"github.com/arthur-debert/tap/pkg/tap/filesystem"
)

// timestampLayout is the only accepted timestamp form, read as UTC.
const timestampLayout = "2006-01-02 15:04:05"

// parseTimestamp parses s as a UTC wall-clock time. Impossible calendar
// dates and times are rejected.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp format %q: %w", s, err)
	}
	return t, nil
}

// setTimestamp sets path's modification time to the parsed value. The
// access time is left unchanged (zero atime to Chtimes).
func setTimestamp(fsys filesystem.FileSystem, path, timestamp string, verbose bool) error {
	t, err := parseTimestamp(timestamp)
	if err != nil {
		return wrapError("timestamp", "parse timestamp for", path, err)
	}

	if err := fsys.Chtimes(path, time.Time{}, t); err != nil {
		return wrapError("timestamp", "set timestamp on", path, err)
	}
	Logger().Info().Str("path", path).Time("mtime", t).Msg("timestamp set")
	if verbose {
		fmt.Printf("Timestamp set to %s for: %s\n", timestamp, path)
	}
	return nil
}
