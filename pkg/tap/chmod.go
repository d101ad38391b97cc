package tap

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/arthur-debert/tap/pkg/tap/filesystem"
)

// setPermissions parses chmod as an octal mode string and applies it to
// path. With recursive set and path a directory, every entry in the tree
// gets the mode first and the directory itself receives it last.
func setPermissions(fsys filesystem.FileSystem, path, chmod string, recursive, verbose bool) error {
	if runtime.GOOS == "windows" {
		return wrapError("chmod", "set permissions on", path,
			errors.New("POSIX permission bits are not supported on this platform"))
	}

	bits, err := strconv.ParseUint(chmod, 8, 32)
	if err != nil {
		return wrapError("chmod", "parse octal mode for", path,
			fmt.Errorf("invalid chmod value %q: %w", chmod, err))
	}

	return applyPermissions(fsys, path, chmod, fs.FileMode(bits), recursive, verbose)
}

func applyPermissions(fsys filesystem.FileSystem, path, chmod string, mode fs.FileMode, recursive, verbose bool) error {
	if recursive {
		if info, err := fsys.Stat(path); err == nil && info.IsDir() {
			entries, err := fsys.ReadDir(path)
			if err != nil {
				return wrapError("chmod", "read directory", path, err)
			}
			for _, entry := range entries {
				child := filepath.Join(path, entry.Name())
				if err := applyPermissions(fsys, child, chmod, mode, recursive, verbose); err != nil {
					return err
				}
			}
		}
	}

	if err := fsys.Chmod(path, mode); err != nil {
		return wrapError("chmod", "set permissions on", path, err)
	}
	Logger().Info().Str("path", path).Str("mode", chmod).Msg("permissions set")
	if verbose {
		fmt.Printf("Permissions set to %s for: %s\n", chmod, path)
	}
	return nil
}
