package tap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/tap/pkg/tap/filesystem"
)

// Run expands every pattern in opts and drives each resolved path through
// its step pipeline, strictly one path at a time. The first hard failure
// stops the run and is returned; check mode only reports existence.
func Run(ctx context.Context, fsys filesystem.FileSystem, opts *Options) error {
	paths := ExpandPaths(fsys, opts.Paths)
	Logger().Debug().
		Int("patterns", len(opts.Paths)).
		Int("paths", len(paths)).
		Msg("expanded target patterns")

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.Verbose {
			fmt.Printf("Processing: %s\n", path)
		}

		if opts.Check {
			checkExistence(fsys, path, opts.Verbose)
			continue
		}

		if err := processPath(ctx, fsys, path, opts); err != nil {
			return err
		}
	}

	return nil
}

// checkExistence reports whether path exists without mutating anything.
func checkExistence(fsys filesystem.FileSystem, path string, verbose bool) {
	if _, err := fsys.Stat(path); err == nil {
		if verbose {
			fmt.Printf("Exists: %s\n", path)
		}
	} else {
		fmt.Printf("Does not exist: %s\n", path)
	}
}

// processPath builds the step pipeline for one path and executes it. The
// parent chain comes first, then directory or file creation, then chmod,
// then the timestamp; the dependency edges keep that order stable.
func processPath(ctx context.Context, fsys filesystem.FileSystem, path string, opts *Options) error {
	pipeline := NewPipeline()

	parentID := StepID("ensure-parent:" + path)
	createID := StepID("create:" + path)

	if err := pipeline.Add(NewStep(parentID, func(ctx context.Context) error {
		if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return wrapError("ensure-parent", "create parent directories for", path, err)
		}
		return nil
	})); err != nil {
		return err
	}

	var create *Step
	if opts.Dir {
		create = NewStep(createID, func(ctx context.Context) error {
			return createDirectory(fsys, path, opts.Verbose)
		}, parentID)
	} else {
		create = NewStep(createID, func(ctx context.Context) error {
			return writeFile(fsys, path, opts)
		}, parentID)
	}
	if err := pipeline.Add(create); err != nil {
		return err
	}

	timestampDeps := []StepID{createID}
	if opts.Chmod != "" {
		chmodID := StepID("chmod:" + path)
		if err := pipeline.Add(NewStep(chmodID, func(ctx context.Context) error {
			return setPermissions(fsys, path, opts.Chmod, opts.Recursive, opts.Verbose)
		}, createID)); err != nil {
			return err
		}
		timestampDeps = append(timestampDeps, chmodID)
	}

	if opts.Timestamp != "" {
		if err := pipeline.Add(NewStep(StepID("timestamp:"+path), func(ctx context.Context) error {
			return setTimestamp(fsys, path, opts.Timestamp, opts.Verbose)
		}, timestampDeps...)); err != nil {
			return err
		}
	}

	return pipeline.Execute(ctx)
}

// createDirectory creates the directory tree at path.
func createDirectory(fsys filesystem.FileSystem, path string, verbose bool) error {
	if err := fsys.MkdirAll(path, 0o755); err != nil {
		return wrapError("create-dir", "create directory", path, err)
	}
	Logger().Info().Str("path", path).Msg("directory created")
	if verbose {
		fmt.Printf("Directory created: %s\n", path)
	}
	return nil
}
