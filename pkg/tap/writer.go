package tap

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/tap/pkg/tap/filesystem"
)

// writeFile ensures path exists as a file in the content state opts asks
// for. Trim wins over template, template over literal content; with none of
// the three set the file is only touched.
func writeFile(fsys filesystem.FileSystem, path string, opts *Options) error {
	if opts.Trim {
		return trimFile(fsys, path, opts.Verbose)
	}

	// Touch must not truncate: an existing file opened with O_TRUNC here
	// would lose its content even though no content flag was given.
	flag := os.O_WRONLY | os.O_CREATE
	if opts.Append {
		flag |= os.O_APPEND
	} else if opts.hasContent() {
		flag |= os.O_TRUNC
	}

	f, err := fsys.OpenFile(path, flag, 0o644)
	if err != nil {
		return wrapError("write-file", "create or open file", path, err)
	}
	defer f.Close()

	switch {
	case opts.Template != "":
		content, err := fsys.ReadFile(opts.Template)
		if err != nil {
			return wrapError("write-file", "read template file", opts.Template, err)
		}
		if _, err := f.Write(content); err != nil {
			return wrapError("write-file", "write template content to", path, err)
		}
		Logger().Info().Str("path", path).Str("template", opts.Template).Msg("wrote template content")
		if opts.Verbose {
			fmt.Printf("File created/updated with template content: %s\n", path)
		}

	case opts.HasWrite:
		if _, err := f.Write([]byte(opts.Write)); err != nil {
			return wrapError("write-file", "write content to", path, err)
		}
		Logger().Info().Str("path", path).Int("content_size", len(opts.Write)).Bool("append", opts.Append).Msg("wrote content")
		if opts.Verbose {
			if opts.Append {
				fmt.Printf("Content appended to file: %s\n", path)
			} else {
				fmt.Printf("File created/updated with content: %s\n", path)
			}
		}

	default:
		info, err := f.Stat()
		if err != nil {
			return wrapError("write-file", "get metadata of", path, err)
		}
		if opts.Verbose {
			if info.Size() == 0 {
				fmt.Printf("File created: %s\n", path)
			} else {
				fmt.Printf("File timestamp updated: %s\n", path)
			}
		}
		now := time.Now()
		if err := fsys.Chtimes(path, now, now); err != nil {
			return wrapError("write-file", "update times on", path, err)
		}
	}

	return nil
}

// trimFile strips trailing whitespace from every line of an existing text
// file and rejoins the lines with single newlines. A trailing newline in
// the original is not preserved. Files that are not valid UTF-8 are
// rejected rather than rewritten lossily.
func trimFile(fsys filesystem.FileSystem, path string, verbose bool) error {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return wrapError("trim", "read file content of", path, err)
	}
	if !utf8.Valid(content) {
		return wrapError("trim", "read file content of", path,
			errors.New("file is not valid UTF-8 text"))
	}

	lines := strings.Split(string(content), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	if err := fsys.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return wrapError("trim", "write trimmed content to", path, err)
	}
	Logger().Info().Str("path", path).Int("lines", len(lines)).Msg("trimmed trailing whitespace")
	if verbose {
		fmt.Printf("Trailing whitespace removed from: %s\n", path)
	}
	return nil
}
