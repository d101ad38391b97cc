package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tap/pkg/tap"
	"github.com/arthur-debert/tap/pkg/tap/filesystem"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newRootCommand builds the tap command with its full flag surface.
func newRootCommand() *cobra.Command {
	opts := &tap.Options{}
	var logLevel string

	cmd := &cobra.Command{
		Use:   "tap [paths...]",
		Short: "A next-gen version of touch with extended capabilities",
		Long: `tap creates or updates files and directories. Targets may be glob
patterns; patterns that match nothing name new files. Beyond plain touch
semantics, tap can write or append content, copy content from a template
file, trim trailing whitespace, set octal permissions (recursively for
directories), and set the modification time.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			opts.HasWrite = cmd.Flags().Changed("write")

			level := zerolog.WarnLevel
			if opts.Verbose {
				level = zerolog.InfoLevel
			}
			if logLevel != "" {
				parsed, err := tap.LogLevelFromString(logLevel)
				if err != nil {
					return fmt.Errorf("invalid log level %q: %w", logLevel, err)
				}
				level = parsed
			}
			tap.SetLogger(tap.NewLogger(os.Stderr, level))

			return tap.Run(cmd.Context(), filesystem.NewOSFileSystem(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Dir, "dir", "d", false, "create a directory instead of a file")
	cmd.Flags().StringVarP(&opts.Chmod, "chmod", "c", "", "set specific permissions (octal format, e.g., 644)")
	cmd.Flags().StringVarP(&opts.Write, "write", "w", "", "add content to the file")
	cmd.Flags().StringVarP(&opts.Timestamp, "timestamp", "t", "", "set modification time (format: YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().BoolVarP(&opts.Append, "append", "a", false, "append content instead of overwriting")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "R", false, "apply chmod recursively (only works with directories)")
	cmd.Flags().StringVar(&opts.Template, "template", "", "use a template file for content")
	cmd.Flags().BoolVar(&opts.Trim, "trim", false, "remove trailing whitespace from each line")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "check if the file or directory exists (dry run)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "diagnostic log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  `Print the version number of tap`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tap version %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
