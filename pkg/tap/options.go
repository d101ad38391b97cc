package tap

// Options captures a single invocation's configuration. It is built once
// from the parsed command line and read-only afterwards.
type Options struct {
	// Paths holds the target path patterns in argument order. Each pattern
	// is glob-expanded; a pattern matching nothing names a new target.
	Paths []string

	// Dir creates directories instead of files.
	Dir bool

	// Chmod is an octal permission string such as "644". Empty means the
	// target's permissions are left alone.
	Chmod string

	// Write is literal content for the target. HasWrite distinguishes an
	// explicit empty string from the flag being absent.
	Write    string
	HasWrite bool

	// Timestamp is a modification time in "YYYY-MM-DD HH:MM:SS" form,
	// interpreted as UTC. Empty means the time is left to the OS.
	Timestamp string

	// Append appends content instead of overwriting.
	Append bool

	// Verbose emits one line per action taken.
	Verbose bool

	// Recursive applies Chmod through directory trees.
	Recursive bool

	// Template names a file whose content is copied into the target.
	Template string

	// Trim strips trailing whitespace from every line of an existing file.
	Trim bool

	// Check only reports whether each target exists; nothing is mutated.
	Check bool
}

// hasContent reports whether this invocation writes content into the
// target, as opposed to only touching it.
func (o *Options) hasContent() bool {
	return o.HasWrite || o.Template != ""
}
