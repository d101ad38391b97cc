package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// TestRootCmdSetup checks the command surface built by newRootCommand.
func TestRootCmdSetup(t *testing.T) {
	cmd := newRootCommand()
	if cmd == nil {
		t.Fatal("newRootCommand() returned nil")
	}

	expectedUse := "tap [paths...]"
	if cmd.Use != expectedUse {
		t.Errorf("expected command Use %q, got %q", expectedUse, cmd.Use)
	}

	for _, name := range []string{
		"dir", "chmod", "write", "timestamp", "append",
		"verbose", "recursive", "template", "trim", "check", "log-level",
	} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}

	foundVersionCmd := false
	for _, sub := range cmd.Commands() {
		if sub.Use == "version" {
			foundVersionCmd = true
			break
		}
	}
	if !foundVersionCmd {
		t.Error("version subcommand not found")
	}
}

func TestRootCmd_WriteFlow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	cmd := newRootCommand()
	cmd.SetArgs([]string{path, "--write", "hello"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("content = %q, want %q", content, "hello")
	}
}

func TestRootCmd_LogLevelFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	cmd := newRootCommand()
	cmd.SetArgs([]string{path, "--log-level", "debug"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat() error = %v, file should exist", err)
	}

	cmd = newRootCommand()
	cmd.SetArgs([]string{filepath.Join(dir, "other.txt"), "--log-level", "nope"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error for unknown log level")
	}
}

func TestRootCmd_RequiresArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error with no path arguments")
	}
}
