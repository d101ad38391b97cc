package tap

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/tap/pkg/tap/filesystem"
)

func TestSetPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits not supported on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	fsys := filesystem.NewOSFileSystem()

	if err := setPermissions(fsys, path, "644", false, false); err != nil {
		t.Fatalf("setPermissions() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if got := info.Mode() & fs.ModePerm; got != 0o644 {
		t.Errorf("mode = %o, want %o", got, 0o644)
	}
}

func TestSetPermissions_InvalidOctal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	fsys := filesystem.NewOSFileSystem()

	err := setPermissions(fsys, path, "89a", false, false)
	if err == nil {
		t.Fatal("setPermissions() expected error for invalid octal string")
	}

	info, _ := os.Stat(path)
	if got := info.Mode() & fs.ModePerm; got != 0o644 {
		t.Errorf("mode changed to %o despite parse failure", got)
	}
}

func TestSetPermissions_Recursive(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits not supported on windows")
	}
	dir := t.TempDir()
	root := filepath.Join(dir, "tree")
	sub := filepath.Join(root, "sub")
	if err := os.MkdirAll(sub, 0o700); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	files := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(sub, "b.txt"),
	}
	for _, f := range files {
		if err := os.WriteFile(f, nil, 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	fsys := filesystem.NewOSFileSystem()

	if err := setPermissions(fsys, root, "755", true, false); err != nil {
		t.Fatalf("setPermissions() error = %v", err)
	}

	for _, p := range append(files, root, sub) {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat(%s) error = %v", p, err)
		}
		if got := info.Mode() & fs.ModePerm; got != 0o755 {
			t.Errorf("mode of %s = %o, want %o", p, got, 0o755)
		}
	}
}

func TestSetPermissions_RecursiveOnFileIsPlainChmod(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits not supported on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	fsys := filesystem.NewOSFileSystem()

	if err := setPermissions(fsys, path, "640", true, false); err != nil {
		t.Fatalf("setPermissions() error = %v", err)
	}

	info, _ := os.Stat(path)
	if got := info.Mode() & fs.ModePerm; got != 0o640 {
		t.Errorf("mode = %o, want %o", got, 0o640)
	}
}
