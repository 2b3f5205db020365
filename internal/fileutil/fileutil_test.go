package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-md2txt/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"valid txt", ".txt", nil},
		{"valid without dot", "text", nil},
		{"empty", "", fileutil.ErrExtensionEmpty},
		{"forward slash", "../etc/passwd", fileutil.ErrExtensionPathTraversal},
		{"backslash", "..\\windows", fileutil.ErrExtensionPathTraversal},
		{"null byte", ".txt\x00exe", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic file replacement
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		if err := fileutil.WriteFileAtomic(path, []byte("hello"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "hello" {
			t.Errorf("content = %q, want %q", got, "hello")
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.WriteFileAtomic(filepath.Join(dir, "a.txt"), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})

	t.Run("applies permissions", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("unix permissions")
		}

		path := filepath.Join(t.TempDir(), "private.txt")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o600); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("perm = %o, want 600", perm)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.txt")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Error("WriteFileAtomic() error = nil, want error")
		}
	})
}

// ---------------------------------------------------------------------------
// TestReplaceExt / TestIsMarkdownFile - Path helpers
// ---------------------------------------------------------------------------

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"notes.md", ".txt", "notes.txt"},
		{"dir/notes.markdown", ".txt", "dir/notes.txt"},
		{"archive.tar.md", ".text", "archive.tar.text"},
		{"README", ".txt", "README.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.ReplaceExt(tt.path, tt.ext); got != tt.want {
				t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"doc.md", true},
		{"doc.MD", true},
		{"doc.markdown", true},
		{"doc.txt", false},
		{"md", false},
		{"dir.md/file", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsMarkdownFile(tt.path); got != tt.want {
				t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Existence checks
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"team", false},
		{"my-config", false},
		{"./team.yaml", true},
		{"/etc/md2txt.yaml", true},
		{"C:\\conf\\team.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
