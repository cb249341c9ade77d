package system

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var (
	_ FileSystemManager = (*FileSystem)(nil)
	_ FileSystemManager = (*MockFileSystem)(nil)
)

func TestEnsureDirectory(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "data", "raw")

	if err := fs.EnsureDirectory(nested, 0755); err != nil {
		t.Fatalf("EnsureDirectory() error = %v", err)
	}
	// Second call is a no-op
	if err := fs.EnsureDirectory(nested, 0755); err != nil {
		t.Fatalf("EnsureDirectory() second call error = %v", err)
	}

	exists, err := fs.DirectoryExists(nested)
	if err != nil || !exists {
		t.Errorf("DirectoryExists() = %v, %v, want true, nil", exists, err)
	}
}

func TestEnsureDirectoryOverFile(t *testing.T) {
	fs := NewFileSystem()
	path := filepath.Join(t.TempDir(), "taken")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := fs.EnsureDirectory(path, 0755); err == nil {
		t.Error("EnsureDirectory() error = nil, want error for existing file")
	}
}

func TestWriteFileReplacesContent(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "requirements.txt")

	if err := os.WriteFile(path, []byte("old content that is longer"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}
	if err := fs.WriteFile(path, []byte("flask\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "flask\n" {
		t.Errorf("ReadFile() = %q, want %q", got, "flask\n")
	}

	names, err := fs.ListDirectory(tmpDir)
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"requirements.txt"}) {
		t.Errorf("ListDirectory() = %v, want only the target (no temp files left)", names)
	}
}

func TestWriteFileEmptyContent(t *testing.T) {
	fs := NewFileSystem()
	path := filepath.Join(t.TempDir(), "__init__.py")

	if err := fs.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Size() = %d, want 0", info.Size())
	}
}

func TestWriteFileOverDirectory(t *testing.T) {
	fs := NewFileSystem()
	path := filepath.Join(t.TempDir(), "app.py")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatalf("Failed to create test directory: %v", err)
	}

	if err := fs.WriteFile(path, []byte("x"), 0644); err == nil {
		t.Error("WriteFile() error = nil, want error when target is a directory")
	}
}

func TestWriteFileMissingParent(t *testing.T) {
	fs := NewFileSystem()
	path := filepath.Join(t.TempDir(), "missing", "file.txt")

	if err := fs.WriteFile(path, []byte("x"), 0644); err == nil {
		t.Error("WriteFile() error = nil, want error when parent is missing")
	}
}

func TestFileExists(t *testing.T) {
	fs := NewFileSystem()
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	tests := []struct {
		name      string
		path      string
		wantFile  bool
		wantIsDir bool
	}{
		{"regular file", file, true, false},
		{"directory", tmpDir, true, true},
		{"missing", filepath.Join(tmpDir, "nope"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := fs.FileExists(tt.path)
			if err != nil {
				t.Fatalf("FileExists() error = %v", err)
			}
			if exists != tt.wantFile {
				t.Errorf("FileExists() = %v, want %v", exists, tt.wantFile)
			}
			isDir, err := fs.DirectoryExists(tt.path)
			if err != nil {
				t.Fatalf("DirectoryExists() error = %v", err)
			}
			if isDir != tt.wantIsDir {
				t.Errorf("DirectoryExists() = %v, want %v", isDir, tt.wantIsDir)
			}
		})
	}
}

func TestMockFileSystem(t *testing.T) {
	m := NewMockFileSystem()
	root := filepath.Join(string(filepath.Separator), "proj")

	if err := m.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644); err == nil {
		t.Error("WriteFile() error = nil, want error for missing parent")
	}

	if err := m.EnsureDirectory(filepath.Join(root, "data", "raw"), 0755); err != nil {
		t.Fatalf("EnsureDirectory() error = %v", err)
	}
	if err := m.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	names, err := m.ListDirectory(root)
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"a.txt", "data"}) {
		t.Errorf("ListDirectory() = %v, want [a.txt data]", names)
	}

	if err := m.EnsureDirectory(filepath.Join(root, "a.txt", "sub"), 0755); err == nil {
		t.Error("EnsureDirectory() error = nil, want error below a file")
	}

	boom := errors.New("disk full")
	m.FailOn(filepath.Join(root, "b.txt"), boom)
	if err := m.WriteFile(filepath.Join(root, "b.txt"), nil, 0644); !errors.Is(err, boom) {
		t.Errorf("WriteFile() error = %v, want %v", err, boom)
	}

	if got := m.Paths(root); !reflect.DeepEqual(got, []string{"a.txt"}) {
		t.Errorf("Paths() = %v, want [a.txt]", got)
	}
}
