package system

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MockFileSystem is an in-memory FileSystemManager for testing purposes.
// It records directories and file contents, and can be told to fail specific
// paths to exercise error handling.
type MockFileSystem struct {
	mu           sync.Mutex
	Directories  map[string]bool
	WrittenFiles map[string][]byte

	// FailPaths maps a cleaned path to the error returned by any mutation on it.
	FailPaths map[string]error
	Writes    int
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Directories:  make(map[string]bool),
		WrittenFiles: make(map[string][]byte),
		FailPaths:    make(map[string]error),
	}
}

// FailOn makes every later mutation of path return err.
func (m *MockFileSystem) FailOn(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailPaths[filepath.Clean(path)] = err
}

// AddFile seeds a file and its parent directories.
func (m *MockFileSystem) AddFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.mkdirAll(filepath.Dir(path))
	m.WrittenFiles[path] = content
}

// EnsureDirectory records path and its ancestors as directories.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)

	for p := path; ; p = filepath.Dir(p) {
		if err, ok := m.FailPaths[p]; ok {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
		if _, ok := m.WrittenFiles[p]; ok {
			return fmt.Errorf("%s exists but is not a directory", p)
		}
		if filepath.Dir(p) == p {
			break
		}
	}

	m.mkdirAll(path)
	return nil
}

func (m *MockFileSystem) mkdirAll(path string) {
	for p := path; ; p = filepath.Dir(p) {
		m.Directories[p] = true
		if filepath.Dir(p) == p {
			return
		}
	}
}

// WriteFile captures the content that would be written to a file.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)

	if err, ok := m.FailPaths[path]; ok {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if m.Directories[path] {
		return fmt.Errorf("failed to write %s: path is a directory", path)
	}
	if !m.Directories[filepath.Dir(path)] {
		return fmt.Errorf("failed to write %s: %w", path, fs.ErrNotExist)
	}

	data := make([]byte, len(content))
	copy(data, content)
	m.WrittenFiles[path] = data
	m.Writes++
	return nil
}

// ReadFile returns previously written content.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.WrittenFiles[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("failed to read file %s: %w", path, fs.ErrNotExist)
	}
	return data, nil
}

// FileExists reports whether a file or directory is recorded at path.
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	_, isFile := m.WrittenFiles[path]
	return isFile || m.Directories[path], nil
}

// DirectoryExists reports whether a directory is recorded at path.
func (m *MockFileSystem) DirectoryExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Directories[filepath.Clean(path)], nil
}

// ListDirectory returns the sorted names of direct children of path.
func (m *MockFileSystem) ListDirectory(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if !m.Directories[path] {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, fs.ErrNotExist)
	}

	seen := make(map[string]bool)
	collect := func(p string) {
		if p == path || filepath.Dir(p) != path {
			return
		}
		seen[filepath.Base(p)] = true
	}
	for p := range m.Directories {
		collect(p)
	}
	for p := range m.WrittenFiles {
		collect(p)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Paths returns every recorded file path relative to root, slash-separated
// and sorted.
func (m *MockFileSystem) Paths(root string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	root = filepath.Clean(root)

	var out []string
	for p := range m.WrittenFiles {
		rel, err := filepath.Rel(root, p)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}
