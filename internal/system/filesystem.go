package system

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSystem handles file system operations against the local disk
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// EnsureDirectory creates a directory and any missing parents.
// If the directory already exists, it does nothing
func (fs *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check directory %s: %w", path, err)
	}

	if err := os.MkdirAll(path, perms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// FileExists checks if anything exists at path
func (fs *FileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (fs *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// ListDirectory lists all entries in a directory
func (fs *FileSystem) ListDirectory(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// ReadFile returns the full contents of a file
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// WriteFile replaces the contents of path. The data is written to a temp file
// in the same directory and renamed over the target, so readers never see a
// half-written file.
func (fs *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) (err error) {
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return fmt.Errorf("failed to write %s: path is a directory", path)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".mlapp-scaffold-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = tmpFile.Chmod(perms); err != nil {
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}
	if _, err = tmpFile.Write(content); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err = tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move file to %s: %w", path, err)
	}
	return nil
}
