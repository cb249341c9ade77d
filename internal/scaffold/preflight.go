package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zoro11031/mlapp-scaffold/internal/common"
	"github.com/zoro11031/mlapp-scaffold/internal/system"
)

// ValidateTarget decides whether scaffolding into root may proceed. It only
// reads the filesystem.
//
// A missing root or an empty directory passes. A non-empty directory passes
// only with force. A root that exists but is not a directory never passes.
func ValidateTarget(fs system.FileSystemManager, root string, force bool) error {
	if common.ValidateNotEmpty(root) != nil {
		return fmt.Errorf("%w: destination path cannot be empty", ErrInvalidPath)
	}

	exists, err := fs.FileExists(root)
	if err != nil {
		return fmt.Errorf("failed to check destination: %w", err)
	}
	if !exists {
		return nil
	}

	isDir, err := fs.DirectoryExists(root)
	if err != nil {
		return fmt.Errorf("failed to check destination: %w", err)
	}
	if !isDir {
		return fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	if force {
		return nil
	}

	entries, err := fs.ListDirectory(root)
	if err != nil {
		return fmt.Errorf("failed to list destination: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrDestinationNotEmpty, root)
	}
	return nil
}

// safeJoin resolves a slash-separated layout path under root, refusing
// anything that is absolute or climbs out of it.
func safeJoin(root, rel string) (string, error) {
	if err := common.ValidateRelativePath(rel); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s escapes the project root", ErrInvalidPath, rel)
	}
	return filepath.Join(root, clean), nil
}
