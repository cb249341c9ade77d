package common

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ValidateRelativePath validates a slash-separated template path.
// The path must be non-empty, relative and must not climb out of its root.
func ValidateRelativePath(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.Contains(p, "\\") {
		return fmt.Errorf("path must use forward slashes: %s", p)
	}
	if path.IsAbs(p) || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return fmt.Errorf("path must be relative: %s", p)
	}

	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return fmt.Errorf("path cannot contain '..': %s", p)
		}
	}

	if clean := path.Clean(p); clean == "." {
		return fmt.Errorf("path cannot refer to the root itself: %s", p)
	}

	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}
