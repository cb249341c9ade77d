package scaffold

import (
	"fmt"
	"strings"
)

// Problem describes one deviation found by Verify
type Problem struct {
	Path   string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Reason)
}

// Verify checks that root holds every folder as a directory and every file
// with exactly its catalog content. It never modifies anything. Extra entries
// under root are ignored.
func (s *Scaffolder) Verify(root string) ([]Problem, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("%w: destination path cannot be empty", ErrInvalidPath)
	}

	exists, err := s.fs.FileExists(root)
	if err != nil {
		return nil, fmt.Errorf("failed to check destination: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("destination %s does not exist", root)
	}
	isDir, err := s.fs.DirectoryExists(root)
	if err != nil {
		return nil, fmt.Errorf("failed to check destination: %w", err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var problems []Problem

	for _, folder := range s.folders {
		path, err := safeJoin(root, folder.Path)
		if err != nil {
			return nil, err
		}
		exists, err := s.fs.DirectoryExists(path)
		if err != nil {
			return nil, fmt.Errorf("failed to check directory %s: %w", folder.Path, err)
		}
		if !exists {
			problems = append(problems, Problem{Path: folder.Path + "/", Reason: "missing directory"})
		}
	}

	for _, file := range s.files {
		path, err := safeJoin(root, file.Path)
		if err != nil {
			return nil, err
		}
		exists, err := s.fs.FileExists(path)
		if err != nil {
			return nil, fmt.Errorf("failed to check file %s: %w", file.Path, err)
		}
		if !exists {
			problems = append(problems, Problem{Path: file.Path, Reason: "missing file"})
			continue
		}
		isDir, err := s.fs.DirectoryExists(path)
		if err != nil {
			return nil, fmt.Errorf("failed to check file %s: %w", file.Path, err)
		}
		if isDir {
			problems = append(problems, Problem{Path: file.Path, Reason: "is a directory"})
			continue
		}
		data, err := s.fs.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if string(data) != file.Content {
			problems = append(problems, Problem{
				Path:   file.Path,
				Reason: fmt.Sprintf("content differs (%d bytes, want %d)", len(data), len(file.Content)),
			})
		}
	}

	return problems, nil
}
