// Package scaffold writes the prediction-serving project template to disk.
// A run validates the destination, creates the folder list, then writes every
// catalog file. Runs are synchronous and stop at the first error without
// rolling back what was already written.
package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zoro11031/mlapp-scaffold/internal/catalog"
	"github.com/zoro11031/mlapp-scaffold/internal/system"
	"github.com/zoro11031/mlapp-scaffold/internal/ui"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

const (
	actionMkdir     = "mkdir"
	actionExists    = "exists"
	actionCreate    = "create"
	actionOverwrite = "overwrite"
)

// Options describes a single scaffolding run
type Options struct {
	Root   string
	Force  bool
	DryRun bool
}

// Scaffolder materializes a project layout through a FileSystemManager
type Scaffolder struct {
	fs      system.FileSystemManager
	ui      *ui.UI
	folders []catalog.Folder
	files   []catalog.File
}

// New creates a Scaffolder for the built-in project layout
func New(fs system.FileSystemManager, u *ui.UI) *Scaffolder {
	return NewWithLayout(fs, u, catalog.Folders(), catalog.Files())
}

// NewWithLayout creates a Scaffolder for a custom folder list and file catalog
func NewWithLayout(fs system.FileSystemManager, u *ui.UI, folders []catalog.Folder, files []catalog.File) *Scaffolder {
	return &Scaffolder{
		fs:      fs,
		ui:      u,
		folders: folders,
		files:   files,
	}
}

// Run validates the destination and scaffolds the project into it
func (s *Scaffolder) Run(opts Options) error {
	root := strings.TrimSpace(opts.Root)

	if err := ValidateTarget(s.fs, root, opts.Force); err != nil {
		return err
	}

	// Resolve every entry up front so a bad layout fails before any write
	if err := s.checkLayout(root); err != nil {
		return err
	}

	if opts.DryRun {
		return s.preview(root)
	}

	if err := s.BuildDirectories(root); err != nil {
		return err
	}
	if err := s.MaterializeFiles(root); err != nil {
		return err
	}

	s.ui.Successf("AI/ML project structure created successfully at %s", root)
	return nil
}

// BuildDirectories creates root and every folder of the layout beneath it.
// Folders that already exist are left alone.
func (s *Scaffolder) BuildDirectories(root string) error {
	if err := s.fs.EnsureDirectory(root, dirPerm); err != nil {
		return fmt.Errorf("failed to create project root: %w", err)
	}

	for _, folder := range s.folders {
		path, err := safeJoin(root, folder.Path)
		if err != nil {
			return err
		}

		if err := s.fs.EnsureDirectory(path, dirPerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", folder.Path, err)
		}
		s.ui.Action(actionMkdir, folder.Path+"/")
	}

	return nil
}

// MaterializeFiles writes every catalog file under root, replacing whatever
// was there before. Missing parent directories are created first.
func (s *Scaffolder) MaterializeFiles(root string) error {
	for _, file := range s.files {
		path, err := safeJoin(root, file.Path)
		if err != nil {
			return err
		}

		action, err := s.fileAction(path)
		if err != nil {
			return err
		}

		if err := s.fs.EnsureDirectory(filepath.Dir(path), dirPerm); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", file.Path, err)
		}
		if err := s.fs.WriteFile(path, []byte(file.Content), filePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
		s.ui.Action(action, file.Path)
	}

	return nil
}

func (s *Scaffolder) checkLayout(root string) error {
	for _, folder := range s.folders {
		if _, err := safeJoin(root, folder.Path); err != nil {
			return err
		}
	}
	for _, file := range s.files {
		if _, err := safeJoin(root, file.Path); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scaffolder) fileAction(path string) (string, error) {
	exists, err := s.fs.FileExists(path)
	if err != nil {
		return "", err
	}
	if exists {
		return actionOverwrite, nil
	}
	return actionCreate, nil
}
