package scaffold

// preview prints the action each folder and file would get without
// touching the filesystem.
func (s *Scaffolder) preview(root string) error {
	s.ui.SetDryRun(true)

	for _, folder := range s.folders {
		path, err := safeJoin(root, folder.Path)
		if err != nil {
			return err
		}
		isDir, err := s.fs.DirectoryExists(path)
		if err != nil {
			return err
		}
		action := actionMkdir
		if isDir {
			action = actionExists
		}
		s.ui.Action(action, folder.Path+"/")
	}

	for _, file := range s.files {
		path, err := safeJoin(root, file.Path)
		if err != nil {
			return err
		}
		action, err := s.fileAction(path)
		if err != nil {
			return err
		}
		s.ui.Action(action, file.Path)
	}

	s.ui.Infof("Dry run: %d folders and %d files planned for %s", len(s.folders), len(s.files), root)
	return nil
}
