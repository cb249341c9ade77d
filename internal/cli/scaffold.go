package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zoro11031/mlapp-scaffold/internal/scaffold"
	"github.com/zoro11031/mlapp-scaffold/internal/ui"
)

// ErrVerifyFailed is returned when a project tree deviates from the layout
var ErrVerifyFailed = errors.New("project does not match the template")

// ResolveDestination returns the destination from args, asking for it once
// when it was omitted and prompting is allowed.
func ResolveDestination(ctx *SetupContext, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	dest, err := ctx.UI.PromptInputRequired("Enter full project folder path")
	if errors.Is(err, ui.ErrNonInteractive) {
		return "", fmt.Errorf("destination path is required")
	}
	if err != nil {
		return "", fmt.Errorf("failed to prompt for destination: %w", err)
	}
	return dest, nil
}

// RunScaffold scaffolds the project template into dest
func RunScaffold(ctx *SetupContext, dest string, force, dryRun bool) error {
	s := scaffold.New(ctx.FS, ctx.UI)
	return s.Run(scaffold.Options{
		Root:   dest,
		Force:  force,
		DryRun: dryRun,
	})
}

// RunVerify checks dest against the template and reports every deviation
func RunVerify(ctx *SetupContext, dest string) error {
	s := scaffold.New(ctx.FS, ctx.UI)
	problems, err := s.Verify(dest)
	if err != nil {
		return err
	}

	if len(problems) == 0 {
		ctx.UI.Successf("%s matches the project template", dest)
		return nil
	}

	for _, p := range problems {
		ctx.UI.Warning(p.String())
	}
	return fmt.Errorf("%w: %d problem(s) in %s", ErrVerifyFailed, len(problems), dest)
}
