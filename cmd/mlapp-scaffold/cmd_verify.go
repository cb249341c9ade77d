package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/mlapp-scaffold/internal/cli"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <destination>",
	Short: "Check a project against the template",
	Long: `Verify that every template folder exists and every template file has
exactly the generated content. Nothing is modified. Exits non-zero when
anything differs.`,
	Args: cobra.ExactArgs(1),
	RunE: verifyProject,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func verifyProject(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	return cli.RunVerify(ctx, args[0])
}
