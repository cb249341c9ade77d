package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/mlapp-scaffold/internal/cli"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the generated project layout",
	Long:  `List the folders and files a scaffold run creates, without touching the disk.`,
	Args:  cobra.NoArgs,
	RunE:  showLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func showLayout(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	cli.ShowLayout(ctx)
	return nil
}
