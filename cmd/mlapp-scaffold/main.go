package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/mlapp-scaffold/internal/cli"
	"github.com/zoro11031/mlapp-scaffold/pkg/version"
)

var (
	// Global flags
	configPath     string
	nonInteractive bool
	noColor        bool
	verbose        bool

	// Scaffold flags
	force  bool
	dryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "mlapp-scaffold [destination]",
	Short: "Scaffold a Flask prediction-serving project",
	Long: `Create the folder and file layout of a web-based machine learning
prediction service:

- config/, models/, data/raw/, data/processed/, notebooks/
- src/ with preprocessing, training and prediction stubs
- a Flask app.py with home and result templates
- requirements.txt, Procfile, runtime.txt, README.md and .gitignore

The destination must be missing or empty unless --force is given.
When the destination is omitted you are asked for it.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runScaffold,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a KEY=value settings file")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt for input")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Report every folder and file")

	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite a non-empty destination")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print planned actions without writing files")

	rootCmd.AddCommand(versionCmd)
}

func newContext() (*cli.SetupContext, error) {
	ctx, err := cli.NewSetupContextWithOptions(cli.Options{
		ConfigPath:     configPath,
		NonInteractive: nonInteractive,
		NoColor:        noColor,
		Verbose:        verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize setup context: %w", err)
	}
	return ctx, nil
}

func runScaffold(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	dest, err := cli.ResolveDestination(ctx, args)
	if err != nil {
		return err
	}

	return cli.RunScaffold(ctx, dest, force, dryRun)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
