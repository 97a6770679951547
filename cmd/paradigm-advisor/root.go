package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/terra-clan/paradigm-advisor/internal/catalog"
)

var catalogDirFlag string

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paradigm-advisor",
		Short: "Recommend a programming paradigm for a problem",
		Long: `paradigm-advisor helps choose between object-oriented, functional and
procedural designs. It serves an interactive page, a read-only JSON API,
and can score criteria straight from the command line.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&catalogDirFlag, "catalog-dir", "", "load scenarios and criteria from this directory instead of the built-in catalogue")

	cmd.AddCommand(
		newServeCmd(),
		newScenariosCmd(),
		newScenarioCmd(),
		newCriteriaCmd(),
		newRecommendCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCatalogue prefers dir, then the built-in catalogue
func loadCatalogue(dir string) (*catalog.Catalogue, error) {
	if dir == "" {
		return catalog.Default()
	}
	return catalog.LoadFromDir(dir)
}
