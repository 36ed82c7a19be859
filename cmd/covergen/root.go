package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/treygoff24/site/content"
	"github.com/treygoff24/site/covers"
	"github.com/treygoff24/site/storage"
)

// covergen is the offline cover map generation step: it reads the
// appearance collection, resolves every cover through the standard
// source chain, and atomically replaces the flat JSON output file.
// A malformed input file aborts the run with the output untouched.
func newRootCommand() *cobra.Command {
	var appearancesPath string
	var outputPath string

	rootCmd := &cobra.Command{
		Use:           "covergen",
		Short:         "Generate the appearance cover map",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, appearancesPath, outputPath)
		},
	}

	rootCmd.Flags().StringVar(&appearancesPath, "appearances", "_content/appearances.yaml", "Path to the appearances YAML file")
	rootCmd.Flags().StringVar(&outputPath, "out", "_output/covers.json", "Path for the generated cover map")

	return rootCmd
}

func run(cmd *cobra.Command, appearancesPath, outputPath string) error {
	appearances, err := content.LoadAppearancesFile(appearancesPath)
	if err != nil {
		return fmt.Errorf("failed to read appearances: %w", err)
	}

	resolver := covers.NewResolver(covers.DefaultSources(nil)...)
	resolved, stats, err := resolver.ResolveAll(cmd.Context(), appearances)
	if err != nil {
		return fmt.Errorf("failed to resolve covers: %w", err)
	}

	store := storage.NewLocalCoverMapStore(outputPath)
	if err := store.Write(covers.CoverMap(resolved)); err != nil {
		return fmt.Errorf("failed to write cover map: %w", err)
	}

	log.Printf("INFO (covergen): wrote %d covers to %s (%s)", len(resolved), outputPath, stats)
	return nil
}
