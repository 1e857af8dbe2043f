// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/propsplit/internal/catalog"
	"github.com/pdiddy/propsplit/internal/manifest"
	"github.com/pdiddy/propsplit/internal/pdfdoc"
	"github.com/pdiddy/propsplit/internal/splitter"
	"github.com/pdiddy/propsplit/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split [proposal.pdf]",
	Short: "Split a proposal PDF into per-section PDFs",
	Long: `Split reads a proposal PDF, extracts the fixed template sections,
scans the remaining pages for the catalog section titles, and writes one
PDF per section into the output directory. Output files are named after
the section (lowercased, special characters stripped) and overwrite any
existing file of the same name.

Sections whose title never reaches the similarity threshold are omitted
from the output rather than reported as errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := splitConfigFromFlags(cmd)
	inputPath := args[0]

	doc, err := pdfdoc.Open(inputPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if cat, err = catalog.Load(cfg.CatalogPath); err != nil {
			return err
		}
	}

	fmt.Printf("Splitting %s (%d pages)...\n", inputPath, doc.PageCount())

	results, err := splitter.New(cat, cfg.Threshold(), os.Stdout).Split(doc, cfg.OutputDir)
	if err != nil {
		return err
	}

	fmt.Printf("\nSuccessfully created %d PDFs:\n", len(results))
	for _, r := range results {
		fmt.Printf("  - %s: %s\n", r.Name, r.Path)
	}

	if cfg.ManifestDB != "" {
		if err := recordRun(cfg, inputPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
		}
	}
	return nil
}

func recordRun(cfg types.SplitConfig, inputPath string, files []types.SectionFile) error {
	store, err := manifest.Open(cfg.ManifestDB)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.RecordRun(context.Background(), inputPath, cfg.Threshold(), files)
	return err
}

func splitConfigFromFlags(cmd *cobra.Command) types.SplitConfig {
	return types.SplitConfig{
		OutputDir:           stringSetting(cmd, "out", "output_dir"),
		SimilarityThreshold: floatSetting(cmd, "threshold", "similarity_threshold"),
		CatalogPath:         stringSetting(cmd, "catalog", "catalog"),
		ManifestDB:          stringSetting(cmd, "manifest-db", "manifest_db"),
	}
}

func init() {
	splitCmd.Flags().String("out", "split_pdfs", "output directory for per-section PDFs")
	splitCmd.Flags().Float64("threshold", types.DefaultSimilarityThreshold, "minimum similarity score (0-1) for boundary detection")
	splitCmd.Flags().String("catalog", "", "YAML catalog overriding the built-in section layout")
	splitCmd.Flags().String("manifest-db", "", "SQLite database in which to record the run (empty = off)")

	rootCmd.AddCommand(splitCmd)
}
