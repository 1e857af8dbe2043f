// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/propsplit/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the active section catalog",
	Long: `Catalog prints the section layout a split would use: the fixed
template ranges followed by the titles located by fuzzy matching. With
--file it prints a loaded catalog instead of the built-in default, which
is useful for checking an override before running a split.`,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	path := stringSetting(cmd, "file", "catalog")

	cat := catalog.Default()
	if path != "" {
		var err error
		if cat, err = catalog.Load(path); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(cat)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	os.Stdout.Write(data)
	return nil
}

func init() {
	catalogCmd.Flags().String("file", "", "YAML catalog to print instead of the built-in default")

	rootCmd.AddCommand(catalogCmd)
}
