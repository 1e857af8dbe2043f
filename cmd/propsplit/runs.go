// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/propsplit/internal/manifest"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List split runs recorded in the manifest database",
	Long: `Runs lists previously recorded split runs, newest first, with the
section files each one produced. Runs are only recorded when a manifest
database is configured for the split command.`,
	RunE: runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	dbPath := stringSetting(cmd, "manifest-db", "manifest_db")
	if dbPath == "" {
		return fmt.Errorf("no manifest database configured: set --manifest-db or manifest_db in the config file")
	}

	store, err := manifest.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	export, _ := cmd.Flags().GetBool("export")
	if export {
		return store.ExportYAML(context.Background(), os.Stdout)
	}
	return store.List(context.Background(), os.Stdout)
}

func init() {
	runsCmd.Flags().String("manifest-db", "", "SQLite manifest database to read")
	runsCmd.Flags().Bool("export", false, "dump recorded runs as YAML")

	rootCmd.AddCommand(runsCmd)
}
