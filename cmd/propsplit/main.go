// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the propsplit CLI, which partitions
// grant-proposal PDFs into per-section files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the propsplit CLI.
var rootCmd = &cobra.Command{
	Use:   "propsplit",
	Short: "Split proposal PDFs into per-section files",
	Long: `propsplit locates the standard sections of a grant proposal inside a
single PDF and writes each one to its own file. The first two sections
follow the fixed submission template (a one-page summary and a
fifteen-page description); the remaining sections are found by fuzzy
matching page lines against a catalog of expected titles.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./propsplit.yaml or ~/.config/propsplit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("propsplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "propsplit"))
		}
	}

	viper.SetEnvPrefix("PROPSPLIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string option: an explicitly set flag wins, then
// the config file / environment, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	v, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	return v
}

// floatSetting resolves a float option with the same precedence.
func floatSetting(cmd *cobra.Command, flag, key string) float64 {
	v, _ := cmd.Flags().GetFloat64(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
