// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the profile-engine CLI.
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

// rootCmd is the base command for the profile-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "profile-engine",
	Short: "Generate OGC API - EDR Part 3 service profiles",
	Long: `profile-engine turns a profile configuration into a complete OGC API - EDR
Part 3 specification package: AsciiDoc requirements and abstract tests, the
narrative document set, OpenAPI and AsyncAPI descriptions, and the build
scaffolding to compile the document with metanorma.

Start with "init" to write a starter configuration, edit it, then run
"generate". The configuration persisted into each generated profile can be
edited and regenerated; edited requirement text survives regeneration.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./profile-engine.yaml or ~/.config/profile-engine/config.yaml)")
	rootCmd.PersistentFlags().String("registry-dir", "", "directory for the generation registry database (default: ~/.local/share/profile-engine)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("profile-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "profile-engine"))
		}
	}

	viper.SetEnvPrefix("PROFILE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// registryDir resolves the registry location: flag, then config/env, then
// the default under the user's data directory.
func registryDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("registry-dir"); dir != "" {
		return dir
	}
	if dir := viper.GetString("registry_dir"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".profile-engine"
	}
	return filepath.Join(home, ".local", "share", "profile-engine")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
