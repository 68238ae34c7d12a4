// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-engine/internal/engine"
	"github.com/pdiddy/profile-engine/internal/profile"
	"github.com/pdiddy/profile-engine/internal/registry"
)

var generateCmd = &cobra.Command{
	Use:   "generate [config.yml]",
	Short: "Generate a profile package from a configuration file",
	Long: `Generate reads a profile configuration, synthesizes the requirement and
abstract-test set, and writes the complete profile package: AsciiDoc
fragments and narrative sections, the top-level document, openapi.yaml,
asyncapi.yaml (when messaging is enabled), the persisted configuration,
and the metanorma build scaffolding.

The output directory is <output-dir>/<profile_name>. An existing profile
directory is refused unless --force is set. Each successful run is
recorded in the generation registry; see "profile-engine profiles".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	configPath := profile.ConfigFileName
	if len(args) > 0 {
		configPath = args[0]
	}

	cfg, err := profile.Load(configPath)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	force, _ := cmd.Flags().GetBool("force")

	result, err := engine.Run(cfg, engine.Options{OutputDir: outputDir, Overwrite: force})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Generated profile %s in %s\n", cfg.ProfileName, result.Dir)
	fmt.Fprintf(os.Stdout, "  %d requirements, %d abstract tests, %d files\n",
		result.Requirements, result.Tests, len(result.Files))

	if skip, _ := cmd.Flags().GetBool("no-registry"); skip {
		return nil
	}

	reg, err := registry.Open(registryDir(cmd))
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer reg.Close()

	runID, err := reg.Record(context.Background(), registry.Run{
		Name:         cfg.ProfileName,
		Title:        cfg.ProfileTitle,
		Dir:          result.Dir,
		Requirements: result.Requirements,
		Tests:        result.Tests,
		Files:        result.Files,
	})
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Recorded run %s\n", runID)
	return nil
}

func init() {
	generateCmd.Flags().String("output-dir", ".", "parent directory for the generated profile")
	generateCmd.Flags().Bool("force", false, "regenerate into an existing profile directory")
	generateCmd.Flags().Bool("no-registry", false, "skip recording the run in the generation registry")

	rootCmd.AddCommand(generateCmd)
}
