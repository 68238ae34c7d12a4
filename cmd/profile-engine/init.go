// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-engine/internal/profile"
	"github.com/pdiddy/profile-engine/internal/textutil"
	"github.com/pdiddy/profile-engine/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init <profile-name>",
	Short: "Write a starter configuration for a new profile",
	Long: `Init writes a starter configuration file for a new profile. Edit the
collections, query types, formats, and filters, then run
"profile-engine generate" against it.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = textutil.Title(name)
	}
	author, _ := cmd.Flags().GetString("author")
	email, _ := cmd.Flags().GetString("email")
	messaging, _ := cmd.Flags().GetBool("messaging")

	cfg := &types.Configuration{
		ProfileName:  name,
		ProfileTitle: title,
		Author:       author,
		Email:        email,
		Collections: []types.Collection{
			{
				Name:       "observations",
				QueryTypes: []string{"items", "position"},
				Formats:    []string{"GeoJSON", "CoverageJSON"},
				Properties: []string{"observed_property", "value", "unit"},
			},
		},
		IncludeMessaging: messaging,
	}
	if messaging {
		cfg.Filters = []types.Filter{
			{Name: "collection", Description: "collection name", Type: types.FilterString},
		}
	}

	if err := profile.Validate(cfg); err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = profile.ConfigFileName
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration %s already exists: choose another --output path", path)
	}

	if err := profile.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote starter configuration to %s\n", path)
	fmt.Fprintln(os.Stdout, "Edit it, then run: profile-engine generate", path)
	return nil
}

func init() {
	initCmd.Flags().String("title", "", "profile title (default: derived from the name)")
	initCmd.Flags().String("author", "", "document editor name")
	initCmd.Flags().String("email", "", "document editor email")
	initCmd.Flags().Bool("messaging", false, "include AsyncAPI/PubSub messaging in the starter configuration")
	initCmd.Flags().String("output", "", "path for the configuration file (default: "+profile.ConfigFileName+")")

	rootCmd.AddCommand(initCmd)
}
