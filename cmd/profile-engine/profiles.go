// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-engine/internal/registry"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage the generation registry (list, show, remove)",
	Long: `Profiles inspects the generation registry, which records every profile
written by "generate". The registry is bookkeeping only; removing an
entry does not delete the generated files.`,
}

// --- list subcommand ---

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered profiles",
	RunE:  runProfilesList,
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	reg, err := registry.Open(registryDir(cmd))
	if err != nil {
		return err
	}
	defer reg.Close()

	entries, err := reg.List(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No profiles registered.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-24s  %-28s  %-20s  %5s  %5s\n",
		"Name", "Title", "Generated", "Reqs", "Tests")
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-24s  %-28s  %-20s  %5d  %5d\n",
			e.Name, e.Title, e.GeneratedAt.Format(time.RFC3339), e.Requirements, e.Tests)
	}
	return nil
}

// --- show subcommand ---

var profilesShowCmd = &cobra.Command{
	Use:   "show <profile-name>",
	Short: "Show one profile's last run, including its artifact list",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesShow,
}

func runProfilesShow(cmd *cobra.Command, args []string) error {
	reg, err := registry.Open(registryDir(cmd))
	if err != nil {
		return err
	}
	defer reg.Close()

	entry, err := reg.Show(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}

	fmt.Fprintf(os.Stdout, "Name:         %s\n", entry.Name)
	fmt.Fprintf(os.Stdout, "Title:        %s\n", entry.Title)
	fmt.Fprintf(os.Stdout, "Directory:    %s\n", entry.Dir)
	fmt.Fprintf(os.Stdout, "Run:          %s\n", entry.RunID)
	fmt.Fprintf(os.Stdout, "Generated:    %s\n", entry.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(os.Stdout, "Requirements: %d\n", entry.Requirements)
	fmt.Fprintf(os.Stdout, "Tests:        %d\n", entry.Tests)
	fmt.Fprintln(os.Stdout, "Artifacts:")
	for _, p := range entry.Files {
		fmt.Fprintf(os.Stdout, "  %s\n", p)
	}
	return nil
}

// --- remove subcommand ---

var profilesRemoveCmd = &cobra.Command{
	Use:   "remove <profile-name>",
	Short: "Remove a profile from the registry (generated files are kept)",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesRemove,
}

func runProfilesRemove(cmd *cobra.Command, args []string) error {
	reg, err := registry.Open(registryDir(cmd))
	if err != nil {
		return err
	}
	defer reg.Close()

	if err := reg.Remove(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Removed %s from the registry\n", args[0])
	return nil
}

func init() {
	profilesListCmd.Flags().Bool("json", false, "output as JSON")
	profilesShowCmd.Flags().Bool("json", false, "output as JSON")

	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesRemoveCmd)

	rootCmd.AddCommand(profilesCmd)
}
