// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine runs one profile generation end to end: validate the
// configuration, synthesize the requirement/test graph, assemble the
// narrative document set, generate the interface descriptions, and only
// then write everything to disk. A run either produces the complete
// artifact set or fails before any output exists.
package engine

import (
	"path/filepath"

	"github.com/pdiddy/profile-engine/internal/apispec"
	"github.com/pdiddy/profile-engine/internal/document"
	"github.com/pdiddy/profile-engine/internal/fileset"
	"github.com/pdiddy/profile-engine/internal/profile"
	"github.com/pdiddy/profile-engine/internal/scaffold"
	"github.com/pdiddy/profile-engine/internal/synth"
	"github.com/pdiddy/profile-engine/pkg/types"
)

// Options controls where a run writes its output.
type Options struct {
	// OutputDir is the parent directory; the profile is written to
	// OutputDir/<profile_name>. Empty means the current directory.
	OutputDir string

	// Overwrite allows regenerating into an existing profile directory.
	Overwrite bool
}

// Result summarizes a successful run.
type Result struct {
	// Dir is the profile directory that was written.
	Dir string

	// Requirements and Tests count the synthesized pairs.
	Requirements int
	Tests        int

	// Files lists every written artifact path, relative to Dir, in
	// canonical order.
	Files []string
}

// Run generates the complete artifact set for a configuration and writes
// it to disk. The persisted configuration is included in the output, so a
// later run against the written profile_config.yml reproduces this run
// exactly.
func Run(cfg *types.Configuration, opts Options) (*Result, error) {
	if err := profile.Validate(cfg); err != nil {
		return nil, err
	}

	artifacts, err := synth.Synthesize(cfg)
	if err != nil {
		return nil, err
	}

	files, err := Render(cfg, artifacts)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(opts.OutputDir, cfg.ProfileName)
	if err := scaffold.Write(dir, files, opts.Overwrite); err != nil {
		return nil, err
	}

	return &Result{
		Dir:          dir,
		Requirements: len(artifacts.Pairs),
		Tests:        len(artifacts.Pairs),
		Files:        files.Paths(),
	}, nil
}

// Render produces the complete in-memory artifact set for a run without
// touching the filesystem: narrative documents, interface descriptions,
// supporting files, and the persisted configuration.
func Render(cfg *types.Configuration, artifacts *synth.Artifacts) (*fileset.Set, error) {
	files, err := document.Assemble(cfg, artifacts)
	if err != nil {
		return nil, err
	}

	specs, err := apispec.Generate(cfg)
	if err != nil {
		return nil, err
	}
	files.Merge(specs)

	files.Merge(scaffold.SupportingFiles(cfg))

	persisted, err := profile.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	files.Add(profile.ConfigFileName, persisted)

	return files, nil
}
