// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fileset collects generated artifacts in memory so a run can be
// validated completely before anything touches the filesystem. Paths are
// slash-separated and relative to the profile root.
package fileset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File is one generated artifact.
type File struct {
	// Path is the slash-separated path relative to the profile root.
	Path string

	// Content is the rendered file content.
	Content []byte

	// Mode is the file mode; zero means 0644.
	Mode fs.FileMode
}

// Set is an ordered collection of generated files. Order is insertion
// order, which for engine output is the canonical artifact order.
type Set struct {
	files []File
	index map[string]int
}

// New returns an empty set.
func New() *Set {
	return &Set{index: make(map[string]int)}
}

// Add appends a file. Adding a path twice replaces the earlier content but
// keeps the original position.
func (s *Set) Add(path string, content []byte) {
	s.AddMode(path, content, 0)
}

// AddMode appends a file with an explicit mode.
func (s *Set) AddMode(path string, content []byte, mode fs.FileMode) {
	if i, ok := s.index[path]; ok {
		s.files[i].Content = content
		s.files[i].Mode = mode
		return
	}
	s.index[path] = len(s.files)
	s.files = append(s.files, File{Path: path, Content: content, Mode: mode})
}

// Get returns the content of a path.
func (s *Set) Get(path string) ([]byte, bool) {
	i, ok := s.index[path]
	if !ok {
		return nil, false
	}
	return s.files[i].Content, true
}

// Files returns the files in insertion order.
func (s *Set) Files() []File {
	return s.files
}

// Paths returns all paths in insertion order.
func (s *Set) Paths() []string {
	paths := make([]string, len(s.files))
	for i, f := range s.files {
		paths[i] = f.Path
	}
	return paths
}

// PathsWithSuffix returns the sorted paths ending in suffix.
func (s *Set) PathsWithSuffix(suffix string) []string {
	var paths []string
	for _, f := range s.files {
		if strings.HasSuffix(f.Path, suffix) {
			paths = append(paths, f.Path)
		}
	}
	sort.Strings(paths)
	return paths
}

// Merge appends every file of other into s.
func (s *Set) Merge(other *Set) {
	for _, f := range other.files {
		s.AddMode(f.Path, f.Content, f.Mode)
	}
}

// Len returns the number of files.
func (s *Set) Len() int {
	return len(s.files)
}

// WriteAll persists the set under root, creating directories as needed.
// Callers run it only after every engine check has passed: a failed run
// writes nothing.
func (s *Set) WriteAll(root string) error {
	for _, f := range s.files {
		target := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		mode := f.Mode
		if mode == 0 {
			mode = 0o644
		}
		if err := os.WriteFile(target, f.Content, mode); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	return nil
}
