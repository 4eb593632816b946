// Package manifest handles aoc.toml workspace configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents an aoc.toml workspace configuration.
type Manifest struct {
	Project Project        `toml:"project"`
	Inputs  Inputs         `toml:"inputs"`
	Results Results        `toml:"results"`
	Days    map[string]Day `toml:"days"`

	// Dir is the directory containing the aoc.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains workspace metadata.
type Project struct {
	Name string `toml:"name"`
	Year int    `toml:"year"`
}

// Inputs configures where puzzle input files live.
type Inputs struct {
	Dir string `toml:"dir"`
}

// Results configures where solver runs are recorded.
type Results struct {
	Database string `toml:"database"`
}

// Day overrides settings for a single day.
type Day struct {
	Input string `toml:"input"`
}

// Load parses an aoc.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "aoc.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	m.applyDefaults()
	return &m, nil
}

// FindAndLoad walks up from startDir to find an aoc.toml file, then loads
// and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "aoc.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Default returns the manifest used when no aoc.toml exists, rooted at dir.
func Default(dir string) *Manifest {
	m := &Manifest{Dir: dir}
	m.applyDefaults()
	return m
}

func (m *Manifest) applyDefaults() {
	if m.Inputs.Dir == "" {
		m.Inputs.Dir = "inputs"
	}
	if m.Results.Database == "" {
		m.Results.Database = filepath.Join(".aoc", "results.db")
	}
}

// InputPath returns the input file for a day, honouring per-day overrides.
func (m *Manifest) InputPath(day int) string {
	name := fmt.Sprintf("day%02d.txt", day)
	if override, ok := m.Days[fmt.Sprintf("%d", day)]; ok && override.Input != "" {
		name = override.Input
	}
	return filepath.Join(m.Dir, m.Inputs.Dir, name)
}

// DatabasePath returns the absolute path of the results database.
func (m *Manifest) DatabasePath() string {
	return filepath.Join(m.Dir, m.Results.Database)
}
