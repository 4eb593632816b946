package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "aoc.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "aoc2019"
year = 2019

[inputs]
dir = "puzzle-inputs"

[results]
database = "runs.db"

[days.7]
input = "day07-alt.txt"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Project.Name != "aoc2019" || m.Project.Year != 2019 {
		t.Errorf("project = %+v", m.Project)
	}
	if got, want := m.InputPath(5), filepath.Join(m.Dir, "puzzle-inputs", "day05.txt"); got != want {
		t.Errorf("InputPath(5) = %q, want %q", got, want)
	}
	if got, want := m.InputPath(7), filepath.Join(m.Dir, "puzzle-inputs", "day07-alt.txt"); got != want {
		t.Errorf("InputPath(7) = %q, want %q", got, want)
	}
	if got, want := m.DatabasePath(), filepath.Join(m.Dir, "runs.db"); got != want {
		t.Errorf("DatabasePath = %q, want %q", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `[project]
name = "aoc"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Inputs.Dir != "inputs" {
		t.Errorf("Inputs.Dir = %q, want %q", m.Inputs.Dir, "inputs")
	}
	if m.Results.Database != filepath.Join(".aoc", "results.db") {
		t.Errorf("Results.Database = %q", m.Results.Database)
	}
}

func TestFindAndLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[project]
name = "aoc"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil, want manifest")
	}
	if m.Project.Name != "aoc" {
		t.Errorf("project name = %q, want %q", m.Project.Name, "aoc")
	}
}

func TestFindAndLoadMissing(t *testing.T) {
	m, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}
	if m != nil {
		t.Errorf("FindAndLoad = %+v, want nil", m)
	}
}
