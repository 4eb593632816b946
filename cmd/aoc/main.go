// aoc runs the Advent of Code 2019 solvers against a puzzle workspace.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tliron/commonlog"

	"github.com/chazu/intcode/days"
	"github.com/chazu/intcode/manifest"
	"github.com/chazu/intcode/store"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("intcode.runner")

func main() {
	day := flag.Int("day", 0, "Day to run (runs every registered day when 0)")
	workDir := flag.String("C", ".", "Workspace directory (searched upward for aoc.toml)")
	noRecord := flag.Bool("no-record", false, "Skip recording runs in the results database")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aoc [options]\n\n")
		fmt.Fprintf(os.Stderr, "Runs puzzle solvers using inputs and settings from aoc.toml.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  aoc               # Run every registered day\n")
		fmt.Fprintf(os.Stderr, "  aoc -day 7        # Run a single day\n")
		fmt.Fprintf(os.Stderr, "  aoc -C ~/aoc2019  # Use another workspace\n")
	}
	flag.Parse()

	if *verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}

	m, err := manifest.FindAndLoad(*workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if m == nil {
		m = manifest.Default(*workDir)
	}
	log.Infof("workspace %s", m.Dir)

	var results *store.Store
	if !*noRecord {
		results, err = store.Open(m.DatabasePath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer results.Close()
	}

	selected := days.All()
	if *day != 0 {
		solution, ok := days.Get(*day)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: day %d is not implemented\n", *day)
			os.Exit(1)
		}
		selected = []days.Solution{solution}
	}

	failed := false
	for _, solution := range selected {
		if err := runDay(solution, m, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error: day %d: %v\n", solution.Day, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func runDay(solution days.Solution, m *manifest.Manifest, results *store.Store) error {
	path := m.InputPath(solution.Day)
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.Debugf("day %d input %s (%d bytes)", solution.Day, path, len(input))

	started := time.Now()
	part1, part2, err := solution.Solve(string(input))
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	fmt.Printf("day %02d  %s\n", solution.Day, solution.Name)
	fmt.Printf("  part1 = %s\n", part1)
	fmt.Printf("  part2 = %s  (%s)\n", part2, elapsed.Round(time.Microsecond))

	if results != nil {
		run := store.Run{Day: solution.Day, Part1: part1, Part2: part2, Duration: elapsed, RanAt: started}
		if err := results.Record(run); err != nil {
			return err
		}
	}
	return nil
}
