// Package days holds the puzzle solvers. Each solver is a client of the vm
// package (or of the plain geometry helpers); the machines themselves know
// nothing about the puzzles driving them.
package days

import (
	"fmt"
	"sort"
)

// Solver computes both answers for one day from its raw puzzle input.
type Solver func(input string) (part1, part2 string, err error)

// Solution is a registered day.
type Solution struct {
	Day   int
	Name  string
	Solve Solver
}

var registry = map[int]Solution{}

// register adds a solver to the registry. Called from init functions.
func register(day int, name string, solve Solver) {
	if _, exists := registry[day]; exists {
		panic(fmt.Sprintf("days: duplicate registration for day %d", day))
	}
	registry[day] = Solution{Day: day, Name: name, Solve: solve}
}

// Get returns the solution for a day, if one is registered.
func Get(day int) (Solution, bool) {
	s, ok := registry[day]
	return s, ok
}

// All returns every registered solution in day order.
func All() []Solution {
	out := make([]Solution, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
