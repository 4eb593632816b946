package days

import (
	"testing"
)

func TestSolveDay09(t *testing.T) {
	// Reads the mode, adds 1000 and reports it back.
	part1, part2, err := solveDay09("3,9,101,1000,9,9,4,9,99,0")
	if err != nil {
		t.Fatalf("solveDay09: %v", err)
	}
	if part1 != "1001" {
		t.Errorf("part1 = %q, want %q", part1, "1001")
	}
	if part2 != "1002" {
		t.Errorf("part2 = %q, want %q", part2, "1002")
	}
}
