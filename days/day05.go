package days

import (
	"fmt"
	"strconv"

	"github.com/chazu/intcode/vm"
)

func init() {
	register(5, "Sunny with a Chance of Asteroids", solveDay05)
}

func solveDay05(input string) (string, string, error) {
	program, err := vm.Parse(input)
	if err != nil {
		return "", "", err
	}

	// Part 1: run the TEST diagnostic with system ID 1. Every output
	// before the final diagnostic code must be a passing zero.
	m := vm.WithInput(program, 1)
	var outputs []int64
	for value := range m.Outputs() {
		outputs = append(outputs, value)
	}
	if len(outputs) == 0 {
		return "", "", fmt.Errorf("day05: diagnostic produced no output")
	}
	for _, value := range outputs[:len(outputs)-1] {
		if value != 0 {
			return "", "", fmt.Errorf("day05: diagnostic test failed with %d", value)
		}
	}
	part1 := outputs[len(outputs)-1]

	// Part 2: system ID 5 produces the diagnostic code directly.
	part2, ok := vm.WithInput(program, 5).Run()
	if !ok {
		return "", "", fmt.Errorf("day05: no diagnostic code for system 5")
	}

	return strconv.FormatInt(part1, 10), strconv.FormatInt(part2, 10), nil
}
