package days

import (
	"fmt"
	"strconv"

	"github.com/chazu/intcode/vm"
)

func init() {
	register(2, "1202 Program Alarm", solveDay02)
}

// runNounVerb patches the noun/verb pair into a copy of the program, runs
// it to halt, and returns the value left at address 0.
func runNounVerb(program vm.Program, noun, verb int64) int64 {
	patched := program.Clone()
	patched.Patch(1, noun)
	patched.Patch(2, verb)

	m := vm.NewMachine(patched)
	m.Run()
	return m.Read(0)
}

func solveDay02(input string) (string, string, error) {
	program, err := vm.Parse(input)
	if err != nil {
		return "", "", err
	}

	part1 := runNounVerb(program, 12, 2)

	const target = 19690720
	for noun := int64(0); noun < 100; noun++ {
		for verb := int64(0); verb < 100; verb++ {
			if runNounVerb(program, noun, verb) == target {
				return strconv.FormatInt(part1, 10), strconv.FormatInt(100*noun+verb, 10), nil
			}
		}
	}
	return "", "", fmt.Errorf("day02: no noun/verb pair produces %d", target)
}
