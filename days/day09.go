package days

import (
	"fmt"
	"strconv"

	"github.com/chazu/intcode/vm"
)

func init() {
	register(9, "Sensor Boost", solveDay09)
}

func solveDay09(input string) (string, string, error) {
	program, err := vm.Parse(input)
	if err != nil {
		return "", "", err
	}

	part1, ok := vm.WithInput(program, 1).Run()
	if !ok {
		return "", "", fmt.Errorf("day09: BOOST test mode produced no keycode")
	}
	part2, ok := vm.WithInput(program, 2).Run()
	if !ok {
		return "", "", fmt.Errorf("day09: BOOST sensor mode produced no coordinates")
	}

	return strconv.FormatInt(part1, 10), strconv.FormatInt(part2, 10), nil
}
