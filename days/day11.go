package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/intcode/geom"
	"github.com/chazu/intcode/ocr"
	"github.com/chazu/intcode/vm"
)

func init() {
	register(11, "Space Police", solveDay11)
}

const (
	colourBlack int64 = 0
	colourWhite int64 = 1
)

// direction is one of the four robot headings. Up is +y.
type direction int

const (
	dirUp direction = iota
	dirRight
	dirDown
	dirLeft
)

func (d direction) vec() geom.Vec {
	switch d {
	case dirUp:
		return geom.Vec{X: 0, Y: 1}
	case dirRight:
		return geom.Vec{X: 1, Y: 0}
	case dirDown:
		return geom.Vec{X: 0, Y: -1}
	default:
		return geom.Vec{X: -1, Y: 0}
	}
}

// turn rotates the heading: 0 turns left, 1 turns right.
func (d direction) turn(to int64) direction {
	switch to {
	case 0:
		return (d + 3) % 4
	case 1:
		return (d + 1) % 4
	}
	panic(fmt.Sprintf("day11: unknown turn direction %d", to))
}

// paintHull drives the painting robot to completion: the machine reads the
// colour under the robot, outputs a paint colour and a turn, and the robot
// moves one panel forward.
func paintHull(program vm.Program, initialColour int64) map[geom.Vec]int64 {
	m := vm.NewMachine(program)
	position := geom.Vec{}
	heading := dirUp
	panels := map[geom.Vec]int64{}

	m.Input(initialColour)
	for {
		paint, ok := m.Run()
		if !ok {
			break
		}
		panels[position] = paint

		turn, ok := m.Run()
		if !ok {
			break
		}
		heading = heading.turn(turn)
		position = position.Add(heading.vec())

		m.Input(panels[position])
	}
	return panels
}

// renderPanels draws the painted panels with '@' for white, top row first.
func renderPanels(panels map[geom.Vec]int64) string {
	var low, high geom.Vec
	first := true
	for pos := range panels {
		if first {
			low, high = pos, pos
			first = false
			continue
		}
		low = low.Min(pos)
		high = high.Max(pos)
	}

	var sb strings.Builder
	for y := high.Y; y >= low.Y; y-- {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		for x := low.X; x <= high.X; x++ {
			if panels[geom.Vec{X: x, Y: y}] == colourWhite {
				sb.WriteByte('@')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

func solveDay11(input string) (string, string, error) {
	program, err := vm.Parse(input)
	if err != nil {
		return "", "", err
	}

	part1 := len(paintHull(program, colourBlack))

	// Starting on a white panel paints the registration identifier.
	rendered := renderPanels(paintHull(program, colourWhite))
	part2 := ocr.RecognizeRow(rendered)

	return strconv.Itoa(part1), part2, nil
}
