package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/intcode/geom"
	"github.com/chazu/intcode/vm"
)

func init() {
	register(17, "Set and Forget", solveDay17)
}

// robotHeadings maps the camera's robot glyphs to their facing direction,
// with y growing downward as in the rendered image.
var robotHeadings = map[byte]geom.Vec{
	'^': {X: 0, Y: -1},
	'v': {X: 0, Y: 1},
	'<': {X: -1, Y: 0},
	'>': {X: 1, Y: 0},
}

// scaffold is the camera's view: the set of scaffold tiles plus the vacuum
// robot's position and heading. The robot stands on a scaffold tile.
type scaffold struct {
	tiles   map[geom.Vec]bool
	robot   geom.Vec
	heading geom.Vec
}

func parseScaffold(image string) *scaffold {
	s := &scaffold{tiles: map[geom.Vec]bool{}}
	for pos, c := range geom.Cartograph(image) {
		if heading, ok := robotHeadings[c]; ok {
			s.tiles[pos] = true
			s.robot = pos
			s.heading = heading
			continue
		}
		if c == '#' {
			s.tiles[pos] = true
		}
	}
	return s
}

// alignmentSum sums X*Y over every scaffold intersection.
func (s *scaffold) alignmentSum() int64 {
	var sum int64
	for pos := range s.tiles {
		if s.isIntersection(pos) {
			sum += pos.X * pos.Y
		}
	}
	return sum
}

func (s *scaffold) isIntersection(pos geom.Vec) bool {
	for _, n := range pos.Neighbours() {
		if !s.tiles[n] {
			return false
		}
	}
	return true
}

// turnLeft and turnRight rotate a heading in image coordinates (y down).
func turnLeft(heading geom.Vec) geom.Vec  { return geom.Vec{X: heading.Y, Y: -heading.X} }
func turnRight(heading geom.Vec) geom.Vec { return geom.Vec{X: -heading.Y, Y: heading.X} }

// route walks the whole scaffold from the robot's starting pose, always
// going as far straight as possible, and returns the movement tokens
// ("L"/"R" alternating with run lengths).
func (s *scaffold) route() []string {
	pos, heading := s.robot, s.heading
	var tokens []string
	for {
		var turn string
		switch {
		case s.tiles[pos.Add(turnLeft(heading))]:
			turn, heading = "L", turnLeft(heading)
		case s.tiles[pos.Add(turnRight(heading))]:
			turn, heading = "R", turnRight(heading)
		default:
			return tokens // end of the scaffold
		}

		run := 0
		for s.tiles[pos.Add(heading)] {
			pos = pos.Add(heading)
			run++
		}
		tokens = append(tokens, turn, strconv.Itoa(run))
	}
}

// ---------------------------------------------------------------------------
// Movement routine compression
// ---------------------------------------------------------------------------

// maxRoutineLen is the robot's limit on one input line, commas included.
const maxRoutineLen = 20

func joinedLen(tokens []string) int {
	n := len(tokens) - 1 // commas
	for _, t := range tokens {
		n += len(t)
	}
	return n
}

// compressRoute splits the route into a main routine calling at most three
// movement functions, every line at most maxRoutineLen characters. Functions
// are whole turn/run pairs.
func compressRoute(route []string) (main string, functions [3]string, ok bool) {
	names := [3]string{"A", "B", "C"}
	var fns [][]string
	var calls []string

	matches := func(pos int, fn []string) bool {
		if pos+len(fn) > len(route) {
			return false
		}
		for i, t := range fn {
			if route[pos+i] != t {
				return false
			}
		}
		return true
	}

	var solve func(pos int) bool
	solve = func(pos int) bool {
		if pos == len(route) {
			return joinedLen(calls) <= maxRoutineLen
		}
		if joinedLen(calls) >= maxRoutineLen {
			return false
		}

		for i, fn := range fns {
			if !matches(pos, fn) {
				continue
			}
			calls = append(calls, names[i])
			if solve(pos + len(fn)) {
				return true
			}
			calls = calls[:len(calls)-1]
		}

		if len(fns) < 3 {
			for end := pos + 2; end <= len(route); end += 2 {
				fn := route[pos:end]
				if joinedLen(fn) > maxRoutineLen {
					break
				}
				fns = append(fns, fn)
				calls = append(calls, names[len(fns)-1])
				if solve(end) {
					return true
				}
				calls = calls[:len(calls)-1]
				fns = fns[:len(fns)-1]
			}
		}
		return false
	}

	if !solve(0) {
		return "", functions, false
	}
	for i, fn := range fns {
		functions[i] = strings.Join(fn, ",")
	}
	return strings.Join(calls, ","), functions, true
}

// ---------------------------------------------------------------------------
// Solver
// ---------------------------------------------------------------------------

// walkScaffold wakes the robot (address 0 set to 2), feeds it the movement
// routines, declines the video feed, and returns the final dust report.
func walkScaffold(program vm.Program, s *scaffold) (int64, error) {
	main, functions, ok := compressRoute(s.route())
	if !ok {
		return 0, fmt.Errorf("day17: route does not compress into three movement functions")
	}

	m := vm.NewMachine(program)
	m.Write(0, 2)
	for _, line := range []string{main, functions[0], functions[1], functions[2], "n"} {
		m.RunASCII() // consume the prompt
		m.InputLine(line)
	}

	var dust int64
	reported := false
	for value := range m.Outputs() {
		dust = value
		reported = true
	}
	if !reported || !m.IsHalted() {
		return 0, fmt.Errorf("day17: robot did not report collected dust")
	}
	return dust, nil
}

func solveDay17(input string) (string, string, error) {
	program, err := vm.Parse(input)
	if err != nil {
		return "", "", err
	}

	image := parseScaffold(vm.NewMachine(program).RunASCII())
	part1 := image.alignmentSum()

	part2, err := walkScaffold(program, image)
	if err != nil {
		return "", "", err
	}
	return strconv.FormatInt(part1, 10), strconv.FormatInt(part2, 10), nil
}
