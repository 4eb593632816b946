package days

import (
	"fmt"
	"strconv"

	"github.com/chazu/intcode/geom"
	"github.com/chazu/intcode/graph"
	"github.com/chazu/intcode/vm"
)

func init() {
	register(15, "Oxygen System", solveDay15)
}

// Droid status replies.
const (
	statusWall   int64 = 0
	statusMoved  int64 = 1
	statusOxygen int64 = 2
)

// moveCommands pairs each droid movement command with its step. North is
// toward smaller y, matching the rendered map's top row.
var moveCommands = [4]struct {
	code int64
	step geom.Vec
}{
	{1, geom.Vec{X: 0, Y: -1}},
	{2, geom.Vec{X: 0, Y: 1}},
	{3, geom.Vec{X: -1, Y: 0}},
	{4, geom.Vec{X: 1, Y: 0}},
}

func commandFor(step geom.Vec) int64 {
	for _, mc := range moveCommands {
		if mc.step == step {
			return mc.code
		}
	}
	panic(fmt.Sprintf("day15: no movement command for step %v", step))
}

// locationType classifies one tile of the droid's map.
type locationType int

const (
	locUnknown locationType = iota
	locWall
	locEmpty
	locOxygen
	locStart
	locFrontier // adjacent to a visited tile, not yet tried
)

func (t locationType) traversable() bool {
	switch t {
	case locEmpty, locOxygen, locStart, locFrontier:
		return true
	}
	return false
}

func (t locationType) glyph() byte {
	switch t {
	case locWall:
		return '#'
	case locEmpty:
		return '.'
	case locOxygen:
		return 'o'
	case locStart:
		return 's'
	case locFrontier:
		return '?'
	}
	return ' '
}

// ---------------------------------------------------------------------------
// World map
// ---------------------------------------------------------------------------

// worldMap accumulates what the droid has learned about the maze. It doubles
// as a search graph over its bounding box, with tiles numbered row-major.
type worldMap struct {
	tiles     map[geom.Vec]locationType
	low, high geom.Vec
	frontier  map[geom.Vec]bool
	oxygen    geom.Vec
	hasOxygen bool
}

func newWorldMap() *worldMap {
	return &worldMap{
		tiles:    map[geom.Vec]locationType{},
		frontier: map[geom.Vec]bool{},
	}
}

// record stores a tile's type. Frontier markings never overwrite a known
// tile; known types always win and retire the frontier entry.
func (w *worldMap) record(pos geom.Vec, t locationType) {
	if t == locFrontier {
		if _, known := w.tiles[pos]; known {
			return
		}
		w.frontier[pos] = true
	} else {
		delete(w.frontier, pos)
	}
	w.tiles[pos] = t

	if t == locOxygen {
		w.oxygen = pos
		w.hasOxygen = true
	}
	if len(w.tiles) == 1 {
		w.low, w.high = pos, pos
	} else {
		w.low = w.low.Min(pos)
		w.high = w.high.Max(pos)
	}
}

func (w *worldMap) nextFrontier() (geom.Vec, bool) {
	for pos := range w.frontier {
		return pos, true
	}
	return geom.Vec{}, false
}

func (w *worldMap) dimensions() geom.Dimensions {
	diff := w.high.Sub(w.low)
	return geom.Dimensions{Width: int(diff.X) + 1, Height: int(diff.Y) + 1}
}

func (w *worldMap) nodeIndex(pos geom.Vec) int {
	return w.dimensions().Index(pos.Sub(w.low))
}

func (w *worldMap) nodePos(node int) geom.Vec {
	return w.dimensions().Pos(node).Add(w.low)
}

// NumNodes implements graph.Graph.
func (w *worldMap) NumNodes() int {
	return w.dimensions().Area()
}

// Edges implements graph.Graph: unit-cost edges to traversable neighbours.
func (w *worldMap) Edges(node int) []graph.Edge {
	var edges []graph.Edge
	for _, n := range w.nodePos(node).Neighbours() {
		if n.X < w.low.X || n.X > w.high.X || n.Y < w.low.Y || n.Y > w.high.Y {
			continue
		}
		if w.tiles[n].traversable() {
			edges = append(edges, graph.Edge{To: w.nodeIndex(n), Cost: 1})
		}
	}
	return edges
}

func (w *worldMap) shortestPath(from, to geom.Vec) []geom.Vec {
	nodes := graph.ShortestPath(w, w.nodeIndex(from), w.nodeIndex(to))
	path := make([]geom.Vec, len(nodes))
	for i, node := range nodes {
		path[i] = w.nodePos(node)
	}
	return path
}

// distanceToOxygen is the length of the shortest route from start.
func (w *worldMap) distanceToOxygen(start geom.Vec) (int, error) {
	if !w.hasOxygen {
		return 0, fmt.Errorf("day15: no oxygen system found")
	}
	path := w.shortestPath(start, w.oxygen)
	if path == nil {
		return 0, fmt.Errorf("day15: oxygen system unreachable from %v", start)
	}
	return len(path) - 1, nil
}

// percolationTime is how long oxygen takes to fill the maze: the distance to
// the tile farthest from the oxygen system.
func (w *worldMap) percolationTime() (int, error) {
	if !w.hasOxygen {
		return 0, fmt.Errorf("day15: no oxygen system found")
	}
	return graph.FarthestFrom(w, w.nodeIndex(w.oxygen)), nil
}

// render draws the known map, top row first, with the droid as 'D'.
func (w *worldMap) render(droid geom.Vec) string {
	canvas := make([]byte, 0, w.dimensions().Area()+w.dimensions().Height)
	for pos := range w.dimensions().Iter() {
		if pos.X == 0 && pos.Y > 0 {
			canvas = append(canvas, '\n')
		}
		pos = pos.Add(w.low)
		if pos == droid {
			canvas = append(canvas, 'D')
		} else {
			canvas = append(canvas, w.tiles[pos].glyph())
		}
	}
	return string(canvas)
}

// ---------------------------------------------------------------------------
// Repair droid
// ---------------------------------------------------------------------------

// repairDroid explores the maze one frontier tile at a time, walking the
// known map to each frontier and trying the final step.
type repairDroid struct {
	machine  *vm.Machine
	position geom.Vec
	world    *worldMap
}

func newRepairDroid(program vm.Program) *repairDroid {
	d := &repairDroid{machine: vm.NewMachine(program), world: newWorldMap()}
	d.world.record(d.position, locStart)
	d.markNeighbours()
	return d
}

func (d *repairDroid) explore() error {
	for {
		dest, ok := d.world.nextFrontier()
		if !ok {
			return nil
		}
		path := d.world.shortestPath(d.position, dest)
		if path == nil {
			return fmt.Errorf("day15: frontier tile %v unreachable from %v", dest, d.position)
		}
		for _, next := range path[1:] {
			if err := d.move(next); err != nil {
				return err
			}
			if d.position != next {
				break // hit a wall; replan from here
			}
		}
	}
}

// move commands the droid one step toward an adjacent tile and records what
// it found there.
func (d *repairDroid) move(to geom.Vec) error {
	status, ok := d.machine.RunWithInput(commandFor(to.Sub(d.position)))
	if !ok {
		return fmt.Errorf("day15: droid stopped responding at %v", d.position)
	}

	switch status {
	case statusWall:
		d.world.record(to, locWall)
	case statusMoved:
		d.world.record(to, locEmpty)
		d.position = to
		d.markNeighbours()
	case statusOxygen:
		d.world.record(to, locOxygen)
		d.position = to
		d.markNeighbours()
	default:
		return fmt.Errorf("day15: unknown droid status %d", status)
	}
	return nil
}

func (d *repairDroid) markNeighbours() {
	for _, n := range d.position.Neighbours() {
		d.world.record(n, locFrontier)
	}
}

func solveDay15(input string) (string, string, error) {
	program, err := vm.Parse(input)
	if err != nil {
		return "", "", err
	}

	droid := newRepairDroid(program)
	if err := droid.explore(); err != nil {
		return "", "", err
	}

	part1, err := droid.world.distanceToOxygen(geom.Vec{})
	if err != nil {
		return "", "", err
	}
	part2, err := droid.world.percolationTime()
	if err != nil {
		return "", "", err
	}
	return strconv.Itoa(part1), strconv.Itoa(part2), nil
}
