// Package geom provides 2-D integer geometry helpers for interpreting
// machine output as imagery and for map-walking puzzles.
package geom

import (
	"fmt"
	"iter"
	"strings"
)

// Vec is a 2-D integer vector, used both as a position and as a direction.
type Vec struct {
	X, Y int64
}

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Manhattan returns the Manhattan length of v.
func (v Vec) Manhattan() int64 {
	return abs(v.X) + abs(v.Y)
}

// Min returns the component-wise minimum of v and o.
func (v Vec) Min(o Vec) Vec {
	return Vec{min(v.X, o.X), min(v.Y, o.Y)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec) Max(o Vec) Vec {
	return Vec{max(v.X, o.X), max(v.Y, o.Y)}
}

// String implements the Stringer interface.
func (v Vec) String() string {
	return fmt.Sprintf("{%d,%d}", v.X, v.Y)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// cardinalDirections in no particular order.
var cardinalDirections = [4]Vec{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbours returns the four cardinal neighbours of v.
func (v Vec) Neighbours() [4]Vec {
	var out [4]Vec
	for i, d := range cardinalDirections {
		out[i] = v.Add(d)
	}
	return out
}

// Cartograph iterates a text map as (position, byte) pairs, with x growing
// rightward and y growing downward from the top-left corner.
func Cartograph(input string) iter.Seq2[Vec, byte] {
	return func(yield func(Vec, byte) bool) {
		for y, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
			for x := 0; x < len(line); x++ {
				if !yield(Vec{int64(x), int64(y)}, line[x]) {
					return
				}
			}
		}
	}
}
