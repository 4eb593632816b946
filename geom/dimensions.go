package geom

import (
	"iter"
)

// Dimensions is a width/height pair describing a rectangular area anchored
// at the origin.
type Dimensions struct {
	Width, Height int
}

// Area returns the number of cells covered.
func (d Dimensions) Area() int {
	return d.Width * d.Height
}

// Contains reports whether pos lies inside the area.
func (d Dimensions) Contains(pos Vec) bool {
	return pos.X >= 0 && pos.X < int64(d.Width) && pos.Y >= 0 && pos.Y < int64(d.Height)
}

// ExpandToFit grows the area so it covers pos.
func (d *Dimensions) ExpandToFit(pos Vec) {
	d.Width = max(d.Width, int(pos.X)+1)
	d.Height = max(d.Height, int(pos.Y)+1)
}

// Index maps a position to a row-major cell index.
func (d Dimensions) Index(pos Vec) int {
	return int(pos.Y)*d.Width + int(pos.X)
}

// Pos maps a row-major cell index back to a position.
func (d Dimensions) Pos(index int) Vec {
	return Vec{int64(index % d.Width), int64(index / d.Width)}
}

// Centre returns the middle cell of the area.
func (d Dimensions) Centre() Vec {
	return Vec{int64(d.Width / 2), int64(d.Height / 2)}
}

// Iter walks every cell in row-major order.
func (d Dimensions) Iter() iter.Seq[Vec] {
	return func(yield func(Vec) bool) {
		for y := 0; y < d.Height; y++ {
			for x := 0; x < d.Width; x++ {
				if !yield(Vec{int64(x), int64(y)}) {
					return
				}
			}
		}
	}
}
