// Package figures defines the seven tetromino shapes and their point-set
// representation used by the glass.
package figures

import (
	"fmt"
	"math"
)

// Shape is one of the seven fixed four-block piece outlines.
type Shape uint8

const (
	Square Shape = iota
	Line
	Base
	LeftZig
	RightZig
	RightL
	LeftL
)

// Shapes lists every shape variant in declaration order.
var Shapes = [...]Shape{Square, Line, Base, LeftZig, RightZig, RightL, LeftL}

func (s Shape) String() string {
	switch s {
	case Square:
		return "Square"
	case Line:
		return "Line"
	case Base:
		return "Base"
	case LeftZig:
		return "LeftZig"
	case RightZig:
		return "RightZig"
	case RightL:
		return "RightL"
	case LeftL:
		return "LeftL"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

const (
	o = false
	x = true
)

// Layout returns the 4x4 row-major pattern of the shape.
func Layout(s Shape) [16]bool {
	switch s {
	case Square:
		return [16]bool{
			o, o, o, o,
			o, x, x, o,
			o, x, x, o,
			o, o, o, o,
		}
	case Line:
		return [16]bool{
			o, o, o, o,
			o, o, o, o,
			x, x, x, x,
			o, o, o, o,
		}
	case Base:
		return [16]bool{
			o, o, o, o,
			o, o, x, o,
			o, x, x, x,
			o, o, o, o,
		}
	case LeftZig:
		return [16]bool{
			o, o, o, o,
			o, x, x, o,
			o, o, x, x,
			o, o, o, o,
		}
	case RightZig:
		return [16]bool{
			o, o, o, o,
			o, x, x, o,
			x, x, o, o,
			o, o, o, o,
		}
	case RightL:
		return [16]bool{
			o, x, o, o,
			o, x, o, o,
			o, x, x, o,
			o, o, o, o,
		}
	case LeftL:
		return [16]bool{
			o, o, x, o,
			o, o, x, o,
			o, x, x, o,
			o, o, o, o,
		}
	}
	panic("unknown shape " + s.String())
}

// Point is a block offset: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Repr is a piece in a given orientation: four block offsets and the pivot
// they rotate about. The pivot is fixed when the Repr is built.
type Repr struct {
	Blocks [4]Point
	cx, cy float64
}

// New builds the canonical representation of a shape.
func New(s Shape) Repr {
	return FromLayout(Layout(s))
}

// FromLayout scans a 4x4 row-major layout and collects its set cells.
// It panics unless exactly four cells are set.
func FromLayout(layout [16]bool) Repr {
	var r Repr
	n := 0
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !layout[row*4+col] {
				continue
			}
			if n == 4 {
				panic("figures: layout has more than 4 blocks")
			}
			r.Blocks[n] = Point{X: col, Y: row}
			n++
		}
	}
	if n != 4 {
		panic(fmt.Sprintf("figures: layout needs exactly 4 blocks, got %d", n))
	}

	var sx, sy int
	for _, b := range r.Blocks {
		sx += b.X
		sy += b.Y
	}
	r.cx = float64(sx) / 4
	r.cy = float64(sy) / 4
	return r
}

// Rotate returns the representation turned 90 degrees about its pivot.
// Coordinates are rounded up so that four turns land exactly on the start.
func (r Repr) Rotate() Repr {
	out := r
	for i, b := range r.Blocks {
		fx := float64(b.X)
		fy := float64(b.Y)
		out.Blocks[i] = Point{
			X: int(math.Ceil(-(fy - r.cy) + r.cx)),
			Y: int(math.Ceil((fx - r.cx) + r.cy)),
		}
	}
	return out
}

// Pivot returns the rotation center.
func (r Repr) Pivot() (float64, float64) {
	return r.cx, r.cy
}

// CenterX is the pivot column rounded up.
func (r Repr) CenterX() int {
	return int(math.Ceil(r.cx))
}

func (r Repr) MinY() int {
	m := r.Blocks[0].Y
	for _, b := range r.Blocks[1:] {
		m = min(m, b.Y)
	}
	return m
}

func (r Repr) MaxY() int {
	m := r.Blocks[0].Y
	for _, b := range r.Blocks[1:] {
		m = max(m, b.Y)
	}
	return m
}

// Rand is a source of uniform integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Random picks a shape uniformly.
func Random(r Rand) Shape {
	return Shapes[r.IntN(len(Shapes))]
}
