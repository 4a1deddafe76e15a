// Package glass implements the playing field of a falling-block game: the
// grid of settled blocks and the single piece currently falling through it.
//
// Every movement, rotation and spawn goes through Fits, so there is exactly
// one collision check. Rejected moves report false and leave the glass as it
// was. A Glass is not safe for concurrent use.
package glass

import (
	"strings"

	"github.com/plus3/glass/figures"
)

// Position locates a piece origin in the glass. Row 0 is the top row.
type Position struct {
	Row, Col int
}

// Direction of a one-cell move.
type Direction uint8

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Direction(?)"
	}
}

func (d Direction) apply(p Position) Position {
	switch d {
	case Left:
		p.Col--
	case Right:
		p.Col++
	case Down:
		p.Row++
	}
	return p
}

// Piece is the active piece: a representation at an absolute position.
type Piece struct {
	Repr     figures.Repr
	Position Position
}

// Blocks returns the absolute cells covered by the piece.
func (p Piece) Blocks() [4]Position {
	return absolute(p.Repr, p.Position)
}

func absolute(repr figures.Repr, pos Position) [4]Position {
	var out [4]Position
	for i, b := range repr.Blocks {
		out[i] = Position{Row: pos.Row + b.Y, Col: pos.Col + b.X}
	}
	return out
}

// Glass is a width x height grid of settled blocks plus an optional active
// piece.
type Glass struct {
	width  int
	height int
	cells  []bool
	active *Piece
	rng    figures.Rand
}

// New creates an empty glass. The random source drives SpawnNext.
func New(width, height int, rng figures.Rand) *Glass {
	if width <= 0 || height <= 0 {
		panic("glass: width and height must be positive")
	}
	if rng == nil {
		panic("glass: nil random source")
	}
	return &Glass{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		rng:    rng,
	}
}

func (g *Glass) Width() int  { return g.width }
func (g *Glass) Height() int { return g.height }

func (g *Glass) contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Filled reports whether a settled block occupies the cell. Cells outside
// the glass are reported empty.
func (g *Glass) Filled(row, col int) bool {
	if !g.contains(Position{Row: row, Col: col}) {
		return false
	}
	return g.cells[row*g.width+col]
}

func (g *Glass) setFilled(row, col int, filled bool) {
	if !g.contains(Position{Row: row, Col: col}) {
		return
	}
	g.cells[row*g.width+col] = filled
}

// Row returns a copy of one row of settled blocks.
func (g *Glass) Row(row int) []bool {
	out := make([]bool, g.width)
	if row < 0 || row >= g.height {
		return out
	}
	copy(out, g.row(row))
	return out
}

func (g *Glass) row(r int) []bool {
	return g.cells[r*g.width : (r+1)*g.width]
}

// Active returns the falling piece, if any.
func (g *Glass) Active() (Piece, bool) {
	if g.active == nil {
		return Piece{}, false
	}
	return *g.active, true
}

// ActiveBlocks returns the absolute cells of the falling piece for
// rendering. Game logic must not derive collisions from it.
func (g *Glass) ActiveBlocks() ([4]Position, bool) {
	if g.active == nil {
		return [4]Position{}, false
	}
	return g.active.Blocks(), true
}

// Fits reports whether repr at pos lies inside the glass and covers no
// settled block.
func (g *Glass) Fits(repr figures.Repr, pos Position) bool {
	for _, p := range absolute(repr, pos) {
		if !g.contains(p) || g.cells[p.Row*g.width+p.Col] {
			return false
		}
	}
	return true
}

// Place installs repr at pos as the active piece if it fits.
func (g *Glass) Place(repr figures.Repr, pos Position) bool {
	if !g.Fits(repr, pos) {
		return false
	}
	g.active = &Piece{Repr: repr, Position: pos}
	return true
}

// Relocate shifts the active piece one cell.
func (g *Glass) Relocate(dir Direction) bool {
	if g.active == nil {
		return false
	}
	return g.Place(g.active.Repr, dir.apply(g.active.Position))
}

// RotateActive turns the active piece in place. There are no wall kicks: a
// rotation that does not fit at the current position is rejected.
func (g *Glass) RotateActive() bool {
	if g.active == nil {
		return false
	}
	return g.Place(g.active.Repr.Rotate(), g.active.Position)
}

// Drop moves the active piece down until it rests and returns the number of
// rows it travelled. The piece stays active.
func (g *Glass) Drop() int {
	n := 0
	for g.Relocate(Down) {
		n++
	}
	return n
}

// Freeze settles the active piece into the grid. Blocks outside the glass
// are skipped.
func (g *Glass) Freeze() {
	p := g.active
	g.active = nil
	if p == nil {
		return
	}
	for _, b := range p.Blocks() {
		g.setFilled(b.Row, b.Col, true)
	}
}

func (g *Glass) rowFilled(r int) bool {
	for _, v := range g.row(r) {
		if !v {
			return false
		}
	}
	return true
}

// ClearFilledRows removes every full row, dropping the rows above it by one
// and inserting an empty row at the top. It returns the number of rows
// removed.
func (g *Glass) ClearFilledRows() int {
	cleared := 0
	for r := g.height - 1; r >= 0; r-- {
		// the row that slides into r may be full as well
		for g.rowFilled(r) {
			for above := r; above > 0; above-- {
				copy(g.row(above), g.row(above-1))
			}
			clear(g.row(0))
			cleared++
		}
	}
	return cleared
}

// Spawn puts a new piece of the given shape, turned rotations times, at the
// top of the glass, horizontally centered. Negative rotations turn the other
// way. It returns true when the piece is blocked, which ends the game.
func (g *Glass) Spawn(shape figures.Shape, rotations int) bool {
	repr := figures.New(shape)
	for i := 0; i < (rotations%4+4)%4; i++ {
		repr = repr.Rotate()
	}
	pos := Position{
		Row: -repr.MinY(),
		Col: g.width/2 - repr.CenterX(),
	}
	return !g.Place(repr, pos)
}

// SpawnNext spawns a random shape with a random number of initial turns. It
// returns the shape drawn and whether the spawn was blocked.
func (g *Glass) SpawnNext() (figures.Shape, bool) {
	shape := figures.Random(g.rng)
	return shape, g.Spawn(shape, g.rng.IntN(4))
}

// Reset empties the grid and removes the active piece.
func (g *Glass) Reset() {
	clear(g.cells)
	g.active = nil
}

// String renders the glass one row per line: '#' settled, '@' active,
// '.' empty.
func (g *Glass) String() string {
	active := make(map[Position]bool, 4)
	if blocks, ok := g.ActiveBlocks(); ok {
		for _, b := range blocks {
			active[b] = true
		}
	}

	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			switch {
			case active[Position{Row: r, Col: c}]:
				sb.WriteByte('@')
			case g.cells[r*g.width+c]:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
