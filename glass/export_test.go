package glass

// SetFilled lets tests build grids cell by cell.
func (g *Glass) SetFilled(row, col int, filled bool) {
	g.setFilled(row, col, filled)
}

// ForceActive installs a piece without the collision check.
func (g *Glass) ForceActive(p Piece) {
	g.active = &p
}
