package core

// GridCell is a single board cell. Glyph is the label rune carried over
// from the locked piece, or 0 when the cell renders as a plain block.
type GridCell struct {
	Filled bool
	Glyph  rune
}

// Grid is the authoritative occupancy state of the board. Row 0 is the
// spawn row: any filled cell there after a lock means game over. Cells
// are only ever unfilled by line clearing, which ships as a toggle and
// is off in the default configuration.
type Grid struct {
	w, h       int
	cells      [][]GridCell
	clearLines bool
}

// NewGrid creates an empty w×h grid.
func NewGrid(w, h int, clearLines bool) *Grid {
	g := &Grid{w: w, h: h, clearLines: clearLines}
	g.cells = make([][]GridCell, h)
	for r := range g.cells {
		g.cells[r] = make([]GridCell, w)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// ClearingEnabled reports whether full rows collapse on lock.
func (g *Grid) ClearingEnabled() bool { return g.clearLines }

// Cell returns the cell at (col, row), or an empty cell out of bounds.
func (g *Grid) Cell(col, row int) GridCell {
	if col < 0 || col >= g.w || row < 0 || row >= g.h {
		return GridCell{}
	}
	return g.cells[row][col]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, clearLines: g.clearLines}
	c.cells = make([][]GridCell, g.h)
	for r := range g.cells {
		c.cells[r] = make([]GridCell, g.w)
		copy(c.cells[r], g.cells[r])
	}
	return c
}

// CanPlace reports whether the piece fits at its current position:
// inside the side and bottom bounds and not overlapping filled cells.
// Rows above the grid top are ignored so tall pieces can enter the board.
func (g *Grid) CanPlace(p Piece) bool {
	cells := p.Cells()
	for r := range cells {
		for c := range cells[r] {
			if !cells[r][c] {
				continue
			}
			col := p.Col + c
			row := p.Row + r
			if col < 0 || col >= g.w || row >= g.h {
				return false
			}
			if row < 0 {
				continue
			}
			if g.cells[row][col].Filled {
				return false
			}
		}
	}
	return true
}

// Lock commits the piece's cells permanently, carrying label glyphs into
// the grid. When line clearing is enabled, full rows collapse and the
// indexes of the cleared rows are returned (top to bottom).
func (g *Grid) Lock(p Piece) []int {
	cells := p.Cells()
	glyphs := p.Glyphs()
	for r := range cells {
		for c := range cells[r] {
			if !cells[r][c] {
				continue
			}
			col := p.Col + c
			row := p.Row + r
			if col < 0 || col >= g.w || row < 0 || row >= g.h {
				continue
			}
			g.cells[row][col] = GridCell{Filled: true, Glyph: glyphs[Offset{Row: r, Col: c}]}
		}
	}

	if !g.clearLines {
		return nil
	}
	return g.collapseFullRows()
}

// collapseFullRows removes fully-occupied rows, shifting everything
// above down by the number of rows cleared beneath it.
func (g *Grid) collapseFullRows() []int {
	var cleared []int
	for row := 0; row < g.h; row++ {
		if g.rowFull(row) {
			cleared = append(cleared, row)
		}
	}
	if len(cleared) == 0 {
		return nil
	}

	dst := g.h - 1
	for src := g.h - 1; src >= 0; src-- {
		if g.rowFull(src) {
			continue
		}
		g.cells[dst] = g.cells[src]
		dst--
	}
	for ; dst >= 0; dst-- {
		g.cells[dst] = make([]GridCell, g.w)
	}
	return cleared
}

func (g *Grid) rowFull(row int) bool {
	for col := 0; col < g.w; col++ {
		if !g.cells[row][col].Filled {
			return false
		}
	}
	return true
}

// IsTerminal reports the game-over condition: any filled cell in row 0.
func (g *Grid) IsTerminal() bool {
	for col := 0; col < g.w; col++ {
		if g.cells[0][col].Filled {
			return true
		}
	}
	return false
}

// ColumnHeights returns, per column, the row index of the topmost filled
// cell, or the grid height for an empty column. Used by the evaluator.
func (g *Grid) ColumnHeights() []int {
	heights := make([]int, g.w)
	for col := 0; col < g.w; col++ {
		heights[col] = g.h
		for row := 0; row < g.h; row++ {
			if g.cells[row][col].Filled {
				heights[col] = row
				break
			}
		}
	}
	return heights
}
