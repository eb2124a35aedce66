package core

// Piece is a live, positioned, rotated instance of a Shape with assigned
// labels. Pieces are plain values: every transform returns a new Piece,
// which the grid validates before the caller accepts it. An invalid
// intermediate state is therefore never observable.
type Piece struct {
	Shape *Shape
	Rot   Rotation

	// Col, Row is the grid position of the matrix's top-left corner.
	// Row may be negative while a tall piece enters the board.
	Col, Row int

	// Labels are the display labels, one per anchor (1 or 2).
	Labels []string

	// Origins are the pool labels this piece consumed. A split two-word
	// label yields two display labels but a single origin.
	Origins []string
}

// Cells returns the occupancy matrix at the piece's current rotation.
func (p Piece) Cells() [][]bool {
	return p.Shape.Grid(p.Rot)
}

// Width returns the matrix width at the current rotation.
func (p Piece) Width() int {
	return len(p.Cells()[0])
}

// Height returns the matrix height at the current rotation.
func (p Piece) Height() int {
	return len(p.Cells())
}

// Anchors returns the label anchors at the current rotation.
func (p Piece) Anchors() []Offset {
	return p.Shape.Anchors(p.Rot)
}

// Moved returns a copy translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Col += dx
	p.Row += dy
	return p
}

// Rotated returns a copy turned one quarter clockwise. Rotating the
// square shape is a no-op.
func (p Piece) Rotated() Piece {
	if p.Shape.Kind == KindO {
		return p
	}
	p.Rot = p.Rot.Next()
	return p
}

// WithShape returns a copy carrying a different shape and rotation at the
// same position. Labels and origins are preserved; callers adapting the
// anchor count replace Labels themselves.
func (p Piece) WithShape(s *Shape, r Rotation) Piece {
	p.Shape = s
	p.Rot = r
	return p
}

// At returns a copy placed at the given grid position.
func (p Piece) At(col, row int) Piece {
	p.Col = col
	p.Row = row
	return p
}

// Glyphs maps each filled matrix cell to the label rune rendered there.
// Filled cells are partitioned by nearest anchor, then each label's runes
// are laid across its partition in row-major order. Cells beyond the
// label's length carry no glyph and render as plain blocks.
func (p Piece) Glyphs() map[Offset]rune {
	anchors := p.Anchors()
	cells := p.Cells()

	buckets := make([][]Offset, len(anchors))
	for r := range cells {
		for c := range cells[r] {
			if !cells[r][c] {
				continue
			}
			best := 0
			bestDist := 1 << 30
			for i, a := range anchors {
				d := abs(a.Row-r) + abs(a.Col-c)
				// Ties group the cell with the anchor in its own row,
				// which splits the diagonal shapes into even halves.
				if d < bestDist || (d == bestDist && a.Row == r && anchors[best].Row != r) {
					best = i
					bestDist = d
				}
			}
			buckets[best] = append(buckets[best], Offset{Row: r, Col: c})
		}
	}

	glyphs := make(map[Offset]rune)
	for i, label := range p.Labels {
		if i >= len(buckets) {
			break
		}
		runes := []rune(label)
		for j, cell := range buckets[i] {
			if j >= len(runes) {
				break
			}
			glyphs[cell] = runes[j]
		}
	}
	return glyphs
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
