package core

// Weights are the scoring coefficients of the placement evaluator.
type Weights struct {
	Coverage  float64 // per cell the piece fills
	Flatness  float64 // per hole-depth and adjacent-column height gap (penalty)
	Future    float64 // per look-ahead fill-count point
	Height    float64 // per row of resting depth (lower is better)
	Edge      float64 // wall/floor contact bonus (already absolute)
	Lines     float64 // per completed row
	Lookahead int     // queued pieces considered for future potential
}

// DefaultWeights returns the reference coefficients.
func DefaultWeights() Weights {
	return Weights{
		Coverage:  10,
		Flatness:  5,
		Future:    3,
		Height:    2,
		Edge:      1,
		Lines:     50,
		Lookahead: 3,
	}
}

// Placement is a recommended resting position for a falling piece.
type Placement struct {
	Col, Row int
	Rot      Rotation
	Score    float64
}

// Evaluator scores every reachable resting placement of a piece and
// picks the best. It is a pure function of its inputs: it never mutates
// the grid, the piece, or the queue, so it can be rerun on every player
// input and its result discarded freely.
type Evaluator struct {
	w Weights
}

// NewEvaluator creates an evaluator with the given weights.
func NewEvaluator(w Weights) *Evaluator {
	if w.Lookahead < 0 {
		w.Lookahead = 0
	}
	return &Evaluator{w: w}
}

// BestPlacement returns the best landing for the piece at its current
// rotation, considering up to Lookahead queued pieces. Offsets are
// scanned left to right from -2 to the grid width so overhanging
// matrices are covered; ties break toward the first offset scanned.
// Placements that would leave any cell in row 0 are rejected outright,
// so a followed suggestion can never cause an immediate game over.
// Returns false when no placement survives the row-0 guarantee.
func (e *Evaluator) BestPlacement(g *Grid, p Piece, next []Piece) (Placement, bool) {
	var best Placement
	found := false

	if len(next) > e.w.Lookahead {
		next = next[:e.w.Lookahead]
	}

	for col := -2; col < g.Width(); col++ {
		cand := p.At(col, 0)
		if !g.CanPlace(cand) {
			continue // invalid at spawn height
		}
		rest := drop(g, cand)
		if touchesRow(rest, 0) {
			continue // never suggest an immediate game over
		}

		score := e.score(g, rest, next)
		if !found || score > best.Score {
			best = Placement{Col: rest.Col, Row: rest.Row, Rot: rest.Rot, Score: score}
			found = true
		}
	}
	return best, found
}

// drop simulates a hard drop: one row down at a time until blocked.
func drop(g *Grid, p Piece) Piece {
	for g.CanPlace(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p
}

// touchesRow reports whether any occupied cell of the piece lies in the
// given grid row.
func touchesRow(p Piece, row int) bool {
	cells := p.Cells()
	for r := range cells {
		for c := range cells[r] {
			if cells[r][c] && p.Row+r == row {
				return true
			}
		}
	}
	return false
}

// score combines the six weighted factors for a resting placement.
func (e *Evaluator) score(g *Grid, p Piece, next []Piece) float64 {
	sim := g.Clone()
	sim.Lock(p)

	score := float64(p.Shape.CellCount()) * e.w.Coverage
	score -= float64(holesCreated(g, p)+surfaceUnevenness(sim)) * e.w.Flatness
	score += float64(bottomRow(p)) * e.w.Height // deeper resting row scores higher
	score += edgeContact(g, p) * e.w.Edge
	score += float64(completedRows(g, p)) * e.w.Lines

	if len(next) > 0 {
		future := 0
		for _, q := range next {
			future += bestFillCount(sim, q)
		}
		score += float64(future) * e.w.Future
	}
	return score
}

// surfaceUnevenness totals the height gaps between adjacent columns of
// the settled grid. A perfectly flat surface scores zero.
func surfaceUnevenness(g *Grid) int {
	heights := g.ColumnHeights()
	total := 0
	for i := 1; i < len(heights); i++ {
		d := heights[i] - heights[i-1]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

// holesCreated sums, per column the piece occupies, the depth of empty
// cells sealed beneath the piece's lowest cell in that column.
func holesCreated(g *Grid, p Piece) int {
	cells := p.Cells()
	total := 0
	for c := range cells[0] {
		low := -1
		for r := range cells {
			if cells[r][c] {
				low = p.Row + r
			}
		}
		if low < 0 {
			continue
		}
		col := p.Col + c
		for row := low + 1; row < g.Height(); row++ {
			if g.Cell(col, row).Filled {
				break
			}
			total++
		}
	}
	return total
}

// bottomRow returns the grid row of the piece's lowest occupied cell.
func bottomRow(p Piece) int {
	cells := p.Cells()
	low := p.Row
	for r := range cells {
		for c := range cells[r] {
			if cells[r][c] {
				low = p.Row + r
			}
		}
	}
	return low
}

// edgeContact scores wall and floor adjacency: +2 per filled cell on the
// left or right wall, +3 per filled cell on the floor.
func edgeContact(g *Grid, p Piece) float64 {
	cells := p.Cells()
	contact := 0.0
	for r := range cells {
		for c := range cells[r] {
			if !cells[r][c] {
				continue
			}
			col := p.Col + c
			row := p.Row + r
			if col == 0 {
				contact += 2
			}
			if col == g.Width()-1 {
				contact += 2
			}
			if row == g.Height()-1 {
				contact += 3
			}
		}
	}
	return contact
}

// completedRows counts rows that become fully occupied once the piece is
// overlaid on the grid.
func completedRows(g *Grid, p Piece) int {
	cells := p.Cells()
	count := 0
	for r := range cells {
		row := p.Row + r
		if row < 0 || row >= g.Height() {
			continue
		}
		full := true
		for col := 0; col < g.Width(); col++ {
			if g.Cell(col, row).Filled {
				continue
			}
			c := col - p.Col
			if c >= 0 && c < len(cells[r]) && cells[r][c] {
				continue
			}
			full = false
			break
		}
		if full {
			count++
		}
	}
	return count
}

// bestFillCount measures a queued piece's best single placement against
// a simulated grid: for each landing, the total of filled cells in every
// row the piece occupies after it settles. The maximum over all landings
// rewards board states that keep upcoming pieces productive.
func bestFillCount(g *Grid, q Piece) int {
	best := 0
	for col := -2; col < g.Width(); col++ {
		cand := q.At(col, 0)
		if !g.CanPlace(cand) {
			continue
		}
		rest := drop(g, cand)
		if touchesRow(rest, 0) {
			continue
		}
		if fill := rowFill(g, rest); fill > best {
			best = fill
		}
	}
	return best
}

// rowFill totals the occupied cells, grid plus piece, of each row the
// piece rests in.
func rowFill(g *Grid, p Piece) int {
	cells := p.Cells()
	total := 0
	for r := range cells {
		row := p.Row + r
		if row < 0 || row >= g.Height() {
			continue
		}
		occupied := false
		for c := range cells[r] {
			if cells[r][c] {
				occupied = true
				total++
			}
		}
		if !occupied {
			continue
		}
		for col := 0; col < g.Width(); col++ {
			if g.Cell(col, row).Filled {
				total++
			}
		}
	}
	return total
}
