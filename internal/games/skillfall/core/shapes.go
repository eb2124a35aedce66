// Package core provides the core game logic for Skillfall: shapes, the
// board grid, label scheduling, piece generation, and the placement
// evaluator. This package is UI-agnostic and deterministic.
package core

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	NumKinds = 7
)

// String returns the canonical one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Class groups shapes by visual similarity for repetition filtering:
// S and Z form one class, J and L another, the rest stand alone.
type Class uint8

const (
	ClassLine Class = iota
	ClassSquare
	ClassTee
	ClassDiagonal
	ClassHook
)

// Class returns the similarity class for this kind.
func (k Kind) Class() Class {
	switch k {
	case KindI:
		return ClassLine
	case KindO:
		return ClassSquare
	case KindT:
		return ClassTee
	case KindS, KindZ:
		return ClassDiagonal
	default:
		return ClassHook
	}
}

// Rotation is a quarter-turn orientation of a piece.
type Rotation uint8

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270

	NumRotations = 4
)

// Next returns the rotation one clockwise quarter-turn further.
func (r Rotation) Next() Rotation {
	return (r + 1) % NumRotations
}

// Offset is a (row, column) position within a shape matrix or the grid.
type Offset struct {
	Row, Col int
}

// Shape is an immutable tetromino template: an occupancy matrix per
// rotation plus the anchor offsets where labels are rendered. The two
// diagonal shapes (S and Z) carry two anchors and can host a two-word
// label; every other shape carries one.
type Shape struct {
	Kind Kind

	grids   [NumRotations][][]bool
	anchors [NumRotations][]Offset
}

// Grid returns the occupancy matrix for the given rotation.
// Callers must not mutate the returned matrix.
func (s *Shape) Grid(r Rotation) [][]bool {
	return s.grids[r%NumRotations]
}

// Anchors returns the label anchor offsets for the given rotation.
func (s *Shape) Anchors(r Rotation) []Offset {
	return s.anchors[r%NumRotations]
}

// AnchorCount returns how many labels this shape carries (1 or 2).
func (s *Shape) AnchorCount() int {
	return len(s.anchors[0])
}

// CellCount returns the number of filled cells (always 4 for tetrominoes).
func (s *Shape) CellCount() int {
	count := 0
	for _, row := range s.grids[0] {
		for _, filled := range row {
			if filled {
				count++
			}
		}
	}
	return count
}

var shapes = buildShapes()

// ShapeFor returns the immutable shape template for a kind.
func ShapeFor(k Kind) *Shape {
	return shapes[k]
}

// AllKinds returns the seven kinds in canonical order.
func AllKinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// buildShapes constructs the seven templates with all four rotations
// precomputed. Matrices are minimal bounding rectangles; rotating a
// rectangular matrix swaps its dimensions.
func buildShapes() [NumKinds]*Shape {
	defs := []struct {
		kind    Kind
		rows    []string // '#' = filled
		anchors []Offset
	}{
		{KindI, []string{"####"}, []Offset{{0, 1}}},
		{KindO, []string{"##", "##"}, []Offset{{0, 0}}},
		{KindT, []string{"###", ".#."}, []Offset{{0, 1}}},
		{KindS, []string{".##", "##."}, []Offset{{0, 1}, {1, 0}}},
		{KindZ, []string{"##.", ".##"}, []Offset{{0, 0}, {1, 1}}},
		{KindJ, []string{"#..", "###"}, []Offset{{1, 1}}},
		{KindL, []string{"..#", "###"}, []Offset{{1, 1}}},
	}

	var out [NumKinds]*Shape
	for _, d := range defs {
		s := &Shape{Kind: d.kind}
		grid := parseGrid(d.rows)
		anchors := append([]Offset(nil), d.anchors...)
		for r := 0; r < NumRotations; r++ {
			s.grids[r] = grid
			s.anchors[r] = anchors
			anchors = rotateAnchorsCW(anchors, len(grid))
			grid = rotateCW(grid)
		}
		out[d.kind] = s
	}
	return out
}

func parseGrid(rows []string) [][]bool {
	grid := make([][]bool, len(rows))
	for i, row := range rows {
		grid[i] = make([]bool, len(row))
		for j, ch := range row {
			grid[i][j] = ch == '#'
		}
	}
	return grid
}

// rotateCW rotates an h×w matrix clockwise into a w×h matrix.
func rotateCW(grid [][]bool) [][]bool {
	h := len(grid)
	w := len(grid[0])
	out := make([][]bool, w)
	for r := 0; r < w; r++ {
		out[r] = make([]bool, h)
		for c := 0; c < h; c++ {
			out[r][c] = grid[h-1-c][r]
		}
	}
	return out
}

// rotateAnchorsCW maps anchor offsets through a clockwise rotation of an
// h-row matrix: (r, c) becomes (c, h-1-r).
func rotateAnchorsCW(anchors []Offset, h int) []Offset {
	out := make([]Offset, len(anchors))
	for i, a := range anchors {
		out[i] = Offset{Row: a.Col, Col: h - 1 - a.Row}
	}
	return out
}
