package core

import (
	"testing"
)

func fillCell(g *Grid, col, row int) {
	g.cells[row][col] = GridCell{Filled: true}
}

func fillRowExcept(g *Grid, row int, skip ...int) {
	skipped := make(map[int]bool, len(skip))
	for _, c := range skip {
		skipped[c] = true
	}
	for col := 0; col < g.Width(); col++ {
		if !skipped[col] {
			fillCell(g, col, row)
		}
	}
}

func TestCanPlaceBounds(t *testing.T) {
	g := NewGrid(10, 18, false)
	p := Piece{Shape: ShapeFor(KindO), Rot: Rot0}

	cases := []struct {
		name     string
		col, row int
		want     bool
	}{
		{"inside", 4, 4, true},
		{"left wall", 0, 0, true},
		{"right wall", 8, 0, true},
		{"past left", -1, 4, false},
		{"past right", 9, 4, false},
		{"past bottom", 4, 17, false},
		{"on floor", 4, 16, true},
		{"above top", 4, -1, true}, // rows above the grid are ignored
	}

	for _, c := range cases {
		if got := g.CanPlace(p.At(c.col, c.row)); got != c.want {
			t.Errorf("%s: CanPlace(%d,%d) = %v, want %v", c.name, c.col, c.row, got, c.want)
		}
	}
}

func TestCanPlaceCollision(t *testing.T) {
	g := NewGrid(10, 18, false)
	fillCell(g, 4, 10)

	p := Piece{Shape: ShapeFor(KindO), Rot: Rot0}
	if g.CanPlace(p.At(4, 9)) {
		t.Error("expected collision with filled cell")
	}
	if g.CanPlace(p.At(4, 10)) {
		t.Error("expected collision with filled cell")
	}
	if !g.CanPlace(p.At(5, 10)) {
		t.Error("expected adjacent placement to be legal")
	}
}

func TestLockWritesGlyphs(t *testing.T) {
	g := NewGrid(10, 18, false)
	p := Piece{
		Shape:  ShapeFor(KindO),
		Rot:    Rot0,
		Labels: []string{"goza"},
	}
	g.Lock(p.At(0, 16))

	for _, pos := range []Offset{{16, 0}, {16, 1}, {17, 0}, {17, 1}} {
		cell := g.Cell(pos.Col, pos.Row)
		if !cell.Filled {
			t.Errorf("cell (%d,%d) not filled after lock", pos.Col, pos.Row)
		}
		if cell.Glyph == 0 {
			t.Errorf("cell (%d,%d) missing glyph", pos.Col, pos.Row)
		}
	}
}

func TestLineClearDisabledByDefault(t *testing.T) {
	g := NewGrid(4, 6, false)
	fillRowExcept(g, 5, 0, 1)

	p := Piece{Shape: ShapeFor(KindO), Rot: Rot0}
	cleared := g.Lock(p.At(0, 4))
	if len(cleared) != 0 {
		t.Errorf("clearing disabled but %d rows cleared", len(cleared))
	}
	if !g.Cell(0, 5).Filled {
		t.Error("bottom row should remain filled")
	}
}

func TestLineClearCollapsesAndShifts(t *testing.T) {
	g := NewGrid(4, 6, true)
	fillRowExcept(g, 5, 0, 1)
	fillRowExcept(g, 4, 0, 1)
	fillCell(g, 3, 3) // sits above the cleared rows, must shift down

	p := Piece{Shape: ShapeFor(KindO), Rot: Rot0}
	cleared := g.Lock(p.At(0, 4))
	if len(cleared) != 2 {
		t.Fatalf("expected 2 cleared rows, got %d", len(cleared))
	}

	if !g.Cell(3, 5).Filled {
		t.Error("cell above cleared rows did not shift to the floor")
	}
	for col := 0; col < 4; col++ {
		for row := 0; row < 5; row++ {
			if g.Cell(col, row).Filled {
				t.Errorf("cell (%d,%d) unexpectedly filled after clear", col, row)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	g := NewGrid(10, 18, false)
	if g.IsTerminal() {
		t.Error("empty grid reported terminal")
	}
	fillCell(g, 3, 1)
	if g.IsTerminal() {
		t.Error("filled row 1 reported terminal")
	}
	fillCell(g, 3, 0)
	if !g.IsTerminal() {
		t.Error("filled spawn row not reported terminal")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(10, 18, false)
	fillCell(g, 2, 9)

	c := g.Clone()
	fillCell(c, 5, 5)

	if g.Cell(5, 5).Filled {
		t.Error("mutating the clone changed the original")
	}
	if !c.Cell(2, 9).Filled {
		t.Error("clone lost original content")
	}
}

func TestColumnHeights(t *testing.T) {
	g := NewGrid(4, 6, false)
	fillCell(g, 0, 3)
	fillCell(g, 0, 5)
	fillCell(g, 2, 5)

	want := []int{3, 6, 5, 6}
	got := g.ColumnHeights()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d height = %d, want %d", i, got[i], want[i])
		}
	}
}
