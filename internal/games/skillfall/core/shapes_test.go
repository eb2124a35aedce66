package core

import (
	"testing"
)

func TestShapeClasses(t *testing.T) {
	cases := []struct {
		kind Kind
		want Class
	}{
		{KindI, ClassLine},
		{KindO, ClassSquare},
		{KindT, ClassTee},
		{KindS, ClassDiagonal},
		{KindZ, ClassDiagonal},
		{KindJ, ClassHook},
		{KindL, ClassHook},
	}

	for _, c := range cases {
		if got := c.kind.Class(); got != c.want {
			t.Errorf("%v.Class() = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestShapeCellCounts(t *testing.T) {
	for _, k := range AllKinds() {
		if got := ShapeFor(k).CellCount(); got != 4 {
			t.Errorf("%v has %d cells, want 4", k, got)
		}
	}
}

func TestAnchorCounts(t *testing.T) {
	for _, k := range AllKinds() {
		want := 1
		if k == KindS || k == KindZ {
			want = 2
		}
		if got := ShapeFor(k).AnchorCount(); got != want {
			t.Errorf("%v has %d anchors, want %d", k, got, want)
		}
	}
}

func TestAnchorsLandOnFilledCells(t *testing.T) {
	for _, k := range AllKinds() {
		shape := ShapeFor(k)
		for r := Rotation(0); r < NumRotations; r++ {
			grid := shape.Grid(r)
			for _, a := range shape.Anchors(r) {
				if a.Row < 0 || a.Row >= len(grid) || a.Col < 0 || a.Col >= len(grid[0]) {
					t.Fatalf("%v rot %d: anchor %v out of bounds", k, r, a)
				}
				if !grid[a.Row][a.Col] {
					t.Errorf("%v rot %d: anchor %v on empty cell", k, r, a)
				}
			}
		}
	}
}

func TestRotationDimensionsSwap(t *testing.T) {
	for _, k := range AllKinds() {
		shape := ShapeFor(k)
		g0 := shape.Grid(Rot0)
		g90 := shape.Grid(Rot90)
		if len(g90) != len(g0[0]) || len(g90[0]) != len(g0) {
			t.Errorf("%v: rot90 is %dx%d, want %dx%d",
				k, len(g90), len(g90[0]), len(g0[0]), len(g0))
		}
	}
}

func TestFullTurnRestoresMatrix(t *testing.T) {
	for _, k := range AllKinds() {
		shape := ShapeFor(k)
		g0 := shape.Grid(Rot0)
		g360 := rotateCW(rotateCW(rotateCW(rotateCW(copyGrid(g0)))))
		for r := range g0 {
			for c := range g0[r] {
				if g0[r][c] != g360[r][c] {
					t.Fatalf("%v: four quarter-turns did not restore the matrix", k)
				}
			}
		}
	}
}

func TestSquareRotationIsNoOp(t *testing.T) {
	p := Piece{Shape: ShapeFor(KindO), Rot: Rot0, Labels: []string{"x"}}
	if got := p.Rotated(); got.Rot != Rot0 {
		t.Errorf("rotating the square changed rotation to %d", got.Rot)
	}
}

func TestPieceGlyphsCoverLabels(t *testing.T) {
	p := Piece{
		Shape:  ShapeFor(KindS),
		Rot:    Rot0,
		Labels: []string{"ab", "cd"},
	}
	glyphs := p.Glyphs()
	if len(glyphs) != 4 {
		t.Fatalf("expected 4 glyph cells, got %d", len(glyphs))
	}
	seen := map[rune]bool{}
	for _, r := range glyphs {
		seen[r] = true
	}
	for _, want := range "abcd" {
		if !seen[want] {
			t.Errorf("glyphs missing %q", want)
		}
	}
}

func copyGrid(g [][]bool) [][]bool {
	out := make([][]bool, len(g))
	for i := range g {
		out[i] = append([]bool(nil), g[i]...)
	}
	return out
}
