package core

import (
	"math/rand"
	"testing"
)

var genPool = []string{
	"data analytics", "unit testing", "code review", "system design",
	"error handling", "load balancing", "query tuning", "api design",
	"pair programming", "capacity planning", "incident response",
	"schema migration", "cache invalidation", "log aggregation",
	"chaos engineering", "release management", "threat modeling",
	"service discovery", "dependency injection", "garbage collection",
}

func newTestGenerator(seed int64, mode Mode) *Generator {
	sched := NewLabelScheduler()
	sched.Configure(genPool, nil)
	return NewGenerator(rand.New(rand.NewSource(seed)), sched, mode, QueueDepth)
}

func TestNoClassRepeatInShapeWindow(t *testing.T) {
	g := newTestGenerator(1, ModeClassic)

	var classes []Class
	for i := 0; i < 30; i++ {
		classes = append(classes, g.Next().Shape.Kind.Class())
	}

	for i := range classes {
		for j := i + 1; j <= i+ShapeGap && j < len(classes); j++ {
			if classes[i] == classes[j] {
				t.Fatalf("class %v repeats at positions %d and %d within the gap window",
					classes[i], i, j)
			}
		}
	}
}

func TestSteadyModeExcludesDiagonals(t *testing.T) {
	g := newTestGenerator(2, ModeSteady)

	for i := 0; i < 40; i++ {
		p := g.Next()
		if p.Shape.Kind == KindS || p.Shape.Kind == KindZ {
			t.Fatalf("steady mode generated a diagonal shape %v at piece %d", p.Shape.Kind, i)
		}
	}
}

func TestSquareAlwaysSpawnsUnrotated(t *testing.T) {
	g := newTestGenerator(3, ModeClassic)

	squares := 0
	for i := 0; i < 60; i++ {
		p := g.Next()
		if p.Shape.Kind != KindO {
			continue
		}
		squares++
		if p.Rot != Rot0 {
			t.Fatalf("square piece %d generated with rotation %v", i, p.Rot)
		}
	}
	if squares == 0 {
		t.Fatal("no square pieces in 60 draws")
	}
}

func TestLabelsMatchAnchorCount(t *testing.T) {
	g := newTestGenerator(4, ModeClassic)

	for i := 0; i < 30; i++ {
		p := g.Next()
		if len(p.Labels) != p.Shape.AnchorCount() {
			t.Fatalf("piece %d (%v): %d labels for %d anchors",
				i, p.Shape.Kind, len(p.Labels), p.Shape.AnchorCount())
		}
		if len(p.Origins) == 0 {
			t.Fatalf("piece %d has no origin labels", i)
		}
	}
}

func TestPeekIsNonConsuming(t *testing.T) {
	g := newTestGenerator(5, ModeClassic)

	ahead := g.Peek(QueueDepth)
	if len(ahead) != QueueDepth {
		t.Fatalf("Peek returned %d pieces, want %d", len(ahead), QueueDepth)
	}
	if got := g.Peek(100); len(got) != QueueDepth {
		t.Errorf("oversized Peek returned %d pieces, want %d", len(got), QueueDepth)
	}

	next := g.Next()
	if next.Shape.Kind != ahead[0].Shape.Kind || next.Rot != ahead[0].Rot {
		t.Error("Next did not return the first peeked piece")
	}
}

func TestExchangeReplacesShapeAndKeepsLabels(t *testing.T) {
	g := newTestGenerator(6, ModeClassic)
	grid := NewGrid(10, 18, false)

	p := Piece{
		Shape:   ShapeFor(KindI),
		Rot:     Rot0,
		Col:     3,
		Row:     5,
		Labels:  []string{"data analytics"},
		Origins: []string{"data analytics"},
	}

	got, ok := g.Exchange(p, grid)
	if !ok {
		t.Fatal("exchange failed on an empty grid")
	}
	if got.Shape.Kind == p.Shape.Kind && got.Rot == p.Rot {
		t.Error("exchange returned the same shape and rotation")
	}
	if got.Col != p.Col || got.Row != p.Row {
		t.Error("exchange moved the piece")
	}
	if !grid.CanPlace(got) {
		t.Error("exchanged piece does not fit at its position")
	}

	switch len(got.Labels) {
	case 1:
		if got.Labels[0] != "data analytics" {
			t.Errorf("single label = %q, want original", got.Labels[0])
		}
	case 2:
		if got.Labels[0] != "data" || got.Labels[1] != "analytics" {
			t.Errorf("split labels = %v, want [data analytics] halves", got.Labels)
		}
	default:
		t.Errorf("exchange produced %d labels", len(got.Labels))
	}
}

func TestExchangeNoOpWhenNothingFits(t *testing.T) {
	g := newTestGenerator(7, ModeClassic)
	grid := NewGrid(10, 18, false)

	p := Piece{
		Shape:   ShapeFor(KindO),
		Rot:     Rot0,
		Col:     0,
		Row:     16,
		Labels:  []string{"unit testing"},
		Origins: []string{"unit testing"},
	}

	// Fill every cell except the square's own footprint: only another
	// square would fit there, and the square never changes rotation.
	free := map[[2]int]bool{}
	for _, c := range pieceCells(p) {
		free[[2]int{c.Row, c.Col}] = true
	}
	for row := 0; row < 18; row++ {
		for col := 0; col < 10; col++ {
			if !free[[2]int{row, col}] {
				fillCell(grid, col, row)
			}
		}
	}

	got, ok := g.Exchange(p, grid)
	if ok {
		t.Fatal("exchange reported success with no fitting replacement")
	}
	if got.Shape.Kind != KindO || got.Rot != Rot0 || len(got.Labels) != 1 {
		t.Error("failed exchange must leave the piece unchanged")
	}
}
