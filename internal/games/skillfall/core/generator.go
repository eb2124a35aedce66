package core

import (
	"math/rand"
)

// Mode selects which shapes the normal generation path may draw.
type Mode string

const (
	// ModeClassic draws from all seven shapes.
	ModeClassic Mode = "classic"
	// ModeSteady excludes the two diagonal shapes (S and Z) from normal
	// generation. They can still appear through an exchange.
	ModeSteady Mode = "steady"
)

const (
	// ShapeGap is the sliding window over generated pieces within which
	// no similarity class may repeat.
	ShapeGap = 3

	// QueueDepth is the look-ahead queue length.
	QueueDepth = 7

	// MaxRerollAttempts bounds shape redraws when label constraints
	// cannot be met, and exchange draws. After the bound, any shape is
	// accepted to guarantee forward progress.
	MaxRerollAttempts = 10
)

// Generator produces the endless piece sequence: shapes filtered by mode
// and similarity gap, rotations randomized, labels attached through the
// scheduler. It owns the look-ahead queue.
type Generator struct {
	rng   *rand.Rand
	sched *LabelScheduler
	mode  Mode
	depth int

	recent []Class // similarity classes of the last ShapeGap pieces
	queue  []Piece
}

// NewGenerator creates a generator over the given scheduler.
func NewGenerator(rng *rand.Rand, sched *LabelScheduler, mode Mode, depth int) *Generator {
	if depth <= 0 {
		depth = QueueDepth
	}
	return &Generator{rng: rng, sched: sched, mode: mode, depth: depth}
}

// Reset clears the queue and the similarity history.
func (g *Generator) Reset() {
	g.recent = nil
	g.queue = nil
}

// Next returns the next piece, refilling the look-ahead queue.
func (g *Generator) Next() Piece {
	g.refill()
	p := g.queue[0]
	g.queue = g.queue[1:]
	g.refill()
	return p
}

// Peek returns up to n upcoming pieces without consuming them.
func (g *Generator) Peek(n int) []Piece {
	g.refill()
	if n > len(g.queue) {
		n = len(g.queue)
	}
	return append([]Piece(nil), g.queue[:n]...)
}

func (g *Generator) refill() {
	for len(g.queue) < g.depth {
		g.queue = append(g.queue, g.newPiece())
	}
}

// newPiece draws a shape and rotation, attaches labels, and records the
// similarity class. When a two-anchor shape cannot get labels (no
// splittable label and no spare pair), the shape is rerolled a bounded
// number of times before anything goes.
func (g *Generator) newPiece() Piece {
	for attempt := 0; attempt < MaxRerollAttempts; attempt++ {
		kind := g.drawKind()
		shape := ShapeFor(kind)
		rot := g.drawRotation(kind)

		labels, origins, ok := g.drawLabels(shape)
		if !ok {
			continue
		}

		g.recordClass(kind.Class())
		return Piece{Shape: shape, Rot: rot, Labels: labels, Origins: origins}
	}

	// Last resort: accept whatever comes up, with never-stall labels.
	kind := g.drawKind()
	shape := ShapeFor(kind)
	rot := g.drawRotation(kind)
	labels, origins := g.forceLabels(shape)
	g.recordClass(kind.Class())
	return Piece{Shape: shape, Rot: rot, Labels: labels, Origins: origins}
}

// drawKind picks a shape kind respecting the mode filter and the
// similarity-gap window. If the window filter empties the candidate set,
// it is dropped rather than stalling generation.
func (g *Generator) drawKind() Kind {
	candidates := g.modeKinds()

	var filtered []Kind
	for _, k := range candidates {
		if !g.classRecent(k.Class()) {
			filtered = append(filtered, k)
		}
	}
	if len(filtered) == 0 {
		filtered = candidates
	}
	return filtered[g.rng.Intn(len(filtered))]
}

func (g *Generator) modeKinds() []Kind {
	if g.mode != ModeSteady {
		return AllKinds()
	}
	var kinds []Kind
	for _, k := range AllKinds() {
		if k.Class() != ClassDiagonal {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// drawRotation picks a uniformly random rotation. The square shape is
// pinned to 0: rotating it is mechanically meaningless.
func (g *Generator) drawRotation(k Kind) Rotation {
	if k == KindO {
		return Rot0
	}
	return Rotation(g.rng.Intn(NumRotations))
}

// drawLabels attaches labels to a shape. Two-anchor shapes prefer a
// single splittable label, fall back to two independent labels, and
// report failure (triggering a shape reroll) when neither is available.
func (g *Generator) drawLabels(shape *Shape) (labels, origins []string, ok bool) {
	if shape.AnchorCount() == 2 {
		if left, right, found := g.sched.NextSplittable(); found {
			return []string{left, right}, []string{g.sched.Rejoin(left, right)}, true
		}
		if a, b, found := g.sched.TryPair(); found {
			return []string{a, b}, []string{a, b}, true
		}
		return nil, nil, false
	}

	label, found := g.sched.NextSingle()
	if !found {
		return nil, nil, false
	}
	return []string{label}, []string{label}, true
}

// forceLabels is the accept-anything path after reroll attempts run out.
func (g *Generator) forceLabels(shape *Shape) (labels, origins []string) {
	a, _ := g.sched.NextSingle()
	if shape.AnchorCount() == 2 {
		if left, right, ok := SplitLabel(a); ok {
			return []string{left, right}, []string{a}
		}
		b, _ := g.sched.NextSingle()
		return []string{a, b}, []string{a, b}
	}
	return []string{a}, []string{a}
}

// recordClass appends a similarity class to the recent window, evicting
// the oldest entry beyond ShapeGap. Exchange draws never pass through
// here: the gap constraint applies to normal generation only.
func (g *Generator) recordClass(c Class) {
	g.recent = append(g.recent, c)
	if len(g.recent) > ShapeGap {
		g.recent = g.recent[1:]
	}
}

func (g *Generator) classRecent(c Class) bool {
	for _, r := range g.recent {
		if r == c {
			return true
		}
	}
	return false
}

// Exchange replaces the piece's shape and rotation with a fresh
// unfiltered draw, preserving its labels and adapting them when the
// anchor count changes. The replacement must fit the grid at the piece's
// current position; after bounded failed draws the piece is returned
// unchanged and the operation is a visible no-op.
func (g *Generator) Exchange(p Piece, grid *Grid) (Piece, bool) {
	for attempt := 0; attempt < MaxRerollAttempts; attempt++ {
		kind := AllKinds()[g.rng.Intn(NumKinds)]
		rot := g.drawRotation(kind)
		if kind == p.Shape.Kind && rot == p.Rot {
			continue
		}

		cand := p.WithShape(ShapeFor(kind), rot)
		labels, ok := adaptLabels(p.Labels, cand.Shape.AnchorCount(), g.sched)
		if !ok {
			continue
		}
		cand.Labels = labels

		if grid.CanPlace(cand) {
			return cand, true
		}
	}
	return p, false
}

// adaptLabels reshapes a label list to a new anchor count: a single
// label splits into two halves, two labels rejoin into one. A
// single-word label cannot feed a two-anchor shape, which counts as a
// failed draw.
func adaptLabels(labels []string, anchors int, sched *LabelScheduler) ([]string, bool) {
	if len(labels) == anchors {
		return labels, true
	}
	if anchors == 2 && len(labels) == 1 {
		left, right, ok := SplitLabel(labels[0])
		if !ok {
			return nil, false
		}
		return []string{left, right}, true
	}
	if anchors == 1 && len(labels) == 2 {
		return []string{sched.Rejoin(labels[0], labels[1])}, true
	}
	return labels, true
}
