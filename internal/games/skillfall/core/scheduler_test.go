package core

import (
	"testing"
)

func newScheduler(pool ...string) *LabelScheduler {
	s := NewLabelScheduler()
	s.Configure(pool, nil)
	return s
}

func checkLifecycleInvariants(t *testing.T, s *LabelScheduler) {
	t.Helper()
	for l := range s.st.pending {
		if !s.st.used[l] {
			t.Errorf("pending label %q is not marked used", l)
		}
		if s.st.locked[l] {
			t.Errorf("label %q is both pending and locked", l)
		}
	}
}

func TestSequentialAssignmentOrder(t *testing.T) {
	s := newScheduler("alpha", "beta", "gamma", "delta", "epsilon", "zeta")

	want := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}
	for i, w := range want {
		got, ok := s.NextSingle()
		if !ok {
			t.Fatalf("assignment %d failed", i)
		}
		if got != w {
			t.Errorf("assignment %d = %q, want %q", i, got, w)
		}
		checkLifecycleInvariants(t, s)
	}
}

func TestNoLabelRepeatsWithinCycle(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	s := newScheduler(pool...)

	seen := make(map[string]bool)
	for range pool {
		l, _ := s.NextSingle()
		if seen[l] {
			t.Fatalf("label %q assigned twice within one cycle", l)
		}
		seen[l] = true
	}
}

func TestCycleResetAfterExhaustion(t *testing.T) {
	s := newScheduler("a", "b", "c", "d", "e", "f")

	first := make([]string, 6)
	for i := range first {
		first[i], _ = s.NextSingle()
	}
	// Simulate the pieces locking and their rows clearing so labels
	// become assignable again next cycle.
	s.MarkLocked(first)
	s.Unlock(first)

	l, ok := s.NextSingle()
	if !ok {
		t.Fatal("scheduler stalled after pool exhaustion")
	}
	if l != "a" {
		t.Errorf("after cycle reset assignment resumed at %q, want %q", l, "a")
	}
}

func TestLockedLabelSurvivesCycleReset(t *testing.T) {
	s := newScheduler("a", "b", "c")

	a, _ := s.NextSingle()
	s.MarkLocked([]string{a}) // "a" sits on the board
	s.MarkSkipped([]string{mustNext(t, s)})
	s.MarkSkipped([]string{mustNext(t, s)})

	// Pool exhausted; the reset frees b and c but not the locked a.
	got := map[string]bool{}
	got[mustNext(t, s)] = true
	got[mustNext(t, s)] = true
	if got["a"] {
		t.Error("locked label was reassigned after cycle reset")
	}
	if !got["b"] || !got["c"] {
		t.Errorf("expected b and c after reset, got %v", got)
	}
	checkLifecycleInvariants(t, s)
}

func TestSkipKeepsLabelUsed(t *testing.T) {
	s := newScheduler("a", "b", "c")

	a, _ := s.NextSingle()
	s.MarkSkipped([]string{a})
	if s.st.pending[a] {
		t.Error("skipped label still pending")
	}
	if !s.st.used[a] {
		t.Error("skipped label lost its used flag")
	}

	b, _ := s.NextSingle()
	if b == a {
		t.Error("skipped label reassigned within the same cycle")
	}
}

func TestFairnessWindowBlocksRecent(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	s := newScheduler(pool...)

	var recent []string
	for i := 0; i < len(pool); i++ {
		l := mustNext(t, s)
		for _, r := range recent {
			if r == l {
				t.Fatalf("label %q repeated within the fairness window", l)
			}
		}
		recent = append(recent, l)
		if len(recent) > LabelGap {
			recent = recent[1:]
		}
	}
}

func TestFairnessWindowRelaxesUnderScarcity(t *testing.T) {
	s := newScheduler("a", "b")

	// With only two eligible labels and a window of four, the window
	// constraint must relax rather than stall generation.
	for i := 0; i < 2; i++ {
		if _, ok := s.NextSingle(); !ok {
			t.Fatalf("assignment %d stalled", i)
		}
	}
}

func TestReuseLockedLabelAsLastResort(t *testing.T) {
	s := newScheduler("a", "b", "c")

	labels := []string{mustNext(t, s), mustNext(t, s), mustNext(t, s)}
	s.MarkLocked(labels) // everything is on the board

	l, ok := s.NextSingle()
	if !ok {
		t.Fatal("scheduler stalled with all labels locked")
	}
	if s.st.pending[l] {
		t.Error("reused locked label must not become pending")
	}
	checkLifecycleInvariants(t, s)
}

func TestSplitLabel(t *testing.T) {
	cases := []struct {
		label       string
		left, right string
		ok          bool
	}{
		{"data analytics", "data", "analytics", true},
		{"problem-solving", "problem", "solving", true},
		{"join the dots today please", "join the dots", "today please", true},
		{"machine learning ops", "machine learning", "ops", true},
		{"golang", "", "", false},
	}

	for _, c := range cases {
		left, right, ok := SplitLabel(c.label)
		if ok != c.ok || left != c.left || right != c.right {
			t.Errorf("SplitLabel(%q) = (%q, %q, %v), want (%q, %q, %v)",
				c.label, left, right, ok, c.left, c.right, c.ok)
		}
	}
}

func TestNextSplittablePrefersMultiWord(t *testing.T) {
	s := newScheduler("golang", "data analytics", "sql")

	left, right, ok := s.NextSplittable()
	if !ok {
		t.Fatal("expected a splittable label")
	}
	if left != "data" || right != "analytics" {
		t.Errorf("split = (%q, %q), want (data, analytics)", left, right)
	}
	// The single-word labels were skipped without being consumed.
	if s.st.used["golang"] || s.st.used["sql"] {
		t.Error("skipped labels were marked used")
	}
}

func TestNextSplittableSingleLabelPool(t *testing.T) {
	s := newScheduler("data analytics")

	left, right, ok := s.NextSplittable()
	if !ok || left != "data" || right != "analytics" {
		t.Fatalf("got (%q, %q, %v), want (data, analytics, true)", left, right, ok)
	}

	if _, _, ok := s.NextSplittable(); ok {
		t.Error("pending label should not be splittable again")
	}
}

func TestRejoinRecognizesOriginal(t *testing.T) {
	s := newScheduler("problem-solving", "cloud native")

	if got := s.Rejoin("problem", "solving"); got != "problem-solving" {
		t.Errorf("Rejoin = %q, want the original hyphenated label", got)
	}
	if got := s.Rejoin("cloud", "native"); got != "cloud native" {
		t.Errorf("Rejoin = %q, want %q", got, "cloud native")
	}
	if got := s.Rejoin("totally", "new"); got != "totally new" {
		t.Errorf("Rejoin = %q, want plain join for unknown labels", got)
	}
}

func TestNoRepeatSubsetExcludedFromLockedReuse(t *testing.T) {
	s := NewLabelScheduler()
	s.Configure([]string{"a", "b"}, []string{"a"})

	labels := []string{mustNext(t, s), mustNext(t, s)}
	s.MarkLocked(labels)

	// Only "b" may be reused while locked; "a" is hard once-per-cycle.
	l, ok := s.NextSingle()
	if !ok {
		t.Fatal("scheduler stalled")
	}
	if l != "b" {
		t.Errorf("reused %q, want the non-no-repeat label %q", l, "b")
	}
}

func TestTryPairTakesBothOrNeither(t *testing.T) {
	s := newScheduler("a", "b", "c")

	a, b, ok := s.TryPair()
	if !ok || a == b {
		t.Fatalf("TryPair = (%q, %q, %v), want two distinct labels", a, b, ok)
	}

	// One eligible label left: pair must fail without consuming it.
	_, _, ok = s.TryPair()
	if ok {
		t.Error("TryPair succeeded with a single eligible label")
	}
	if l, ok := s.TrySingle(); !ok || l != "c" {
		t.Errorf("remaining label = (%q, %v), want (c, true)", l, ok)
	}
}

func mustNext(t *testing.T, s *LabelScheduler) string {
	t.Helper()
	l, ok := s.NextSingle()
	if !ok {
		t.Fatal("NextSingle failed")
	}
	return l
}
