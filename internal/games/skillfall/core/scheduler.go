package core

import (
	"strings"
)

// LabelGap is the fairness window: no label repeats within the last
// LabelGap assignments unless too few eligible labels remain.
const LabelGap = 4

// SchedulerState is the complete mutable state of the label scheduler.
// It is owned by a single LabelScheduler instance rather than living in
// package globals, which keeps it resettable and testable.
//
// Lifecycle sets, mutually exclusive roles over the pool:
//   - used: assigned to some piece since the last full-pool cycle reset
//   - locked: physically present on the board right now
//   - pending: assigned to a queued or falling piece, not yet locked
//
// Invariants: pending is a subset of used; pending and locked are
// disjoint. A label stays blocked while locked on the board regardless
// of cycle resets; only the used flag resets with the cycle.
type SchedulerState struct {
	pool      []string
	originals map[string]string // normalized form -> original pool label
	noRepeat  map[string]bool
	used      map[string]bool
	locked    map[string]bool
	pending   map[string]bool
	recent    []string // last LabelGap assignments, oldest first
	cursor    int
}

// LabelScheduler assigns labels to generated pieces under the fairness,
// no-repeat, and anti-adjacency constraints. All methods degrade
// gracefully under scarcity instead of stalling: strict fairness is
// preferred but explicitly sacrificed when the pool runs dry.
type LabelScheduler struct {
	st SchedulerState
}

// NewLabelScheduler creates a scheduler with an empty pool.
func NewLabelScheduler() *LabelScheduler {
	s := &LabelScheduler{}
	s.Configure(nil, nil)
	return s
}

// Configure installs the label pool and the no-repeat subset, replacing
// all previous state. Pool order is preserved: externally supplied lists
// are scanned sequentially, which keeps assignment predictable for
// callers that injected their own labels.
func (s *LabelScheduler) Configure(pool, noRepeat []string) {
	s.st = SchedulerState{
		pool:      append([]string(nil), pool...),
		originals: make(map[string]string, len(pool)),
		noRepeat:  make(map[string]bool, len(noRepeat)),
		used:      make(map[string]bool),
		locked:    make(map[string]bool),
		pending:   make(map[string]bool),
	}
	for _, l := range pool {
		s.st.originals[normalizeLabel(l)] = l
	}
	for _, l := range noRepeat {
		s.st.noRepeat[l] = true
	}
}

// Reset clears all lifecycle state for a new session, keeping the pool.
func (s *LabelScheduler) Reset() {
	s.st.used = make(map[string]bool)
	s.st.locked = make(map[string]bool)
	s.st.pending = make(map[string]bool)
	s.st.recent = nil
	s.st.cursor = 0
}

// PoolSize returns the number of labels in the pool.
func (s *LabelScheduler) PoolSize() int {
	return len(s.st.pool)
}

// scanOptions control how permissive a single scan pass is.
type scanOptions struct {
	allowLocked  bool // reuse labels currently locked on the board
	ignoreWindow bool // disregard the recent-assignment fairness window
}

// NextSingle assigns one label for a single-anchor piece. It never
// stalls: after the strict scan and a cycle reset it walks progressively
// looser fallback passes until one succeeds. Returns false only when the
// pool is empty.
func (s *LabelScheduler) NextSingle() (string, bool) {
	if len(s.st.pool) == 0 {
		return "", false
	}
	if idx, ok := s.scan(nil, scanOptions{}); ok {
		return s.take(idx), true
	}
	s.cycleReset()
	if idx, ok := s.scan(nil, scanOptions{}); ok {
		return s.take(idx), true
	}
	// Reuse a label that is locked on the board.
	if idx, ok := s.scan(nil, scanOptions{allowLocked: true}); ok {
		return s.take(idx), true
	}
	// Ignore the fairness window as well.
	if idx, ok := s.scan(nil, scanOptions{allowLocked: true, ignoreWindow: true}); ok {
		return s.take(idx), true
	}
	// Last resort: the pool's first label, whatever its state.
	return s.take(0), true
}

// TrySingle assigns one label using only the strict scan and a cycle
// reset, without the looser fallback passes.
func (s *LabelScheduler) TrySingle() (string, bool) {
	if idx, ok := s.scan(nil, scanOptions{}); ok {
		return s.take(idx), true
	}
	s.cycleReset()
	if idx, ok := s.scan(nil, scanOptions{}); ok {
		return s.take(idx), true
	}
	return "", false
}

// TryPair assigns two independent labels for a two-anchor piece whose
// splittable search came up empty. Both labels are taken or neither is.
func (s *LabelScheduler) TryPair() (string, string, bool) {
	if s.eligibleCount(nil) < 2 {
		s.cycleReset()
	}
	if s.eligibleCount(nil) < 2 {
		return "", "", false
	}
	a, _ := s.TrySingle()
	b, _ := s.TrySingle()
	return a, b, true
}

// NextSplittable finds a multi-word label for a two-anchor piece and
// returns its two halves. Only the strict scan and a cycle reset are
// tried; scarcity is the generator's problem (it falls back to a label
// pair, then to rerolling the shape).
func (s *LabelScheduler) NextSplittable() (string, string, bool) {
	splittable := func(l string) bool {
		_, _, ok := SplitLabel(l)
		return ok
	}
	idx, ok := s.scan(splittable, scanOptions{})
	if !ok {
		s.cycleReset()
		idx, ok = s.scan(splittable, scanOptions{})
	}
	if !ok {
		return "", "", false
	}
	left, right, _ := SplitLabel(s.take(idx))
	return left, right, true
}

// MarkLocked transitions labels from pending to locked when their piece
// locks onto the board.
func (s *LabelScheduler) MarkLocked(origins []string) {
	for _, l := range origins {
		delete(s.st.pending, l)
		s.st.locked[l] = true
	}
}

// MarkSkipped drops labels from pending when their piece is skipped.
// The used flag is deliberately left set: once shown, a label stays
// consumed for the rest of the cycle.
func (s *LabelScheduler) MarkSkipped(origins []string) {
	for _, l := range origins {
		delete(s.st.pending, l)
	}
}

// Unlock releases labels whose board cells were removed by line clears.
// They remain used until the next cycle reset.
func (s *LabelScheduler) Unlock(origins []string) {
	for _, l := range origins {
		delete(s.st.locked, l)
	}
}

// Rejoin merges two display labels back into one, recognizing the
// original pool label (hyphenation included) when the halves came from a
// split. Used by the exchange operation when the anchor count shrinks.
func (s *LabelScheduler) Rejoin(a, b string) string {
	joined := a + " " + b
	if orig, ok := s.st.originals[normalizeLabel(joined)]; ok {
		return orig
	}
	return joined
}

// scan walks the pool forward from the cursor, wrapping around, and
// returns the index of the first eligible label. Labels failing the
// require predicate are skipped without being treated as consumed. The
// fairness window is relaxed automatically when fewer than LabelGap+1
// distinct eligible labels remain, which would otherwise starve the scan.
func (s *LabelScheduler) scan(require func(string) bool, opts scanOptions) (int, bool) {
	n := len(s.st.pool)
	if n == 0 {
		return 0, false
	}

	useWindow := !opts.ignoreWindow
	if useWindow && s.eligibleCountOpts(require, opts) < LabelGap+1 {
		useWindow = false
	}

	for i := 0; i < n; i++ {
		idx := (s.st.cursor + i) % n
		l := s.st.pool[idx]
		if require != nil && !require(l) {
			continue
		}
		if !s.eligible(l, opts) {
			continue
		}
		if useWindow && s.inWindow(l) {
			continue
		}
		return idx, true
	}
	return 0, false
}

// eligible applies the lifecycle availability rules for one scan pass.
// Labels in the no-repeat subset never qualify for the relaxed
// locked-reuse pass: they are hard once-per-cycle.
func (s *LabelScheduler) eligible(l string, opts scanOptions) bool {
	if s.st.locked[l] {
		if !opts.allowLocked || s.st.noRepeat[l] {
			return false
		}
		return true
	}
	return !s.st.used[l]
}

// eligibleCount counts distinct eligible labels under the strict rules.
func (s *LabelScheduler) eligibleCount(require func(string) bool) int {
	return s.eligibleCountOpts(require, scanOptions{})
}

func (s *LabelScheduler) eligibleCountOpts(require func(string) bool, opts scanOptions) int {
	count := 0
	for _, l := range s.st.pool {
		if require != nil && !require(l) {
			continue
		}
		if s.eligible(l, opts) {
			count++
		}
	}
	return count
}

func (s *LabelScheduler) inWindow(l string) bool {
	for _, r := range s.st.recent {
		if r == l {
			return true
		}
	}
	return false
}

// take consumes the label at idx: marks it used and pending, records it
// in the recent window, and advances the cursor just past it. A label
// that is already locked on the board (relaxed-pass reuse) is not marked
// pending, keeping pending and locked disjoint.
func (s *LabelScheduler) take(idx int) string {
	l := s.st.pool[idx]
	s.st.used[l] = true
	if !s.st.locked[l] {
		s.st.pending[l] = true
	}
	s.st.recent = append(s.st.recent, l)
	if len(s.st.recent) > LabelGap {
		s.st.recent = s.st.recent[1:]
	}
	s.st.cursor = (idx + 1) % len(s.st.pool)
	return l
}

// cycleReset starts a new cycle once the pool is exhausted: used flags
// reset for every label except those still pending (queued or falling
// pieces keep their claim), locked labels stay blocked while physically
// on the board, and assignment resumes from the top of the pool.
func (s *LabelScheduler) cycleReset() {
	s.st.used = make(map[string]bool)
	for l := range s.st.pending {
		s.st.used[l] = true
	}
	s.st.cursor = 0
}

// SplitLabel divides a multi-word label into two halves by word count,
// splitting after ceil(words/2). Hyphens are normalized to spaces before
// splitting. Returns false for single-word labels.
func SplitLabel(label string) (string, string, bool) {
	words := strings.Fields(normalizeLabel(label))
	if len(words) < 2 {
		return "", "", false
	}
	cut := (len(words) + 1) / 2
	return strings.Join(words[:cut], " "), strings.Join(words[cut:], " "), true
}

// normalizeLabel converts hyphens to spaces and collapses whitespace.
func normalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), " ")
}
