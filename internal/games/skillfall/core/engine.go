package core

import (
	"math/rand"
)

// Config carries the engine's tunable parameters.
type Config struct {
	Width, Height int
	QueueDepth    int
	Mode          Mode
	LineClear     bool
	Weights       Weights
}

// DefaultConfig returns the reference engine configuration.
func DefaultConfig() Config {
	return Config{
		Width:      10,
		Height:     18,
		QueueDepth: QueueDepth,
		Mode:       ModeClassic,
		LineClear:  false,
		Weights:    DefaultWeights(),
	}
}

// lockedRecord tracks where a locked piece's cells sit so line clears
// can release its labels back to the scheduler.
type lockedRecord struct {
	origins []string
	cells   []Offset // grid coordinates
}

// Engine is the single-threaded game core: one logical game loop owns
// all of its state, every call is a synchronous in-memory mutation or
// query, and nothing here blocks or performs I/O.
type Engine struct {
	cfg   Config
	rng   *rand.Rand
	grid  *Grid
	sched *LabelScheduler
	gen   *Generator
	eval  *Evaluator

	current Piece
	active  bool
	over    bool

	locked []lockedRecord

	piecesLocked int
	linesCleared int
}

// NewEngine creates an engine with the given configuration. Configure
// must be called with a label pool before pieces are generated.
func NewEngine(cfg Config, rng *rand.Rand) *Engine {
	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		sched: NewLabelScheduler(),
		eval:  NewEvaluator(cfg.Weights),
	}
	e.gen = NewGenerator(rng, e.sched, cfg.Mode, cfg.QueueDepth)
	e.grid = NewGrid(cfg.Width, cfg.Height, cfg.LineClear)
	return e
}

// Configure installs the label pool and no-repeat subset. One-time
// setup before a session.
func (e *Engine) Configure(mode Mode, pool, noRepeat []string) {
	e.gen.mode = mode
	e.sched.Configure(pool, noRepeat)
	e.Reset()
}

// Reset clears all grid and scheduler state for a new session.
func (e *Engine) Reset() {
	e.grid = NewGrid(e.cfg.Width, e.cfg.Height, e.cfg.LineClear)
	e.sched.Reset()
	e.gen.Reset()
	e.active = false
	e.over = false
	e.locked = nil
	e.piecesLocked = 0
	e.linesCleared = 0
}

// Grid returns the board. Callers must treat it as read-only.
func (e *Engine) Grid() *Grid { return e.grid }

// Current returns the falling piece, if any.
func (e *Engine) Current() (Piece, bool) { return e.current, e.active }

// Upcoming returns up to n queued pieces without consuming them.
func (e *Engine) Upcoming(n int) []Piece { return e.gen.Peek(n) }

// GameOver reports whether the session has reached the terminal state.
func (e *Engine) GameOver() bool { return e.over }

// PiecesLocked returns the number of pieces committed to the board.
func (e *Engine) PiecesLocked() int { return e.piecesLocked }

// LinesCleared returns the total rows cleared this session.
func (e *Engine) LinesCleared() int { return e.linesCleared }

// Scheduler exposes the label scheduler for configuration inspection.
func (e *Engine) Scheduler() *LabelScheduler { return e.sched }

// Spawn pulls the next piece from the queue and places it in the top
// row, trying the center column first, then positions to the left, then
// to the right. Failure to place anywhere is the sole terminal signal.
func (e *Engine) Spawn() bool {
	if e.over || e.active {
		return e.active
	}

	p := e.gen.Next()
	center := (e.grid.Width() - p.Width()) / 2

	if col, ok := e.findSpawnColumn(p, center); ok {
		e.current = p.At(col, 0)
		e.active = true
		return true
	}

	e.over = true
	return false
}

func (e *Engine) findSpawnColumn(p Piece, center int) (int, bool) {
	if e.grid.CanPlace(p.At(center, 0)) {
		return center, true
	}
	for col := center - 1; col >= 0; col-- {
		if e.grid.CanPlace(p.At(col, 0)) {
			return col, true
		}
	}
	for col := center + 1; col <= e.grid.Width()-p.Width(); col++ {
		if e.grid.CanPlace(p.At(col, 0)) {
			return col, true
		}
	}
	return 0, false
}

// Move attempts a translation of the falling piece. Returns whether it
// was legal and applied.
func (e *Engine) Move(dx, dy int) bool {
	if !e.active {
		return false
	}
	moved := e.current.Moved(dx, dy)
	if !e.grid.CanPlace(moved) {
		return false
	}
	e.current = moved
	return true
}

// Rotate attempts a clockwise quarter-turn of the falling piece.
func (e *Engine) Rotate() bool {
	if !e.active {
		return false
	}
	rotated := e.current.Rotated()
	if !e.grid.CanPlace(rotated) {
		return false
	}
	e.current = rotated
	return true
}

// Tick applies one gravity step. When the piece cannot move down it
// locks; the return value reports whether a lock happened.
func (e *Engine) Tick() bool {
	if !e.active {
		return false
	}
	if e.Move(0, 1) {
		return false
	}
	e.Lock()
	return true
}

// Drop hard-drops the falling piece to its resting row and locks it.
func (e *Engine) Drop() {
	if !e.active {
		return
	}
	for e.Move(0, 1) {
	}
	e.Lock()
}

// Lock commits the falling piece to the grid, transitions its labels
// from pending to locked, applies line clears, and returns whether the
// terminal state was reached.
func (e *Engine) Lock() bool {
	if !e.active {
		return e.over
	}

	p := e.current
	record := lockedRecord{origins: p.Origins, cells: pieceCells(p)}
	cleared := e.grid.Lock(p)
	e.sched.MarkLocked(p.Origins)
	e.locked = append(e.locked, record)
	e.active = false
	e.piecesLocked++

	if len(cleared) > 0 {
		e.linesCleared += len(cleared)
		e.applyClears(cleared)
	}

	if e.grid.IsTerminal() {
		e.over = true
	}
	return e.over
}

// Skip discards the falling piece without locking. Its labels stay used
// for the cycle but leave the pending set.
func (e *Engine) Skip() {
	if !e.active {
		return
	}
	e.sched.MarkSkipped(e.current.Origins)
	e.active = false
}

// Exchange swaps the falling piece's shape for a fresh unfiltered draw
// while keeping its labels. A visible no-op when no legal replacement is
// found within the retry bound.
func (e *Engine) Exchange() bool {
	if !e.active {
		return false
	}
	replaced, ok := e.gen.Exchange(e.current, e.grid)
	if ok {
		e.current = replaced
	}
	return ok
}

// Suggest runs the placement evaluator for the falling piece against
// the current grid and the upcoming queue. Purely advisory and free of
// side effects.
func (e *Engine) Suggest() (Placement, bool) {
	if !e.active {
		return Placement{}, false
	}
	return e.eval.BestPlacement(e.grid, e.current, e.gen.Peek(e.cfg.Weights.Lookahead))
}

// applyClears rewrites the locked-piece records after rows are removed:
// cells in cleared rows vanish, cells above shift down, and a record
// with no cells left releases its labels back to the scheduler.
func (e *Engine) applyClears(cleared []int) {
	var kept []lockedRecord
	for _, rec := range e.locked {
		var cells []Offset
		for _, cell := range rec.cells {
			removed := false
			shift := 0
			for _, row := range cleared {
				if cell.Row == row {
					removed = true
					break
				}
				if cell.Row < row {
					shift++
				}
			}
			if removed {
				continue
			}
			cells = append(cells, Offset{Row: cell.Row + shift, Col: cell.Col})
		}
		if len(cells) == 0 {
			e.sched.Unlock(rec.origins)
			continue
		}
		rec.cells = cells
		kept = append(kept, rec)
	}
	e.locked = kept
}

// pieceCells returns the grid coordinates of the piece's filled cells.
func pieceCells(p Piece) []Offset {
	cells := p.Cells()
	var out []Offset
	for r := range cells {
		for c := range cells[r] {
			if cells[r][c] {
				out = append(out, Offset{Row: p.Row + r, Col: p.Col + c})
			}
		}
	}
	return out
}
