package skillfall

import "github.com/arcadehub/skillfall/internal/games/skillfall/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Score       int
	Pieces      int
	Lines       int
	Skips       int
	CurrentKind core.Kind
	CurrentRot  core.Rotation
	CurrentCol  int
	CurrentRow  int
	Labels      []string
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine == nil || g.engine.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Score:  g.score,
		Pieces: g.Pieces(),
		Lines:  g.Lines(),
		Skips:  g.skips,
		State:  state,
	}

	if g.engine != nil {
		if cur, ok := g.engine.Current(); ok {
			snap.CurrentKind = cur.Shape.Kind
			snap.CurrentRot = cur.Rot
			snap.CurrentCol = cur.Col
			snap.CurrentRow = cur.Row
			snap.Labels = append([]string(nil), cur.Labels...)
		}
	}
	return snap
}
