// Package skillfall adapts the Skillfall engine to the platform game
// interface: input mapping, gravity pacing, scoring, and rendering.
package skillfall

import (
	"math/rand"

	"github.com/arcadehub/skillfall/internal/config"
	platformcore "github.com/arcadehub/skillfall/internal/core"
	"github.com/arcadehub/skillfall/internal/games/skillfall/core"
	"github.com/arcadehub/skillfall/internal/registry"
)

// Game implements the Skillfall falling-block game.
type Game struct {
	mode core.Mode
	cfg  config.SkillfallConfig
	rng  *rand.Rand

	engine *core.Engine
	diff   *config.DifficultyManager

	tick          uint64
	score         int
	skips         int
	gravityTicker int

	assist        bool
	suggestion    core.Placement
	hasSuggestion bool
	suggestDirty  bool

	paused   bool
	tooSmall bool

	// Screen layout
	screenW int
	screenH int
	boardX  int
	boardY  int
}

// Package-level variables for CLI overrides, applied on the next Reset.
var (
	configPath       string
	labelsPath       string
	difficultyPreset string
	labelOverride    []string
	noRepeatOverride []string
	assistOverride   *bool
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLabelsPath sets the labels file path.
func SetLabelsPath(path string) {
	labelsPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLabels overrides the label pool (and no-repeat subset) for the next
// session, bypassing the labels file.
func SetLabels(pool, noRepeat []string) {
	labelOverride = pool
	noRepeatOverride = noRepeat
}

// SetAssist forces the placement overlay on or off regardless of config.
func SetAssist(on bool) {
	assistOverride = &on
}

// New creates a new classic mode Skillfall game.
func New() *Game {
	return &Game{mode: core.ModeClassic}
}

// NewSteady creates a Skillfall game without the diagonal shapes.
func NewSteady() *Game {
	return &Game{mode: core.ModeSteady}
}

func init() {
	registry.Register("skillfall", func() registry.Game {
		return New()
	})
	registry.Register("skillfall_steady", func() registry.Game {
		return NewSteady()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == core.ModeSteady {
		return "skillfall_steady"
	}
	return "skillfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == core.ModeSteady {
		return "Skillfall (Steady)"
	}
	return "Skillfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	cfg, err := config.LoadSkillfall(configPath)
	if err != nil {
		cfg = config.DefaultSkillfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplySkillfallPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = sanitizeConfig(cfg)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.skips = 0
	g.gravityTicker = 0
	g.paused = false
	g.hasSuggestion = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	pool, noRepeat := g.labelPool()

	g.engine = core.NewEngine(core.Config{
		Width:      g.cfg.Board.Width,
		Height:     g.cfg.Board.Height,
		QueueDepth: g.cfg.Generator.QueueDepth,
		Mode:       g.mode,
		LineClear:  g.cfg.Gameplay.LineClear,
		Weights:    evalWeights(g.cfg.Evaluator),
	}, g.rng)
	g.engine.Configure(g.mode, pool, noRepeat)

	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	g.assist = g.cfg.Gameplay.Assist
	if assistOverride != nil {
		g.assist = *assistOverride
	}

	g.layout()
	if g.tooSmall {
		return
	}

	g.engine.Spawn()
	g.suggestDirty = true
}

// labelPool resolves the active label pool: CLI override first, then the
// labels file chain.
func (g *Game) labelPool() (pool, noRepeat []string) {
	if len(labelOverride) > 0 {
		return labelOverride, noRepeatOverride
	}
	labels, err := config.LoadLabels(labelsPath)
	if err != nil {
		labels = config.DefaultLabelsConfig()
	}
	if len(noRepeatOverride) > 0 {
		return labels.Labels, noRepeatOverride
	}
	return labels.Labels, labels.NoRepeat
}

// layout computes board placement and the too-small flag.
func (g *Game) layout() {
	requiredW := g.cfg.Board.Width + 2 + panelWidth + 3
	requiredH := g.cfg.Board.Height + hudHeight + 3
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.boardX = (g.screenW - requiredW) / 2 + 1
	g.boardY = hudHeight + 1
}

// sanitizeConfig fills in zero values so a sparse YAML file still yields
// a playable game.
func sanitizeConfig(cfg config.SkillfallConfig) config.SkillfallConfig {
	def := config.DefaultSkillfallConfig()
	if cfg.Board.Width <= 0 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height <= 0 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Generator.QueueDepth <= 0 {
		cfg.Generator.QueueDepth = def.Generator.QueueDepth
	}
	if cfg.Gameplay.GravityTicks <= 0 {
		cfg.Gameplay.GravityTicks = def.Gameplay.GravityTicks
	}
	if cfg.Gameplay.PointsPiece <= 0 {
		cfg.Gameplay.PointsPiece = def.Gameplay.PointsPiece
	}
	if cfg.Gameplay.PointsLine <= 0 {
		cfg.Gameplay.PointsLine = def.Gameplay.PointsLine
	}
	if cfg.Evaluator == (config.EvaluatorConfig{}) {
		cfg.Evaluator = def.Evaluator
	}
	return cfg
}

// evalWeights converts the config section to engine weights.
func evalWeights(e config.EvaluatorConfig) core.Weights {
	return core.Weights{
		Coverage:  e.Coverage,
		Flatness:  e.Flatness,
		Future:    e.Future,
		Height:    e.Height,
		Edge:      e.Edge,
		Lines:     e.Lines,
		Lookahead: e.Lookahead,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle restart
	if input.Has(platformcore.ActionRestart) && g.engine != nil && g.engine.GameOver() {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.engine == nil || g.engine.GameOver() || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.processInput(input)

	// Gravity
	if !g.engine.GameOver() {
		g.gravityTicker++
		interval := g.diff.GravityInterval(g.cfg.Gameplay.GravityTicks, g.score, int(g.tick))
		if g.gravityTicker >= interval {
			g.gravityTicker = 0
			if g.engine.Tick() {
				g.afterLock()
			}
		}
	}

	g.refreshSuggestion()
	return platformcore.StepResult{State: g.State()}
}

// processInput applies one tick's worth of player actions.
func (g *Game) processInput(input platformcore.InputFrame) {
	if input.Has(platformcore.ActionHint) {
		g.assist = !g.assist
		g.suggestDirty = true
	}
	if input.Has(platformcore.ActionLeft) {
		g.engine.Move(-1, 0)
	}
	if input.Has(platformcore.ActionRight) {
		g.engine.Move(1, 0)
	}
	if input.Has(platformcore.ActionRotate) {
		if g.engine.Rotate() {
			g.suggestDirty = true
		}
	}
	if input.Has(platformcore.ActionDown) {
		if g.engine.Move(0, 1) {
			g.gravityTicker = 0
		}
	}
	if input.Has(platformcore.ActionExchange) {
		if g.engine.Exchange() {
			g.suggestDirty = true
		}
	}
	if input.Has(platformcore.ActionSkip) {
		g.engine.Skip()
		g.skips++
		g.spawnNext()
	}
	if input.Has(platformcore.ActionDrop) {
		g.engine.Drop()
		g.afterLock()
	}
}

// afterLock applies scoring for the just-locked piece and spawns the
// next one.
func (g *Game) afterLock() {
	g.score = g.engine.PiecesLocked()*g.cfg.Gameplay.PointsPiece +
		g.engine.LinesCleared()*g.cfg.Gameplay.PointsLine
	g.gravityTicker = 0
	if !g.engine.GameOver() {
		g.spawnNext()
	}
}

func (g *Game) spawnNext() {
	if g.engine.Spawn() {
		g.suggestDirty = true
	}
}

// refreshSuggestion recomputes the placement overlay when the falling
// piece's shape or rotation changed. Horizontal movement does not affect
// the suggestion: the evaluator scans every column regardless.
func (g *Game) refreshSuggestion() {
	if !g.assist {
		g.hasSuggestion = false
		return
	}
	if !g.suggestDirty {
		return
	}
	g.suggestDirty = false
	g.suggestion, g.hasSuggestion = g.engine.Suggest()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	over := g.engine == nil || g.engine.GameOver()
	return platformcore.GameState{
		Score:    g.score,
		GameOver: over,
		Paused:   g.paused,
	}
}

// Pieces returns the number of locked pieces this session.
func (g *Game) Pieces() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.PiecesLocked()
}

// Lines returns the number of cleared rows this session.
func (g *Game) Lines() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.LinesCleared()
}

// Skips returns the number of skipped pieces this session.
func (g *Game) Skips() int {
	return g.skips
}

// Mode returns the generation mode as a string for persistence.
func (g *Game) Mode() string {
	return string(g.mode)
}
