package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadehub/skillfall/internal/config"
	"github.com/arcadehub/skillfall/internal/core"
)

// SkillfallSelection holds the user's choices from the mode menu.
type SkillfallSelection struct {
	GameID     string
	Difficulty config.DifficultyPreset
	Assist     bool
}

// skillfallPresets is the cycle order for the difficulty option.
var skillfallPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// SkillfallModeModel lets users choose mode, difficulty and assist.
type SkillfallModeModel struct {
	cursor    int
	presetIdx int
	assist    bool
	width     int
	height    int
	keyMapper *KeyMapper
	selection SkillfallSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewSkillfallModeModel creates a new mode selection model.
func NewSkillfallModeModel(width, height int) SkillfallModeModel {
	return SkillfallModeModel{
		cursor:    0,
		presetIdx: 1, // normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SkillfallModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SkillfallModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SkillfallModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 3 { // 4 options: Classic, Steady, Difficulty, Assist
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Classic
			m.choosing = false
			m.selection = m.buildSelection("skillfall")
			return m, tea.Quit
		case 1: // Steady
			m.choosing = false
			m.selection = m.buildSelection("skillfall_steady")
			return m, tea.Quit
		case 2: // Difficulty cycles through presets
			m.presetIdx = (m.presetIdx + 1) % len(skillfallPresets)
		case 3: // Assist toggle
			m.assist = !m.assist
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SkillfallModeModel) buildSelection(gameID string) SkillfallSelection {
	return SkillfallSelection{
		GameID:     gameID,
		Difficulty: skillfallPresets[m.presetIdx],
		Assist:     m.assist,
	}
}

// View renders the mode selection.
func (m SkillfallModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S K I L L F A L L", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	assistStr := "Off"
	if m.assist {
		assistStr = "On"
	}

	options := []string{
		"Classic",
		"Steady (no diagonal pieces)",
		fmt.Sprintf("Difficulty: %s", skillfallPresets[m.presetIdx]),
		fmt.Sprintf("Assist: %s", assistStr),
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SkillfallModeModel) Selected() *SkillfallSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m SkillfallModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m SkillfallModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SkillfallModeModel) WantsBack() bool {
	return m.back
}

// RunSkillfallModeSelector runs the mode selection and returns the selection.
func RunSkillfallModeSelector(cfg core.RuntimeConfig) (*SkillfallSelection, core.RuntimeConfig, error) {
	model := NewSkillfallModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(SkillfallModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
