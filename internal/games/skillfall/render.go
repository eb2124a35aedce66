package skillfall

import (
	"fmt"
	"strings"

	platformcore "github.com/arcadehub/skillfall/internal/core"
	"github.com/arcadehub/skillfall/internal/games/skillfall/core"
)

const (
	hudHeight  = 2
	panelWidth = 26
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.engine == nil {
		return
	}

	g.renderBoard(dst)
	g.renderLocked(dst)
	if g.hasSuggestion {
		g.renderGhost(dst)
	}
	g.renderFalling(dst)
	g.renderPanel(dst)

	switch {
	case g.engine.GameOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Pieces: %d  Lines: %d  Skips: %d",
		g.Title(), g.score, g.Pieces(), g.Lines(), g.skips)
	if g.assist {
		hud += "  [assist]"
	}
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws the playfield border.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	dst.DrawBox(platformcore.NewRect(
		g.boardX-1, g.boardY-1,
		g.cfg.Board.Width+2, g.cfg.Board.Height+2,
	))
}

// renderLocked draws the settled cells with their label glyphs.
func (g *Game) renderLocked(dst *platformcore.Screen) {
	grid := g.engine.Grid()
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			cell := grid.Cell(col, row)
			if !cell.Filled {
				continue
			}
			r := cell.Glyph
			c := platformcore.ColorGray
			if r == 0 {
				r = '█'
			} else {
				c = platformcore.ColorWhite
			}
			dst.SetCell(g.boardX+col, g.boardY+row, r, c)
		}
	}
}

// renderGhost draws the suggested resting position as a faint outline.
func (g *Game) renderGhost(dst *platformcore.Screen) {
	cur, ok := g.engine.Current()
	if !ok {
		return
	}
	ghost := cur.At(g.suggestion.Col, g.suggestion.Row)
	cells := ghost.Cells()
	for r := range cells {
		for c := range cells[r] {
			if !cells[r][c] {
				continue
			}
			x := g.boardX + ghost.Col + c
			y := g.boardY + ghost.Row + r
			if dst.Get(x, y) == ' ' {
				dst.SetCell(x, y, '░', platformcore.ColorGreen)
			}
		}
	}
}

// renderFalling draws the falling piece, label runes on their cells.
func (g *Game) renderFalling(dst *platformcore.Screen) {
	cur, ok := g.engine.Current()
	if !ok {
		return
	}
	cells := cur.Cells()
	glyphs := cur.Glyphs()
	for r := range cells {
		for c := range cells[r] {
			if !cells[r][c] {
				continue
			}
			row := cur.Row + r
			if row < 0 {
				continue
			}
			x := g.boardX + cur.Col + c
			y := g.boardY + row
			if glyph, has := glyphs[core.Offset{Row: r, Col: c}]; has {
				dst.SetCell(x, y, glyph, platformcore.ColorBrightYellow)
			} else {
				dst.SetCell(x, y, '█', platformcore.ColorCyan)
			}
		}
	}
}

// renderPanel draws the upcoming queue and controls to the right of the
// board.
func (g *Game) renderPanel(dst *platformcore.Screen) {
	x := g.boardX + g.cfg.Board.Width + 3
	y := g.boardY

	dst.DrawTextColored(x, y, "NEXT", platformcore.ColorBrightWhite)
	y++
	for i, p := range g.engine.Upcoming(5) {
		line := fmt.Sprintf("%s  %s", p.Shape.Kind, strings.Join(p.Labels, " / "))
		if len(line) > panelWidth {
			line = line[:panelWidth-1] + "…"
		}
		dst.DrawText(x, y+i, line)
	}
	y += 6

	if cur, ok := g.engine.Current(); ok {
		dst.DrawTextColored(x, y, "PIECE", platformcore.ColorBrightWhite)
		label := strings.Join(cur.Labels, " / ")
		if len(label) > panelWidth {
			label = label[:panelWidth-1] + "…"
		}
		dst.DrawText(x, y+1, label)
		y += 3
	}

	controls := []string{
		"←/→ move   ↑ rotate",
		"↓ soft drop  ␣ drop",
		"x skip   e exchange",
		"h hint   p pause",
	}
	for i, line := range controls {
		dst.DrawTextColored(x, y+i, line, platformcore.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ', platformcore.ColorDefault)
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
