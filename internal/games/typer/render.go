package typer

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-typer/internal/config"
	"github.com/vovakirdan/tui-typer/internal/core"
)

// Words past this share of the field are drawn as urgent.
const urgentFraction = 0.75

// Minimum screen that fits the panel and the menu.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		y := dst.Height() / 2
		dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	switch g.mode {
	case ModeActive:
		g.renderWords(dst)
		g.renderPanel(dst)
	case ModePaused:
		g.renderWords(dst)
		g.renderPanel(dst)
		g.renderOverlay(dst, "Paused", core.ColorYellow,
			"Esc: resume   r: restart   q: exit")
	case ModeEnded:
		g.renderPanel(dst)
		g.renderOverlay(dst, "Game Over", core.ColorRed,
			fmt.Sprintf("Your final score: %d", g.engine.Score()),
			"r / Enter: restart   q: exit")
	case ModeConfigMenu:
		g.renderMenu(dst)
	}
}

// renderWords draws every word with its typed prefix dimmed.
func (g *Game) renderWords(dst *core.Screen) {
	colUnit, rowUnit := g.unitsPerCol(), g.unitsPerRow()
	urgentAt := g.cfg.Field.Width * urgentFraction

	for _, w := range g.engine.Snapshot().Words {
		x := int(w.X / colUnit)
		y := int(w.Y / rowUnit)

		color := core.ColorWhite
		if w.Right() > urgentAt {
			color = core.ColorBrightRed
		}

		x = dst.DrawTextColored(x, y, w.Typed, core.ColorGray)
		dst.DrawTextColored(x, y, w.Text[len(w.Typed):], color)
	}
}

// renderPanel draws the bottom strip with the buffer, score and lives.
func (g *Game) renderPanel(dst *core.Screen) {
	top := g.panelTop(dst.Height())
	dst.DrawHLine(0, top, dst.Width(), '─', core.ColorGray)

	s := g.engine.Snapshot()
	typed := fmt.Sprintf(" Typed: %s", s.Typed)
	if g.mode == ModeActive {
		typed += "_"
	}
	dst.DrawTextColored(0, top+1, typed, core.ColorCyan)

	stats := fmt.Sprintf("%s  Score: %d  Lives: %d ", g.category, s.Score, s.Lives)
	dst.DrawTextColored(dst.Width()-runewidth.StringWidth(stats), top+1, stats, core.ColorBrightWhite)

	if s.BankSize == 0 && top+2 < dst.Height() {
		dst.DrawTextColored(1, top+2, fmt.Sprintf("No words loaded for %s", g.category), core.ColorYellow)
	}
}

// panelTop returns the first row of the panel for a screen of height h.
func (g *Game) panelTop(h int) int {
	f := g.cfg.Field
	top := int((f.Height - f.PanelHeight) / g.unitsPerRow())
	return core.Clamp(top, 0, h-2)
}

// renderOverlay draws a centered box with a title and message lines.
func (g *Game) renderOverlay(dst *core.Screen, title string, c core.Color, lines ...string) {
	w := runewidth.StringWidth(title)
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	box := core.CenteredRect(dst.Width(), dst.Height(), w+6, len(lines)+4)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l, core.ColorDefault)
	}
}

// renderMenu draws the restart settings.
func (g *Game) renderMenu(dst *core.Screen) {
	categories := g.source.Categories()
	lines := len(categories) + 9
	box := core.CenteredRect(dst.Width(), dst.Height(), 44, lines)
	dst.DrawBox(box, core.ColorCyan)

	y := box.Y + 1
	dst.DrawTextCentered(y, "New Game", core.ColorBrightWhite)
	y += 2

	for i, c := range categories {
		label, color := "  "+c, core.ColorDefault
		if i == g.menuCategory {
			label, color = "> "+c, core.ColorBrightGreen
		}
		dst.DrawTextColored(box.X+4, y, label, color)
		y++
	}
	y++

	preset := config.DifficultyNormal
	if g.menuPreset >= 0 && g.menuPreset < len(config.Presets) {
		preset = config.Presets[g.menuPreset]
	}
	dst.DrawTextColored(box.X+4, y, fmt.Sprintf("Difficulty: < %s >", preset), core.ColorYellow)
	y += 2

	dst.DrawTextCentered(y, "↑/↓ category  ←/→ difficulty  Enter: go", core.ColorGray)
	if y+1 < box.Bottom()-1 {
		dst.DrawTextCentered(y+1, "q: exit", core.ColorGray)
	}
}
