package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-typer/internal/config"
	"github.com/vovakirdan/tui-typer/internal/core"
	"github.com/vovakirdan/tui-typer/internal/storage"
)

// MenuChoice is what the player picked on the start menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceStart
	MenuChoiceScores
	MenuChoiceResults
	MenuChoiceQuit
)

// Start menu rows.
const (
	menuRowStart = iota
	menuRowCategory
	menuRowDifficulty
	menuRowScores
	menuRowResults
	menuRowQuit
	menuRowCount
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	categories []string
	category   int
	preset     int
	cursor     int
	width      int
	height     int
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	standalone bool
	choice     MenuChoice
}

// NewMenuModel creates a start menu preselecting category and preset.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, categories []string, category string, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		categories: categories,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		preset:     slices.Index(config.Presets, config.DifficultyNormal),
	}
	if i := slices.Index(categories, category); i >= 0 {
		m.category = i
	}
	if i := slices.Index(config.Presets, preset); i >= 0 {
		m.preset = i
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		return m.choose(MenuChoiceQuit)

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + menuRowCount) % menuRowCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % menuRowCount

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		switch m.cursor {
		case menuRowStart:
			return m.choose(MenuChoiceStart)
		case menuRowCategory, menuRowDifficulty:
			m.cycle(1)
		case menuRowScores:
			return m.choose(MenuChoiceScores)
		case menuRowResults:
			return m.choose(MenuChoiceResults)
		case menuRowQuit:
			return m.choose(MenuChoiceQuit)
		}
	}

	return m, nil
}

// cycle moves the option on the current row.
func (m *MenuModel) cycle(delta int) {
	switch m.cursor {
	case menuRowCategory:
		if n := len(m.categories); n > 0 {
			m.category = (m.category + delta + n) % n
		}
	case menuRowDifficulty:
		n := len(config.Presets)
		m.preset = (m.preset + delta + n) % n
	}
}

func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone && m.standalone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T Y P E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Type the words before they cross the screen"), m.width))
	b.WriteString("\n\n")

	best := ""
	if m.store != nil {
		if high, err := m.store.HighScore(m.Category()); err == nil && high > 0 {
			best = fmt.Sprintf("  (best %d)", high)
		}
	}

	rows := [menuRowCount]string{
		menuRowStart:      "Start",
		menuRowCategory:   fmt.Sprintf("Category:   < %s >%s", m.Category(), best),
		menuRowDifficulty: fmt.Sprintf("Difficulty: < %s >", m.Preset()),
		menuRowScores:     "High scores",
		menuRowResults:    "Results log",
		menuRowQuit:       "Quit",
	}

	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Category returns the selected word category.
func (m MenuModel) Category() string {
	if m.category < 0 || m.category >= len(m.categories) {
		return ""
	}
	return m.categories[m.category]
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// truncate shortens text to fit width columns.
func truncate(text string, width int) string {
	return runewidth.Truncate(text, width, ".")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice   MenuChoice
	Category string
	Preset   config.DifficultyPreset
	Config   core.RuntimeConfig
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, categories []string, category string, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, categories, category, preset)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice:   m.Choice(),
		Category: m.Category(),
		Preset:   m.Preset(),
		Config:   m.Config(),
	}, nil
}
