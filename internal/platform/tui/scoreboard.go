package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-typer/internal/storage"
)

const (
	statsCardWidth   = 26  // Width of the category stats card
	minWidthForStats = 84  // Below this the card goes under the table
	maxScores        = 100 // Max scores to load per tab
)

var (
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statValueStyle = lipgloss.NewStyle().Bold(true)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevTab, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevTab, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("→/tab", "next category")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev category")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
// The first tab shows the best scores across every category.
type ScoreboardModel struct {
	tabs   []string // "" for all categories, then each category
	tab    int
	store  *storage.Store
	scores []storage.ScoreEntry
	stats  *storage.CategoryStats // nil on the all tab

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	standalone    bool
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a new scoreboard model opened on category.
func NewScoreboardModel(store *storage.Store, width, height int, categories []string, category string) ScoreboardModel {
	m := ScoreboardModel{
		tabs:   append([]string{""}, categories...),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	for i, t := range m.tabs {
		if t == category {
			m.tab = i
		}
	}

	m.table = newScoreTable(m.tableHeight())
	m.loadScores()
	return m
}

func tabTitle(tab string) string {
	if tab == "" {
		return "All"
	}
	return tab
}

func (m ScoreboardModel) tableHeight() int {
	// Title, tabs, borders, stats and help
	h := m.height - 9
	if m.width < minWidthForStats {
		h -= 6
	}
	return max(h, 3)
}

func newScoreTable(height int) table.Model {
	return styledTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Words", Width: 7},
		{Title: "Category", Width: 14},
		{Title: "Played", Width: 16},
	}, height)
}

// styledTable builds a focused table with the shared header and cursor styles.
func styledTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadScores queries the store for the current tab.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.stats = nil, nil

	if m.store != nil {
		tab := m.Tab()
		if scores, err := m.store.TopScores(tab, maxScores); err == nil {
			m.scores = scores
		}
		if all, err := m.store.AllCategoryStats(); err == nil && tab != "" {
			m.stats = all[tab]
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(s.Score),
			fmt.Sprint(s.Words),
			s.Category,
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.finish()
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.finish()
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.loadScores()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab - 1 + len(m.tabs)) % len(m.tabs)
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(m.tableHeight())
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) finish() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.standalone && (m.quitting || m.goingBack) {
		return ""
	}

	title := menuTitleStyle.Render("HIGH SCORES - " + tabTitle(m.Tab()))

	var body string
	if len(m.scores) == 0 {
		empty := menuDimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPlay a round to set a high score!")
		body = boxStyle.Render(empty)
	} else {
		body = boxStyle.Render(m.table.View())
	}

	if card := m.statsCard(); card != "" {
		if m.width >= minWidthForStats {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", card)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, body, card)
		}
	}

	return strings.Join([]string{
		centerText(title, m.width),
		centerText(m.tabBar(), m.width),
		"",
		centerBlock(body, m.width),
		menuDimStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

// tabBar renders the category tabs, collapsing to "< current >" when they
// don't fit.
func (m ScoreboardModel) tabBar() string {
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		name := truncate(tabTitle(t), 14)
		if i == m.tab {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = tabStyle.Render(name)
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(bar) > m.width-2 {
		bar = activeTabStyle.Render("< " + tabTitle(m.Tab()) + " >")
	}
	return bar
}

// statsCard renders per-category totals, or nothing on the all tab.
func (m ScoreboardModel) statsCard() string {
	s := m.stats
	if s == nil {
		return ""
	}

	row := func(label, value string) string {
		return statLabelStyle.Render(fmt.Sprintf("%-8s", label)) + " " + statValueStyle.Render(value)
	}
	lines := []string{
		row("Games", fmt.Sprint(s.GamesCount)),
		row("Best", fmt.Sprint(s.HighScore)),
		row("Average", fmt.Sprintf("%.1f", s.AvgScore)),
		row("Words", fmt.Sprint(s.TotalWords)),
		row("Last", s.LastPlayed.Format("Jan 02 15:04")),
	}
	return boxStyle.Width(statsCardWidth).Render(strings.Join(lines, "\n"))
}

// centerBlock centers every line of a multi-line block by the widest line.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	return lipgloss.NewStyle().PaddingLeft(pad).Render(block)
}

// Tab returns the category shown, empty for all.
func (m ScoreboardModel) Tab() string {
	return m.tabs[m.tab]
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, categories []string, category string) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height, categories, category)
	model.standalone = true

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
