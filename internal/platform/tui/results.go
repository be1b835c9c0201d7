package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-typer/internal/results"
)

// maxResults is how many log lines the viewer loads.
const maxResults = 200

// resultsKeyMap holds the bindings of the results viewer.
type resultsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k resultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

func (k resultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultResultsKeyMap() resultsKeyMap {
	sb := DefaultScoreboardKeyMap()
	return resultsKeyMap{Up: sb.Up, Down: sb.Down, Back: sb.Back, Quit: sb.Quit}
}

// ResultsModel shows the plain text results log, newest first.
type ResultsModel struct {
	log        *results.Log
	entries    []results.Entry
	skipped    int // Lines that did not parse
	err        error
	table      table.Model
	help       help.Model
	keys       resultsKeyMap
	width      int
	height     int
	standalone bool
	quitting   bool
	goingBack  bool
}

// NewResultsModel creates a viewer over the given log.
func NewResultsModel(log *results.Log, width, height int) ResultsModel {
	m := ResultsModel{
		log:    log,
		help:   help.New(),
		keys:   defaultResultsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ResultsModel) createTable() table.Model {
	return styledTable([]table.Column{
		{Title: "#", Width: 5},
		{Title: "Date", Width: 20},
		{Title: "Score", Width: 8},
	}, max(m.height-8, 3))
}

// load reads the log tail and fills the table.
func (m *ResultsModel) load() {
	m.entries, m.skipped, m.err = nil, 0, nil
	if m.log != nil {
		lines, err := m.log.Tail(maxResults)
		if err != nil {
			m.err = err
		}
		for _, line := range lines {
			e, err := results.Parse(line)
			if err != nil {
				m.skipped++
				continue
			}
			m.entries = append(m.entries, e)
		}
		slices.Reverse(m.entries)
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.At.Format(results.TimeLayout),
			fmt.Sprintf("%d", e.Score),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results viewer.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results viewer.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.finish()
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.finish()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-8, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ResultsModel) finish() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the results log.
func (m ResultsModel) View() string {
	if m.standalone && (m.quitting || m.goingBack) {
		return ""
	}

	var b strings.Builder
	dimStyle := menuDimStyle

	b.WriteString(centerText(menuTitleStyle.Render("RESULTS"), m.width))
	b.WriteString("\n")
	if m.log != nil {
		b.WriteString(centerText(dimStyle.Render(truncate(m.log.Path(), m.width-2)), m.width))
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(centerBlock(boxStyle.Render("Could not read results: "+m.err.Error()), m.width))
	case len(m.entries) == 0:
		empty := dimStyle.Italic(true).Padding(2, 4).Render("No results yet.")
		b.WriteString(centerBlock(boxStyle.Render(empty), m.width))
	default:
		b.WriteString(centerBlock(boxStyle.Render(m.table.View()), m.width))
	}
	b.WriteString("\n")

	if m.skipped > 0 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("%d unreadable lines skipped", m.skipped)), m.width))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Entries returns the loaded results, newest first.
func (m ResultsModel) Entries() []results.Entry {
	return m.entries
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}

// RunResults runs the results viewer.
// Returns true if user wants to go back to menu, false if quitting.
func RunResults(log *results.Log, width, height int) (goBack bool, err error) {
	model := NewResultsModel(log, width, height)
	model.standalone = true

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ResultsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
