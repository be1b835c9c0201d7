package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-typer/internal/config"
	"github.com/vovakirdan/tui-typer/internal/core"
	"github.com/vovakirdan/tui-typer/internal/registry"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	recorder   *Recorder
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	gen        uint64

	standalone bool // Quit the program when the game exits
	quitting   bool // Ctrl+C
	exited     bool // Game asked to leave
	recorded   bool // Result saved for the current game over
}

// NewModel creates a model that quits the program when the game exits.
func NewModel(game registry.Game, rec *Recorder, cfg core.RuntimeConfig) Model {
	m := NewGameModel(game, rec, cfg)
	m.standalone = true
	return m
}

// NewGameModel creates a model meant to be embedded in a session:
// exiting the game only sets Exited.
func NewGameModel(game registry.Game, rec *Recorder, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   rec,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		gen:        nextTickGen(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen || m.exited || m.quitting {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlS {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can rescale keep their session
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.recordIfFinished()

	if m.gameState.Exit {
		m.exited = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordIfFinished saves a result once per game over, and when the player
// leaves from the pause screen.
func (m *Model) recordIfFinished() {
	st := m.gameState
	switch {
	case st.GameOver && !m.recorded:
		m.recorder.Record(m.game, st)
		m.recorded = true
	case st.Exit && st.Paused:
		m.recorder.Record(m.game, st)
	case !st.GameOver:
		m.recorded = false
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(config.DataDir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.exited {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user pressed Ctrl+C.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Exited returns true if the game asked to leave.
func (m Model) Exited() bool {
	return m.exited
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
// Returns quit=true if the user pressed Ctrl+C rather than leaving the game.
func Run(game registry.Game, rec *Recorder, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewModel(game, rec, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return true, err
	}
	if fm, ok := final.(Model); ok {
		return fm.IsQuitting(), nil
	}
	return true, nil
}
