package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-typer/internal/core"
	"github.com/vovakirdan/tui-typer/internal/results"
	"github.com/vovakirdan/tui-typer/internal/storage"
)

// scriptGame plays back a fixed list of states, one per step, then holds
// the last one.
type scriptGame struct {
	states  []core.GameState
	steps   int
	resets  int
	label   string
	spawned int
}

func (g *scriptGame) ID() string    { return "script" }
func (g *scriptGame) Title() string { return "Script" }
func (g *scriptGame) Label() string { return g.label }

func (g *scriptGame) WordsSpawned() int { return g.spawned }

func (g *scriptGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *scriptGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *scriptGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "script")
}

func (g *scriptGame) State() core.GameState {
	if g.steps == 0 || len(g.states) == 0 {
		return core.GameState{}
	}
	i := min(g.steps, len(g.states)) - 1
	return g.states[i]
}

type resizableGame struct {
	scriptGame
	w, h int
}

func (g *resizableGame) Resize(w, h int) { g.w, g.h = w, h }

var testCfg = core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	dir := t.TempDir()

	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	res, err := results.Open(filepath.Join(dir, "results.txt"))
	if err != nil {
		t.Fatalf("results.Open() failed: %v", err)
	}

	rec := NewRecorder(store, res, nil)
	rec.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local) }
	return rec
}

// tick sends one matching tick through the model.
func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg{Time: time.Now(), Gen: m.gen})
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func resultLines(t *testing.T, rec *Recorder) []string {
	t.Helper()
	lines, err := rec.Results.Tail(0)
	if err != nil {
		t.Fatal(err)
	}
	return lines
}

func TestModelRecordsGameOverOnce(t *testing.T) {
	rec := newTestRecorder(t)
	g := &scriptGame{
		label:   "Food",
		spawned: 6,
		states: []core.GameState{
			{Score: 3},
			{Score: 4, GameOver: true},
		},
	}

	m := NewGameModel(g, rec, testCfg)
	m.Init()
	for range 5 {
		m, _ = tick(t, m)
	}

	lines := resultLines(t, rec)
	if len(lines) != 1 || lines[0] != "Date: 2024-05-01 12:00:00, Score: 4" {
		t.Fatalf("results = %q, expected one line with score 4", lines)
	}

	scores, err := rec.Store.TopScores("Food", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("stored %d scores, expected 1", len(scores))
	}
	if s := scores[0]; s.Score != 4 || s.Words != 6 || s.SessionID != rec.SessionID {
		t.Errorf("stored %+v, expected score 4, 6 words, session %s", s, rec.SessionID)
	}
}

func TestModelRecordsAgainAfterRestart(t *testing.T) {
	rec := newTestRecorder(t)
	g := &scriptGame{states: []core.GameState{
		{Score: 1, GameOver: true},
		{Score: 0},
		{Score: 2, GameOver: true},
	}}

	m := NewGameModel(g, rec, testCfg)
	m.Init()
	for range 4 {
		m, _ = tick(t, m)
	}

	if n := len(resultLines(t, rec)); n != 2 {
		t.Errorf("recorded %d results, expected 2", n)
	}
}

func TestModelRecordsExitFromPause(t *testing.T) {
	rec := newTestRecorder(t)
	g := &scriptGame{states: []core.GameState{
		{Score: 5, Paused: true},
		{Score: 5, Paused: true, Exit: true},
	}}

	m := NewModel(g, rec, testCfg)
	m.Init()
	m, _ = tick(t, m)
	m, cmd := tick(t, m)

	if !m.Exited() {
		t.Fatal("model should report the game exit")
	}
	if !isQuit(cmd) {
		t.Error("standalone model should quit when the game exits")
	}
	if lines := resultLines(t, rec); len(lines) != 1 {
		t.Errorf("results = %q, expected one line", lines)
	}

	// Ticks after exit are ignored
	m, _ = tick(t, m)
	if g.steps != 2 {
		t.Errorf("game stepped %d times, expected 2", g.steps)
	}
}

func TestModelExitFromGameOverNotRecordedTwice(t *testing.T) {
	rec := newTestRecorder(t)
	g := &scriptGame{states: []core.GameState{
		{Score: 2, GameOver: true},
		{Score: 2, GameOver: true, Exit: true},
	}}

	m := NewGameModel(g, rec, testCfg)
	m.Init()
	m, _ = tick(t, m)
	m, cmd := tick(t, m)

	if cmd != nil {
		t.Error("embedded model should not quit the program on exit")
	}
	if !m.Exited() {
		t.Error("model should report the game exit")
	}
	if n := len(resultLines(t, rec)); n != 1 {
		t.Errorf("recorded %d results, expected 1", n)
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	g := &scriptGame{}
	m := NewGameModel(g, nil, testCfg)
	m.Init()

	next, cmd := m.Update(TickMsg{Time: time.Now(), Gen: m.gen + 1})
	if cmd != nil || g.steps != 0 {
		t.Error("tick from another model should be ignored")
	}
	m = next.(Model)

	m, cmd = tick(t, m)
	if g.steps != 1 || cmd == nil {
		t.Errorf("matching tick should step and schedule the next one (steps %d)", g.steps)
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := NewGameModel(&scriptGame{}, nil, testCfg)
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(Model).IsQuitting() || !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func TestModelFeedsKeysToGame(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, nil, testCfg)
	m.Init()

	next, _ := m.Update(runes("ab"))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	m, _ = tick(t, m)

	if string(g.keys) != "ab\n" || !g.confirm {
		t.Errorf("game saw keys %q confirm=%v", string(g.keys), g.confirm)
	}

	// The frame is cleared after each tick
	g.keys = nil
	m, _ = tick(t, m)
	if len(g.keys) != 0 {
		t.Errorf("keys leaked into the next tick: %q", string(g.keys))
	}
}

type recordingGame struct {
	scriptGame
	keys    []rune
	confirm bool
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.keys = append(g.keys, in.Keys...)
	g.confirm = g.confirm || in.Has(core.ActionConfirm)
	return g.scriptGame.Step(in)
}

func TestModelResize(t *testing.T) {
	rg := &resizableGame{}
	m := NewGameModel(rg, nil, testCfg)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if rg.w != 100 || rg.h != 30 || rg.resets != 1 {
		t.Errorf("resizable game: size %dx%d, resets %d", rg.w, rg.h, rg.resets)
	}

	sg := &scriptGame{}
	m = NewGameModel(sg, nil, testCfg)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if sg.resets != 2 {
		t.Errorf("fixed-size game should restart on resize, resets %d", sg.resets)
	}
}

func TestModelView(t *testing.T) {
	m := NewGameModel(&scriptGame{}, nil, testCfg)
	m.Init()
	if got := m.View(); got == "" {
		t.Error("View() should render the game")
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var r *Recorder
	r.Record(&scriptGame{}, core.GameState{Score: 1})

	empty := &Recorder{}
	empty.Record(&scriptGame{}, core.GameState{Score: 1})
}

func TestRecorderFallsBackToGameID(t *testing.T) {
	rec := newTestRecorder(t)
	rec.Record(&scriptGame{}, core.GameState{Score: 9, GameOver: true})

	scores, err := rec.Store.TopScores("script", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 9 {
		t.Errorf("TopScores(script) = %+v, expected one score of 9", scores)
	}
}
