package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-typer/internal/config"
	"github.com/vovakirdan/tui-typer/internal/core"
	"github.com/vovakirdan/tui-typer/internal/registry"
	"github.com/vovakirdan/tui-typer/internal/results"
	"github.com/vovakirdan/tui-typer/internal/storage"
)

var testCategories = []string{"Mix", "Food", "Technology"}

func press(t *testing.T, m tea.Model, msgs ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuPreselects(t *testing.T) {
	m := NewMenuModel(nil, testCfg, testCategories, "Food", config.DifficultyHard)
	if m.Category() != "Food" || m.Preset() != config.DifficultyHard {
		t.Errorf("menu = %s/%s, expected Food/hard", m.Category(), m.Preset())
	}

	m = NewMenuModel(nil, testCfg, testCategories, "Nope", "")
	if m.Category() != "Mix" || m.Preset() != config.DifficultyNormal {
		t.Errorf("menu = %s/%s, expected Mix/normal", m.Category(), m.Preset())
	}
}

func TestMenuCyclesOptions(t *testing.T) {
	m := NewMenuModel(nil, testCfg, testCategories, "Mix", config.DifficultyNormal)

	// Category row, wrap backwards
	next, _ := press(t, m, keyDown, keyLeft)
	m = next.(MenuModel)
	if m.Category() != "Technology" {
		t.Errorf("Category() = %s, expected Technology", m.Category())
	}

	// Difficulty row
	next, _ = press(t, m, keyDown, keyRight)
	m = next.(MenuModel)
	if m.Preset() != config.DifficultyHard {
		t.Errorf("Preset() = %s, expected hard", m.Preset())
	}
	if m.Choice() != MenuChoiceNone {
		t.Error("changing options should not pick anything")
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"start", []tea.KeyMsg{keyEnter}, MenuChoiceStart},
		{"scores", []tea.KeyMsg{keyDown, keyDown, keyDown, keyEnter}, MenuChoiceScores},
		{"results", []tea.KeyMsg{keyDown, keyDown, keyDown, keyDown, keyEnter}, MenuChoiceResults},
		{"quit row", []tea.KeyMsg{keyUp, keyEnter}, MenuChoiceQuit},
		{"esc", []tea.KeyMsg{keyEsc}, MenuChoiceQuit},
		{"q", []tea.KeyMsg{runes("q")}, MenuChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, testCfg, testCategories, "Mix", "")
			m.standalone = true
			next, cmd := press(t, m, tt.keys...)
			if got := next.(MenuModel).Choice(); got != tt.want {
				t.Errorf("Choice() = %v, expected %v", got, tt.want)
			}
			if !isQuit(cmd) {
				t.Error("standalone menu should quit after a choice")
			}
		})
	}
}

func TestMenuEmbeddedDoesNotQuit(t *testing.T) {
	m := NewMenuModel(nil, testCfg, testCategories, "Mix", "")
	next, cmd := press(t, m, keyEnter)
	if next.(MenuModel).Choice() != MenuChoiceStart || cmd != nil {
		t.Error("embedded menu should record the choice without quitting")
	}
}

func TestMenuViewShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.SaveScore(storage.Record{SessionID: "s", Category: "Food", Score: 31}); err != nil {
		t.Fatal(err)
	}

	cfg := testCfg
	cfg.ScreenW = 80
	view := NewMenuModel(store, cfg, testCategories, "Food", "").View()
	for _, want := range []string{"T Y P E R", "Food", "best 31", "normal", "Results log"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	for _, r := range []storage.Record{
		{SessionID: "a", Category: "Mix", Score: 10, Words: 4},
		{SessionID: "a", Category: "Food", Score: 20, Words: 8},
		{SessionID: "b", Category: "Food", Score: 5, Words: 2},
	} {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatal(err)
		}
	}

	sb := NewScoreboardModel(store, 100, 30, testCategories, "")
	if sb.Tab() != "" || len(sb.scores) != 3 {
		t.Fatalf("all tab: %q with %d scores, expected 3", sb.Tab(), len(sb.scores))
	}
	if sb.stats != nil {
		t.Error("all tab should not show category stats")
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb = next.(ScoreboardModel)
	if sb.Tab() != "Food" || len(sb.scores) != 2 {
		t.Fatalf("tab %q with %d scores, expected Food with 2", sb.Tab(), len(sb.scores))
	}
	if sb.stats == nil || sb.stats.GamesCount != 2 || sb.stats.HighScore != 20 {
		t.Errorf("Food stats = %+v", sb.stats)
	}
	if !strings.Contains(sb.View(), "HIGH SCORES - Food") {
		t.Error("title should name the tab")
	}

	// Wraps backwards past All
	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := next.(ScoreboardModel).Tab(); got != "Technology" {
		t.Errorf("Tab() = %q, expected Technology", got)
	}

	next, cmd := next.Update(keyEsc)
	if !next.(ScoreboardModel).IsGoingBack() || cmd != nil {
		t.Error("esc should go back without quitting an embedded scoreboard")
	}
}

func TestResultsViewer(t *testing.T) {
	log, err := results.Open(filepath.Join(t.TempDir(), "results.txt"))
	if err != nil {
		t.Fatal(err)
	}
	rec := &Recorder{Results: log}
	rec.Record(&scriptGame{}, core.GameState{Score: 1})
	rec.Record(&scriptGame{}, core.GameState{Score: 2})

	rm := NewResultsModel(log, 80, 24)
	entries := rm.Entries()
	if len(entries) != 2 || entries[0].Score != 2 {
		t.Fatalf("Entries() = %+v, expected newest first", entries)
	}
	if !strings.Contains(rm.View(), "RESULTS") {
		t.Error("view should have a title")
	}

	empty := NewResultsModel(nil, 80, 24)
	if !strings.Contains(empty.View(), "No results yet.") {
		t.Error("viewer without a log should say it is empty")
	}

	rm.standalone = true
	next, cmd := rm.Update(runes("q"))
	if !next.(ResultsModel).IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit the standalone viewer")
	}
}

func TestSessionFlow(t *testing.T) {
	if !registry.Exists("script") {
		registry.Register("script", func() registry.Game {
			return &scriptGame{states: []core.GameState{{Score: 1, Paused: true, Exit: true}}}
		})
	}

	srv := DefaultSSHServerConfig()
	srv.GameID = "script"
	srv.Categories = testCategories

	s := NewSessionModel(srv, newTestRecorder(t), testCfg)

	// Start a game
	next, cmd := s.Update(keyEnter)
	s = next.(SessionModel)
	if s.screen != screenGame || s.game == nil || cmd == nil {
		t.Fatalf("enter should start the game (screen %v)", s.screen)
	}

	// The scripted game leaves on its first tick, back to the menu
	next, _ = s.Update(TickMsg{Gen: s.game.gen})
	s = next.(SessionModel)
	if s.screen != screenMenu || s.game != nil {
		t.Fatalf("leaving the game should return to the menu (screen %v)", s.screen)
	}
	if n := len(resultLines(t, s.recorder)); n != 1 {
		t.Errorf("recorded %d results, expected 1", n)
	}

	// Scores and back
	next, _ = press(t, s, keyDown, keyDown, keyDown, keyEnter)
	s = next.(SessionModel)
	if s.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", s.screen)
	}
	next, _ = s.Update(keyEsc)
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("esc should return to the menu (screen %v)", s.screen)
	}

	// Results and quit
	next, _ = press(t, s, keyDown, keyDown, keyDown, keyDown, keyEnter)
	s = next.(SessionModel)
	if s.screen != screenResults || len(s.results.Entries()) != 1 {
		t.Fatalf("screen = %v with %d results", s.screen, len(s.results.Entries()))
	}
	next, cmd = s.Update(runes("q"))
	if !isQuit(cmd) || next.View() != "" {
		t.Error("q on the results screen should end the session")
	}
}
