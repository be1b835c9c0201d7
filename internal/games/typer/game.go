// Package typer adapts the typing engine to the arcade platform: it maps
// input frames to engine calls, drives the mode screens and scales the
// virtual field to terminal cells.
package typer

import (
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-typer/internal/config"
	"github.com/vovakirdan/tui-typer/internal/core"
	"github.com/vovakirdan/tui-typer/internal/games/typer/engine"
	"github.com/vovakirdan/tui-typer/internal/registry"
	"github.com/vovakirdan/tui-typer/internal/words"
)

// ID is the registry identifier of the game.
const ID = "typer"

// Settings applied to every new game, set by the CLI before the platform starts.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startCategory    string
	wordSource       words.Source = words.Embedded{}
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil && logger != nil {
		logger.Warn("Unknown difficulty, using normal", "preset", preset)
	}
	difficultyPreset = p
}

// SetCategory overrides the configured starting category.
func SetCategory(category string) {
	startCategory = category
}

// SetWordSource replaces where word banks come from.
func SetWordSource(src words.Source) {
	if src == nil {
		src = words.Embedded{}
	}
	wordSource = src
}

// SetLogger sets the logger used for word bank warnings and game over events.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game for the typing engine.
type Game struct {
	base   config.TyperConfig // Loaded config before the preset is applied
	cfg    config.TyperConfig
	preset config.DifficultyPreset

	engine   *engine.Engine
	mode     Mode
	category string
	exit     bool

	source words.Source
	log    *log.Logger

	// Settings picked before Reset
	startCategory string
	startPreset   config.DifficultyPreset

	screenW, screenH int
	dt               float64

	// Config menu selection
	menuCategory int
	menuPreset   int
}

// New creates a typer game using the package-level settings.
func New() *Game {
	return &Game{
		source:        wordSource,
		log:           logger,
		startCategory: startCategory,
		startPreset:   difficultyPreset,
	}
}

// Configure overrides the starting category and difficulty of this game only.
// Unknown difficulties fall back to normal.
func (g *Game) Configure(category, difficulty string) {
	p, err := config.ParseDifficultyPreset(difficulty)
	if err != nil && g.log != nil {
		g.log.Warn("Unknown difficulty, using normal", "preset", difficulty)
	}
	g.startCategory = category
	g.startPreset = p
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Typer"
}

// Label returns the word category being played.
func (g *Game) Label() string {
	return g.category
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	base, err := config.LoadTyper(configPath)
	if err != nil && g.log != nil {
		g.log.Warn("Using default config", "error", err)
	}
	g.base = base

	g.preset = g.startPreset
	if g.preset == "" {
		g.preset = config.DifficultyNormal
	}
	g.cfg = g.presetConfig()

	g.category = g.base.Gameplay.Category
	if g.startCategory != "" {
		g.category = g.startCategory
	}
	if name, ok := words.NormalizeCategory(g.category); ok {
		g.category = name
	}

	g.dt = cfg.TickSeconds()
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	if g.screenW <= 0 || g.screenH <= 0 {
		g.screenW, g.screenH = core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.engine = engine.New(g.params(g.cfg.Gameplay.Lives), rng, g.measure())
	g.engine.LoadWordBank(words.Load(g.source, g.category, g.log))

	g.mode = ModeActive
	g.exit = false
	g.syncMenu()
}

// Resize adapts the cell scaling to a new screen without restarting.
func (g *Game) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.screenW, g.screenH = width, height
	if g.engine != nil {
		g.engine.SetMeasure(g.measure())
		g.engine.SetLineHeight(g.unitsPerRow())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || g.exit {
		return core.StepResult{State: g.State()}
	}

	switch g.mode {
	case ModeActive:
		g.stepActive(in)
	case ModePaused:
		if in.Has(core.ActionPause) {
			g.fire(TriggerResume)
		} else if in.Has(core.ActionRestart) {
			g.fire(TriggerRestart)
		} else if in.Has(core.ActionExit) {
			g.exit = true
		}
	case ModeEnded:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.fire(TriggerRestart)
		} else if in.Has(core.ActionExit) {
			g.exit = true
		}
	case ModeConfigMenu:
		g.stepMenu(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepActive(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.fire(TriggerPause)
		return
	}

	for _, r := range in.Keys {
		g.engine.SubmitChar(r)
	}

	if res := g.engine.Tick(g.dt); res.Ended {
		g.fire(TriggerLose)
		if g.log != nil {
			s := g.engine.Snapshot()
			g.log.Info("Game over", "category", g.category, "score", s.Score, "words", s.WordsSpawned)
		}
	}
}

func (g *Game) stepMenu(in core.InputFrame) {
	categories := g.source.Categories()
	if len(categories) == 0 {
		if in.Has(core.ActionExit) {
			g.exit = true
		}
		return
	}

	switch {
	case in.Has(core.ActionUp):
		g.menuCategory = (g.menuCategory - 1 + len(categories)) % len(categories)
	case in.Has(core.ActionDown):
		g.menuCategory = (g.menuCategory + 1) % len(categories)
	case in.Has(core.ActionLeft):
		g.menuPreset = (g.menuPreset - 1 + len(config.Presets)) % len(config.Presets)
	case in.Has(core.ActionRight):
		g.menuPreset = (g.menuPreset + 1) % len(config.Presets)
	case in.Has(core.ActionConfirm):
		g.restart(categories[g.menuCategory], config.Presets[g.menuPreset])
	case in.Has(core.ActionExit):
		g.exit = true
	}
}

// restart starts a new session with restart lives and the chosen settings.
func (g *Game) restart(category string, preset config.DifficultyPreset) {
	g.category = category
	g.preset = preset
	g.cfg = g.presetConfig()

	g.engine.LoadWordBank(words.Load(g.source, g.category, g.log))
	g.engine.Reconfigure(g.params(g.cfg.Gameplay.RestartLives))
	g.fire(TriggerConfirm)
}

func (g *Game) fire(t Trigger) {
	next, ok := Next(g.mode, t)
	if !ok {
		return
	}
	if next == ModeConfigMenu {
		g.syncMenu()
	}
	g.mode = next
}

// syncMenu points the menu cursor at the current category and preset.
func (g *Game) syncMenu() {
	if i := slices.Index(g.source.Categories(), g.category); i >= 0 {
		g.menuCategory = i
	} else {
		g.menuCategory = 0
	}
	if i := slices.Index(config.Presets, g.preset); i >= 0 {
		g.menuPreset = i
	}
}

func (g *Game) presetConfig() config.TyperConfig {
	cfg := g.base
	config.ApplyTyperPreset(&cfg, g.preset)
	return cfg
}

// params converts the current config into engine parameters.
func (g *Game) params(lives int) engine.Params {
	c := g.cfg
	return engine.Params{
		Field: engine.Field{
			Width:       c.Field.Width,
			Height:      c.Field.Height,
			PanelHeight: c.Field.PanelHeight,
			LineHeight:  g.unitsPerRow(),
		},
		Lives:         lives,
		Speed:         c.Gameplay.Speed,
		SpawnInterval: c.Gameplay.SpawnInterval,
		Ramp: engine.Ramp{
			Enabled:      c.Ramp.Enabled,
			Every:        c.Ramp.Every,
			SpeedStep:    c.Ramp.SpeedStep,
			IntervalStep: c.Ramp.IntervalStep,
			MinInterval:  c.Ramp.MinInterval,
		},
	}
}

// Field units covered by one terminal cell.
func (g *Game) unitsPerCol() float64 { return g.cfg.Field.Width / float64(g.screenW) }
func (g *Game) unitsPerRow() float64 { return g.cfg.Field.Height / float64(g.screenH) }

// measure returns the width of a word in field units at the current scale.
func (g *Game) measure() engine.Measure {
	unit := g.unitsPerCol()
	return func(text string) float64 {
		return float64(runewidth.StringWidth(text)) * unit
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.mode == ModeEnded,
		Paused:   g.mode == ModePaused,
		Exit:     g.exit,
	}
}

// Mode returns the current screen.
func (g *Game) Mode() Mode {
	return g.mode
}

// WordsSpawned returns how many words the current session has spawned.
func (g *Game) WordsSpawned() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Snapshot().WordsSpawned
}
