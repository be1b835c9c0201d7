package typer

import (
	"github.com/vovakirdan/tui-typer/internal/config"
	"github.com/vovakirdan/tui-typer/internal/games/typer/engine"
)

// Snapshot captures the adapter and engine state for determinism testing.
type Snapshot struct {
	Mode     Mode
	Category string
	Preset   config.DifficultyPreset
	Exit     bool
	Engine   engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:     g.mode,
		Category: g.category,
		Preset:   g.preset,
		Exit:     g.exit,
	}
	if g.engine != nil {
		s.Engine = g.engine.Snapshot()
	}
	return s
}
