package tui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-typer/internal/core"
	"github.com/vovakirdan/tui-typer/internal/registry"
	"github.com/vovakirdan/tui-typer/internal/results"
	"github.com/vovakirdan/tui-typer/internal/storage"
)

// wordCounter is implemented by games that report how many words they spawned.
type wordCounter interface {
	WordsSpawned() int
}

// Recorder persists finished sessions to the result log and the score store.
// Either sink may be nil. Failures are logged, never returned to the game loop.
type Recorder struct {
	Store     *storage.Store
	Results   *results.Log
	Logger    *log.Logger
	SessionID string

	now func() time.Time
}

// NewRecorder creates a recorder with a fresh session id.
func NewRecorder(store *storage.Store, res *results.Log, logger *log.Logger) *Recorder {
	return &Recorder{
		Store:     store,
		Results:   res,
		Logger:    logger,
		SessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// Record saves the final state of a game.
func (r *Recorder) Record(game registry.Game, st core.GameState) {
	if r == nil {
		return
	}
	now := time.Now
	if r.now != nil {
		now = r.now
	}

	if r.Results != nil {
		if err := r.Results.Append(st.Score, now()); err != nil {
			r.warn("could not append result", err)
		}
	}

	if r.Store != nil {
		rec := storage.Record{
			SessionID: r.SessionID,
			Category:  game.ID(),
			Score:     st.Score,
		}
		if l, ok := game.(registry.Labeled); ok && l.Label() != "" {
			rec.Category = l.Label()
		}
		if wc, ok := game.(wordCounter); ok {
			rec.Words = wc.WordsSpawned()
		}
		if rec.SessionID == "" {
			rec.SessionID = uuid.NewString()
		}
		if _, err := r.Store.SaveScore(rec); err != nil {
			r.warn("could not save score", err)
		}
	}
}

func (r *Recorder) warn(msg string, err error) {
	if r.Logger != nil {
		r.Logger.Warn(msg, "session", r.SessionID, "error", err)
	}
}
