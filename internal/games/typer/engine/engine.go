// Package engine contains the typing simulation: word spawning, movement,
// boundary crossing, typed-prefix matching and difficulty ramp.
// It knows nothing about terminals or rendering; the caller supplies a
// width function and a seeded RNG, and reads state back through Snapshot.
package engine

import (
	"math"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Status is the engine's lifecycle state.
type Status int

const (
	StatusRunning Status = iota
	StatusEnded
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Field describes the playable area in field units.
// Words travel along X from negative values towards Width.
type Field struct {
	Width       float64
	Height      float64
	PanelHeight float64 // Strip at the bottom reserved for the score panel
	LineHeight  float64 // Height of one rendered word
}

// Ramp describes the step difficulty increase applied as words spawn.
type Ramp struct {
	Enabled      bool
	Every        int     // Apply a step every N spawned words
	SpeedStep    float64 // Added to speed on each step
	IntervalStep float64 // Subtracted from spawn interval on each step
	MinInterval  float64 // Spawn interval never drops below this
}

// Params holds the initial values the engine starts (and resets) from.
type Params struct {
	Field         Field
	Lives         int
	Speed         float64 // Field units per second
	SpawnInterval float64 // Seconds between spawns
	Ramp          Ramp
}

// Measure returns the rendered width of text in field units.
type Measure func(text string) float64

// Word is a word currently moving across the field.
type Word struct {
	Text  string
	Typed string // Highlighted prefix, empty unless this is the current candidate
	X     float64
	Y     float64
	Width float64
}

// Right returns the x-coordinate of the word's leading (right) edge.
func (w Word) Right() float64 {
	return w.X + w.Width
}

// TickResult reports what a single Tick did.
type TickResult struct {
	Crossed int  // Words lost past the right boundary this tick
	Spawned bool // Whether a word spawned this tick
	Ended   bool // True only on the tick that ended the session
}

// Engine runs one typing session. It is not safe for concurrent use.
type Engine struct {
	params  Params
	rng     *rand.Rand
	measure Measure

	bank  []string
	words []Word

	score         int
	lives         int
	wordsSpawned  int
	speed         float64
	spawnInterval float64
	sinceSpawn    float64
	typed         []rune
	status        Status
}

// New creates an engine with the given parameters.
// A nil rng falls back to a fixed seed; a nil measure counts runes.
func New(p Params, rng *rand.Rand, measure Measure) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	e := &Engine{
		params: p,
		rng:    rng,
	}
	e.SetMeasure(measure)
	e.Reset()
	return e
}

// SetMeasure replaces the width function. Words already on the field keep
// their measured width until they leave it.
func (e *Engine) SetMeasure(m Measure) {
	if m == nil {
		m = func(text string) float64 {
			return float64(utf8.RuneCountInString(text))
		}
	}
	e.measure = m
}

// LoadWordBank replaces the word bank. Blank entries are skipped, so an input
// with no usable words leaves the bank empty and spawning idles.
func (e *Engine) LoadWordBank(words []string) {
	bank := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		bank = append(bank, w)
	}
	e.bank = bank
}

// BankSize returns the number of words in the bank.
func (e *Engine) BankSize() int {
	return len(e.bank)
}

// Reset restores the initial state from the current parameters.
// The word bank is kept.
func (e *Engine) Reset() {
	e.score = 0
	e.lives = e.params.Lives
	e.wordsSpawned = 0
	e.speed = e.params.Speed
	e.spawnInterval = e.params.SpawnInterval
	e.sinceSpawn = 0
	e.words = e.words[:0]
	e.typed = e.typed[:0]
	e.status = StatusRunning
}

// Reconfigure replaces the parameters and resets the session.
func (e *Engine) Reconfigure(p Params) {
	e.params = p
	e.Reset()
}

// SetLineHeight changes the height of one rendered word without resetting.
// Only words spawned afterwards use the new spawn band.
func (e *Engine) SetLineHeight(h float64) {
	e.params.Field.LineHeight = h
}

// Params returns the parameters the engine resets to.
func (e *Engine) Params() Params {
	return e.params
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Tick advances the simulation by dt seconds. Non-positive, NaN and
// infinite steps are ignored.
func (e *Engine) Tick(dt float64) TickResult {
	var res TickResult
	if e.status == StatusEnded || !(dt > 0) || math.IsInf(dt, 0) {
		return res
	}

	for i := range e.words {
		e.words[i].X += e.speed * dt
	}

	res.Crossed = e.removeCrossed()

	e.sinceSpawn += dt
	if e.sinceSpawn >= e.spawnInterval && e.lives > 0 {
		e.sinceSpawn = 0
		if e.spawn() {
			res.Spawned = true
			e.wordsSpawned++
			e.applyRamp()
		}
	}

	if e.lives <= 0 {
		e.lives = 0
		e.words = e.words[:0]
		e.typed = e.typed[:0]
		e.status = StatusEnded
		res.Ended = true
	}

	return res
}

// removeCrossed drops every word whose leading edge passed the right boundary
// and charges one life per word. Returns the number removed.
func (e *Engine) removeCrossed() int {
	crossed := 0
	kept := e.words[:0]
	for _, w := range e.words {
		if w.Right() > e.params.Field.Width {
			crossed++
			continue
		}
		kept = append(kept, w)
	}
	e.words = kept
	e.lives -= crossed
	return crossed
}

// spawn places a random bank word just off the left edge.
// Returns false when the bank is empty.
func (e *Engine) spawn() bool {
	if len(e.bank) == 0 {
		return false
	}

	text := e.bank[e.rng.Intn(len(e.bank))]
	width := e.measure(text)

	f := e.params.Field
	band := int(f.Height - f.PanelHeight - f.LineHeight)
	y := 0
	if band > 0 {
		y = e.rng.Intn(band)
	}

	e.words = append(e.words, Word{
		Text:  text,
		X:     -width,
		Y:     float64(y),
		Width: width,
	})
	return true
}

// applyRamp bumps difficulty every Ramp.Every spawns. Speed only grows and
// the interval only shrinks, floored at MinInterval. An interval already
// below the floor is left alone.
func (e *Engine) applyRamp() {
	r := e.params.Ramp
	if !r.Enabled || r.Every <= 0 || e.wordsSpawned%r.Every != 0 {
		return
	}
	if r.SpeedStep > 0 {
		e.speed += r.SpeedStep
	}
	if r.IntervalStep > 0 {
		e.spawnInterval = min(e.spawnInterval, max(e.spawnInterval-r.IntervalStep, r.MinInterval))
	}
}

// SubmitChar applies one typed rune to the buffer. Backspace and DEL delete
// the last rune, newline confirms, other control runes are ignored.
func (e *Engine) SubmitChar(r rune) {
	if e.status == StatusEnded {
		return
	}

	switch {
	case r == '\b' || r == 0x7f:
		if len(e.typed) > 0 {
			e.typed = e.typed[:len(e.typed)-1]
		}
	case r == '\r' || r == '\n':
		e.SubmitConfirm()
		return
	case !unicode.IsPrint(r):
		return
	default:
		e.typed = append(e.typed, r)
	}

	e.highlight()
}

// SubmitConfirm commits the buffer. An exact match removes the most urgent
// word with that text and scores a point. The buffer is cleared either way.
func (e *Engine) SubmitConfirm() {
	if e.status == StatusEnded {
		return
	}

	buf := string(e.typed)
	idx := mostUrgent(e.words, func(w Word) bool { return w.Text == buf })
	if idx >= 0 {
		e.words = append(e.words[:idx], e.words[idx+1:]...)
		e.score++
	}

	e.typed = e.typed[:0]
	e.highlight()
}

// Score returns the number of words typed correctly.
func (e *Engine) Score() int {
	return e.score
}

// Lives returns the remaining lives.
func (e *Engine) Lives() int {
	return e.lives
}

// Typed returns the current input buffer.
func (e *Engine) Typed() string {
	return string(e.typed)
}
