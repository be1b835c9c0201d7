package engine

// Snapshot is a read-only copy of the engine state. It stays valid after
// further calls into the engine.
type Snapshot struct {
	Words         []Word
	Score         int
	Lives         int
	Typed         string
	Status        Status
	Speed         float64
	SpawnInterval float64
	WordsSpawned  int
	BankSize      int
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	words := make([]Word, len(e.words))
	copy(words, e.words)

	return Snapshot{
		Words:         words,
		Score:         e.score,
		Lives:         e.lives,
		Typed:         string(e.typed),
		Status:        e.status,
		Speed:         e.speed,
		SpawnInterval: e.spawnInterval,
		WordsSpawned:  e.wordsSpawned,
		BankSize:      len(e.bank),
	}
}
