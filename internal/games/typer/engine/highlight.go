package engine

import "strings"

// highlight marks the candidate word for the current buffer: the prefix match
// with the largest X. Every other word loses its highlight.
func (e *Engine) highlight() {
	buf := string(e.typed)
	best := mostUrgent(e.words, func(w Word) bool {
		return strings.HasPrefix(w.Text, buf)
	})

	for i := range e.words {
		if i == best {
			e.words[i].Typed = buf
		} else {
			e.words[i].Typed = ""
		}
	}
}

// Candidate returns the index of the highlighted word, or -1.
func (e *Engine) Candidate() int {
	if len(e.typed) == 0 {
		return -1
	}
	for i, w := range e.words {
		if w.Typed != "" {
			return i
		}
	}
	return -1
}

// mostUrgent returns the index of the matching word closest to the right
// boundary. Ties keep the earliest word in spawn order. Returns -1 if none match.
func mostUrgent(words []Word, match func(Word) bool) int {
	best := -1
	for i, w := range words {
		if !match(w) {
			continue
		}
		if best < 0 || w.X > words[best].X {
			best = i
		}
	}
	return best
}
