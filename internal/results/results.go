// Package results keeps the plain text session log: one line per finished
// game, appended and never rewritten.
package results

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// TimeLayout is the timestamp format of a result line.
const TimeLayout = "2006-01-02 15:04:05"

// Format renders a single result line without the trailing newline.
func Format(score int, at time.Time) string {
	return fmt.Sprintf("Date: %s, Score: %d", at.Format(TimeLayout), score)
}

// Log appends results to a file. Safe for concurrent use.
type Log struct {
	mu   sync.Mutex
	path string
}

// Open returns a Log writing to path, creating its directory if needed.
func Open(path string) (*Log, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("results: create directory: %w", err)
		}
	}
	return &Log{path: path}, nil
}

// Path returns the file the log writes to.
func (l *Log) Path() string { return l.path }

// Append writes one result line stamped with local time.
func (l *Log) Append(score int, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("results: open %s: %w", l.path, err)
	}
	if _, err := fmt.Fprintln(f, Format(score, at.Local())); err != nil {
		f.Close()
		return fmt.Errorf("results: write: %w", err)
	}
	return f.Close()
}

// Tail returns up to the last n lines, oldest first. A missing file is empty.
func (l *Log) Tail(n int) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", l.path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		lines = append(lines, sc.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("results: read: %w", err)
	}
	return lines, nil
}

// Entry is a parsed result line.
type Entry struct {
	At    time.Time
	Score int
}

// Parse reads a line produced by Format. Times are taken as local.
func Parse(line string) (Entry, error) {
	var date, clock string
	var score int
	if _, err := fmt.Sscanf(line, "Date: %s %s Score: %d", &date, &clock, &score); err != nil {
		return Entry{}, fmt.Errorf("results: parse %q: %w", line, err)
	}
	at, err := time.ParseInLocation(TimeLayout, date+" "+strings.TrimSuffix(clock, ","), time.Local)
	if err != nil {
		return Entry{}, fmt.Errorf("results: parse %q: %w", line, err)
	}
	return Entry{At: at, Score: score}, nil
}
