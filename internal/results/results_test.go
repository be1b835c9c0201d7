package results

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	at := time.Date(2024, 3, 9, 7, 5, 2, 0, time.UTC)
	got := Format(42, at)
	want := "Date: 2024-03-09 07:05:02, Score: 42"
	if got != want {
		t.Errorf("Format() = %q, expected %q", got, want)
	}
}

func TestAppendAndTail(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "nested", "results.txt"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	lines, err := l.Tail(5)
	if err != nil || len(lines) != 0 {
		t.Fatalf("Tail() on a missing file = %v, %v", lines, err)
	}

	at := time.Now()
	for i := 0; i < 4; i++ {
		if err := l.Append(i, at); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	lines, err = l.Tail(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("Tail(2) returned %d lines", len(lines))
	}
	if lines[1] != Format(3, at.Local()) {
		t.Errorf("last line = %q, expected score 3", lines[1])
	}

	all, _ := l.Tail(0)
	if len(all) != 4 {
		t.Errorf("Tail(0) returned %d lines, expected all 4", len(all))
	}
}

func TestAppendConcurrent(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "results.txt"))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if err := l.Append(score, time.Now()); err != nil {
				t.Errorf("Append(%d) failed: %v", score, err)
			}
		}(i)
	}
	wg.Wait()

	lines, _ := l.Tail(0)
	if len(lines) != 20 {
		t.Errorf("got %d lines, expected 20", len(lines))
	}
	for _, line := range lines {
		var score int
		var date, clock string
		if _, err := fmt.Sscanf(line, "Date: %s %s Score: %d", &date, &clock, &score); err != nil {
			t.Errorf("malformed line %q: %v", line, err)
		}
	}
}

func TestParse(t *testing.T) {
	at := time.Date(2024, 3, 9, 7, 5, 2, 0, time.Local)
	e, err := Parse(Format(17, at))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if e.Score != 17 || !e.At.Equal(at) {
		t.Errorf("Parse() = %+v, expected score 17 at %v", e, at)
	}

	for _, bad := range []string{"", "Score: 3", "Date: yesterday, Score: 3"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) expected error", bad)
		}
	}
}
