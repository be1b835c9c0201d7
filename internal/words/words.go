// Package words supplies the word banks a typing session draws from.
// Lists are embedded in the binary and may be overridden per category by
// plain text files on disk.
package words

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// Category names in menu order. Mix combines all the others.
const (
	CategoryMix           = "Mix"
	CategoryTechnology    = "Technology"
	CategoryFood          = "Food"
	CategoryEntertainment = "Entertainment"
)

// Categories lists every built-in category in menu order.
var Categories = []string{CategoryMix, CategoryTechnology, CategoryFood, CategoryEntertainment}

// ErrUnknownCategory is returned for a category no source knows about.
var ErrUnknownCategory = errors.New("words: unknown category")

//go:embed lists/*.txt
var lists embed.FS

// Source provides word lists by category.
type Source interface {
	Words(category string) ([]string, error)
	Categories() []string
}

// Embedded serves the lists compiled into the binary.
type Embedded struct{}

// Categories implements Source.
func (Embedded) Categories() []string { return Categories }

// Words implements Source.
func (Embedded) Words(category string) ([]string, error) {
	name, ok := NormalizeCategory(category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	if name == CategoryMix {
		var all []string
		for _, c := range Categories[1:] {
			w, err := readEmbedded(c)
			if err != nil {
				return nil, err
			}
			all = append(all, w...)
		}
		return lo.Uniq(all), nil
	}
	return readEmbedded(name)
}

func readEmbedded(category string) ([]string, error) {
	f, err := lists.Open("lists/" + fileName(category))
	if err != nil {
		return nil, fmt.Errorf("words: open embedded %s: %w", category, err)
	}
	defer f.Close()
	return Parse(f)
}

// Dir reads <Path>/<category>.txt, using Fallback when the file is absent.
type Dir struct {
	Path     string
	Fallback Source
}

// Categories implements Source.
func (d Dir) Categories() []string {
	if d.Fallback != nil {
		return d.Fallback.Categories()
	}
	return Categories
}

// Words implements Source.
func (d Dir) Words(category string) ([]string, error) {
	name, ok := NormalizeCategory(category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	f, err := os.Open(filepath.Join(d.Path, fileName(name)))
	if errors.Is(err, os.ErrNotExist) && d.Fallback != nil {
		return d.Fallback.Words(name)
	}
	if err != nil {
		return nil, fmt.Errorf("words: open %s list: %w", name, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse splits r on whitespace. Repeated words are kept, so a word listed
// twice is picked twice as often.
func Parse(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read list: %w", err)
	}
	return out, nil
}

// NormalizeCategory matches a name case-insensitively against the built-in categories.
func NormalizeCategory(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return lo.Find(Categories, func(c string) bool {
		return strings.EqualFold(c, s)
	})
}

// Load fetches a bank for category, logging instead of failing so a session
// can still start with an empty bank.
func Load(src Source, category string, logger *log.Logger) []string {
	w, err := src.Words(category)
	if err != nil {
		if logger != nil {
			logger.Warn("Failed to load words", "category", category, "error", err)
		}
		return nil
	}
	if len(w) == 0 && logger != nil {
		logger.Warn("No words loaded", "category", category)
	}
	return w
}

func fileName(category string) string {
	return strings.ToLower(category) + ".txt"
}
