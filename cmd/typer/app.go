package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-typer/internal/config"
	"github.com/vovakirdan/tui-typer/internal/core"
	"github.com/vovakirdan/tui-typer/internal/games/typer"
	"github.com/vovakirdan/tui-typer/internal/platform/tui"
	"github.com/vovakirdan/tui-typer/internal/results"
	"github.com/vovakirdan/tui-typer/internal/storage"
	"github.com/vovakirdan/tui-typer/internal/words"
)

// app holds what every command opens: logger, word source and the two sinks.
type app struct {
	logger  *log.Logger
	source  words.Source
	store   *storage.Store
	results *results.Log

	logFile io.Closer
}

// openApp wires the shared collaborators. Interactive commands log to a
// file so the alt screen stays clean.
func openApp(interactive bool) *app {
	a := &app{}

	if interactive {
		logger, f, err := tui.OpenLogFile(config.DefaultPaths().Log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			logger = tui.NewLogger(io.Discard, "typer")
		}
		a.logger, a.logFile = logger, f
	} else {
		a.logger = tui.NewLogger(os.Stderr, "typer")
	}
	if err := tui.SetLevel(a.logger, flagLogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	a.source = words.Dir{Path: config.ExpandHome(flagWordsDir), Fallback: words.Embedded{}}
	typer.SetLogger(a.logger)
	typer.SetWordSource(a.source)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	a.store = store

	res, err := results.Open(config.ExpandHome(flagResultsPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results log: %v\n", err)
		res = nil
	}
	a.results = res

	return a
}

func (a *app) recorder() *tui.Recorder {
	return tui.NewRecorder(a.store, a.results, a.logger)
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
