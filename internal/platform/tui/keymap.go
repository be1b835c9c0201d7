package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-typer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Printable runes are always typed; q and r additionally set Exit and
// Restart so screens that don't take text can react to them.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.Type {
	case tea.KeyCtrlC:
		return true
	case tea.KeyEsc:
		frame.Set(core.ActionPause)
	case tea.KeyEnter:
		frame.Set(core.ActionConfirm)
		frame.Type(core.KeyEnter)
	case tea.KeyBackspace, tea.KeyCtrlH:
		frame.Type(core.KeyBackspace)
	case tea.KeyUp:
		frame.Set(core.ActionUp)
	case tea.KeyDown:
		frame.Set(core.ActionDown)
	case tea.KeyLeft:
		frame.Set(core.ActionLeft)
	case tea.KeyRight:
		frame.Set(core.ActionRight)
	case tea.KeySpace:
		frame.Type(' ')
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		for _, r := range msg.Runes {
			km.typeRune(r, frame)
		}
	}
	return false
}

func (km *KeyMapper) typeRune(r rune, frame *core.InputFrame) {
	switch r {
	case '\r', '\n':
		frame.Type(core.KeyEnter)
		return
	case 'q', 'Q':
		frame.Set(core.ActionExit)
	case 'r', 'R':
		frame.Set(core.ActionRestart)
	}
	if unicode.IsPrint(r) {
		frame.Type(r)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
