package typer

// Mode is the screen the game is showing.
type Mode int

const (
	ModeActive     Mode = iota // Words moving, keys go to the input buffer
	ModePaused                 // Simulation frozen
	ModeEnded                  // Out of lives, final score shown
	ModeConfigMenu             // Choosing category and difficulty before a restart
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeActive:
		return "active"
	case ModePaused:
		return "paused"
	case ModeEnded:
		return "ended"
	case ModeConfigMenu:
		return "config"
	default:
		return "unknown"
	}
}

// Trigger is an event that may move the game to another mode.
type Trigger int

const (
	TriggerPause Trigger = iota
	TriggerResume
	TriggerLose
	TriggerRestart
	TriggerConfirm
)

var transitions = map[Mode]map[Trigger]Mode{
	ModeActive: {
		TriggerPause: ModePaused,
		TriggerLose:  ModeEnded,
	},
	ModePaused: {
		TriggerResume:  ModeActive,
		TriggerRestart: ModeConfigMenu,
	},
	ModeEnded: {
		TriggerRestart: ModeConfigMenu,
	},
	ModeConfigMenu: {
		TriggerConfirm: ModeActive,
	},
}

// Next returns the mode reached from m on t. Pairs outside the table are
// rejected and leave the mode unchanged.
func Next(m Mode, t Trigger) (Mode, bool) {
	to, ok := transitions[m][t]
	if !ok {
		return m, false
	}
	return to, true
}
