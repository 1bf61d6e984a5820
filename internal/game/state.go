package game

// State is the session mode. Exactly one mode is active at a time; the
// simulation advances only in StateRunning.
type State int

const (
	// StateIntro waits for the first confirm before anything moves.
	StateIntro State = iota
	// StateRunning is active play: physics, obstacles, collisions, scoring.
	StateRunning
	// StatePaused is a player-requested freeze.
	StatePaused
	// StateUnfocused is an automatic freeze while the window lacks focus.
	StateUnfocused
	// StateExitConfirm is the modal "really quit?" prompt.
	StateExitConfirm
	// StateGameOver holds after a crash until a restart is confirmed.
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "Intro"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateUnfocused:
		return "Unfocused"
	case StateExitConfirm:
		return "ExitConfirm"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
