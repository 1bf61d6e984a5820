package game

// Signal is a semantic input signal, abstracted from physical key presses
// and taps. The session consumes signals without knowing the input device.
type Signal int

const (
	SignalNone        Signal = iota
	SignalFlap               // Impart an upward impulse
	SignalPauseToggle        // Pause or resume
	SignalConfirm            // Start, restart, confirm exit
	SignalCancel             // Dismiss the exit prompt
	SignalMusicToggle        // Mute or unmute music
	SignalExitRequest        // Open the exit prompt
	SignalFocusLost          // Window lost focus (external level signal)
	SignalFocusGained        // Window regained focus
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalFlap:
		return "Flap"
	case SignalPauseToggle:
		return "PauseToggle"
	case SignalConfirm:
		return "Confirm"
	case SignalCancel:
		return "Cancel"
	case SignalMusicToggle:
		return "MusicToggle"
	case SignalExitRequest:
		return "ExitRequest"
	case SignalFocusLost:
		return "FocusLost"
	case SignalFocusGained:
		return "FocusGained"
	default:
		return "Unknown"
	}
}

// SignalFrame collects the signals raised during one simulation tick.
type SignalFrame struct {
	signals map[Signal]bool
}

// NewSignalFrame creates an empty signal frame.
func NewSignalFrame() SignalFrame {
	return SignalFrame{signals: make(map[Signal]bool)}
}

// Set marks a signal as raised for this frame.
func (f *SignalFrame) Set(s Signal) {
	if f.signals == nil {
		f.signals = make(map[Signal]bool)
	}
	f.signals[s] = true
}

// Has returns true if the given signal was raised this frame.
func (f SignalFrame) Has(s Signal) bool {
	if f.signals == nil {
		return false
	}
	return f.signals[s]
}

// Clear resets all signals for the next frame.
func (f *SignalFrame) Clear() {
	for k := range f.signals {
		delete(f.signals, k)
	}
}

// Capabilities describes the input surface available at startup.
// It is selected once and never changes mid-session.
type Capabilities struct {
	// Touch enables tap input (terminal mouse clicks stand in for taps).
	Touch bool
	// WindowFocus indicates focus-change events are delivered, so the
	// session can auto-pause when the window loses focus.
	WindowFocus bool
}

// Mapper translates named device events into semantic signals according to
// the capability set. Key names follow Bubble Tea conventions (" ", "up",
// "enter", "esc", "ctrl+c") but the mapper itself has no Bubble Tea
// dependency so it stays testable.
type Mapper struct {
	caps Capabilities
}

// NewMapper creates a mapper for the given capability set.
func NewMapper(caps Capabilities) *Mapper {
	return &Mapper{caps: caps}
}

// Capabilities returns the capability set the mapper was built with.
func (m *Mapper) Capabilities() Capabilities {
	return m.caps
}

// MapKey raises the signals for a key press into the frame.
// Keys that mean nothing in this capability set are ignored; the session
// decides what each signal means in its current state.
func (m *Mapper) MapKey(key string, frame *SignalFrame) {
	switch key {
	case " ", "up", "w":
		frame.Set(SignalFlap)
	case "enter":
		frame.Set(SignalConfirm)
	case "y":
		frame.Set(SignalConfirm)
	case "n":
		frame.Set(SignalCancel)
	case "p":
		frame.Set(SignalPauseToggle)
	case "m":
		frame.Set(SignalMusicToggle)
	case "esc":
		if m.caps.WindowFocus {
			frame.Set(SignalExitRequest)
		} else {
			// Embedded variants have no window to close; Esc pauses.
			frame.Set(SignalPauseToggle)
		}
	case "q", "ctrl+c":
		frame.Set(SignalExitRequest)
	}
}

// MapTap raises the signals for a tap. titleArea marks taps on the top
// banner, which pause instead of flapping. Taps double as confirm so the
// intro and restart prompts work without a keyboard.
func (m *Mapper) MapTap(titleArea bool, frame *SignalFrame) {
	if !m.caps.Touch {
		return
	}
	if titleArea {
		frame.Set(SignalPauseToggle)
		return
	}
	frame.Set(SignalFlap)
	frame.Set(SignalConfirm)
}

// MapFocus raises a focus-change signal. Without the WindowFocus
// capability focus events are ignored entirely.
func (m *Mapper) MapFocus(focused bool, frame *SignalFrame) {
	if !m.caps.WindowFocus {
		return
	}
	if focused {
		frame.Set(SignalFocusGained)
	} else {
		frame.Set(SignalFocusLost)
	}
}
