package game

import "testing"

func TestMapperKeys(t *testing.T) {
	m := NewMapper(Capabilities{WindowFocus: true})

	tests := []struct {
		key  string
		want Signal
	}{
		{" ", SignalFlap},
		{"up", SignalFlap},
		{"w", SignalFlap},
		{"enter", SignalConfirm},
		{"y", SignalConfirm},
		{"n", SignalCancel},
		{"p", SignalPauseToggle},
		{"m", SignalMusicToggle},
		{"esc", SignalExitRequest},
		{"q", SignalExitRequest},
		{"ctrl+c", SignalExitRequest},
	}
	for _, tc := range tests {
		f := NewSignalFrame()
		m.MapKey(tc.key, &f)
		if !f.Has(tc.want) {
			t.Errorf("key %q did not raise %v", tc.key, tc.want)
		}
	}

	f := NewSignalFrame()
	m.MapKey("x", &f)
	for s := SignalFlap; s <= SignalFocusGained; s++ {
		if f.Has(s) {
			t.Errorf("unbound key raised %v", s)
		}
	}
}

// Without window management there is no window to close: Esc pauses instead.
func TestMapperEscWithoutWindowManagement(t *testing.T) {
	m := NewMapper(Capabilities{WindowFocus: false})
	f := NewSignalFrame()
	m.MapKey("esc", &f)
	if !f.Has(SignalPauseToggle) {
		t.Error("esc should pause on embedded variants")
	}
	if f.Has(SignalExitRequest) {
		t.Error("esc should not request exit on embedded variants")
	}
}

func TestMapperTap(t *testing.T) {
	m := NewMapper(Capabilities{Touch: true})

	f := NewSignalFrame()
	m.MapTap(false, &f)
	if !f.Has(SignalFlap) || !f.Has(SignalConfirm) {
		t.Error("tap should flap and confirm")
	}

	f = NewSignalFrame()
	m.MapTap(true, &f)
	if !f.Has(SignalPauseToggle) {
		t.Error("title-area tap should pause")
	}
	if f.Has(SignalFlap) {
		t.Error("title-area tap should not flap")
	}

	// No touch capability: taps ignored
	noTouch := NewMapper(Capabilities{})
	f = NewSignalFrame()
	noTouch.MapTap(false, &f)
	if f.Has(SignalFlap) {
		t.Error("tap mapped without touch capability")
	}
}

func TestMapperFocus(t *testing.T) {
	m := NewMapper(Capabilities{WindowFocus: true})

	f := NewSignalFrame()
	m.MapFocus(false, &f)
	if !f.Has(SignalFocusLost) {
		t.Error("blur should raise FocusLost")
	}

	f = NewSignalFrame()
	m.MapFocus(true, &f)
	if !f.Has(SignalFocusGained) {
		t.Error("focus should raise FocusGained")
	}

	// Without the capability, focus events are ignored and the session
	// never auto-pauses.
	noWin := NewMapper(Capabilities{})
	f = NewSignalFrame()
	noWin.MapFocus(false, &f)
	if f.Has(SignalFocusLost) {
		t.Error("focus event mapped without capability")
	}
}
