package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redkatdev/hovercat/internal/core"
	"github.com/redkatdev/hovercat/internal/game"
)

func newTestModel() Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	caps := game.Capabilities{Touch: true, WindowFocus: true}
	return NewModel(newTestSession(), nil, cfg, caps)
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	updated, _ := m.Update(TickMsg(at))
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", updated)
	}
	return model
}

func TestModelQuitFlow(t *testing.T) {
	m := newTestModel()
	now := time.Now()

	// Start the game
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, now)
	if m.session.State() != game.StateRunning {
		t.Fatalf("state = %v, expected running", m.session.State())
	}

	// Esc opens the quit prompt
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = tick(t, m, now.Add(time.Millisecond))
	if m.session.State() != game.StateExitConfirm {
		t.Fatalf("state = %v, expected exit confirm", m.session.State())
	}

	// Enter confirms, the tick quits the program
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	updated, cmd := m.Update(TickMsg(now.Add(2 * time.Millisecond)))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("confirming the prompt should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestModelBlurPausesSession(t *testing.T) {
	m := newTestModel()
	now := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, now)

	m, _ = update(t, m, tea.BlurMsg{})
	m = tick(t, m, now.Add(time.Millisecond))
	if m.session.State() != game.StateUnfocused {
		t.Errorf("state = %v, expected unfocused after blur", m.session.State())
	}

	m, _ = update(t, m, tea.FocusMsg{})
	m = tick(t, m, now.Add(2*time.Millisecond))
	if m.session.State() != game.StateRunning {
		t.Errorf("state = %v, expected running after refocus", m.session.State())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.screen.Width() != 40 || m.screen.Height() != 12 {
		t.Errorf("screen = %dx%d, expected 40x12", m.screen.Width(), m.screen.Height())
	}
	if m.View() == "" {
		t.Error("view should render after a resize")
	}
}

func TestModelFrameDtCapped(t *testing.T) {
	m := newTestModel()
	now := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, now)

	// A long stall must not advance the simulation by the full gap
	m = tick(t, m, now.Add(10*time.Second))
	if m.session.Speed() > m.session.Config().Speed.Base+m.session.Config().Speed.IncreasePerSec*maxFrameDt+0.001 {
		t.Errorf("speed = %v, stall should be capped at %vs of simulation", m.session.Speed(), maxFrameDt)
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", updated)
	}
	return model, cmd
}
