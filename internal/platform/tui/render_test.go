package tui

import (
	"strings"
	"testing"

	"github.com/redkatdev/hovercat/internal/config"
	"github.com/redkatdev/hovercat/internal/core"
	"github.com/redkatdev/hovercat/internal/game"
)

func newTestSession() *game.Session {
	return game.NewSession(config.Default(), 1, nil, nil)
}

func confirmFrame() game.SignalFrame {
	f := game.NewSignalFrame()
	f.Set(game.SignalConfirm)
	return f
}

func TestRenderFrameIntroOverlay(t *testing.T) {
	s := newTestSession()
	screen := core.NewScreen(80, 24)

	renderFrame(screen, s)

	if !strings.Contains(screen.String(), "H O V E R C A T") {
		t.Error("Intro overlay should show the title")
	}
}

func TestRenderFrameDrawsHUD(t *testing.T) {
	s := newTestSession()
	screen := core.NewScreen(80, 24)

	renderFrame(screen, s)

	if !strings.Contains(screen.String(), "Score: 0") {
		t.Error("HUD should show the score")
	}
}

func TestRenderFrameDrawsPlayer(t *testing.T) {
	s := newTestSession()
	s.Tick(0, confirmFrame())
	screen := core.NewScreen(80, 24)

	renderFrame(screen, s)

	if !strings.Contains(screen.String(), "(o.o)") {
		t.Error("Player sprite should be drawn with open eyes")
	}
}

func TestRenderFrameGameOver(t *testing.T) {
	s := newTestSession()
	s.Tick(0, confirmFrame())

	// Let gravity drop the player out of bounds
	empty := game.NewSignalFrame()
	for i := 0; i < 600 && s.State() != game.StateGameOver; i++ {
		s.Tick(1.0/60.0, empty)
	}
	if s.State() != game.StateGameOver {
		t.Fatal("session should have crashed")
	}

	screen := core.NewScreen(80, 24)
	renderFrame(screen, s)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("Game over overlay missing")
	}
	if strings.Contains(out, "Press Enter to restart") {
		t.Error("Restart hint should be hidden during the lockout")
	}

	// Wait out the lockout
	for i := 0; i < 120; i++ {
		s.Tick(1.0/60.0, empty)
	}
	renderFrame(screen, s)
	if !strings.Contains(screen.String(), "Press Enter to restart") {
		t.Error("Restart hint should appear after the lockout")
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	screen := core.NewScreen(40, 12)
	s := newTestSession()
	renderFrame(screen, s)

	out := RenderScreen(screen)
	if got := strings.Count(out, "\n") + 1; got != 12 {
		t.Errorf("RenderScreen produced %d lines, expected 12", got)
	}
}

func TestRenderFrameSmallScreen(t *testing.T) {
	// A tiny terminal must not panic
	screen := core.NewScreen(10, 4)
	s := newTestSession()
	renderFrame(screen, s)
}
