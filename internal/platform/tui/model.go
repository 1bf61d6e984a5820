package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redkatdev/hovercat/internal/core"
	"github.com/redkatdev/hovercat/internal/game"
	"github.com/redkatdev/hovercat/internal/storage"
)

// maxFrameDt caps the simulation step after a stall (debugger, terminal
// resize storm) so the player does not teleport through a pipe.
const maxFrameDt = 0.1

// Model is the Bubble Tea model running a game session.
type Model struct {
	session   *game.Session
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	frame     game.SignalFrame
	lastTick  time.Time
	quitting  bool
	runSaved  bool // Whether this run's score was recorded already
}

// NewModel creates a model driving the given session.
func NewModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, caps game.Capabilities) Model {
	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(caps),
		frame:     game.NewSignalFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		m.keyMapper.MapKey(msg, &m.frame)
		return m, nil

	case tea.MouseMsg:
		m.keyMapper.MapMouse(msg, &m.frame)
		return m, nil

	case tea.FocusMsg:
		m.keyMapper.MapFocus(true, &m.frame)
		return m, nil

	case tea.BlurMsg:
		m.keyMapper.MapFocus(false, &m.frame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the
// previous tick. The session itself decides what the elapsed time means
// in its current state.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
	}
	m.lastTick = now

	result := m.session.Tick(dt, m.frame)
	m.frame.Clear()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.recordRun()

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished run's score once per game over.
func (m *Model) recordRun() {
	switch m.session.State() {
	case game.StateGameOver:
		if !m.runSaved && m.session.Score() > 0 && m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.session.Score())
		}
		m.runSaved = true
	case game.StateRunning:
		m.runSaved = false
	}
}

// saveScreenshot dumps the current frame as plain text under
// ~/.hovercat/screenshots.
func (m *Model) saveScreenshot() {
	renderFrame(m.screen, m.session)

	dir := filepath.Join(os.Getenv("HOME"), ".hovercat", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("hovercat_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	renderFrame(m.screen, m.session)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, caps game.Capabilities) error {
	model := NewModel(session, store, cfg, caps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks stand in for taps
		tea.WithReportFocus(),     // Auto-pause when the terminal loses focus
	)

	_, err := p.Run()
	return err
}
