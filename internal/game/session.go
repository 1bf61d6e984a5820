// Package game implements the Hovercat simulation core: player physics,
// procedural obstacle generation, collision detection, scoring, and the
// session state machine that gates them. It is pure logic driven by one
// Tick per frame; rendering, audio, and persistence are collaborators
// behind interfaces.
package game

import (
	"github.com/redkatdev/hovercat/internal/config"
)

// AudioPlayer is the audio collaborator. The session calls it as a side
// effect of state transitions and never queries it back.
type AudioPlayer interface {
	PlayFlap()
	PlayScore()
	PlayHit()
	StartMusic()
	StopMusic()
	PauseMusic()
}

// NopAudio is an AudioPlayer that does nothing, used for tests and for
// sessions without an audio device (SSH play).
type NopAudio struct{}

func (NopAudio) PlayFlap()   {}
func (NopAudio) PlayScore()  {}
func (NopAudio) PlayHit()    {}
func (NopAudio) StartMusic() {}
func (NopAudio) StopMusic()  {}
func (NopAudio) PauseMusic() {}

// TickResult reports what a tick decided beyond internal state.
type TickResult struct {
	// Quit is set when the exit prompt was confirmed; the driver should
	// terminate the process.
	Quit bool
}

// Session is the top-level game state machine and simulation loop. One
// external driver calls Tick exactly once per frame; everything runs
// synchronously within that call, so no locking is needed.
type Session struct {
	cfg   config.Config
	state State
	// prior state to return to when the exit prompt is cancelled
	prevState State

	playerX  float64
	body     Body
	stream   *Stream
	diff     Difficulty
	collider Collider
	scores   *ScoreKeeper
	audio    AudioPlayer

	scrollX    float64 // background scroll offset, wraps at field width
	blinkTimer float64 // eyes stay closed while > 0 (just flapped)
	lockout    float64 // restart input ignored while > 0 after a crash

	musicOn          bool
	musicManuallyOff bool
	quit             bool
}

// NewSession builds a session in the Intro state. A nil audio player or
// store is replaced by a no-op.
func NewSession(cfg config.Config, seed int64, audio AudioPlayer, store HighScoreStore) *Session {
	if audio == nil {
		audio = NopAudio{}
	}
	s := &Session{
		cfg:      cfg,
		state:    StateIntro,
		playerX:  cfg.Field.Width * cfg.Player.XFraction,
		body:     Body{Y: cfg.Field.Height / 2},
		stream:   NewStream(seed, cfg),
		diff:     NewDifficulty(cfg.Speed, cfg.Obstacles.SpawnInterval),
		collider: NewCollider(cfg.Player),
		scores:   NewScoreKeeper(store),
		audio:    audio,
	}
	return s
}

// Tick advances the session by dt seconds with the frame's input signals.
// Signals are always processed so menus stay responsive, but a zero dt
// causes no time-dependent state changes at all.
func (s *Session) Tick(dt float64, in SignalFrame) TickResult {
	s.handleSignals(in)
	if s.quit {
		return TickResult{Quit: true}
	}
	if dt <= 0 {
		return TickResult{}
	}

	switch s.state {
	case StateRunning:
		s.advance(dt)
	case StateGameOver:
		if s.lockout > 0 {
			s.lockout -= dt
			if s.lockout < 0 {
				s.lockout = 0
			}
		}
	}
	return TickResult{}
}

// handleSignals is the single dispatch on the current state. Each state
// consumes only the signals that mean something in it.
func (s *Session) handleSignals(in SignalFrame) {
	switch s.state {
	case StateIntro:
		if in.Has(SignalExitRequest) {
			s.enterExitConfirm(StateIntro)
			return
		}
		if in.Has(SignalMusicToggle) {
			s.toggleMusic()
		}
		if in.Has(SignalConfirm) {
			s.state = StateRunning
			s.startMusic()
		}

	case StateRunning:
		if in.Has(SignalExitRequest) {
			s.enterExitConfirm(StateRunning)
			return
		}
		if in.Has(SignalFocusLost) {
			s.state = StateUnfocused
			s.audio.PauseMusic()
			return
		}
		if in.Has(SignalPauseToggle) {
			s.state = StatePaused
			s.audio.PauseMusic()
			return
		}
		if in.Has(SignalMusicToggle) {
			s.toggleMusic()
		}
		if in.Has(SignalFlap) {
			s.body.Impulse(s.cfg.Physics.JumpForce)
			s.blinkTimer = s.cfg.Player.BlinkDuration
			s.audio.PlayFlap()
		}

	case StatePaused:
		if in.Has(SignalExitRequest) {
			s.enterExitConfirm(StatePaused)
			return
		}
		if in.Has(SignalMusicToggle) {
			s.toggleMusic()
		}
		if in.Has(SignalPauseToggle) {
			s.resumeRunning()
		}

	case StateUnfocused:
		if in.Has(SignalFocusGained) {
			s.resumeRunning()
		}

	case StateExitConfirm:
		if in.Has(SignalConfirm) {
			s.quit = true
			return
		}
		// Esc closes the prompt it opened
		if in.Has(SignalCancel) || in.Has(SignalExitRequest) {
			s.state = s.prevState
			if s.state == StateRunning {
				s.resumeRunning()
			}
		}

	case StateGameOver:
		if in.Has(SignalExitRequest) {
			s.enterExitConfirm(StateGameOver)
			return
		}
		if in.Has(SignalMusicToggle) {
			s.toggleMusic()
		}
		if in.Has(SignalConfirm) && s.lockout <= 0 {
			s.restart()
		}
	}
}

// advance runs one simulation step while Running. Order matches the
// per-tick control flow: difficulty, physics, bounds, obstacles, scoring,
// obstacle collisions, retirement.
func (s *Session) advance(dt float64) {
	s.diff.Tick(dt)

	s.scrollX += s.diff.ScrollSpeed * dt
	if s.scrollX >= s.cfg.Field.Width {
		s.scrollX -= s.cfg.Field.Width
	}

	if s.blinkTimer > 0 {
		s.blinkTimer -= dt
		if s.blinkTimer < 0 {
			s.blinkTimer = 0
		}
	}

	s.body.Integrate(dt, s.cfg.Physics.Gravity)

	if s.collider.HitsBounds(s.playerX, s.body.Y, s.cfg.Field.Height) {
		s.crash()
		return
	}

	s.stream.Tick(dt, s.diff.SpawnInterval)
	s.stream.Advance(dt, s.diff.Current)

	obs := s.stream.Obstacles()
	for i := range obs {
		if s.scores.MaybeScore(s.playerX, &obs[i], s.stream.Width()) {
			s.audio.PlayScore()
			s.scores.RecordIfHigh()
		}
		// First collision of any kind ends the run; the state guard keeps
		// a second hit in the same tick from re-triggering side effects.
		if s.state == StateRunning &&
			s.collider.HitsObstacle(s.playerX, s.body.Y, obs[i], s.stream.Width(), s.stream.GapHeight(), s.cfg.Field.Height) {
			s.crash()
		}
	}

	s.stream.RetireOffscreen()
}

// crash transitions to GameOver with its side effects. Idempotent.
func (s *Session) crash() {
	if s.state != StateRunning {
		return
	}
	s.state = StateGameOver
	s.lockout = s.cfg.Session.GameOverLockout
	s.audio.StopMusic()
	s.musicOn = false
	s.audio.PlayHit()
	s.scores.RecordIfHigh()
}

// restart performs the full reset after game over and goes straight back to
// Running; the intro screen and its music cue are not replayed.
func (s *Session) restart() {
	s.body = Body{Y: s.cfg.Field.Height / 2}
	s.stream.Reset()
	s.diff.Reset()
	s.scores.ResetCurrent()
	s.blinkTimer = 0
	s.lockout = 0
	s.state = StateRunning
	if !s.musicManuallyOff {
		s.audio.StartMusic()
		s.musicOn = true
	}
}

func (s *Session) resumeRunning() {
	s.state = StateRunning
	if !s.musicManuallyOff {
		s.audio.StartMusic()
		s.musicOn = true
	}
}

func (s *Session) startMusic() {
	if s.musicManuallyOff {
		return
	}
	s.audio.StartMusic()
	s.musicOn = true
}

// toggleMusic flips the music preference in any state. The change is audible
// immediately while Running; elsewhere only the preference flips and the next
// transition into Running honors it.
func (s *Session) toggleMusic() {
	if s.musicManuallyOff {
		s.musicManuallyOff = false
		if s.state == StateRunning {
			s.audio.StartMusic()
			s.musicOn = true
		}
		return
	}
	s.musicManuallyOff = true
	if s.musicOn {
		s.audio.PauseMusic()
		s.musicOn = false
	}
}

// State returns the current session mode.
func (s *Session) State() State {
	return s.state
}

// PlayerX returns the player's fixed horizontal position.
func (s *Session) PlayerX() float64 {
	return s.playerX
}

// PlayerY returns the player's vertical position (sprite center).
func (s *Session) PlayerY() float64 {
	return s.body.Y
}

// Obstacles returns the live obstacles, left to right.
func (s *Session) Obstacles() []Obstacle {
	return s.stream.Obstacles()
}

// ObstacleWidth returns the pipe width in field units.
func (s *Session) ObstacleWidth() float64 {
	return s.stream.Width()
}

// GapHeight returns the gap height in field units.
func (s *Session) GapHeight() float64 {
	return s.stream.GapHeight()
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.scores.Current()
}

// HighScore returns the persisted best score.
func (s *Session) HighScore() int {
	return s.scores.High()
}

// Speed returns the current pipe speed.
func (s *Session) Speed() float64 {
	return s.diff.Current
}

// ScrollOffset returns the background scroll offset in field units.
func (s *Session) ScrollOffset() float64 {
	return s.scrollX
}

// EyesClosed reports whether the player sprite shows closed eyes: just
// after a flap, or permanently after a crash.
func (s *Session) EyesClosed() bool {
	return s.blinkTimer > 0 || s.state == StateGameOver
}

// MusicEnabled mirrors the audio collaborator's music state.
func (s *Session) MusicEnabled() bool {
	return s.musicOn
}

// LockoutRemaining returns the seconds left in the post-crash input lockout.
func (s *Session) LockoutRemaining() float64 {
	return s.lockout
}

// Config returns the tuning the session was built with.
func (s *Session) Config() config.Config {
	return s.cfg
}

func (s *Session) enterExitConfirm(from State) {
	s.prevState = from
	s.state = StateExitConfirm
	s.audio.PauseMusic()
}
