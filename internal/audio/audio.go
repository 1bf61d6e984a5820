// Package audio provides a procedural sound engine for the game. All
// effects and music are synthesized at runtime, so no asset files ship
// with the binary.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/redkatdev/hovercat/internal/game"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

const (
	sfxVolume   = 0.55
	musicVolume = 0.14
)

// Engine synthesizes sound effects and a looping music track through an
// oto output context. It implements game.AudioPlayer.
type Engine struct {
	ctx   *oto.Context
	ready chan struct{}

	mu    sync.Mutex
	music oto.Player
}

var _ game.AudioPlayer = (*Engine)(nil)

// NewEngine opens the audio device. The returned engine silently drops
// playback requests until the device reports ready.
func NewEngine() (*Engine, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	return &Engine{ctx: ctx, ready: ready}, nil
}

// PlayFlap plays the wing-flap chirp.
func (e *Engine) PlayFlap() { e.playEffect(genFlap()) }

// PlayScore plays the point-scored ding.
func (e *Engine) PlayScore() { e.playEffect(genScore()) }

// PlayHit plays the crash thud.
func (e *Engine) PlayHit() { e.playEffect(genHit()) }

// StartMusic starts (or resumes) the looping background track.
func (e *Engine) StartMusic() {
	if !e.isReady() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.music != nil {
		e.music.Play()
		return
	}
	reader := &musicReader{seed: uint64(time.Now().UnixNano())}
	player := e.ctx.NewPlayer(reader)
	player.SetVolume(musicVolume)
	e.music = player
	player.Play()
}

// StopMusic tears the music player down; the next StartMusic restarts
// the track from the top.
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.music != nil {
		e.music.Close()
		e.music = nil
	}
}

// PauseMusic halts playback while keeping the track position.
func (e *Engine) PauseMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.music != nil {
		e.music.Pause()
	}
}

func (e *Engine) isReady() bool {
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}

func (e *Engine) playEffect(samples []byte) {
	if !e.isReady() || len(samples) == 0 {
		return
	}
	go func() {
		player := e.ctx.NewPlayer(&sampleReader{data: samples})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
