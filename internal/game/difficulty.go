package game

import "github.com/redkatdev/hovercat/internal/config"

// Difficulty ramps the pipe speed linearly over time up to a cap and derives
// the dependent rates from it. The spawn interval shrinks as speed grows so
// the spatial distance between spawns stays constant:
//
//	SpawnInterval = initialDistance / Current
//
// where initialDistance = base speed × configured spawn interval.
type Difficulty struct {
	Current       float64 // Current pipe speed, units/s
	SpawnInterval float64 // Seconds between spawns at the current speed
	ScrollSpeed   float64 // Background scroll speed, units/s

	base            float64
	max             float64
	rate            float64
	initialDistance float64
	scrollFactor    float64
}

// NewDifficulty builds the controller from the speed and obstacle tuning.
func NewDifficulty(speed config.SpeedConfig, spawnInterval float64) Difficulty {
	d := Difficulty{
		base:            speed.Base,
		max:             speed.Max,
		rate:            speed.IncreasePerSec,
		initialDistance: speed.Base * spawnInterval,
		scrollFactor:    speed.ScrollFactor,
	}
	d.Reset()
	return d
}

// Tick increases the speed by the ramp rate, clamps to the cap, and
// recomputes the dependent rates. Deterministic and monotonic until the cap.
func (d *Difficulty) Tick(dt float64) {
	d.Current += d.rate * dt
	if d.Current > d.max {
		d.Current = d.max
	}
	d.recompute()
}

// Reset returns the speed to base for a new run.
func (d *Difficulty) Reset() {
	d.Current = d.base
	d.recompute()
}

// InitialDistance returns the constant spatial spacing between spawns.
func (d *Difficulty) InitialDistance() float64 {
	return d.initialDistance
}

func (d *Difficulty) recompute() {
	// Current is positive by construction: base > 0 and the ramp only adds.
	d.SpawnInterval = d.initialDistance / d.Current
	d.ScrollSpeed = d.scrollFactor * d.Current
}
