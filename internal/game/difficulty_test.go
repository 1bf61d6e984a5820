package game

import (
	"math"
	"testing"

	"github.com/redkatdev/hovercat/internal/config"
)

// Starting speed 200, ramp 20/s, cap 400: after 10 summed seconds the speed
// is exactly 400 and stays there.
func TestDifficultyRampAndCap(t *testing.T) {
	d := NewDifficulty(config.SpeedConfig{
		Base:           200,
		Max:            400,
		IncreasePerSec: 20,
		ScrollFactor:   0.2,
	}, 2.0)

	if d.Current != 200 {
		t.Fatalf("initial speed = %v, expected 200", d.Current)
	}

	elapsed := 0.0
	prev := d.Current
	for elapsed < 10 {
		d.Tick(0.25)
		elapsed += 0.25
		if d.Current < prev {
			t.Fatalf("speed decreased from %v to %v", prev, d.Current)
		}
		if d.Current > 400 {
			t.Fatalf("speed %v exceeded cap", d.Current)
		}
		prev = d.Current
	}

	if d.Current != 400 {
		t.Errorf("speed after 10s = %v, expected exactly 400", d.Current)
	}

	d.Tick(1.0)
	if d.Current != 400 {
		t.Errorf("speed left the cap: %v", d.Current)
	}
}

// SpawnInterval × Current == InitialDistance after every tick, so the
// spatial spacing between spawns never changes.
func TestDifficultySpacingInvariant(t *testing.T) {
	d := NewDifficulty(config.SpeedConfig{
		Base:           200,
		Max:            400,
		IncreasePerSec: 20,
		ScrollFactor:   0.2,
	}, 2.0)

	want := d.InitialDistance()
	if want != 400 {
		t.Fatalf("initial distance = %v, expected 200*2.0 = 400", want)
	}

	for i := 0; i < 100; i++ {
		d.Tick(0.17)
		got := d.SpawnInterval * d.Current
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("tick %d: interval*speed = %v, expected %v", i, got, want)
		}
	}
}

func TestDifficultyScrollSpeedDerived(t *testing.T) {
	d := NewDifficulty(config.SpeedConfig{
		Base:           200,
		Max:            400,
		IncreasePerSec: 20,
		ScrollFactor:   0.2,
	}, 2.0)

	if d.ScrollSpeed != 40 {
		t.Errorf("initial scroll speed = %v, expected 0.2*200 = 40", d.ScrollSpeed)
	}

	d.Tick(5) // speed 300
	if d.ScrollSpeed != 60 {
		t.Errorf("scroll speed = %v, expected 0.2*300 = 60", d.ScrollSpeed)
	}
}

func TestDifficultyReset(t *testing.T) {
	d := NewDifficulty(config.SpeedConfig{
		Base:           200,
		Max:            400,
		IncreasePerSec: 20,
		ScrollFactor:   0.2,
	}, 2.0)

	d.Tick(7)
	d.Reset()

	if d.Current != 200 {
		t.Errorf("Reset speed = %v, expected base 200", d.Current)
	}
	if d.SpawnInterval != 2.0 {
		t.Errorf("Reset spawn interval = %v, expected 2.0", d.SpawnInterval)
	}
}
