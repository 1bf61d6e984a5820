package game

import (
	"math"
	"testing"

	"github.com/redkatdev/hovercat/internal/config"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Field.Width = 1280
	cfg.Field.Height = 800
	cfg.Obstacles.Width = 100
	cfg.Obstacles.GapHeight = 150
	cfg.Obstacles.MaxGapDelta = 100
	cfg.Obstacles.SpawnInterval = 2.0
	cfg.Speed.Base = 200
	cfg.Speed.Max = 400
	cfg.Speed.IncreasePerSec = 20
	return cfg
}

func TestStreamFirstGapCentered(t *testing.T) {
	st := NewStream(1, testConfig())

	// Timer starts expired, so the first tick spawns immediately
	st.Tick(0.001, 2.0)

	obs := st.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected 1 obstacle after first tick, got %d", len(obs))
	}
	if obs[0].GapCenter != 400 {
		t.Errorf("first gap center = %v, expected field center 400", obs[0].GapCenter)
	}
	if obs[0].X != 1280 {
		t.Errorf("spawn X = %v, expected right edge 1280", obs[0].X)
	}
}

func TestStreamGapDeltaBounded(t *testing.T) {
	cfg := testConfig()
	st := NewStream(42, cfg)

	// Force many spawns without moving anything
	for i := 0; i < 200; i++ {
		st.Tick(2.0, 2.0)
	}

	obs := st.Obstacles()
	if len(obs) < 100 {
		t.Fatalf("expected many obstacles, got %d", len(obs))
	}

	halfGap := cfg.Obstacles.GapHeight / 2
	for i, ob := range obs {
		if ob.GapCenter < halfGap || ob.GapCenter > cfg.Field.Height-halfGap {
			t.Fatalf("obstacle %d gap center %v leaves the field", i, ob.GapCenter)
		}
		if i > 0 {
			delta := math.Abs(ob.GapCenter - obs[i-1].GapCenter)
			if delta > cfg.Obstacles.MaxGapDelta+1e-9 {
				t.Fatalf("obstacle %d gap jumped %v, max allowed %v", i, delta, cfg.Obstacles.MaxGapDelta)
			}
		}
	}
}

// Field height 800, gap 150, maxDelta 100, previous center 400: the next
// center must come from [300, 500] (the on-screen clamp [75, 725] is wider
// and never binds here).
func TestStreamGapRangeScenario(t *testing.T) {
	cfg := testConfig()

	for seed := int64(0); seed < 50; seed++ {
		st := NewStream(seed, cfg)
		st.Tick(2.0, 2.0) // first: centered at 400
		st.Tick(2.0, 2.0) // second: drawn from [300, 500]

		obs := st.Obstacles()
		if len(obs) != 2 {
			t.Fatalf("seed %d: expected 2 obstacles, got %d", seed, len(obs))
		}
		if c := obs[1].GapCenter; c < 300 || c > 500 {
			t.Errorf("seed %d: second gap center %v outside [300, 500]", seed, c)
		}
	}
}

func TestStreamAdvanceAndRetire(t *testing.T) {
	cfg := testConfig()
	st := NewStream(7, cfg)

	st.Tick(2.0, 2.0)
	st.Tick(2.0, 2.0)
	st.Tick(2.0, 2.0)

	first := st.Obstacles()[0].GapCenter
	second := st.Obstacles()[1].GapCenter

	// Move everything far left: all three pass x < -width
	st.Advance(1.0, 2000)
	if st.Obstacles()[0].X != 1280-2000 {
		t.Errorf("advance moved first obstacle to %v, expected %v", st.Obstacles()[0].X, 1280-2000.0)
	}

	st.RetireOffscreen()
	if len(st.Obstacles()) != 0 {
		t.Errorf("expected all obstacles retired, %d left", len(st.Obstacles()))
	}

	// Retirement preserves relative order of survivors
	st.Reset()
	st.Tick(2.0, 2.0)
	st.Tick(2.0, 2.0)
	st.Tick(2.0, 2.0)
	st.Obstacles()[0].X = -200 // fully offscreen
	st.RetireOffscreen()
	obs := st.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(obs))
	}
	_ = first
	if obs[0].GapCenter != second {
		t.Error("retirement reordered surviving obstacles")
	}
}

func TestStreamSpawnTimerRespectsInterval(t *testing.T) {
	st := NewStream(3, testConfig())

	st.Tick(0.001, 2.0) // immediate first spawn, timer reset to 0
	st.Tick(1.0, 2.0)
	st.Tick(0.5, 2.0)
	if got := len(st.Obstacles()); got != 1 {
		t.Fatalf("spawned early: %d obstacles before interval elapsed", got)
	}

	st.Tick(0.6, 2.0) // timer now 2.1 >= 2.0
	if got := len(st.Obstacles()); got != 2 {
		t.Fatalf("expected second spawn after interval, got %d obstacles", got)
	}
}

func TestStreamReset(t *testing.T) {
	st := NewStream(9, testConfig())
	st.Tick(2.0, 2.0)
	st.Tick(2.0, 2.0)

	st.Reset()
	if len(st.Obstacles()) != 0 {
		t.Error("Reset should clear obstacles")
	}

	// After reset the timer starts at zero: a full interval must elapse
	st.Tick(1.0, 2.0)
	if len(st.Obstacles()) != 0 {
		t.Error("Reset timer should not trigger an immediate spawn")
	}
	st.Tick(1.0, 2.0)
	if len(st.Obstacles()) != 1 {
		t.Error("expected spawn once the interval elapsed after reset")
	}
}

func TestStreamDeterministicForSeed(t *testing.T) {
	cfg := testConfig()
	a := NewStream(1234, cfg)
	b := NewStream(1234, cfg)

	for i := 0; i < 50; i++ {
		a.Tick(2.0, 2.0)
		b.Tick(2.0, 2.0)
	}

	oa, ob := a.Obstacles(), b.Obstacles()
	if len(oa) != len(ob) {
		t.Fatalf("determinism failed: %d vs %d obstacles", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i].GapCenter != ob[i].GapCenter {
			t.Fatalf("determinism failed at obstacle %d: %v vs %v", i, oa[i].GapCenter, ob[i].GapCenter)
		}
	}
}
