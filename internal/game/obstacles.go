package game

import (
	"math/rand"

	"github.com/redkatdev/hovercat/internal/config"
)

// Obstacle is a vertical pipe pair with a passable gap. X is the left edge;
// the gap spans [GapCenter - gap/2, GapCenter + gap/2] vertically.
type Obstacle struct {
	X         float64
	GapCenter float64
	Scored    bool
}

// Stream owns the ordered obstacle sequence: insertion order is spawn order
// is left-to-right screen order. It spawns on a timer and retires obstacles
// that scroll fully off the left edge.
type Stream struct {
	obstacles  []Obstacle
	spawnTimer float64
	rng        *rand.Rand

	fieldW    float64
	fieldH    float64
	width     float64
	gapHeight float64
	maxDelta  float64
}

// NewStream creates a stream with the given RNG seed. The spawn timer starts
// expired so the first obstacle appears on the first running tick.
func NewStream(seed int64, cfg config.Config) *Stream {
	st := &Stream{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		fieldW:    cfg.Field.Width,
		fieldH:    cfg.Field.Height,
		width:     cfg.Obstacles.Width,
		gapHeight: cfg.Obstacles.GapHeight,
		maxDelta:  cfg.Obstacles.MaxGapDelta,
	}
	st.spawnTimer = cfg.Obstacles.SpawnInterval
	return st
}

// Tick advances the spawn timer and spawns one obstacle at the right edge
// when the timer reaches spawnInterval.
func (st *Stream) Tick(dt, spawnInterval float64) {
	st.spawnTimer += dt
	if st.spawnTimer >= spawnInterval {
		st.spawnTimer = 0
		st.spawn()
	}
}

// spawn appends a new obstacle at the right field edge. The first gap is
// centered vertically; each later gap center is drawn uniformly within
// maxDelta of the previous one, clamped so the gap stays fully on screen.
func (st *Stream) spawn() {
	var gapCenter float64
	if len(st.obstacles) == 0 {
		gapCenter = st.fieldH / 2
	} else {
		prev := st.obstacles[len(st.obstacles)-1].GapCenter
		min := st.gapHeight / 2
		if low := prev - st.maxDelta; low > min {
			min = low
		}
		max := st.fieldH - st.gapHeight/2
		if high := prev + st.maxDelta; high < max {
			max = high
		}
		gapCenter = min + st.rng.Float64()*(max-min)
	}

	st.obstacles = append(st.obstacles, Obstacle{X: st.fieldW, GapCenter: gapCenter})
}

// Advance moves every obstacle left by speed*dt.
func (st *Stream) Advance(dt, speed float64) {
	for i := range st.obstacles {
		st.obstacles[i].X -= speed * dt
	}
}

// RetireOffscreen removes obstacles whose right edge has passed fully behind
// the left screen edge. Relative order of survivors is preserved.
func (st *Stream) RetireOffscreen() {
	alive := st.obstacles[:0]
	for _, ob := range st.obstacles {
		if ob.X >= -st.width {
			alive = append(alive, ob)
		}
	}
	st.obstacles = alive
}

// Reset clears all obstacles and the spawn timer for a fresh run.
func (st *Stream) Reset() {
	st.obstacles = st.obstacles[:0]
	st.spawnTimer = 0
}

// Obstacles returns the live obstacle slice. Callers that mutate entries
// (scoring flags) index into it directly.
func (st *Stream) Obstacles() []Obstacle {
	return st.obstacles
}

// Width returns the obstacle width in field units.
func (st *Stream) Width() float64 {
	return st.width
}

// GapHeight returns the gap height in field units.
func (st *Stream) GapHeight() float64 {
	return st.gapHeight
}
