package game

import (
	"testing"

	"github.com/redkatdev/hovercat/internal/config"
)

func testCollider() Collider {
	return NewCollider(config.PlayerConfig{
		Size:                 80,
		CollisionWidthRatio:  0.70,
		CollisionHeightRatio: 0.55,
	})
}

// Player at the top edge with a 44-unit collision box (.55 of 80) must
// violate the top bound.
func TestColliderTopEdgeScenario(t *testing.T) {
	c := testCollider()
	if !c.HitsBounds(320, 0, 800) {
		t.Error("player at y=0 should cross the top bound")
	}
}

func TestColliderBounds(t *testing.T) {
	c := testCollider()

	tests := []struct {
		name string
		y    float64
		hit  bool
	}{
		{"mid field", 400, false},
		{"just inside top", 23, false},   // box top at 1
		{"crossing top", 21, true},       // box top at -1
		{"just inside bottom", 777, false},
		{"crossing bottom", 779, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.HitsBounds(320, tc.y, 800); got != tc.hit {
				t.Errorf("HitsBounds(y=%v) = %v, expected %v", tc.y, got, tc.hit)
			}
		})
	}
}

func TestColliderObstacle(t *testing.T) {
	c := testCollider()
	ob := Obstacle{X: 300, GapCenter: 400}
	const width, gap = 100.0, 150.0

	// Box is 56 wide, 44 tall, centered on the player.
	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"inside gap", 320, 400, false},
		{"left of pipe", 200, 400, false},
		{"right of pipe", 500, 400, false},
		{"above gap", 320, 300, true},
		{"below gap", 320, 500, true},
		{"above gap but clear of pipe", 200, 300, false},
		{"grazing gap top", 320, 400 - 75 + 23, false}, // box top exactly on gap edge
		{"crossing gap top", 320, 400 - 75 + 21, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.HitsObstacle(tc.x, tc.y, ob, width, gap, 800); got != tc.hit {
				t.Errorf("HitsObstacle(x=%v, y=%v) = %v, expected %v", tc.x, tc.y, got, tc.hit)
			}
		})
	}
}
