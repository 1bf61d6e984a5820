package game

import (
	"github.com/redkatdev/hovercat/internal/config"
	"github.com/redkatdev/hovercat/internal/core"
)

// Collider performs hit tests for the player's collision box, a
// sub-rectangle of the visual sprite centered on the player position.
type Collider struct {
	boxW float64
	boxH float64
}

// NewCollider derives the collision box from the player tuning.
func NewCollider(player config.PlayerConfig) Collider {
	return Collider{
		boxW: player.Size * player.CollisionWidthRatio,
		boxH: player.Size * player.CollisionHeightRatio,
	}
}

// Box returns the collision rectangle for a player centered at (x, y).
func (c Collider) Box(x, y float64) core.RectF {
	return core.CenteredRectF(x, y, c.boxW, c.boxH)
}

// HitsBounds reports whether the collision box crosses the top or bottom of
// the field.
func (c Collider) HitsBounds(x, y, fieldHeight float64) bool {
	box := c.Box(x, y)
	return box.Y < 0 || box.Bottom() > fieldHeight
}

// HitsObstacle reports whether the collision box overlaps either pipe of the
// obstacle. The pipes are the solid spans above and below the gap; a box
// whose edge merely touches a pipe does not collide.
func (c Collider) HitsObstacle(x, y float64, ob Obstacle, width, gapHeight, fieldHeight float64) bool {
	box := c.Box(x, y)
	gapTop := ob.GapCenter - gapHeight/2
	gapBottom := ob.GapCenter + gapHeight/2
	top := core.NewRectF(ob.X, 0, width, gapTop)
	bottom := core.NewRectF(ob.X, gapBottom, width, fieldHeight-gapBottom)
	return box.Intersects(top) || box.Intersects(bottom)
}
