package level

import (
	"math"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
)

// Gem is a collectible. Once collected it stays collected for the level.
type Gem struct {
	ID        string
	Position  gamemath.Vec2
	Collected bool
	Radius    float64
	BobOffset float64
}

func newGem(id string, pos gamemath.Vec2, bobOffset float64) *Gem {
	return &Gem{
		ID:        id,
		Position:  pos,
		Radius:    config.Run.GemRadius,
		BobOffset: bobOffset,
	}
}

// CheckCollection tests circle-vs-rect against the player hitbox and marks
// the gem collected on contact. Returns true only on the collecting frame.
func (g *Gem) CheckCollection(playerRect gamemath.Rect) bool {
	if g.Collected {
		return false
	}

	closestX := gamemath.Clamp(g.Position.X, playerRect.X, playerRect.Right())
	closestY := gamemath.Clamp(g.Position.Y, playerRect.Y, playerRect.Bottom())

	if math.Hypot(closestX-g.Position.X, closestY-g.Position.Y) < g.Radius {
		g.Collected = true
		return true
	}
	return false
}

// RenderPosition returns the draw position with the bobbing offset applied.
func (g *Gem) RenderPosition(time float64) gamemath.Vec2 {
	bob := math.Sin(time*2+g.BobOffset) * 4
	return gamemath.Vec2{X: g.Position.X, Y: g.Position.Y + bob}
}
