package components

import (
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ActiveEffect is one visual effect instance with a remaining lifetime.
type ActiveEffect struct {
	feedback.Effect
	Age      float64
	Lifetime float64
	Drift    gamemath.Vec2
}

// Alive reports whether the effect should still be drawn.
func (e *ActiveEffect) Alive() bool { return e.Age < e.Lifetime }

// Progress returns 0..1 over the effect's lifetime.
func (e *ActiveEffect) Progress() float64 {
	if e.Lifetime <= 0 {
		return 1
	}
	return gamemath.Clamp(e.Age/e.Lifetime, 0, 1)
}

// EffectsData is the pool of live visual effects.
type EffectsData struct {
	Active []ActiveEffect
}

var Effects = donburi.NewComponentType[EffectsData]()
