package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionData drives the fade used for level changes and death
// respawns. The tween runs 0 -> 1 -> 0; the pending callback fires at the
// midpoint while the screen is fully covered.
type TransitionData struct {
	Tween    *gween.Tween
	Covering bool // second half of the fade
	Alpha    float64
	Midpoint func()
	Done     func()
}

// Active reports whether a transition is in flight.
func (t *TransitionData) Active() bool { return t.Tween != nil }

var Transition = donburi.NewComponentType[TransitionData]()
