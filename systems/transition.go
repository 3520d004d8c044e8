package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// transitionHalfTime is each half of the cover fade in seconds.
const transitionHalfTime = 0.25

// StartTransition begins a cover fade. The midpoint callback runs while
// the screen is fully black, so level swaps never show half-built frames.
func StartTransition(e *ecs.ECS, midpoint func()) {
	tr := GetTransition(e)
	if tr == nil {
		if midpoint != nil {
			midpoint()
		}
		return
	}
	if tr.Active() {
		// Fold into the in-flight fade
		prev := tr.Midpoint
		tr.Midpoint = func() {
			if prev != nil {
				prev()
			}
			if midpoint != nil {
				midpoint()
			}
		}
		return
	}

	tr.Tween = gween.New(0, 1, transitionHalfTime, ease.InOutQuad)
	tr.Covering = false
	tr.Midpoint = midpoint
}

// UpdateTransition advances the fade and fires the midpoint switch.
func UpdateTransition(e *ecs.ECS) {
	tr := GetTransition(e)
	if tr == nil || !tr.Active() {
		return
	}

	value, finished := tr.Tween.Update(float32(FrameDT))
	tr.Alpha = float64(value)
	if !finished {
		return
	}

	if !tr.Covering {
		if tr.Midpoint != nil {
			tr.Midpoint()
			tr.Midpoint = nil
		}
		tr.Covering = true
		tr.Tween = gween.New(1, 0, transitionHalfTime, ease.InOutQuad)
		return
	}

	tr.Tween = nil
	tr.Covering = false
	tr.Alpha = 0
	if tr.Done != nil {
		tr.Done()
		tr.Done = nil
	}
}

// DrawTransition draws the cover fade on top of everything.
func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	tr := GetTransition(e)
	if tr == nil || tr.Alpha <= 0 {
		return
	}

	a := uint8(tr.Alpha * 255)
	vector.DrawFilledRect(screen, 0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		color.RGBA{0, 0, 0, a}, false)
}
