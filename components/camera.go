package components

import (
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position   gamemath.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()

type ScreenShakeData struct {
	Intensity float64
	Duration  int // frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
