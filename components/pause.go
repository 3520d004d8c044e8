package components

import "github.com/yohamta/donburi"

// PauseOption is one entry on the pause overlay.
type PauseOption int

const (
	PauseResume PauseOption = iota
	PauseRestartLevel
	PauseReturnToMenu
)

type PauseData struct {
	SelectedIndex int
	Options       []PauseOption
}

var Pause = donburi.NewComponentType[PauseData]()
