package components

import (
	"github.com/automoto/octoplat/actions"
	cfg "github.com/automoto/octoplat/config"
	"github.com/yohamta/donburi"
)

// AppStateData is the scene-wide state machine plus the action queue that
// systems push mutations through.
type AppStateData struct {
	Current  cfg.AppState
	Previous cfg.AppState

	Actions actions.Queue

	// ErrorMessage is shown by the error screen when Current is
	// StateError.
	ErrorMessage string

	// LevelTextTimer counts down the level-name banner at level start.
	LevelTextTimer float64
}

var AppState = donburi.NewComponentType[AppStateData]()
