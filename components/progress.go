package components

import (
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/progression"
	"github.com/automoto/octoplat/save"
	"github.com/yohamta/donburi"
)

// ProgressData carries run progress, lives and the save store through the
// world scene.
type ProgressData struct {
	Manager *progression.Manager
	Death   progression.DeathState
	Save    *save.Manager

	Difficulty cfg.GameplayDifficulty
}

var Progress = donburi.NewComponentType[ProgressData]()
