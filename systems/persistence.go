package systems

import (
	cfg "github.com/automoto/octoplat/config"
	"github.com/yohamta/donburi/ecs"
)

// autosaveInterval is how often dirty save data is flushed, in seconds.
const autosaveInterval = 10.0

var autosaveTimer float64

// UpdatePersistence accumulates playtime and flushes dirty save data on a
// timer so quitting mid-level loses at most a few seconds of stats.
func UpdatePersistence(e *ecs.ECS) {
	progress := GetProgress(e)
	if progress == nil || progress.Save == nil {
		return
	}

	state := GetAppState(e)
	if state != nil && state.Current == cfg.StatePlaying {
		progress.Save.Mutate().TotalPlaytime += FrameDT
	}

	autosaveTimer += FrameDT
	if autosaveTimer < autosaveInterval {
		return
	}
	autosaveTimer = 0
	saveQuietly(e)
}
