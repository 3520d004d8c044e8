package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio drains the frame's sound events. The build ships without an
// audio backend; events still flow through volume gating and the recent
// ring so the rest of the game is exercised and the debug overlay can
// show what would have played.
func UpdateAudio(e *ecs.ECS) {
	audio := GetAudio(e)
	if audio == nil {
		return
	}

	sfxVolume := 1.0
	if progress := GetProgress(e); progress != nil && progress.Save != nil {
		sfxVolume = progress.Save.Data().SFXVolume
	}

	for _, ev := range audio.Queue {
		if sfxVolume <= 0 {
			continue
		}
		audio.NoteRecent(ev.ID)
	}
	audio.Queue = audio.Queue[:0]

	if audio.MusicFade > 0 {
		audio.MusicFade -= FrameDT
		if audio.MusicFade < 0 {
			audio.MusicFade = 0
		}
	}
}
