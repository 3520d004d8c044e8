package components

import (
	"github.com/automoto/octoplat/feedback"
	"github.com/yohamta/donburi"
)

const recentSoundLimit = 8

// AudioData queues sound events raised during the frame. The audio system
// drains the queue; with no audio backend compiled in it still tracks the
// most recent events so the debug overlay can show them.
type AudioData struct {
	Queue []feedback.SoundEvent

	CurrentMusic feedback.MusicTrack
	MusicFade    float64 // seconds left in a crossfade, 0 when settled
	MusicStopped bool

	// RecentSounds holds the last few played sounds, newest first.
	RecentSounds []feedback.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

// Push appends a sound event for this frame.
func (a *AudioData) Push(ev feedback.SoundEvent) {
	a.Queue = append(a.Queue, ev)
}

// NoteRecent remembers a played sound, evicting the oldest.
func (a *AudioData) NoteRecent(id feedback.SoundID) {
	a.RecentSounds = append([]feedback.SoundID{id}, a.RecentSounds...)
	if len(a.RecentSounds) > recentSoundLimit {
		a.RecentSounds = a.RecentSounds[:recentSoundLimit]
	}
}
