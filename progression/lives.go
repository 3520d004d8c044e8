// Package progression tracks lives, deaths, and roguelite run state, and
// coordinates them through a single manager the game loop owns.
package progression

import "math"

// InfiniteLives marks a lives counter that never runs out.
const InfiniteLives = math.MaxInt32

// LivesManager tracks the lives pool and session death counts.
type LivesManager struct {
	// Current is the number of lives left. InfiniteLives disables loss.
	Current int
	// SessionDeaths counts deaths in the current session or level.
	SessionDeaths int
	// NextLifeGems is the gem total that earns the next extra life.
	NextLifeGems int
}

func NewLivesManager(starting int) *LivesManager {
	return &LivesManager{Current: starting, NextLifeGems: 50}
}

// StartSession resets lives and deaths for a fresh session. In roguelite
// mode the gem milestone is rearmed as well.
func (l *LivesManager) StartSession(startingLives, gemMilestone int, roguelite bool) {
	l.Current = startingLives
	l.SessionDeaths = 0
	if roguelite {
		l.NextLifeGems = gemMilestone
	}
}

// AwardLife grants an extra life, reporting whether it was actually
// granted or the pool was already at max.
func (l *LivesManager) AwardLife(max int) bool {
	if l.Current < max {
		l.Current++
		return true
	}
	return false
}

// CheckGemMilestone awards a life when the gem total crosses the current
// milestone, then moves the milestone up by the increment.
func (l *LivesManager) CheckGemMilestone(totalGems, increment, max int) bool {
	if totalGems < l.NextLifeGems {
		return false
	}
	l.NextLifeGems += increment
	return l.AwardLife(max)
}

// SetInfinite disables life loss, for debug play.
func (l *LivesManager) SetInfinite() { l.Current = InfiniteLives }

// GameOver reports whether the lives pool is empty.
func (l *LivesManager) GameOver() bool { return l.Current == 0 }

// ResetSession clears the session death counter, for level restarts.
func (l *LivesManager) ResetSession() { l.SessionDeaths = 0 }
