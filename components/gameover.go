package components

import (
	"github.com/automoto/octoplat/progression"
	"github.com/yohamta/donburi"
)

// GameOverOption identifies a game over menu entry.
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData carries the ended run's stats for the game over screen.
type GameOverData struct {
	SelectedOption GameOverOption
	Stats          progression.RunStats
	BestLevels     int
	BestGems       int
	NewBest        bool
}

var GameOver = donburi.NewComponentType[GameOverData]()
