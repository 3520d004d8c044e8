package components

import (
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/procgen"
	"github.com/yohamta/donburi"
)

// MainMenuOption identifies one main menu entry.
type MainMenuOption int

const (
	MainMenuStartRun MainMenuOption = iota
	MainMenuSeededRun
	MainMenuBiomeChallenge
	MainMenuDifficulty
	MainMenuPreset
	MainMenuExit
)

// MenuData holds main menu selection state. Biome, Preset, and
// Difficulty carry across selections so a picked setting applies to
// whichever start option is chosen.
type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption

	Biome      procgen.BiomeID
	Preset     cfg.DifficultyPreset
	Difficulty cfg.GameplayDifficulty

	// EnteringSeed switches the menu into seed text entry.
	EnteringSeed bool
	SeedText     string
}

var Menu = donburi.NewComponentType[MenuData]()
