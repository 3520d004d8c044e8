package systems

import (
	"fmt"
	"os"
	"strconv"

	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/fonts"
	"github.com/automoto/octoplat/procgen"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// maxSeedDigits caps typed seeds at ten decimal digits, which always
// parses as uint64.
const maxSeedDigits = 10

// RunRequest is what the menu hands back to the scene layer when the
// player starts a game.
type RunRequest struct {
	// BiomeChallenge locks the run to Biome instead of walking all biomes.
	BiomeChallenge bool
	Biome          procgen.BiomeID
	Preset         cfg.DifficultyPreset
	Difficulty     cfg.GameplayDifficulty
	Seed           uint64
	Seeded         bool
}

// NewUpdateMenu creates the main menu system. startGame is called with
// the chosen configuration when the player picks a start option.
func NewUpdateMenu(startGame func(RunRequest)) ecs.System {
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e)
		input := getOrCreateInput(e)

		if menu.EnteringSeed {
			updateSeedEntry(e, menu, input, startGame)
			return
		}

		numOptions := len(menu.Options)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pushMenuSound(e, feedback.SoundMenuMove)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pushMenuSound(e, feedback.SoundMenuMove)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		// Left/right cycles the value of the hovered option
		dir := 0
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			dir = -1
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			dir = 1
		}
		if dir != 0 {
			cycleOption(e, menu, dir)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			pushMenuSound(e, feedback.SoundMenuSelect)
			selectOption(menu, startGame)
			// Seed entry needs the shared input component in text mode
			input.TextEntry = menu.EnteringSeed
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

func updateSeedEntry(e *ecs.ECS, menu *components.MenuData, input *components.InputData, startGame func(RunRequest)) {
	// Drain typed characters, keeping digits only
	for _, r := range input.TextBuffer {
		if r >= '0' && r <= '9' && len(menu.SeedText) < maxSeedDigits {
			menu.SeedText += string(r)
		}
	}
	input.TextBuffer = input.TextBuffer[:0]

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(menu.SeedText) > 0 {
		menu.SeedText = menu.SeedText[:len(menu.SeedText)-1]
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		pushMenuSound(e, feedback.SoundMenuBack)
		menu.EnteringSeed = false
		input.TextEntry = false
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && len(menu.SeedText) > 0 {
		seed, err := strconv.ParseUint(menu.SeedText, 10, 64)
		if err != nil {
			menu.SeedText = ""
			return
		}
		pushMenuSound(e, feedback.SoundMenuSelect)
		menu.EnteringSeed = false
		input.TextEntry = false
		startGame(RunRequest{
			Preset:     menu.Preset,
			Difficulty: menu.Difficulty,
			Seed:       seed,
			Seeded:     true,
		})
	}
}

func cycleOption(e *ecs.ECS, menu *components.MenuData, dir int) {
	switch menu.Options[menu.SelectedIndex] {
	case components.MainMenuBiomeChallenge:
		pushMenuSound(e, feedback.SoundMenuMove)
		all := procgen.AllBiomes()
		idx := (int(menu.Biome) + dir + len(all)) % len(all)
		menu.Biome = all[idx]
	case components.MainMenuDifficulty:
		pushMenuSound(e, feedback.SoundMenuMove)
		count := int(cfg.DifficultyTheKraken) + 1
		menu.Difficulty = cfg.GameplayDifficulty(
			(int(menu.Difficulty) + dir + count) % count)
	case components.MainMenuPreset:
		pushMenuSound(e, feedback.SoundMenuMove)
		count := int(cfg.PresetChallenge) + 1
		menu.Preset = cfg.DifficultyPreset(
			(int(menu.Preset) + dir + count) % count)
	}
}

func selectOption(menu *components.MenuData, startGame func(RunRequest)) {
	switch menu.Options[menu.SelectedIndex] {
	case components.MainMenuStartRun:
		startGame(RunRequest{
			Preset:     menu.Preset,
			Difficulty: menu.Difficulty,
		})
	case components.MainMenuSeededRun:
		menu.EnteringSeed = true
		menu.SeedText = ""
	case components.MainMenuBiomeChallenge:
		startGame(RunRequest{
			BiomeChallenge: true,
			Biome:          menu.Biome,
			Preset:         menu.Preset,
			Difficulty:     menu.Difficulty,
		})
	case components.MainMenuExit:
		os.Exit(0)
	}
}

func getOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(entry, components.MenuData{
		Options: []components.MainMenuOption{
			components.MainMenuStartRun,
			components.MainMenuSeededRun,
			components.MainMenuBiomeChallenge,
			components.MainMenuDifficulty,
			components.MainMenuPreset,
			components.MainMenuExit,
		},
		Difficulty: cfg.DifficultyTreadingWater,
		Preset:     cfg.PresetStandard,
	})
	return components.Menu.Get(entry)
}

func pushMenuSound(e *ecs.ECS, id feedback.SoundID) {
	if audio := GetAudio(e); audio != nil {
		audio.Push(feedback.SoundEvent{ID: id})
	}
}

// DrawMenu renders the main menu screen.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := getOrCreateMenu(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	theme := &procgen.OceanDepths.Definition().Theme
	for i := 0; i < 24; i++ {
		ratio := float64(i) / 24
		bandH := float32(height / 24)
		vector.FillRect(screen, 0, float32(ratio*height),
			float32(width), bandH+1, theme.BgColorAt(ratio).RGBA(), false)
	}

	title := "OCTOPLAT"
	titleWidth := len(title) * 20
	text.Draw(screen, title, fonts.Title.Get(),
		int(width/2)-titleWidth/2, 110, cfg.GemGold)

	sub := "a deep sea descent"
	subWidth := len(sub) * 6
	text.Draw(screen, sub, fonts.Small.Get(),
		int(width/2)-subWidth/2, 132, cfg.LightBlue)

	if menu.EnteringSeed {
		drawSeedEntry(screen, menu, width, height)
		return
	}

	menuFont := fonts.Bold.Get()
	startY := 200
	for i, option := range menu.Options {
		label := optionLabel(menu, option)
		clr := cfg.White
		if i == menu.SelectedIndex {
			clr = cfg.GemGold
			label = "> " + label
		}
		labelWidth := len(label) * 10
		text.Draw(screen, label, menuFont,
			int(width/2)-labelWidth/2, startY+i*32, clr)
	}

	input := getOrCreateInput(e)
	hint := menuHint(input.LastInputMethod)
	hintWidth := len(hint) * 6
	text.Draw(screen, hint, fonts.Small.Get(),
		int(width/2)-hintWidth/2, int(height)-14, cfg.White)
}

func drawSeedEntry(screen *ebiten.Image, menu *components.MenuData, width, height float64) {
	prompt := "enter run seed"
	promptWidth := len(prompt) * 10
	text.Draw(screen, prompt, fonts.Bold.Get(),
		int(width/2)-promptWidth/2, 220, cfg.White)

	boxW := float32(220)
	vector.FillRect(screen, float32(width/2)-boxW/2, 240, boxW, 30,
		cfg.BlackOverlay, false)
	vector.StrokeRect(screen, float32(width/2)-boxW/2, 240, boxW, 30,
		1, cfg.LightBlue, false)

	entry := menu.SeedText + "_"
	entryWidth := len(entry) * 10
	text.Draw(screen, entry, fonts.Bold.Get(),
		int(width/2)-entryWidth/2, 262, cfg.GemGold)

	hint := "Enter: Start   Backspace: Edit   Esc: Cancel"
	hintWidth := len(hint) * 6
	text.Draw(screen, hint, fonts.Small.Get(),
		int(width/2)-hintWidth/2, int(height)-14, cfg.White)
}

func optionLabel(menu *components.MenuData, option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStartRun:
		return "Start Run"
	case components.MainMenuSeededRun:
		return "Seeded Run"
	case components.MainMenuBiomeChallenge:
		return fmt.Sprintf("Biome Challenge  < %s >", menu.Biome.DisplayName())
	case components.MainMenuDifficulty:
		return fmt.Sprintf("Difficulty  < %s >", menu.Difficulty)
	case components.MainMenuPreset:
		return fmt.Sprintf("Generation  < %s >", menu.Preset)
	case components.MainMenuExit:
		return "Exit"
	}
	return ""
}

func menuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Quit"
}
