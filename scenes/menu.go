package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/save"
	"github.com/automoto/octoplat/systems"
	"github.com/automoto/octoplat/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Deps holds the long-lived services every scene shares: the save store
// and the level generator with its loaded segment pool.
type Deps struct {
	Save *save.Manager
	Gen  *procgen.Manager
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         Deps
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, deps Deps) *MenuScene {
	return &MenuScene{sceneChanger: sc, deps: deps}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Session gives menu sounds a queue and the save store for volume
	entry := factory.CreateSession(ms.ecs, ms.deps.Save, cfg.DifficultyTreadingWater)
	components.AppState.Get(entry).Current = cfg.StateMenu
	components.Audio.Get(entry).CurrentMusic = feedback.MusicMenu

	startGame := func(req systems.RunRequest) {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.deps, req))
	}

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(startGame))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
