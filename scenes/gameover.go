package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/progression"
	"github.com/automoto/octoplat/systems"
	"github.com/automoto/octoplat/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the run summary after losing all lives.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         Deps
	request      systems.RunRequest
	stats        progression.RunStats
	once         sync.Once
}

// NewGameOverScene creates a new game over scene. request keeps the
// ended run's settings so "Dive Again" restarts with them.
func NewGameOverScene(sc SceneChanger, deps Deps, request systems.RunRequest) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, deps: deps, request: request}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	entry := factory.CreateSession(gs.ecs, gs.deps.Save, gs.request.Difficulty)
	components.AppState.Get(entry).Current = cfg.StateGameOver
	components.Audio.Get(entry).CurrentMusic = feedback.MusicGameOver

	retry := func() {
		// A retry of a seeded run keeps the seed; the rerun is the
		// same descent
		gs.sceneChanger.ChangeScene(NewWorldScene(gs.sceneChanger, gs.deps, gs.request))
	}
	toMenu := func() {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.deps))
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(retry, toMenu))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	gameOverEntry := gs.ecs.World.Entry(gs.ecs.World.Create(components.GameOver))
	data := gs.deps.Save.Data()
	components.GameOver.SetValue(gameOverEntry, components.GameOverData{
		Stats:      gs.stats,
		BestLevels: data.EndlessBestLevels,
		BestGems:   data.EndlessBestGems,
		NewBest: gs.stats.LevelsCompleted > 0 &&
			gs.stats.LevelsCompleted >= data.EndlessBestLevels,
	})
}
