package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/octoplat/actions"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/automoto/octoplat/systems"
	"github.com/automoto/octoplat/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the roguelite game loop: generated levels, the player
// simulation, and everything between run start and game over.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         Deps
	request      systems.RunRequest
	once         sync.Once
}

// NewWorldScene creates the gameplay scene for the requested run.
func NewWorldScene(sc SceneChanger, deps Deps, request systems.RunRequest) *WorldScene {
	return &WorldScene{sceneChanger: sc, deps: deps, request: request}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	state := systems.GetAppState(ws.ecs)
	if state == nil {
		return
	}

	switch state.Current {
	case cfg.StateMenu:
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.deps))
	case cfg.StateGameOver:
		ws.sceneChanger.ChangeScene(ws.gameOverScene())
	case cfg.StateError:
		ws.sceneChanger.ChangeScene(NewErrorScene(ws.sceneChanger, ws.deps, state.ErrorMessage))
	}
}

func (ws *WorldScene) gameOverScene() *GameOverScene {
	scene := NewGameOverScene(ws.sceneChanger, ws.deps, ws.request)
	if progress := systems.GetProgress(ws.ecs); progress != nil {
		scene.stats = progress.Manager.Stats()
	}
	return scene
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio and input run first so every later system sees this frame's
	// actions
	ws.ecs.AddSystem(systems.UpdateAudio)
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdatePause)
	ws.ecs.AddSystem(systems.UpdateFlow)

	// Gameplay simulation
	ws.ecs.AddSystem(systems.UpdatePlayer)
	ws.ecs.AddSystem(systems.UpdateEnvironment)
	ws.ecs.AddSystem(systems.UpdateFeedback)
	ws.ecs.AddSystem(systems.UpdateEffects)

	// Actions drain after simulation so same-frame events apply before
	// render; transition and camera react to the resulting state
	ws.ecs.AddSystem(systems.UpdateActions)
	ws.ecs.AddSystem(systems.UpdateTransition)
	ws.ecs.AddSystem(systems.UpdateCamera)
	ws.ecs.AddSystem(systems.UpdatePersistence)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawTransition)

	factory.CreateSession(ws.ecs, ws.deps.Save, ws.request.Difficulty)
	factory.CreateLevel(ws.ecs, ws.deps.Gen)
	factory.CreateCamera(ws.ecs)
	// Spawn position is placeholder; the run start loads the first level
	// and moves the player to its spawn marker
	factory.CreatePlayer(ws.ecs, gamemath.Vec2{})

	state := systems.GetAppState(ws.ecs)
	state.Actions.Push(actions.SetGameplayDifficulty{Difficulty: ws.request.Difficulty})
	if ws.request.BiomeChallenge {
		state.Actions.Push(actions.StartBiomeChallenge{
			Biome:  ws.request.Biome,
			Preset: ws.request.Preset,
			Seed:   ws.request.Seed,
			Seeded: ws.request.Seeded,
		})
	} else {
		state.Actions.Push(actions.StartRun{
			Preset: ws.request.Preset,
			Seed:   ws.request.Seed,
			Seeded: ws.request.Seeded,
		})
	}
}
