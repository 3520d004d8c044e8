package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/octoplat/systems"
	"github.com/automoto/octoplat/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrorScene shows a level generation failure with recovery options.
// Unlike the other scenes it is pure ebitenui; there is no ECS behind it.
type ErrorScene struct {
	sceneChanger SceneChanger
	deps         Deps
	message      string
	errorUI      *ui.ErrorUI
	once         sync.Once
}

// NewErrorScene creates the error scene for the given failure message.
func NewErrorScene(sc SceneChanger, deps Deps, message string) *ErrorScene {
	if message == "" {
		message = "level generation failed"
	}
	return &ErrorScene{sceneChanger: sc, deps: deps, message: message}
}

func (es *ErrorScene) Update() {
	es.once.Do(es.configure)
	es.errorUI.Update()
}

func (es *ErrorScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if es.errorUI == nil {
		return
	}
	es.errorUI.Draw(screen)
}

func (es *ErrorScene) configure() {
	retry := func() {
		// A fresh random seed sidesteps whatever the validator rejected
		es.sceneChanger.ChangeScene(NewWorldScene(es.sceneChanger, es.deps, systems.RunRequest{}))
	}
	toMenu := func() {
		es.sceneChanger.ChangeScene(NewMenuScene(es.sceneChanger, es.deps))
	}
	quit := func() {
		os.Exit(1)
	}

	es.errorUI = ui.NewErrorUI(es.message, retry, toMenu, quit)
}
