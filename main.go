package main

import (
	"image"
	stdlog "log"
	"os"

	"github.com/automoto/octoplat/assets"
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/fonts"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/save"
	"github.com/automoto/octoplat/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// configPath is watched for live tuning tweaks during development.
const configPath = "octoplat.yaml"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.Watcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(deps scenes.Deps, watcher *config.Watcher) *Game {
	fonts.LoadFont(fonts.Regular, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Bold, goregular.TTF, 20)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 32)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)

	g := &Game{
		bounds:  image.Rectangle{},
		watcher: watcher,
	}
	g.scene = scenes.NewMenuScene(g, deps)
	return g
}

func (g *Game) Update() error {
	g.drainConfigReloads()
	g.scene.Update()
	return nil
}

func (g *Game) drainConfigReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Reloads:
			if !ok {
				g.watcher = nil
				return
			}
			if err := config.LoadFile(path); err != nil {
				log.Warn("config reload failed", "err", err)
			} else {
				log.Info("config reloaded", "path", path)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn("config watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "octoplat"})

	if err := config.LoadFile(configPath); err != nil {
		logger.Warn("config file ignored", "err", err)
	}
	watcher, err := config.Watch(configPath)
	if err != nil {
		logger.Warn("config watching disabled", "err", err)
		watcher = nil
	}

	store, err := save.Open()
	if err != nil {
		logger.Warn("save data unavailable, running without persistence", "err", err)
	}

	gen := procgen.NewManager().WithLogger(logger)
	if n, err := gen.LoadPool(assets.Content(), assets.SegmentsDir); err != nil {
		stdlog.Fatalf("segment pool: %v", err)
	} else {
		logger.Info("segment pool ready", "entries", n)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	deps := scenes.Deps{Save: store, Gen: gen}
	if err := ebiten.RunGame(NewGame(deps, watcher)); err != nil {
		stdlog.Fatal(err)
	}
}
