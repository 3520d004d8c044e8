package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrorUI shows a generation or loading failure with recovery options.
type ErrorUI struct {
	UI *ebitenui.UI

	OnRetry func()
	OnMenu  func()
	OnQuit  func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewErrorUI(message string, onRetry, onMenu, onQuit func()) *ErrorUI {
	ui := &ErrorUI{
		OnRetry: onRetry,
		OnMenu:  onMenu,
		OnQuit:  onQuit,
	}
	ui.loadFonts()
	ui.buildUI(message)
	return ui
}

func (ui *ErrorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *ErrorUI) buildUI(message string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SOMETHING WENT WRONG", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 120, 120, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	messageLabel := widget.NewLabel(
		widget.LabelOpts.Text(message, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(messageLabel)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Retry generates the level again with a new seed.", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	contentContainer.AddChild(ui.buildButtons())
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ErrorUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	container.AddChild(ui.newButton("Retry", color.RGBA{40, 100, 40, 255}, func() {
		if ui.OnRetry != nil {
			ui.OnRetry()
		}
	}))
	container.AddChild(ui.newButton("Main Menu", color.RGBA{60, 60, 100, 255}, func() {
		if ui.OnMenu != nil {
			ui.OnMenu()
		}
	}))
	container.AddChild(ui.newButton("Quit", color.RGBA{100, 40, 40, 255}, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	return container
}

func (ui *ErrorUI) newButton(label string, base color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{base.R + 30, base.G + 30, base.B + 30, 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(base),
			Hover:    image.NewNineSliceColor(hover),
			Pressed:  image.NewNineSliceColor(base),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{230, 230, 255, 255},
			Pressed:  color.RGBA{180, 180, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *ErrorUI) Update() {
	ui.UI.Update()
}

func (ui *ErrorUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
