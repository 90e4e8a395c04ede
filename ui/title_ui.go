package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI is the ebitenui tree for the title screen
type TitleUI struct {
	UI *ebitenui.UI

	OnPlay func()
	OnQuit func()

	highLevelLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI builds the title screen showing the best level reached so far
func NewTitleUI(highLevel int, onPlay, onQuit func()) *TitleUI {
	tui := &TitleUI{
		OnPlay: onPlay,
		OnQuit: onQuit,
	}

	tui.loadFonts()
	tui.buildUI()
	tui.SetHighLevel(highLevel)

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   40,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0x1e, 0x90, 0xff, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("COIN DASH", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 215, 0, 255},
		}),
	))

	tui.highLevelLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(tui.highLevelLabel)

	contentContainer.AddChild(tui.menuButton("Play", func() {
		if tui.OnPlay != nil {
			tui.OnPlay()
		}
	}))
	contentContainer.AddChild(tui.menuButton("Quit", func() {
		if tui.OnQuit != nil {
			tui.OnQuit()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows to move, SPACE to jump", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 36)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{0x4c, 0xaf, 0x50, 255})
	hover := image.NewNineSliceColor(color.RGBA{0x66, 0xc8, 0x6a, 255})
	pressed := image.NewNineSliceColor(color.RGBA{0x38, 0x8e, 0x3c, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetHighLevel updates the best level label
func (tui *TitleUI) SetHighLevel(level int) {
	tui.highLevelLabel.Label = fmt.Sprintf("High Level: %d", level)
}

// Update calls the UI's Update method
func (tui *TitleUI) Update() {
	tui.UI.Update()
}
