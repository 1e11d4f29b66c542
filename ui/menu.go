// Package ui builds the ebitenui screens shown outside of gameplay.
package ui

import (
	"image/color"

	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Menu is a centered column of labels and buttons.
type Menu struct {
	UI *ebitenui.UI

	column     *widget.Container
	titleFace  text.Face
	buttonFace text.Face
	labelFace  text.Face
}

func newMenu() *Menu {
	m := &Menu{
		titleFace:  fonts.Title.Face(),
		buttonFace: fonts.Button.Face(),
		labelFace:  fonts.HUD.Face(),
	}

	// Root container with AnchorLayout to fill the screen
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	m.column = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(cfg.Menu.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(m.column)

	m.UI = &ebitenui.UI{Container: root}
	return m
}

func (m *Menu) Update() {
	m.UI.Update()
}

func (m *Menu) Draw(screen *ebiten.Image) {
	m.UI.Draw(screen)
}

func (m *Menu) addTitle(s string) *widget.Label {
	return m.addLabel(s, &m.titleFace, cfg.Menu.HeaderText)
}

func (m *Menu) addText(s string) *widget.Label {
	return m.addLabel(s, &m.labelFace, cfg.Menu.LabelText)
}

func (m *Menu) addLabel(s string, face *text.Face, c color.Color) *widget.Label {
	label := widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			})),
		),
	)
	m.column.AddChild(label)
	return label
}

func (m *Menu) addButton(s string, onClick func()) *widget.Button {
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(s, &m.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.ButtonText,
			Hover:   cfg.White,
			Pressed: cfg.Menu.ButtonText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
	m.column.AddChild(button)
	return button
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func setButtonLabel(b *widget.Button, s string) {
	if t := b.Text(); t != nil {
		t.Label = s
	}
}
