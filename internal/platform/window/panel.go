package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	panelColor       = color.NRGBA{R: 24, G: 24, B: 28, A: 230}
	buttonIdleColor  = color.NRGBA{R: 0, G: 90, B: 60, A: 255}
	buttonHoverColor = color.NRGBA{R: 0, G: 140, B: 90, A: 255}
	buttonPressColor = color.NRGBA{R: 0, G: 180, B: 120, A: 255}
)

// loadFace builds the text face used by the game-over panel.
func loadFace(size float64) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// newGameOverUI builds the panel shown when a run terminates.
func newGameOverUI(face text.Face, score, best int, onRetry, onExit func()) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	root.AddChild(panel)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("GAME OVER", face, color.White),
	))
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("Score %d   Best %d", score, best), face, color.White),
	))

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)
	buttons.AddChild(newButton("Retry", face, onRetry))
	buttons.AddChild(newButton("Exit", face, onExit))
	panel.AddChild(buttons)

	return &ebitenui.UI{Container: root}
}

func newButton(label string, face text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    eimage.NewNineSliceColor(buttonIdleColor),
			Hover:   eimage.NewNineSliceColor(buttonHoverColor),
			Pressed: eimage.NewNineSliceColor(buttonPressColor),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: color.White}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(8)),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}
