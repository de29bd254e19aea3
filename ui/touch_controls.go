package ui

import (
	"bytes"
	"image"
	"image/color"
	"log"

	cfg "github.com/automoto/flagpole/config"
	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TouchControls is the on-screen pad: left and right at the bottom-left,
// jump at the bottom-right. It stays hidden until a finger touches the
// screen or it is enabled up front, and while hidden it reports nothing.
type TouchControls struct {
	UI *ebitenui.UI

	btnLeft  *widget.Button
	btnRight *widget.Button
	btnJump  *widget.Button

	face text.Face

	visible bool

	// Set by the ebitenui pointer handlers (mouse and single touch).
	pointerLeft  bool
	pointerRight bool
	pointerJump  bool

	left        bool
	right       bool
	jumpDown    bool
	jumpLatched bool

	touchIDs []ebiten.TouchID
}

func NewTouchControls(visible bool) *TouchControls {
	tc := &TouchControls{visible: visible}
	tc.loadFont()
	tc.buildUI()
	return tc
}

func (tc *TouchControls) loadFont() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("touch controls: load font: %v", err)
		return
	}
	tc.face = &text.GoTextFace{
		Source: fontSource,
		Size:   float64(cfg.Touch.ButtonSize) / 2,
	}
}

func (tc *TouchControls) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Touch.Margin)),
		)),
	)

	movePad := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(cfg.Touch.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	tc.btnLeft = tc.newButton("<", &tc.pointerLeft)
	tc.btnRight = tc.newButton(">", &tc.pointerRight)
	movePad.AddChild(tc.btnLeft)
	movePad.AddChild(tc.btnRight)

	tc.btnJump = tc.newButton("^", &tc.pointerJump, widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}))

	rootContainer.AddChild(movePad)
	rootContainer.AddChild(tc.btnJump)

	tc.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// newButton builds a square pad button that mirrors its pressed state into held.
func (tc *TouchControls) newButton(label string, held *bool, opts ...widget.WidgetOpt) *widget.Button {
	size := cfg.Touch.ButtonSize
	opts = append([]widget.WidgetOpt{widget.WidgetOpts.MinSize(size, size)}, opts...)

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(opts...),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &tc.face, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 220},
		}),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			*held = true
		}),
		widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
			*held = false
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := euiimage.NewNineSliceColor(color.RGBA{0, 0, 0, 90})
	hover := euiimage.NewNineSliceColor(color.RGBA{0, 0, 0, 110})
	pressed := euiimage.NewNineSliceColor(color.RGBA{255, 255, 255, 120})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// Update polls every active finger against the button rectangles so the
// pad works with several fingers at once, then merges the pointer handlers.
func (tc *TouchControls) Update() {
	tc.touchIDs = ebiten.AppendTouchIDs(tc.touchIDs[:0])
	if len(tc.touchIDs) > 0 {
		tc.visible = true
	}
	if !tc.visible {
		return
	}

	tc.UI.Update()

	var fingerLeft, fingerRight, fingerJump bool
	for _, id := range tc.touchIDs {
		pt := image.Pt(ebiten.TouchPosition(id))
		fingerLeft = fingerLeft || pt.In(tc.btnLeft.GetWidget().Rect)
		fingerRight = fingerRight || pt.In(tc.btnRight.GetWidget().Rect)
		fingerJump = fingerJump || pt.In(tc.btnJump.GetWidget().Rect)
	}

	tc.applyPressed(
		tc.pointerLeft || fingerLeft,
		tc.pointerRight || fingerRight,
		tc.pointerJump || fingerJump,
	)
}

// applyPressed records this frame's button state. A jump press latches on
// the frame it goes down and unlatches on release or when consumed.
func (tc *TouchControls) applyPressed(left, right, jump bool) {
	tc.left = left
	tc.right = right
	if jump && !tc.jumpDown {
		tc.jumpLatched = true
	}
	if !jump {
		tc.jumpLatched = false
	}
	tc.jumpDown = jump
}

func (tc *TouchControls) Draw(screen *ebiten.Image) {
	if !tc.visible {
		return
	}
	tc.UI.Draw(screen)
}

func (tc *TouchControls) Visible() bool {
	return tc.visible
}

func (tc *TouchControls) Held() (left, right bool) {
	if !tc.visible {
		return false, false
	}
	return tc.left, tc.right
}

func (tc *TouchControls) JumpLatched() bool {
	return tc.visible && tc.jumpLatched
}

func (tc *TouchControls) ConsumeJump() {
	tc.jumpLatched = false
}
