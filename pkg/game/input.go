package game

import (
	"image"

	"github.com/golangdaddy/roadrush/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// Control is one of the four on-screen buttons
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlUp
	ControlDown
)

const (
	touchSize   = 60
	touchMargin = 10
)

// TouchButton is an on-screen button mapped to a control
type TouchButton struct {
	Control Control
	Label   string
	Rect    image.Rectangle
}

// TouchPad lays out steering buttons bottom-left and speed buttons bottom-right
type TouchPad struct {
	buttons []TouchButton
}

// NewTouchPad lays out the four buttons for a canvas of the given size
func NewTouchPad(width, height int) *TouchPad {
	y := height - touchSize - touchMargin
	at := func(x int) image.Rectangle {
		return image.Rect(x, y, x+touchSize, y+touchSize)
	}
	return &TouchPad{buttons: []TouchButton{
		{ControlLeft, "<", at(touchMargin)},
		{ControlRight, ">", at(2*touchMargin + touchSize)},
		{ControlUp, "^", at(width - 2*touchSize - 2*touchMargin)},
		{ControlDown, "v", at(width - touchSize - touchMargin)},
	}}
}

func (p *TouchPad) Buttons() []TouchButton {
	return p.buttons
}

// Resolve turns the points currently held down into an intent
func (p *TouchPad) Resolve(points []image.Point) session.Intent {
	var in session.Intent
	for _, pt := range points {
		for _, b := range p.buttons {
			if !pt.In(b.Rect) {
				continue
			}
			switch b.Control {
			case ControlLeft:
				in.SteerLeft = true
			case ControlRight:
				in.SteerRight = true
			case ControlUp:
				in.Accelerate = true
			case ControlDown:
				in.Decelerate = true
			}
		}
	}
	return in
}

// Held reports which controls the given intent holds, for highlighting
func Held(in session.Intent, c Control) bool {
	switch c {
	case ControlLeft:
		return in.SteerLeft
	case ControlRight:
		return in.SteerRight
	case ControlUp:
		return in.Accelerate
	case ControlDown:
		return in.Decelerate
	}
	return false
}

func merge(a, b session.Intent) session.Intent {
	return session.Intent{
		SteerLeft:  a.SteerLeft || b.SteerLeft,
		SteerRight: a.SteerRight || b.SteerRight,
		Accelerate: a.Accelerate || b.Accelerate,
		Decelerate: a.Decelerate || b.Decelerate,
	}
}

// InputControls reads the keyboard and the touch pad. A held left mouse
// button counts as a touch so the pad works on desktop too.
type InputControls struct {
	pad      *TouchPad
	touchIDs []ebiten.TouchID
	points   []image.Point
	last     session.Intent
}

// NewInputControls reads the keyboard and pad
func NewInputControls(pad *TouchPad) *InputControls {
	return &InputControls{pad: pad}
}

// Intent ORs the keyboard with whatever pad buttons are held
func (c *InputControls) Intent() session.Intent {
	keys := session.Intent{
		SteerLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		SteerRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Accelerate: ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Decelerate: ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}

	c.points = c.points[:0]
	c.touchIDs = ebiten.AppendTouchIDs(c.touchIDs[:0])
	for _, id := range c.touchIDs {
		c.points = append(c.points, image.Pt(ebiten.TouchPosition(id)))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		c.points = append(c.points, image.Pt(ebiten.CursorPosition()))
	}

	c.last = merge(keys, c.pad.Resolve(c.points))
	return c.last
}

// Last returns the intent reported on the most recent call
func (c *InputControls) Last() session.Intent {
	return c.last
}
