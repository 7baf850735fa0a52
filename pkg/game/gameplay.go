package game

import (
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/background"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/session"
	"github.com/golangdaddy/roadrush/pkg/ui"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const backgroundSeed = 2024

var (
	roadLineColor = color.RGBA{0xdf, 0xe6, 0xe9, 0xff}
	touchIdle     = color.RGBA{255, 255, 255, 40}
	touchHeld     = color.RGBA{255, 215, 0, 110}
)

// GameplayScreen draws the play field. It is the session's Renderer; the
// controller pushes a snapshot each frame and Draw shows the latest one.
type GameplayScreen struct {
	width, height int

	bgGen      *background.Generator
	background *ebiten.Image

	snapshot session.Snapshot
	status   session.Status
	palette  *Palette
	pad      *TouchPad
	controls *InputControls
}

// NewGameplayScreen creates the play field renderer
func NewGameplayScreen(width, height int, pad *TouchPad, controls *InputControls) *GameplayScreen {
	return &GameplayScreen{
		width:    width,
		height:   height,
		bgGen:    background.NewGenerator(width, height, int(vehicle.RoadEdge)),
		palette:  NewPalette(),
		pad:      pad,
		controls: controls,
	}
}

// Render keeps s for the next Draw
func (gs *GameplayScreen) Render(s session.Snapshot) {
	gs.snapshot = s
}

// SetStatus updates the HUD readout
func (gs *GameplayScreen) SetStatus(s session.Status) {
	gs.status = s
}

func (gs *GameplayScreen) Snapshot() session.Snapshot {
	return gs.snapshot
}

func (gs *GameplayScreen) Status() session.Status {
	return gs.status
}

// Draw renders road, car, obstacles, HUD and touch buttons
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	if gs.background == nil {
		gs.background = gs.bgGen.Generate(backgroundSeed)
	}
	screen.DrawImage(gs.background, nil)

	for _, l := range gs.snapshot.RoadLines {
		vector.DrawFilledRect(screen, float32(l.X), float32(l.Y), road.LineWidth, road.LineHeight, roadLineColor, false)
	}

	if gs.snapshot.Car.W > 0 {
		drawCar(screen, gs.snapshot.Car)
	}
	for _, o := range gs.snapshot.Obstacles {
		drawObstacle(screen, o, gs.palette)
	}

	drawHUD(screen, gs.status, gs.width)
	gs.drawTouchPad(screen)
}

func (gs *GameplayScreen) drawTouchPad(screen *ebiten.Image) {
	var held session.Intent
	if gs.controls != nil {
		held = gs.controls.Last()
	}
	for _, b := range gs.pad.Buttons() {
		c := touchIdle
		if Held(held, b.Control) {
			c = touchHeld
		}
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
		ui.DrawText(screen, b.Label, float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+r.Dy()/2), 24, color.White)
	}
}
