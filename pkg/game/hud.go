package game

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/golangdaddy/roadrush/pkg/session"
	"github.com/golangdaddy/roadrush/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudHeight = 44

var (
	hudBackground = color.RGBA{20, 20, 30, 200}
	hudLabel      = color.RGBA{150, 150, 170, 255}
	hudValue      = color.RGBA{255, 255, 255, 255}
	heartColor    = color.RGBA{255, 71, 87, 255}
	heartLost     = color.RGBA{70, 70, 80, 255}
)

// SpeedLabel formats the speed multiplier the way the HUD shows it
func SpeedLabel(speed float64) string {
	return fmt.Sprintf("x%.1f", speed)
}

// drawHUD draws the status strip across the top of the play field
func drawHUD(screen *ebiten.Image, s session.Status, width int) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), hudHeight, hudBackground, false)

	fields := []struct{ label, value string }{
		{"LEVEL", fmt.Sprintf("%d", s.Level)},
		{"TIME", fmt.Sprintf("%d", s.Timer)},
		{"SCORE", fmt.Sprintf("%d", s.Score)},
	}
	x := 12.0
	for _, f := range fields {
		ui.DrawTextAt(screen, f.label, x, 4, 10, hudLabel)
		ui.DrawTextAt(screen, f.value, x, 18, 18, hudValue)
		x += 84
	}

	drawSpeedGauge(screen, x, 8, 90, 12, s.Speed)
	ui.DrawTextAt(screen, SpeedLabel(s.Speed), x, 24, 14, hudValue)

	for i := 0; i < models.StartingLives; i++ {
		c := heartLost
		if i < s.Lives {
			c = heartColor
		}
		cx := float32(width) - 20 - float32(i)*22
		vector.DrawFilledCircle(screen, cx-4, 18, 5, c, true)
		vector.DrawFilledCircle(screen, cx+4, 18, 5, c, true)
		vector.DrawFilledRect(screen, cx-8, 19, 16, 6, c, false)
		vector.DrawFilledRect(screen, cx-4, 25, 8, 4, c, false)
	}
}

// gaugeFill returns how much of the gauge is lit for a speed multiplier
func gaugeFill(speed float64) float64 {
	f := (speed - models.MinSpeedMultiplier) / (models.MaxSpeedMultiplier - models.MinSpeedMultiplier)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// drawSpeedGauge draws a horizontal bar that goes green to yellow to red as speed rises
func drawSpeedGauge(screen *ebiten.Image, x, y, width, height float64, speed float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 50, 255}, false)

	fill := gaugeFill(speed)
	if fill > 0 {
		var c color.RGBA
		switch {
		case fill < 0.5:
			c = color.RGBA{uint8(510 * fill), 255, 0, 255}
		default:
			c = color.RGBA{255, uint8(255 * (1 - fill) * 2), 0, 255}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*fill), float32(height), c, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{100, 100, 120, 255}, false)
}
