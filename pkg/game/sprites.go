package game

import (
	"image/color"
	"math"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/golangdaddy/roadrush/pkg/ui"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	carBody      = color.RGBA{0xff, 0x47, 0x57, 0xff}
	carRoof      = color.RGBA{0xee, 0x5a, 0x24, 0xff}
	carCabin     = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	carWindow    = color.RGBA{0x74, 0xb9, 0xff, 0xff}
	carTaillight = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	carHeadlight = color.RGBA{0xff, 0xff, 0xff, 0xff}
	carWheel     = color.RGBA{30, 30, 30, 255}
	unknownColor = color.RGBA{0xff, 0x00, 0xff, 0xff}
)

// Palette caches parsed obstacle colours
type Palette struct {
	cache map[string]color.RGBA
}

// NewPalette returns an empty colour cache
func NewPalette() *Palette {
	return &Palette{cache: make(map[string]color.RGBA)}
}

// Color parses a "#rrggbb" string, magenta if it can't be parsed
func (p *Palette) Color(hex string) color.RGBA {
	if c, ok := p.cache[hex]; ok {
		return c
	}
	c := unknownColor
	if rgb, err := config.ParseHexColor(hex); err == nil {
		c = color.RGBA{rgb[0], rgb[1], rgb[2], 0xff}
	}
	p.cache[hex] = c
	return c
}

// Shade lightens (positive) or darkens (negative) a colour by a percentage of full scale
func Shade(c color.RGBA, percent float64) color.RGBA {
	amt := int(math.Round(2.55 * percent))
	ch := func(v uint8) uint8 {
		n := int(v) + amt
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

// drawCar renders a top-down view of the player's car
func drawCar(screen *ebiten.Image, r vehicle.Rect) {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)

	// wheels poke out from under the body
	for _, wy := range []float32{y + 14, y + h - 24} {
		vector.DrawFilledRect(screen, x+1, wy, 6, 14, carWheel, false)
		vector.DrawFilledRect(screen, x+w-7, wy, 6, 14, carWheel, false)
	}

	// body tapers towards the nose
	vector.DrawFilledRect(screen, x+5, y+25, w-10, h-25, carBody, true)
	vector.DrawFilledRect(screen, x+9, y+12, w-18, 14, carBody, true)
	vector.DrawFilledRect(screen, x+15, y+5, w-30, 8, carBody, true)
	vector.DrawFilledRect(screen, x+7, y+h-22, w-14, 12, carRoof, false)

	vector.DrawFilledRect(screen, x+15, y+18, w-30, 17, carCabin, false)
	vector.DrawFilledRect(screen, x+17, y+20, w-34, 13, carWindow, false)

	vector.DrawFilledCircle(screen, x+10, y+38, 3, carHeadlight, true)
	vector.DrawFilledCircle(screen, x+w-10, y+38, 3, carHeadlight, true)
	vector.DrawFilledCircle(screen, x+8, y+h-5, 4, carTaillight, true)
	vector.DrawFilledCircle(screen, x+w-8, y+h-5, 4, carTaillight, true)
}

// drawObstacle renders an obstacle as a shaded block with its glyph
func drawObstacle(screen *ebiten.Image, o models.Obstacle, palette *Palette) {
	base := palette.Color(o.Color)
	x, y := float32(o.X), float32(o.Y)
	w, h := float32(o.Width), float32(o.Height)

	vector.DrawFilledRect(screen, x-2, y-2, w+4, h+4, Shade(base, -30), true)
	vector.DrawFilledRect(screen, x+2, y+2, w-4, h-4, base, true)

	size := math.Min(o.Width, o.Height) * 0.6
	ui.DrawText(screen, o.Glyph, o.X+o.Width/2, o.Y+o.Height/2, size, color.White)
}
