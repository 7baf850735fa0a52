package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glyphHeight is the natural line height of the bitmap font
const glyphHeight = 16.0

// Face is the font used by every screen
var Face = text.NewGoXFace(bitmapfont.Face)

var (
	buttonBorder = color.RGBA{80, 80, 100, 255}
	dimOverlay   = color.RGBA{0, 0, 0, 170}
)

// Button is a clickable labelled rectangle
type Button struct {
	Label string
	Rect  image.Rectangle
}

// Contains reports whether the point is inside the button
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked reports a left click or a tap released inside the button this tick
func (b Button) Clicked() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b.Contains(ebiten.CursorPosition()) {
			return true
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if b.Contains(ebiten.TouchPosition(id)) {
			return true
		}
	}
	return false
}

// Draw draws the button with the given fill and text colour
func (b Button) Draw(screen *ebiten.Image, bg, fg color.Color) {
	drawButton(screen, b.Label,
		float64(b.Rect.Min.X), float64(b.Rect.Min.Y),
		float64(b.Rect.Dx()), float64(b.Rect.Dy()), bg, fg)
}

// drawButton draws a button with background, border and centred text
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bgColor, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, buttonBorder, false)

	textWidth := text.Advance(label, Face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+width/2-textWidth/2, y+height/2-glyphHeight/2)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, Face, op)
}

// DrawText draws str centred on (centerX, centerY) at the given pixel size
func DrawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	scale := size / glyphHeight
	width := text.Advance(str, Face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-width/2, centerY-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// DrawTextAt draws str with its top-left corner at (x, y)
func DrawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// TextWidth returns the width of str at the given pixel size
func TextWidth(str string, size float64) float64 {
	return text.Advance(str, Face) * size / glyphHeight
}

// dim darkens everything drawn so far
func dim(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), dimOverlay, false)
}

// panel draws a bordered box
func panel(screen *ebiten.Image, r image.Rectangle, fill, border color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 3, border, false)
}
