package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	gridCols  = 5
	cellSize  = 64
	cellGap   = 12
	gridWidth = gridCols*cellSize + (gridCols-1)*cellGap
)

var (
	cellIdle     = color.RGBA{40, 40, 60, 255}
	cellSelected = color.RGBA{255, 215, 0, 255}
	textIdle     = color.RGBA{255, 255, 255, 255}
	textSelected = color.RGBA{30, 30, 40, 255}
)

// LevelSelector is a 5x2 grid of starting levels
type LevelSelector struct {
	Selected int
	Origin   image.Point
}

// NewLevelSelector creates a grid centred horizontally on a canvas, with its top at y
func NewLevelSelector(canvasWidth, y, selected int) *LevelSelector {
	return &LevelSelector{
		Selected: models.ClampLevel(selected),
		Origin:   image.Pt(canvasWidth/2-gridWidth/2, y),
	}
}

// Move shifts the selection by columns and rows, wrapping around the grid
func (ls *LevelSelector) Move(dx, dy int) {
	i := ls.Selected - 1 + dx + dy*gridCols
	i %= models.MaxLevel
	if i < 0 {
		i += models.MaxLevel
	}
	ls.Selected = i + 1
}

// Set selects a level, clamped into range
func (ls *LevelSelector) Set(level int) {
	ls.Selected = models.ClampLevel(level)
}

// Cell returns the rectangle of a level's cell
func (ls *LevelSelector) Cell(level int) image.Rectangle {
	i := level - 1
	x := ls.Origin.X + (i%gridCols)*(cellSize+cellGap)
	y := ls.Origin.Y + (i/gridCols)*(cellSize+cellGap)
	return image.Rect(x, y, x+cellSize, y+cellSize)
}

// LevelAt returns the level whose cell holds the point, or 0
func (ls *LevelSelector) LevelAt(x, y int) int {
	p := image.Pt(x, y)
	for lvl := 1; lvl <= models.MaxLevel; lvl++ {
		if p.In(ls.Cell(lvl)) {
			return lvl
		}
	}
	return 0
}

// Bottom is the y just below the grid
func (ls *LevelSelector) Bottom() int {
	return ls.Cell(models.MaxLevel).Max.Y
}

func (ls *LevelSelector) Draw(screen *ebiten.Image) {
	for lvl := 1; lvl <= models.MaxLevel; lvl++ {
		bg, fg := cellIdle, textIdle
		if lvl == ls.Selected {
			bg, fg = cellSelected, textSelected
		}
		r := ls.Cell(lvl)
		drawButton(screen, fmt.Sprintf("%d", lvl),
			float64(r.Min.X), float64(r.Min.Y), cellSize, cellSize, bg, fg)
	}
}
