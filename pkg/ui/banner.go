package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// LevelUpBanner is drawn over the frozen play field during the level-up pause
type LevelUpBanner struct {
	Level int
	Hint  string
	shown time.Time
}

// NewLevelUpBanner creates the banner for a newly reached level
func NewLevelUpBanner(level int, hint string) *LevelUpBanner {
	return &LevelUpBanner{Level: level, Hint: hint, shown: time.Now()}
}

// Title is the banner headline
func (b *LevelUpBanner) Title() string {
	return fmt.Sprintf("LEVEL %d", b.Level)
}

func (b *LevelUpBanner) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	dim(screen)

	// grows in over the first few hundred milliseconds
	grow := math.Min(1, time.Since(b.shown).Seconds()*4)
	pw, ph := int(float64(w-60)*grow), 180
	r := image.Rect(w/2-pw/2, h/2-ph/2, w/2+pw/2, h/2+ph/2)
	panel(screen, r, color.RGBA{25, 30, 55, 240}, color.RGBA{255, 215, 0, 255})
	if grow < 1 {
		return
	}

	cx := float64(w) / 2
	DrawText(screen, "LEVEL UP!", cx, float64(r.Min.Y)+36, 20, color.RGBA{150, 200, 255, 255})
	DrawText(screen, b.Title(), cx, float64(r.Min.Y)+86, 40, color.RGBA{255, 215, 0, 255})
	DrawText(screen, b.Hint, cx, float64(r.Min.Y)+140, 16, color.White)
}
