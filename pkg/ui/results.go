package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Outcome is how a session ended
type Outcome int

const (
	Victory Outcome = iota
	GameOver
)

// ResultScreen is the overlay shown when a session ends
type ResultScreen struct {
	Outcome Outcome
	Level   int
	Score   int

	restart   Button
	onRestart func()
	onMenu    func()
}

// NewResultScreen creates the overlay for a canvas of the given size
func NewResultScreen(width, height int, outcome Outcome, level, score int, onRestart, onMenu func()) *ResultScreen {
	bw, bh := 200, 50
	top := height/2 + 80
	return &ResultScreen{
		Outcome:   outcome,
		Level:     level,
		Score:     score,
		restart:   Button{Label: "PLAY AGAIN", Rect: image.Rect(width/2-bw/2, top, width/2+bw/2, top+bh)},
		onRestart: onRestart,
		onMenu:    onMenu,
	}
}

// Lines returns the headline and the summary lines of the overlay
func (rs *ResultScreen) Lines() (string, []string) {
	if rs.Outcome == Victory {
		return "YOU WIN!", []string{
			"All ten levels cleared",
			fmt.Sprintf("Final score: %d", rs.Score),
		}
	}
	return "GAME OVER", []string{
		fmt.Sprintf("Reached level %d", rs.Level),
		fmt.Sprintf("Final score: %d", rs.Score),
	}
}

// Update handles restart and back-to-menu input
func (rs *ResultScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if rs.onMenu != nil {
			rs.onMenu()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		rs.restart.Clicked() {
		if rs.onRestart != nil {
			rs.onRestart()
		}
	}
	return nil
}

// Draw renders the overlay on top of the last play field frame
func (rs *ResultScreen) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	dim(screen)

	accent := color.RGBA{255, 71, 87, 255}
	if rs.Outcome == Victory {
		accent = color.RGBA{255, 215, 0, 255}
	}
	r := image.Rect(30, h/2-160, w-30, h/2+150)
	panel(screen, r, color.RGBA{25, 30, 55, 240}, accent)

	title, lines := rs.Lines()
	cx := float64(w) / 2
	DrawText(screen, title, cx, float64(h)/2-110, 40, accent)
	for i, l := range lines {
		DrawText(screen, l, cx, float64(h)/2-30+float64(i)*36, 20, color.White)
	}

	rs.restart.Draw(screen, color.RGBA{60, 100, 140, 255}, color.RGBA{200, 240, 255, 255})
	DrawText(screen, "ENTER again  ESC menu", cx, float64(rs.restart.Rect.Max.Y)+20, 12, color.RGBA{150, 150, 150, 255})
}
