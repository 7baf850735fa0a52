package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen shows the game name, the starting level grid and the mute toggle
type TitleScreen struct {
	startTime time.Time
	width     int
	height    int

	selector *LevelSelector
	start    Button
	mute     Button

	onStart      func(level int)
	onToggleMute func()
	muted        func() bool
}

// NewTitleScreen creates a title screen; onStart receives the chosen starting level
func NewTitleScreen(width, height, selected int, muted func() bool, onToggleMute func(), onStart func(level int)) *TitleScreen {
	ts := &TitleScreen{
		startTime:    time.Now(),
		width:        width,
		height:       height,
		selector:     NewLevelSelector(width, height/2-40, selected),
		onStart:      onStart,
		onToggleMute: onToggleMute,
		muted:        muted,
	}

	bw, bh := 200, 50
	top := ts.selector.Bottom() + 40
	ts.start = Button{Label: "START", Rect: image.Rect(width/2-bw/2, top, width/2+bw/2, top+bh)}
	ts.mute = Button{Label: "SOUND", Rect: image.Rect(width-90, 16, width-16, 46)}
	return ts
}

// Selected returns the chosen starting level
func (ts *TitleScreen) Selected() int {
	return ts.selector.Selected
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		ts.selector.Move(-1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		ts.selector.Move(1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		ts.selector.Move(0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		ts.selector.Move(0, 1)
	}

	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0} {
		if inpututil.IsKeyJustPressed(k) {
			ts.selector.Set(i + 1)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if lvl := ts.selector.LevelAt(ebiten.CursorPosition()); lvl > 0 {
			ts.selector.Set(lvl)
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if lvl := ts.selector.LevelAt(ebiten.TouchPosition(id)); lvl > 0 {
			ts.selector.Set(lvl)
		}
	}

	if ts.mute.Clicked() && ts.onToggleMute != nil {
		ts.onToggleMute()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		ts.start.Clicked() {
		if ts.onStart != nil {
			ts.onStart(ts.selector.Selected)
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 20, 35, 255})
	elapsed := time.Since(ts.startTime).Seconds()

	drawDecorativeElements(screen, ts.width, ts.height, elapsed)

	// pulsing title
	centerX := float64(ts.width) / 2
	pulse := 1.0 + 0.08*math.Sin(elapsed*2.0)
	brightness := math.Min(1, 0.85+0.15*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawText(screen, "ROAD RUSH", centerX, float64(ts.height)/6, 56*pulse, titleColor)
	DrawText(screen, "Dodge everything for ten levels", centerX, float64(ts.height)/6+60, 16, color.RGBA{180, 180, 200, 255})

	DrawText(screen, "STARTING LEVEL", centerX, float64(ts.selector.Origin.Y)-30, 20, color.White)
	ts.selector.Draw(screen)

	ts.start.Draw(screen, color.RGBA{60, 100, 140, 255}, color.RGBA{200, 240, 255, 255})

	label := "SOUND"
	if ts.muted != nil && ts.muted() {
		label = "MUTED"
	}
	ts.mute.Label = label
	ts.mute.Draw(screen, color.RGBA{40, 40, 60, 255}, color.White)

	if int(elapsed*2)%2 == 0 {
		DrawText(screen, "ARROWS/1-0 pick level  ENTER start  M mute", centerX, float64(ts.height)-60, 12, color.RGBA{150, 200, 255, 255})
	}
	DrawText(screen, "In game: LEFT/RIGHT steer  UP/DOWN speed", centerX, float64(ts.height)-36, 12, color.RGBA{150, 150, 150, 255})
}

// drawDecorativeElements draws two scrolling dashed lane markers on the title screen
func drawDecorativeElements(screen *ebiten.Image, width, height int, elapsed float64) {
	lineColor := color.RGBA{50, 60, 80, 120}
	offset := float32(math.Mod(elapsed*120, 70))
	for _, x := range []float32{float32(width) / 8, float32(width) * 7 / 8} {
		for y := offset - 70; y < float32(height); y += 70 {
			vector.DrawFilledRect(screen, x-3, y, 6, 40, lineColor, false)
		}
	}
}
