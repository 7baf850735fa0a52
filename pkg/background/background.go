package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	Asphalt  = color.RGBA{0x2d, 0x34, 0x36, 0xff}
	Shoulder = color.RGBA{0x63, 0x6e, 0x72, 0xff}
)

// Mark is a single speck of texture
type Mark struct {
	X, Y   float32
	Size   float32
	Colour color.RGBA
}

// Generator creates the static road texture drawn under the play field
type Generator struct {
	Width        int
	Height       int
	ShoulderSize int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height, shoulder int) *Generator {
	return &Generator{
		Width:        width,
		Height:       height,
		ShoulderSize: shoulder,
	}
}

// Marks lays out the asphalt grain and shoulder gravel for a seed
func (g *Generator) Marks(seed int64) []Mark {
	rng := rand.New(rand.NewSource(seed))
	marks := make([]Mark, 0, g.Width*g.Height/200)

	// asphalt grain
	for i := 0; i < g.Width*g.Height/250; i++ {
		shade := uint8(int(Asphalt.R) - 12 + rng.Intn(24))
		marks = append(marks, Mark{
			X:      float32(rng.Intn(g.Width)),
			Y:      float32(rng.Intn(g.Height)),
			Size:   1,
			Colour: color.RGBA{shade, shade + 6, shade + 8, 0xff},
		})
	}

	// gravel along both shoulders, denser in waves
	if g.ShoulderSize <= 0 {
		return marks
	}
	for y := 0; y < g.Height; y += 4 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.02)
		for _, edge := range []int{0, g.Width - g.ShoulderSize} {
			if rng.Float64() > density {
				continue
			}
			size := 1 + rng.Intn(2)
			shade := uint8(80 + rng.Intn(50))
			marks = append(marks, Mark{
				X:      float32(edge + rng.Intn(max(1, g.ShoulderSize-size+1))),
				Y:      float32(y + rng.Intn(4)),
				Size:   float32(size),
				Colour: color.RGBA{shade, shade + 8, shade + 10, 0xff},
			})
		}
	}
	return marks
}

// Generate renders the road texture
func (g *Generator) Generate(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	img.Fill(Asphalt)

	s := float32(g.ShoulderSize)
	vector.DrawFilledRect(img, 0, 0, s, float32(g.Height), Shoulder, false)
	vector.DrawFilledRect(img, float32(g.Width)-s, 0, s, float32(g.Height), Shoulder, false)

	for _, m := range g.Marks(seed) {
		vector.DrawFilledRect(img, m.X, m.Y, m.Size, m.Size, m.Colour, false)
	}
	return img
}
