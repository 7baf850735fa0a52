package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarksAreDeterministic(t *testing.T) {
	g := NewGenerator(480, 720, 10)
	a := g.Marks(7)
	b := g.Marks(7)
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, g.Marks(8))
}

func TestMarksStayOnCanvas(t *testing.T) {
	g := NewGenerator(480, 720, 10)
	shoulder := 0
	for _, m := range g.Marks(1) {
		assert.GreaterOrEqual(t, m.X, float32(0))
		assert.LessOrEqual(t, m.X+m.Size, float32(480))
		assert.GreaterOrEqual(t, m.Y, float32(0))
		if m.Size > 1 || m.Colour.R >= 80 {
			shoulder++
		}
	}
	assert.Greater(t, shoulder, 0)
}

func TestNoShoulder(t *testing.T) {
	g := NewGenerator(100, 100, 0)
	assert.Len(t, g.Marks(1), 100*100/250)
}
