package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"partial overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 10, 10}, false},
		{"shared edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"contained", Rect{0, 0, 100, 100}, Rect{40, 40, 5, 5}, true},
		{"vertical miss", Rect{0, 0, 10, 10}, Rect{0, 11, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestCarHitboxIsInset(t *testing.T) {
	c := NewCar(480, 720)

	assert.Equal(t, Rect{X: 215, Y: 580, W: 50, H: 80}, c.Bounds())
	assert.Equal(t, Rect{X: 220, Y: 585, W: 40, H: 70}, c.Hitbox())
}

func TestCarSteerStaysOnRoad(t *testing.T) {
	c := NewCar(480, 720)

	for i := 0; i < 100; i++ {
		c.Steer(true, false, 480)
	}
	assert.Equal(t, RoadEdge, c.X)

	for i := 0; i < 100; i++ {
		c.Steer(false, true, 480)
	}
	assert.Equal(t, 480-CarWidth-RoadEdge, c.X)

	x := c.X
	c.Steer(true, true, 480)
	assert.Equal(t, x, c.X)
}
