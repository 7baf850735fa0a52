package models

import "github.com/golangdaddy/roadrush/pkg/vehicle"

// ObstacleKind is a catalog entry describing one type of obstacle
type ObstacleKind struct {
	Name   string   `yaml:"name"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Colors []string `yaml:"colors"` // hex palette, e.g. "#ff6b6b"
	Glyph  string   `yaml:"glyph"`
}

// Obstacle is a live obstacle falling down the road
type Obstacle struct {
	ID     uint64
	Kind   string
	X, Y   float64
	Width  float64
	Height float64
	Color  string
	Glyph  string
	Speed  float64 // own fall speed, added to the level base speed
}

// Bounds returns the obstacle rectangle
func (o Obstacle) Bounds() vehicle.Rect {
	return vehicle.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
