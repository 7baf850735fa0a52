package traffic

import "github.com/golangdaddy/roadrush/pkg/models"

// Field owns the live obstacles on the road
type Field struct {
	height    float64
	obstacles []models.Obstacle
	nextID    uint64
}

// NewField creates an empty field for a canvas of the given height
func NewField(height float64) *Field {
	return &Field{
		height:    height,
		obstacles: make([]models.Obstacle, 0),
	}
}

// Add places an obstacle on the road and returns it with its assigned ID
func (f *Field) Add(o models.Obstacle) models.Obstacle {
	f.nextID++
	o.ID = f.nextID
	f.obstacles = append(f.obstacles, o)
	return o
}

// Advance moves every obstacle down by (baseSpeed + own speed) * dtFactor.
// Obstacles whose top edge has left the bottom of the canvas are retired;
// the number retired this way is returned.
func (f *Field) Advance(baseSpeed, dtFactor float64) int {
	passed := 0
	active := f.obstacles[:0]

	for _, o := range f.obstacles {
		o.Y += (baseSpeed + o.Speed) * dtFactor
		if o.Y > f.height {
			passed++
			continue
		}
		active = append(active, o)
	}

	f.obstacles = active
	return passed
}

// Remove deletes the obstacle with the given ID
func (f *Field) Remove(id uint64) bool {
	for i, o := range f.obstacles {
		if o.ID == id {
			f.obstacles = append(f.obstacles[:i], f.obstacles[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of live obstacles
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Obstacles returns a copy of the live obstacles in insertion order
func (f *Field) Obstacles() []models.Obstacle {
	return append([]models.Obstacle(nil), f.obstacles...)
}

// Clear removes every obstacle and restarts ID numbering
func (f *Field) Clear() {
	f.obstacles = f.obstacles[:0]
	f.nextID = 0
}
