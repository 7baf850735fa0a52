package traffic

import (
	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
)

// CheckCollisions returns the IDs of every obstacle overlapping the hitbox,
// in field order. It does not mutate anything.
func CheckCollisions(hitbox vehicle.Rect, obstacles []models.Obstacle) []uint64 {
	var hits []uint64
	for _, o := range obstacles {
		if hitbox.Overlaps(o.Bounds()) {
			hits = append(hits, o.ID)
		}
	}
	return hits
}
