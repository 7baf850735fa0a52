package traffic

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/golangdaddy/roadrush/pkg/road"
)

const (
	// avoidRepeatChance is the probability of forcing a zone different from the last one
	avoidRepeatChance = 0.7
	maxBurst          = 2
	maxOwnSpeed       = 3.0
	speedPerLevel     = 0.3
)

// SpawnPlanner decides when obstacles appear and where
type SpawnPlanner struct {
	rng     *rand.Rand
	catalog *models.Catalog
	road    *road.Road
}

// NewSpawnPlanner creates a planner drawing kinds from catalog and zones from r
func NewSpawnPlanner(rng *rand.Rand, catalog *models.Catalog, r *road.Road) *SpawnPlanner {
	return &SpawnPlanner{
		rng:     rng,
		catalog: catalog,
		road:    r,
	}
}

// MaybeSpawn adds one or two obstacles to the field once the level's spawn
// interval (scaled by the speed multiplier) has elapsed since the last burst.
// The field never grows past setting.MaxObstacles. It records the burst time
// and the last zone used in state and returns the obstacles it created.
func (p *SpawnPlanner) MaybeSpawn(nowMs float64, state *models.SessionState, setting models.LevelSetting, field *Field) []models.Obstacle {
	interval := setting.SpawnIntervalMs / state.SpeedMultiplier
	if nowMs-state.LastSpawnAt <= interval {
		return nil
	}
	state.LastSpawnAt = nowMs

	if p.catalog.Len() == 0 {
		return nil
	}

	count := 1 + p.rng.Intn(maxBurst)
	if room := setting.MaxObstacles - field.Len(); count > room {
		count = room
	}

	var spawned []models.Obstacle
	for i := 0; i < count; i++ {
		zone := p.pickZone(state.LastZone)
		state.LastZone = zone
		o := p.newObstacle(state.Level, p.road.Zone(zone))
		spawned = append(spawned, field.Add(o))
	}
	return spawned
}

// pickZone is a single weighted draw: most of the time it picks one of the
// zones other than last, otherwise any zone including last.
func (p *SpawnPlanner) pickZone(last int) int {
	if last < 0 || last >= road.ZoneCount || p.rng.Float64() >= avoidRepeatChance {
		return p.rng.Intn(road.ZoneCount)
	}
	zone := p.rng.Intn(road.ZoneCount - 1)
	if zone >= last {
		zone++
	}
	return zone
}

func (p *SpawnPlanner) newObstacle(level int, zone road.Zone) models.Obstacle {
	kind := p.catalog.Kind(p.rng.Intn(p.catalog.Len()))

	color := ""
	if len(kind.Colors) > 0 {
		color = kind.Colors[p.rng.Intn(len(kind.Colors))]
	}

	// keep the whole obstacle inside its zone
	slack := math.Max(0, zone.Width-kind.Width)

	return models.Obstacle{
		Kind:   kind.Name,
		X:      zone.Start + p.rng.Float64()*slack,
		Y:      -kind.Height,
		Width:  kind.Width,
		Height: kind.Height,
		Color:  color,
		Glyph:  kind.Glyph,
		Speed:  p.rng.Float64()*maxOwnSpeed + float64(level)*speedPerLevel,
	}
}
