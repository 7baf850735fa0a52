package models

// LevelSetting holds the pacing of a single level
type LevelSetting struct {
	SpawnIntervalMs float64 `yaml:"spawnIntervalMs"`
	BaseFallSpeed   float64 `yaml:"baseFallSpeed"`
	MaxObstacles    int     `yaml:"maxObstacles"`
	Hint            string  `yaml:"hint"`
}

// LevelTable is indexed by level number minus one
type LevelTable []LevelSetting

// Setting returns the settings of a 1-based level, clamped into the table
func (t LevelTable) Setting(level int) LevelSetting {
	if len(t) == 0 {
		return LevelSetting{}
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(t) {
		i = len(t) - 1
	}
	return t[i]
}
