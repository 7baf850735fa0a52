package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golangdaddy/roadrush/pkg/models"
	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevels []byte

// ErrInvalidCatalog is returned when a levels file fails validation
var ErrInvalidCatalog = errors.New("invalid level catalog")

// LevelConfig is the content of a levels file
type LevelConfig struct {
	Levels    models.LevelTable     `yaml:"levels"`
	Obstacles []models.ObstacleKind `yaml:"obstacles"`
}

// Catalog wraps the obstacle kinds for the spawner
func (c *LevelConfig) Catalog() *models.Catalog {
	return models.NewCatalog(c.Obstacles)
}

// LoadLevels reads a levels file, or the built-in one when path is empty.
// zoneWidth is the width of one spawn zone; every obstacle must fit in it.
func LoadLevels(path string, zoneWidth float64) (*LevelConfig, error) {
	data := defaultLevels
	source := "built-in levels"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read levels file %s: %w", path, err)
		}
		data = b
		source = path
	}

	cfg, err := ParseLevels(data, zoneWidth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// ParseLevels decodes and validates levels YAML
func ParseLevels(data []byte, zoneWidth float64) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse levels YAML: %w", err)
	}
	if err := cfg.Validate(zoneWidth); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the level table and catalog
func (c *LevelConfig) Validate(zoneWidth float64) error {
	if len(c.Levels) != models.MaxLevel {
		return fmt.Errorf("%w: need %d levels, got %d", ErrInvalidCatalog, models.MaxLevel, len(c.Levels))
	}
	for i, l := range c.Levels {
		if l.SpawnIntervalMs <= 0 || l.BaseFallSpeed <= 0 || l.MaxObstacles <= 0 {
			return fmt.Errorf("%w: level %d has non-positive pacing", ErrInvalidCatalog, i+1)
		}
	}

	if len(c.Obstacles) == 0 {
		return fmt.Errorf("%w: no obstacle kinds", ErrInvalidCatalog)
	}
	for _, k := range c.Obstacles {
		if k.Name == "" {
			return fmt.Errorf("%w: obstacle kind without a name", ErrInvalidCatalog)
		}
		if k.Width <= 0 || k.Height <= 0 {
			return fmt.Errorf("%w: %s has size %.0fx%.0f", ErrInvalidCatalog, k.Name, k.Width, k.Height)
		}
		if zoneWidth > 0 && k.Width > zoneWidth {
			return fmt.Errorf("%w: %s is wider than a zone (%.0f > %.0f)", ErrInvalidCatalog, k.Name, k.Width, zoneWidth)
		}
		if len(k.Colors) == 0 {
			return fmt.Errorf("%w: %s has no colours", ErrInvalidCatalog, k.Name)
		}
		for _, col := range k.Colors {
			if _, err := ParseHexColor(col); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, k.Name, err)
			}
		}
	}
	return nil
}

// ParseHexColor parses "#rrggbb" into its components
func ParseHexColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return rgb, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb, fmt.Errorf("bad colour %q: %w", s, err)
	}
	rgb[0] = uint8(v >> 16)
	rgb[1] = uint8(v >> 8)
	rgb[2] = uint8(v)
	return rgb, nil
}
