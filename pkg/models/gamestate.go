package models

import "fmt"

const (
	// MaxLevel is the last level; finishing it wins the game
	MaxLevel = 10
	// LevelDuration is the countdown, in seconds, of every level
	LevelDuration = 60
	// StartingLives is how many collisions the player can take
	StartingLives = 3

	MinSpeedMultiplier = 0.5
	MaxSpeedMultiplier = 3.0
	// SpeedStep is applied once per frame while throttle or brake is held
	SpeedStep = 0.02
)

// ErrInvalidLevel is returned for a starting level outside 1..MaxLevel
var ErrInvalidLevel = fmt.Errorf("starting level must be between 1 and %d", MaxLevel)

// SessionState represents the mutable state of one play session
type SessionState struct {
	Level           int
	LevelTimer      int // seconds left in the current level
	Score           int
	Lives           int
	SpeedMultiplier float64
	Running         bool

	LastSpawnAt float64 // ms timestamp of the last spawn burst
	LastZone    int     // -1 until the first obstacle is placed
}

// NewSessionState creates a session state at the given starting level
func NewSessionState(startingLevel int) (*SessionState, error) {
	s := &SessionState{}
	if err := s.Reset(startingLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset restores every field to its start-of-session value
func (s *SessionState) Reset(startingLevel int) error {
	if err := ValidateLevel(startingLevel); err != nil {
		return err
	}
	*s = SessionState{
		Level:           startingLevel,
		LevelTimer:      LevelDuration,
		Lives:           StartingLives,
		SpeedMultiplier: 1.0,
		LastZone:        -1,
	}
	return nil
}

// AdjustSpeed applies one frame of throttle/brake input, clamped to the allowed range
func (s *SessionState) AdjustSpeed(accelerate, decelerate bool) {
	if accelerate {
		s.SpeedMultiplier += SpeedStep
	}
	if decelerate {
		s.SpeedMultiplier -= SpeedStep
	}
	if s.SpeedMultiplier > MaxSpeedMultiplier {
		s.SpeedMultiplier = MaxSpeedMultiplier
	}
	if s.SpeedMultiplier < MinSpeedMultiplier {
		s.SpeedMultiplier = MinSpeedMultiplier
	}
}

// ValidateLevel checks that level is a playable level number
func ValidateLevel(level int) error {
	if level < 1 || level > MaxLevel {
		return fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	return nil
}

// ClampLevel forces level into 1..MaxLevel
func ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
