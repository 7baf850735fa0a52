package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionState(t *testing.T) {
	s, err := NewSessionState(4)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Level)
	assert.Equal(t, LevelDuration, s.LevelTimer)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, StartingLives, s.Lives)
	assert.Equal(t, 1.0, s.SpeedMultiplier)
	assert.Equal(t, -1, s.LastZone)
	assert.False(t, s.Running)
}

func TestSessionStateRejectsInvalidLevel(t *testing.T) {
	for _, lvl := range []int{0, -3, MaxLevel + 1} {
		_, err := NewSessionState(lvl)
		assert.ErrorIs(t, err, ErrInvalidLevel, "level %d", lvl)
	}
}

func TestSessionStateResetClearsProgress(t *testing.T) {
	s, err := NewSessionState(1)
	require.NoError(t, err)
	s.Score = 420
	s.Lives = 1
	s.Level = 7
	s.SpeedMultiplier = 2.5
	s.LastZone = 3
	s.Running = true

	require.NoError(t, s.Reset(2))

	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, StartingLives, s.Lives)
	assert.Equal(t, 1.0, s.SpeedMultiplier)
	assert.Equal(t, -1, s.LastZone)
	assert.False(t, s.Running)
}

func TestAdjustSpeedClamps(t *testing.T) {
	s, err := NewSessionState(1)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		s.AdjustSpeed(true, false)
	}
	assert.Equal(t, MaxSpeedMultiplier, s.SpeedMultiplier)

	for i := 0; i < 500; i++ {
		s.AdjustSpeed(false, true)
	}
	assert.Equal(t, MinSpeedMultiplier, s.SpeedMultiplier)

	s.SpeedMultiplier = 1.0
	s.AdjustSpeed(true, false)
	assert.InDelta(t, 1.02, s.SpeedMultiplier, 1e-9)
}

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 1, ClampLevel(-5))
	assert.Equal(t, 6, ClampLevel(6))
	assert.Equal(t, MaxLevel, ClampLevel(99))
}

func TestLevelTableSetting(t *testing.T) {
	table := LevelTable{
		{SpawnIntervalMs: 1200, MaxObstacles: 4},
		{SpawnIntervalMs: 1000, MaxObstacles: 5},
	}

	assert.Equal(t, 1200.0, table.Setting(1).SpawnIntervalMs)
	assert.Equal(t, 1000.0, table.Setting(2).SpawnIntervalMs)
	assert.Equal(t, 1000.0, table.Setting(9).SpawnIntervalMs)
	assert.Equal(t, 1200.0, table.Setting(0).SpawnIntervalMs)
	assert.Equal(t, LevelSetting{}, LevelTable(nil).Setting(1))
}
