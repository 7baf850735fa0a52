package level

import (
	"testing"

	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProgression(t *testing.T, startingLevel int) (*Progression, *models.SessionState) {
	t.Helper()
	state, err := models.NewSessionState(startingLevel)
	require.NoError(t, err)
	return NewProgression(state), state
}

// runSeconds ticks once per 100ms for n seconds starting at from and returns the last timestamp
func runSeconds(p *Progression, from float64, n int) (float64, []Event) {
	var events []Event
	now := from
	for i := 0; i < n*10; i++ {
		now += 100
		if ev := p.Tick(now); ev != EventNone {
			events = append(events, ev)
		}
	}
	return now, events
}

func TestTimerFirstFrameAnchors(t *testing.T) {
	var timer Timer

	assert.False(t, timer.Tick(5000))
	assert.False(t, timer.Tick(5999))
	assert.True(t, timer.Tick(6000))
	assert.False(t, timer.Tick(6500))
	assert.True(t, timer.Tick(7001))

	timer.Reset()
	assert.False(t, timer.Tick(20000))
	assert.True(t, timer.Tick(21000))
}

func TestTickDecrementsOncePerSecond(t *testing.T) {
	p, state := newTestProgression(t, 1)

	// the very first frame only anchors
	assert.Equal(t, EventNone, p.Tick(1000))
	assert.Equal(t, models.LevelDuration, state.LevelTimer)

	_, events := runSeconds(p, 1000, 5)
	assert.Len(t, events, 5)
	assert.Equal(t, models.LevelDuration-5, state.LevelTimer)
}

func TestTimerIsFrameRateIndependent(t *testing.T) {
	slow, slowState := newTestProgression(t, 1)
	fast, fastState := newTestProgression(t, 1)

	// 20 fps vs 125 fps over ten seconds
	for now := 0.0; now <= 10000; now += 50 {
		slow.Tick(now)
	}
	for now := 0.0; now <= 10000; now += 8 {
		fast.Tick(now)
	}

	assert.Equal(t, models.LevelDuration-10, slowState.LevelTimer)
	assert.InDelta(t, slowState.LevelTimer, fastState.LevelTimer, 1)
}

func TestLevelUpThenResume(t *testing.T) {
	p, state := newTestProgression(t, 4)
	state.LevelTimer = 2

	p.Tick(0)
	assert.Equal(t, EventTick, p.Tick(1000))
	assert.Equal(t, EventLevelUp, p.Tick(2000))

	assert.Equal(t, LevelUpPause, p.Phase())
	assert.Equal(t, 5, state.Level)
	assert.Equal(t, models.LevelDuration, state.LevelTimer)

	// paused: no countdown
	assert.Equal(t, EventNone, p.Tick(9000))
	assert.Equal(t, models.LevelDuration, state.LevelTimer)

	p.Resume()
	assert.Equal(t, Playing, p.Phase())
	assert.Equal(t, EventNone, p.Tick(9500), "first frame after resume anchors")
	assert.Equal(t, EventTick, p.Tick(10500))
	assert.Equal(t, models.LevelDuration-1, state.LevelTimer)
}

func TestEveryLevelBelowMaxLevelsUp(t *testing.T) {
	for lvl := 1; lvl < models.MaxLevel; lvl++ {
		p, state := newTestProgression(t, lvl)
		p.Tick(0)
		_, events := runSeconds(p, 0, models.LevelDuration)

		require.NotEmpty(t, events)
		assert.Equal(t, EventLevelUp, events[len(events)-1], "level %d", lvl)
		assert.Equal(t, lvl+1, state.Level)
		assert.Equal(t, models.LevelDuration, state.LevelTimer)
		assert.Equal(t, LevelUpPause, p.Phase())
	}
}

func TestMaxLevelEndsInVictory(t *testing.T) {
	p, state := newTestProgression(t, models.MaxLevel)
	p.Tick(0)
	now, events := runSeconds(p, 0, models.LevelDuration)

	require.NotEmpty(t, events)
	assert.Equal(t, EventVictory, events[len(events)-1])
	assert.Equal(t, Victory, p.Phase())
	assert.True(t, p.Terminal())
	assert.Equal(t, models.MaxLevel, state.Level)

	// terminal: everything is a no-op
	assert.Equal(t, EventNone, p.Tick(now+5000))
	assert.Equal(t, EventNone, p.LoseLife())
	p.Resume()
	assert.Equal(t, Victory, p.Phase())
	assert.Equal(t, models.StartingLives, state.Lives)
}

func TestLivesReachGameOverExactlyAtZero(t *testing.T) {
	p, state := newTestProgression(t, 1)

	prev := state.Lives
	assert.Equal(t, EventLifeLost, p.LoseLife())
	assert.LessOrEqual(t, state.Lives, prev)
	assert.Equal(t, Playing, p.Phase())

	assert.Equal(t, EventLifeLost, p.LoseLife())
	assert.Equal(t, Playing, p.Phase())

	assert.Equal(t, EventGameOver, p.LoseLife())
	assert.Equal(t, 0, state.Lives)
	assert.Equal(t, GameOver, p.Phase())

	assert.Equal(t, EventNone, p.LoseLife())
	assert.Equal(t, 0, state.Lives)
}

func TestThrottlePersistsAcrossLevels(t *testing.T) {
	p, state := newTestProgression(t, 1)
	state.LevelTimer = 1

	for i := 0; i < 10; i++ {
		p.Throttle(true, false)
	}
	p.Tick(0)
	assert.Equal(t, EventLevelUp, p.Tick(1000))
	assert.InDelta(t, 1.2, state.SpeedMultiplier, 1e-9)
}

func TestRestartReturnsToPlaying(t *testing.T) {
	p, state := newTestProgression(t, 1)
	for state.Lives > 0 {
		p.LoseLife()
	}
	require.Equal(t, GameOver, p.Phase())

	require.NoError(t, state.Reset(3))
	p.Restart()

	assert.Equal(t, Playing, p.Phase())
	assert.Equal(t, EventNone, p.Tick(50000))
	assert.Equal(t, EventTick, p.Tick(51000))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "level-up", LevelUpPause.String())
	assert.Equal(t, "victory", Victory.String())
	assert.Equal(t, "game-over", GameOver.String())
}
