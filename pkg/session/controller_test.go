package session

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/roadrush/pkg/level"
	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/golangdaddy/roadrush/pkg/sched"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameMs = 16.0

type fakeControls struct{ in Intent }

func (f *fakeControls) Intent() Intent { return f.in }

type fakeRenderer struct {
	frames int
	last   Snapshot
}

func (f *fakeRenderer) Render(s Snapshot) {
	f.frames++
	f.last = s
}

type fakePresenter struct {
	starts, hides   int
	levelUps        []int
	hint            string
	levelUpHides    int
	victoryScore    []int
	gameOverResults [][2]int
	status          Status
}

func (f *fakePresenter) ShowStart()    { f.starts++ }
func (f *fakePresenter) HideOverlays() { f.hides++ }
func (f *fakePresenter) ShowLevelUp(level int, hint string) {
	f.levelUps = append(f.levelUps, level)
	f.hint = hint
}
func (f *fakePresenter) HideLevelUp()          { f.levelUpHides++ }
func (f *fakePresenter) ShowVictory(score int) { f.victoryScore = append(f.victoryScore, score) }
func (f *fakePresenter) ShowGameOver(level, score int) {
	f.gameOverResults = append(f.gameOverResults, [2]int{level, score})
}
func (f *fakePresenter) UpdateStatus(s Status) { f.status = s }

type fakeMusic struct {
	playing       bool
	starts, stops int
}

func (f *fakeMusic) Start()        { f.playing = true; f.starts++ }
func (f *fakeMusic) Stop()         { f.playing = false; f.stops++ }
func (f *fakeMusic) Playing() bool { return f.playing }

type fakeSounds struct {
	collisions, levelUps, victories, gameOvers int
}

func (f *fakeSounds) Collision() { f.collisions++ }
func (f *fakeSounds) LevelUp()   { f.levelUps++ }
func (f *fakeSounds) Victory()   { f.victories++ }
func (f *fakeSounds) GameOver()  { f.gameOvers++ }

type fakeMuter struct{ muted bool }

func (f *fakeMuter) SetMuted(m bool) { f.muted = m }
func (f *fakeMuter) Muted() bool     { return f.muted }

type harness struct {
	c         *Controller
	s         *sched.Scheduler
	now       float64
	controls  *fakeControls
	renderer  *fakeRenderer
	presenter *fakePresenter
	music     *fakeMusic
	sounds    *fakeSounds
	muter     *fakeMuter
}

// quietLevels never spawn on their own so tests can place obstacles by hand
func quietLevels() models.LevelTable {
	table := make(models.LevelTable, models.MaxLevel)
	for i := range table {
		table[i] = models.LevelSetting{
			SpawnIntervalMs: 1e9,
			BaseFallSpeed:   3,
			MaxObstacles:    4,
			Hint:            "hint",
		}
	}
	table[1].Hint = "More obstacles appear"
	return table
}

func newHarness(t *testing.T, levels models.LevelTable) *harness {
	t.Helper()
	h := &harness{
		s:         sched.New(),
		controls:  &fakeControls{},
		renderer:  &fakeRenderer{},
		presenter: &fakePresenter{},
		music:     &fakeMusic{},
		sounds:    &fakeSounds{},
		muter:     &fakeMuter{},
	}
	h.c = NewController(Deps{
		Scheduler: h.s,
		Controls:  h.controls,
		Renderer:  h.renderer,
		Presenter: h.presenter,
		Music:     h.music,
		Effects:   h.sounds,
		Audio:     h.muter,
		Levels:    levels,
		Catalog: models.NewCatalog([]models.ObstacleKind{
			{Name: "box", Width: 30, Height: 30, Colors: []string{"#ffffff"}, Glyph: "#"},
		}),
		Rand:   rand.New(rand.NewSource(42)),
		Width:  480,
		Height: 720,
		Log:    zerolog.Nop(),
	})
	return h
}

func (h *harness) pump(frames int) {
	for i := 0; i < frames; i++ {
		h.now += frameMs
		h.s.Pump(h.now)
	}
}

func (h *harness) pumpUntil(t *testing.T, limitMs float64, cond func() bool) {
	t.Helper()
	for h.now < limitMs {
		if cond() {
			return
		}
		h.pump(1)
	}
	require.True(t, cond(), "condition not met by %.0fms", limitMs)
}

func TestStartRejectsInvalidLevel(t *testing.T) {
	h := newHarness(t, quietLevels())

	for _, lvl := range []int{0, 11, -3} {
		err := h.c.Start(Config{StartingLevel: lvl})
		assert.ErrorIs(t, err, models.ErrInvalidLevel)
	}
	assert.Equal(t, 0, h.music.starts)
	assert.Equal(t, 0, h.s.Pending())
}

func TestStartResetsSession(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 4}))

	st := h.c.State()
	assert.Equal(t, 4, st.Level)
	assert.Equal(t, models.LevelDuration, st.LevelTimer)
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, models.StartingLives, st.Lives)
	assert.Equal(t, 1.0, st.SpeedMultiplier)
	assert.Equal(t, -1, st.LastZone)
	assert.True(t, st.Running)

	assert.Equal(t, 1, h.presenter.hides)
	assert.Equal(t, Status{Level: 4, Timer: 60, Score: 0, Speed: 1, Lives: 3}, h.presenter.status)
	assert.True(t, h.music.Playing())

	h.pump(3)
	assert.Equal(t, 3, h.renderer.frames)
	assert.Equal(t, level.Playing, h.renderer.last.Phase)
	assert.Len(t, h.renderer.last.RoadLines, 12)
	assert.Equal(t, 215.0, h.renderer.last.Car.X)
	assert.Equal(t, 580.0, h.renderer.last.Car.Y)
}

func TestSteeringIsBounded(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))

	h.controls.in = Intent{SteerLeft: true}
	h.pump(100)
	assert.Equal(t, 10.0, h.renderer.last.Car.X)

	h.controls.in = Intent{SteerRight: true}
	h.pump(100)
	assert.Equal(t, 420.0, h.renderer.last.Car.X)
}

func TestThrottle(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))

	h.controls.in = Intent{Accelerate: true}
	h.pump(200)
	assert.Equal(t, models.MaxSpeedMultiplier, h.c.State().SpeedMultiplier)
	assert.Equal(t, 3.0, h.presenter.status.Speed)

	h.controls.in = Intent{Decelerate: true}
	h.pump(200)
	assert.Equal(t, models.MinSpeedMultiplier, h.c.State().SpeedMultiplier)
}

func TestScoreOnlyForPassedObstacles(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 3}))
	h.pump(1)

	// far left lane, well clear of the car
	h.c.field.Add(models.Obstacle{X: 15, Y: 700, Width: 10, Height: 10})
	h.pump(1)
	assert.Equal(t, 0, h.c.State().Score)

	h.pump(10)
	assert.Equal(t, 30, h.c.State().Score)
	assert.Equal(t, 30, h.presenter.status.Score)
	assert.Equal(t, 0, h.sounds.collisions)
	assert.Equal(t, 3, h.c.State().Lives)
}

func TestCollisionCostsALife(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))
	h.pump(1)

	h.c.field.Add(models.Obstacle{X: 230, Y: 600, Width: 10, Height: 10})
	h.pump(1)

	assert.Equal(t, 2, h.c.State().Lives)
	assert.Equal(t, 1, h.sounds.collisions)
	assert.Empty(t, h.renderer.last.Obstacles)
	assert.Equal(t, 0, h.c.State().Score)
	assert.Equal(t, level.Playing, h.c.Phase())
}

func TestGameOver(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 5}))
	h.pump(1)

	for i := 0; i < 4; i++ {
		h.c.field.Add(models.Obstacle{X: 230, Y: 600, Width: 10, Height: 10})
	}
	h.pump(1)

	assert.Equal(t, 0, h.c.State().Lives)
	assert.Equal(t, level.GameOver, h.c.Phase())
	assert.Equal(t, 4, h.sounds.collisions)
	assert.Equal(t, 1, h.sounds.gameOvers)
	assert.Equal(t, [][2]int{{5, 0}}, h.presenter.gameOverResults)
	assert.False(t, h.music.Playing())
	assert.False(t, h.c.State().Running)

	frames := h.renderer.frames
	h.pump(100)
	assert.Equal(t, frames, h.renderer.frames)
	assert.Equal(t, 1, h.sounds.gameOvers)
}

func TestLevelUpPausesThenResumes(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))
	h.c.state.LevelTimer = 2

	h.pumpUntil(t, 5000, func() bool { return len(h.presenter.levelUps) > 0 })
	leveledAt := h.now
	assert.InDelta(t, 2032, leveledAt, 1)

	assert.Equal(t, []int{2}, h.presenter.levelUps)
	assert.Equal(t, "More obstacles appear", h.presenter.hint)
	assert.Equal(t, 1, h.sounds.levelUps)
	assert.Equal(t, level.LevelUpPause, h.c.Phase())
	assert.Equal(t, models.LevelDuration, h.c.State().LevelTimer)
	assert.True(t, h.music.Playing())

	frames := h.renderer.frames
	for h.now < leveledAt+LevelUpPauseMs-frameMs {
		h.pump(1)
	}
	assert.Equal(t, frames, h.renderer.frames)
	assert.Equal(t, 0, h.presenter.levelUpHides)

	h.pump(1)
	assert.Equal(t, 1, h.presenter.levelUpHides)
	assert.Equal(t, level.Playing, h.c.Phase())
	assert.Equal(t, frames+1, h.renderer.frames)

	// the countdown starts over after the pause
	h.pump(30)
	assert.Equal(t, models.LevelDuration, h.c.State().LevelTimer)
}

func TestVictoryAtLastLevel(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: models.MaxLevel}))
	h.c.state.LevelTimer = 1
	h.c.state.Score = 1234

	h.pumpUntil(t, 3000, func() bool { return h.c.Phase() == level.Victory })

	assert.Equal(t, []int{1234}, h.presenter.victoryScore)
	assert.Equal(t, 1, h.sounds.victories)
	assert.Empty(t, h.presenter.levelUps)
	assert.False(t, h.music.Playing())
	assert.Equal(t, 0, h.s.Pending())
}

func TestFullRunFromLevelOne(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))

	h.pumpUntil(t, 11*62_000+10*LevelUpPauseMs, func() bool { return h.c.Phase() == level.Victory })
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10}, h.presenter.levelUps)
	assert.Equal(t, models.MaxLevel, h.c.State().Level)
	assert.Equal(t, 3, h.c.State().Lives)
}

func TestSpawnsRespectCap(t *testing.T) {
	levels := quietLevels()
	for i := range levels {
		levels[i].SpawnIntervalMs = 50
		levels[i].MaxObstacles = 3
	}
	h := newHarness(t, levels)
	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))

	seen := 0
	for i := 0; i < 600; i++ {
		h.pump(1)
		n := len(h.renderer.last.Obstacles)
		assert.LessOrEqual(t, n, 3)
		if n > seen {
			seen = n
		}
		if h.c.Phase() != level.Playing {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestRestartCancelsPendingPause(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))
	h.c.state.LevelTimer = 1
	h.pumpUntil(t, 3000, func() bool { return h.c.Phase() == level.LevelUpPause })

	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))
	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))
	assert.Equal(t, 1, h.s.Pending())

	before := h.renderer.frames
	h.pump(200)
	assert.Equal(t, before+200, h.renderer.frames)
	assert.Equal(t, 0, h.presenter.levelUpHides)
	assert.Equal(t, 1, h.c.State().Level)
	assert.Equal(t, 3, h.music.starts)
}

func TestRestartAfterPlayResetsEverything(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 2}))
	h.c.state.LevelTimer = 1
	h.pumpUntil(t, 2000, func() bool { return h.c.Phase() == level.LevelUpPause })
	h.pumpUntil(t, 5000, func() bool { return h.c.Phase() == level.Playing })

	h.controls.in = Intent{Accelerate: true}
	h.c.field.Add(models.Obstacle{X: 15, Y: 700, Width: 10, Height: 10})
	h.pump(12)
	h.controls.in = Intent{}
	h.c.field.Add(models.Obstacle{X: 230, Y: 600, Width: 10, Height: 10})
	h.pump(1)
	h.c.field.Add(models.Obstacle{X: 15, Y: 0, Width: 10, Height: 10})
	h.pump(1)

	dirty := h.c.State()
	require.Equal(t, 3, dirty.Level)
	require.Equal(t, 30, dirty.Score)
	require.Equal(t, 2, dirty.Lives)
	require.Greater(t, dirty.SpeedMultiplier, 1.0)
	require.Positive(t, h.c.field.Len())

	require.NoError(t, h.c.Start(Config{StartingLevel: 2}))

	st := h.c.State()
	assert.Equal(t, 0, h.c.field.Len())
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, models.StartingLives, st.Lives)
	assert.Equal(t, 2, st.Level)
	assert.Equal(t, models.LevelDuration, st.LevelTimer)
	assert.Equal(t, 1.0, st.SpeedMultiplier)
	assert.Equal(t, -1, st.LastZone)
	assert.Equal(t, Status{Level: 2, Timer: 60, Score: 0, Speed: 1, Lives: 3}, h.presenter.status)

	h.pump(1)
	assert.Empty(t, h.renderer.last.Obstacles)
	assert.Equal(t, 215.0, h.renderer.last.Car.X)
	assert.Equal(t, level.Playing, h.renderer.last.Phase)
}

func TestAbort(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 2}))
	h.pump(5)

	h.c.Abort()
	assert.Equal(t, 1, h.presenter.starts)
	assert.False(t, h.music.Playing())
	frames := h.renderer.frames
	h.pump(5)
	assert.Equal(t, frames, h.renderer.frames)
}

func TestMute(t *testing.T) {
	h := newHarness(t, quietLevels())
	require.NoError(t, h.c.Start(Config{StartingLevel: 1}))

	h.c.SetMuted(true)
	assert.True(t, h.c.Muted())
	assert.True(t, h.muter.muted)
	assert.True(t, h.music.Playing())

	h.c.SetMuted(false)
	assert.False(t, h.muter.Muted())
}
