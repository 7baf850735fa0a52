package session

import (
	"fmt"
	"math/rand"

	"github.com/golangdaddy/roadrush/pkg/level"
	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sched"
	"github.com/golangdaddy/roadrush/pkg/traffic"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
	"github.com/rs/zerolog"
)

const (
	// LevelUpPauseMs is how long the level-up banner holds the game
	LevelUpPauseMs = 2000
	// PointsPerLevel is awarded, times the level, for every obstacle that leaves the screen
	PointsPerLevel = 10
)

// Config selects how a session starts
type Config struct {
	StartingLevel int
}

// Deps are the collaborators of a Controller. Audio may be nil.
type Deps struct {
	Scheduler *sched.Scheduler
	Controls  ControlSource
	Renderer  Renderer
	Presenter ScreenPresenter
	Music     Music
	Effects   Sounds
	Audio     Muter

	Levels  models.LevelTable
	Catalog *models.Catalog
	Rand    *rand.Rand

	Width, Height float64
	Log           zerolog.Logger
}

// Controller runs a play session: it owns the state and drives one frame at a time
type Controller struct {
	sched     *sched.Scheduler
	controls  ControlSource
	renderer  Renderer
	presenter ScreenPresenter
	music     Music
	effects   Sounds
	audio     Muter
	levels    models.LevelTable

	width, height float64

	state   *models.SessionState
	fsm     *level.Progression
	car     *vehicle.Car
	road    *road.Road
	field   *traffic.Field
	planner *traffic.SpawnPlanner

	frame sched.Handle
	pause sched.Handle
	muted bool

	log zerolog.Logger
}

// NewController builds an idle controller; call Start to begin a session
func NewController(d Deps) *Controller {
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(1))
	}
	state := &models.SessionState{Level: 1, LastZone: -1, SpeedMultiplier: 1}
	r := road.NewRoad(d.Width, d.Height)

	return &Controller{
		sched:     d.Scheduler,
		controls:  d.Controls,
		renderer:  d.Renderer,
		presenter: d.Presenter,
		music:     d.Music,
		effects:   d.Effects,
		audio:     d.Audio,
		levels:    d.Levels,
		width:     d.Width,
		height:    d.Height,
		state:     state,
		fsm:       level.NewProgression(state),
		car:       vehicle.NewCar(d.Width, d.Height),
		road:      r,
		field:     traffic.NewField(d.Height),
		planner:   traffic.NewSpawnPlanner(d.Rand, d.Catalog, r),
		log:       d.Log,
	}
}

// Start begins a fresh session. Anything left over from a previous one is cancelled.
func (c *Controller) Start(cfg Config) error {
	if err := models.ValidateLevel(cfg.StartingLevel); err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	c.cancelTasks()
	c.music.Stop()

	if err := c.state.Reset(cfg.StartingLevel); err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	c.state.Running = true
	// the first burst comes one interval after the start
	c.state.LastSpawnAt = c.sched.Now()
	c.fsm.Restart()
	c.car.Reset(c.width, c.height)
	c.road.Reset()
	c.field.Clear()

	c.presenter.HideOverlays()
	c.presenter.UpdateStatus(c.Status())
	c.music.Start()
	c.frame = c.sched.RequestFrame(c.Frame)

	c.log.Info().Int("startingLevel", cfg.StartingLevel).Msg("session started")
	return nil
}

// Abort ends the session without a result and returns to the start screen
func (c *Controller) Abort() {
	c.cancelTasks()
	c.music.Stop()
	c.state.Running = false
	c.presenter.ShowStart()
	c.log.Info().Int("score", c.state.Score).Msg("session aborted")
}

// Frame runs one step of the game. It re-requests itself until the session
// pauses for a level-up or ends.
func (c *Controller) Frame(nowMs float64) {
	c.frame = 0
	if !c.state.Running || c.fsm.Phase() != level.Playing {
		return
	}

	in := c.controls.Intent()
	c.car.Steer(in.SteerLeft, in.SteerRight, c.width)
	c.fsm.Throttle(in.Accelerate, in.Decelerate)

	ev := c.fsm.Tick(nowMs)
	setting := c.levels.Setting(c.state.Level)
	speed := c.state.SpeedMultiplier

	c.road.Advance(setting.BaseFallSpeed * speed)
	c.planner.MaybeSpawn(nowMs, c.state, setting, c.field)

	passed := c.field.Advance(setting.BaseFallSpeed, speed)
	c.state.Score += passed * PointsPerLevel * c.state.Level

	for _, id := range traffic.CheckCollisions(c.car.Hitbox(), c.field.Obstacles()) {
		c.field.Remove(id)
		c.effects.Collision()
		c.fsm.LoseLife()
		c.log.Debug().Uint64("obstacle", id).Int("lives", c.state.Lives).Msg("collision")
	}

	c.renderer.Render(c.Snapshot())
	c.presenter.UpdateStatus(c.Status())

	switch {
	case c.fsm.Phase() == level.GameOver:
		c.finish(false)
	case c.fsm.Phase() == level.Victory:
		c.finish(true)
	case ev == level.EventLevelUp:
		c.beginLevelUp()
	default:
		c.frame = c.sched.RequestFrame(c.Frame)
	}
}

func (c *Controller) beginLevelUp() {
	setting := c.levels.Setting(c.state.Level)
	c.log.Info().Int("newLevel", c.state.Level).Int("score", c.state.Score).Msg("level up")

	c.presenter.ShowLevelUp(c.state.Level, setting.Hint)
	c.effects.LevelUp()
	c.pause = c.sched.After(LevelUpPauseMs, c.endLevelUp)
}

func (c *Controller) endLevelUp(float64) {
	c.pause = 0
	c.presenter.HideLevelUp()
	c.fsm.Resume()
	c.frame = c.sched.RequestFrame(c.Frame)
}

func (c *Controller) finish(won bool) {
	c.state.Running = false
	c.cancelTasks()
	c.music.Stop()

	if won {
		c.effects.Victory()
		c.presenter.ShowVictory(c.state.Score)
		c.log.Info().Int("score", c.state.Score).Msg("victory")
		return
	}
	c.effects.GameOver()
	c.presenter.ShowGameOver(c.state.Level, c.state.Score)
	c.log.Info().Int("reached", c.state.Level).Int("score", c.state.Score).Msg("game over")
}

func (c *Controller) cancelTasks() {
	if c.frame != 0 {
		c.sched.Cancel(c.frame)
		c.frame = 0
	}
	if c.pause != 0 {
		c.sched.Cancel(c.pause)
		c.pause = 0
	}
}

// SetMuted silences or restores all sound. The music keeps its place while muted.
func (c *Controller) SetMuted(muted bool) {
	c.muted = muted
	if c.audio != nil {
		c.audio.SetMuted(muted)
	}
	c.log.Debug().Bool("muted", muted).Msg("mute toggled")
}

// Muted reports the current mute setting
func (c *Controller) Muted() bool {
	return c.muted
}

// State returns a copy of the session state
func (c *Controller) State() models.SessionState {
	return *c.state
}

// Phase returns the progression state
func (c *Controller) Phase() level.Phase {
	return c.fsm.Phase()
}

// Status builds the HUD readout from the current state
func (c *Controller) Status() Status {
	return Status{
		Level: c.state.Level,
		Timer: c.state.LevelTimer,
		Score: c.state.Score,
		Speed: c.state.SpeedMultiplier,
		Lives: c.state.Lives,
	}
}

// Snapshot captures the play field for drawing
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Car:       c.car.Bounds(),
		Obstacles: c.field.Obstacles(),
		RoadLines: c.road.Lines(),
		Phase:     c.fsm.Phase(),
	}
}
