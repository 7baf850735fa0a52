package session

import (
	"github.com/golangdaddy/roadrush/pkg/level"
	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
)

// Intent is the player's input for one frame
type Intent struct {
	SteerLeft  bool
	SteerRight bool
	Accelerate bool
	Decelerate bool
}

// ControlSource reports what the player is holding down
type ControlSource interface {
	Intent() Intent
}

// Snapshot is everything needed to draw one frame
type Snapshot struct {
	Car       vehicle.Rect
	Obstacles []models.Obstacle
	RoadLines []road.Line
	Phase     level.Phase
}

// Renderer draws the play field
type Renderer interface {
	Render(s Snapshot)
}

// Status is the HUD readout
type Status struct {
	Level int
	Timer int
	Score int
	Speed float64
	Lives int
}

// ScreenPresenter shows and hides the overlays around the play field
type ScreenPresenter interface {
	ShowStart()
	HideOverlays()
	ShowLevelUp(level int, hint string)
	HideLevelUp()
	ShowVictory(score int)
	ShowGameOver(level, score int)
	UpdateStatus(s Status)
}

// Music is the looping background track
type Music interface {
	Start()
	Stop()
	Playing() bool
}

// Sounds are the one-shot effects
type Sounds interface {
	Collision()
	LevelUp()
	Victory()
	GameOver()
}

// Muter silences all audio output
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}
