package level

import "github.com/golangdaddy/roadrush/pkg/models"

// Phase is the state of the level progression machine
type Phase int

const (
	Playing Phase = iota
	LevelUpPause
	Victory
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case LevelUpPause:
		return "level-up"
	case Victory:
		return "victory"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// Event tells the caller what a progression call changed
type Event int

const (
	EventNone Event = iota
	// EventTick means the level timer went down by one second
	EventTick
	EventLevelUp
	EventVictory
	EventLifeLost
	EventGameOver
)

// Progression tracks the level, its countdown and the player's lives,
// and moves between Playing, LevelUpPause, Victory and GameOver.
type Progression struct {
	state *models.SessionState
	phase Phase
	timer Timer
}

// NewProgression creates a machine in Playing that mutates state
func NewProgression(state *models.SessionState) *Progression {
	return &Progression{state: state, phase: Playing}
}

// Phase returns the current phase
func (p *Progression) Phase() Phase {
	return p.phase
}

// Terminal reports whether the session has ended
func (p *Progression) Terminal() bool {
	return p.phase == Victory || p.phase == GameOver
}

// Restart goes back to Playing; the caller resets the session state
func (p *Progression) Restart() {
	p.phase = Playing
	p.timer.Reset()
}

// Tick advances the level countdown. Reaching zero below MaxLevel moves to
// LevelUpPause with the next level already applied; at MaxLevel it is Victory.
func (p *Progression) Tick(nowMs float64) Event {
	if p.phase != Playing {
		return EventNone
	}
	if !p.timer.Tick(nowMs) {
		return EventNone
	}

	p.state.LevelTimer--
	if p.state.LevelTimer > 0 {
		return EventTick
	}

	if p.state.Level >= models.MaxLevel {
		p.state.LevelTimer = 0
		p.phase = Victory
		return EventVictory
	}

	p.state.Level++
	p.state.LevelTimer = models.LevelDuration
	p.phase = LevelUpPause
	p.timer.Reset()
	return EventLevelUp
}

// Resume ends a level-up pause. The next Tick only re-anchors the timer.
func (p *Progression) Resume() {
	if p.phase != LevelUpPause {
		return
	}
	p.phase = Playing
	p.timer.Reset()
}

// LoseLife takes one life away; losing the last one is GameOver
func (p *Progression) LoseLife() Event {
	if p.Terminal() {
		return EventNone
	}

	if p.state.Lives > 0 {
		p.state.Lives--
	}
	if p.state.Lives == 0 {
		p.phase = GameOver
		return EventGameOver
	}
	return EventLifeLost
}

// Throttle applies one frame of speed input. It is ignored once the session is over.
func (p *Progression) Throttle(accelerate, decelerate bool) {
	if p.Terminal() {
		return
	}
	p.state.AdjustSpeed(accelerate, decelerate)
}
