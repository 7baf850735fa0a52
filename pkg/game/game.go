package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/logging"
	"github.com/golangdaddy/roadrush/pkg/sched"
	"github.com/golangdaddy/roadrush/pkg/session"
	"github.com/golangdaddy/roadrush/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options configure a Game
type Options struct {
	Width, Height int
	StartingLevel int
	Muted         bool
	Seed          int64
}

// Audio bundles the sound collaborators. Nil members are replaced with silence.
type Audio struct {
	Music   session.Music
	Effects session.Sounds
	Muter   session.Muter
}

// Game implements the ebiten.Game interface and manages the overall game state.
// It is also the session's ScreenPresenter.
type Game struct {
	width, height int

	sched      *sched.Scheduler
	controller *session.Controller
	controls   *InputControls
	gameplay   *GameplayScreen

	title  *ui.TitleScreen
	banner *ui.LevelUpBanner
	result *ui.ResultScreen

	playing   bool
	lastLevel int
	started   time.Time

	log zerolog.Logger
}

// NewGame wires a session controller to the screens and returns a game on the title screen
func NewGame(opts Options, s *sched.Scheduler, levels *config.LevelConfig, a Audio, log zerolog.Logger) (*Game, error) {
	if levels == nil {
		return nil, errors.New("no level configuration")
	}
	if a.Music == nil {
		a.Music = &silence{}
	}
	if a.Effects == nil {
		a.Effects = &silence{}
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	pad := NewTouchPad(opts.Width, opts.Height)
	g := &Game{
		width:     opts.Width,
		height:    opts.Height,
		sched:     s,
		controls:  NewInputControls(pad),
		lastLevel: opts.StartingLevel,
		started:   time.Now(),
		log:       logging.Component(log, "game"),
	}
	g.gameplay = NewGameplayScreen(opts.Width, opts.Height, pad, g.controls)

	g.controller = session.NewController(session.Deps{
		Scheduler: s,
		Controls:  g.controls,
		Renderer:  g.gameplay,
		Presenter: g,
		Music:     a.Music,
		Effects:   a.Effects,
		Audio:     a.Muter,
		Levels:    levels.Levels,
		Catalog:   levels.Catalog(),
		Rand:      rand.New(rand.NewSource(opts.Seed)),
		Width:     float64(opts.Width),
		Height:    float64(opts.Height),
		Log:       logging.Component(log, "session"),
	})
	g.controller.SetMuted(opts.Muted)

	g.ShowStart()
	return g, nil
}

// Controller exposes the running session
func (g *Game) Controller() *session.Controller {
	return g.controller
}

// Update handles game logic updates
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleMute()
	}

	var err error
	switch {
	case g.title != nil:
		err = g.title.Update()
	case g.result != nil:
		err = g.result.Update()
	case g.playing && inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.controller.Abort()
	}

	g.sched.Pump(float64(time.Since(g.started).Milliseconds()))
	return err
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.title != nil {
		g.title.Draw(screen)
		return
	}
	g.gameplay.Draw(screen)
	if g.banner != nil {
		g.banner.Draw(screen)
	}
	if g.result != nil {
		g.result.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func (g *Game) startSession(lvl int) {
	if err := g.controller.Start(session.Config{StartingLevel: lvl}); err != nil {
		g.log.Error().Err(err).Int("startingLevel", lvl).Msg("failed to start session")
		g.ShowStart()
		return
	}
	g.lastLevel = lvl
}

func (g *Game) toggleMute() {
	g.controller.SetMuted(!g.controller.Muted())
}

// ShowStart returns to the title screen with the last level selected
func (g *Game) ShowStart() {
	g.playing = false
	g.banner = nil
	g.result = nil
	g.title = ui.NewTitleScreen(g.width, g.height, g.lastLevel, g.controller.Muted, g.toggleMute, g.startSession)
}

func (g *Game) HideOverlays() {
	g.playing = true
	g.title = nil
	g.banner = nil
	g.result = nil
}

func (g *Game) ShowLevelUp(level int, hint string) {
	g.banner = ui.NewLevelUpBanner(level, hint)
}

func (g *Game) HideLevelUp() {
	g.banner = nil
}

func (g *Game) ShowVictory(score int) {
	g.showResult(ui.Victory, g.controller.State().Level, score)
}

func (g *Game) ShowGameOver(level, score int) {
	g.showResult(ui.GameOver, level, score)
}

func (g *Game) showResult(outcome ui.Outcome, level, score int) {
	g.playing = false
	g.banner = nil
	g.result = ui.NewResultScreen(g.width, g.height, outcome, level, score,
		func() { g.startSession(g.lastLevel) },
		g.ShowStart,
	)
}

// UpdateStatus forwards the readout to the HUD
func (g *Game) UpdateStatus(s session.Status) {
	g.gameplay.SetStatus(s)
}

// silence stands in for missing audio
type silence struct{ playing bool }

func (s *silence) Start()        { s.playing = true }
func (s *silence) Stop()         { s.playing = false }
func (s *silence) Playing() bool { return s.playing }
func (s *silence) Collision()    {}
func (s *silence) LevelUp()      {}
func (s *silence) Victory()      {}
func (s *silence) GameOver()     {}
