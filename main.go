package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/golangdaddy/roadrush/pkg/audio"
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/game"
	"github.com/golangdaddy/roadrush/pkg/logging"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sched"
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("roadrush", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	settings, err := config.Load(fs)
	if err != nil {
		logging.New(zerolog.InfoLevel, os.Stderr).Fatal().Err(err).Msg("invalid configuration")
	}

	log := logging.New(logging.ParseLevel(settings.LogLevel), os.Stderr)
	if f := config.ConfigFile(); f != "" {
		log.Info().Str("file", f).Msg("loaded config file")
	}

	w, h := settings.Canvas.Width, settings.Canvas.Height
	zoneWidth := road.NewRoad(float64(w), float64(h)).ZoneWidth()
	levels, err := config.LoadLevels(settings.LevelsFile, zoneWidth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load levels")
	}

	s := sched.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	synth, out := openAudio(settings.Audio, rng, log)
	if out != nil {
		defer out.Close()
	}

	g, err := game.NewGame(game.Options{
		Width:         w,
		Height:        h,
		StartingLevel: settings.StartingLevel,
		Muted:         settings.Muted,
	}, s, levels, game.Audio{
		Music:   audio.NewSequencer(s, synth, audio.DefaultPatterns, logging.Component(log, "music")),
		Effects: audio.NewEffects(synth),
		Muter:   synth,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Road Rush")
	if err := ebiten.RunGame(g); err != nil {
		log.Error().Err(err).Msg("game exited")
	}
}

// openAudio starts the output stream. Without a device the game runs silent.
func openAudio(cfg config.AudioConfig, rng *rand.Rand, log zerolog.Logger) (*audio.Synth, *audio.Output) {
	alog := logging.Component(log, "audio")
	mixer := audio.NewMixer()
	ctx := ebaudio.NewContext(cfg.SampleRate)
	out, err := audio.OpenOutput(ctx, mixer, cfg.Volume)
	if err != nil {
		alog.Warn().Err(err).Msg("audio unavailable, running silent")
		return audio.NewSynth(nil, cfg.SampleRate, rng, alog), nil
	}
	return audio.NewSynth(mixer, cfg.SampleRate, rng, alog), out
}
