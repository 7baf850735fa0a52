package audio

import (
	"github.com/golangdaddy/roadrush/pkg/sched"
	"github.com/rs/zerolog"
)

const (
	DefaultTempo  = 150
	BeatsPerBar   = 8
	BarsPerPhrase = 4
)

// BeatClock tracks where the music is
type BeatClock struct {
	TempoBPM  int
	BeatIndex int
	Pattern   int
}

// BeatMs is the length of one beat in milliseconds
func (c BeatClock) BeatMs() float64 {
	return 60000 / float64(c.TempoBPM)
}

// BeatSeconds is the length of one beat in seconds
func (c BeatClock) BeatSeconds() float64 {
	return c.BeatMs() / 1000
}

// Position describes the beat played by the most recent tick
type Position struct {
	Beat      int
	BeatInBar int
	Bar       int
	Pattern   int
}

// Sequencer plays the looping background track on a scheduler interval
type Sequencer struct {
	sched    *sched.Scheduler
	player   Player
	patterns []Pattern
	clock    BeatClock
	last     Position
	handle   sched.Handle
	log      zerolog.Logger
}

// NewSequencer creates a stopped sequencer that ticks on s and plays through player
func NewSequencer(s *sched.Scheduler, player Player, patterns []Pattern, log zerolog.Logger) *Sequencer {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &Sequencer{
		sched:    s,
		player:   player,
		patterns: patterns,
		clock:    BeatClock{TempoBPM: DefaultTempo},
		log:      log,
	}
}

// Start rewinds the track and begins ticking once per beat
func (q *Sequencer) Start() {
	q.Stop()
	q.clock.BeatIndex = 0
	q.clock.Pattern = 0
	q.last = Position{}
	q.handle = q.sched.Every(q.clock.BeatMs(), func(float64) {
		q.Tick()
	})
	q.log.Debug().Int("bpm", q.clock.TempoBPM).Msg("music started")
}

// Stop halts the track. Safe to call when not playing.
func (q *Sequencer) Stop() {
	if q.handle == 0 {
		return
	}
	q.sched.Cancel(q.handle)
	q.handle = 0
	q.log.Debug().Int("beat", q.clock.BeatIndex).Msg("music stopped")
}

// Playing reports whether the beat timer is armed
func (q *Sequencer) Playing() bool {
	return q.handle != 0 && q.sched.Active(q.handle)
}

func (q *Sequencer) Clock() BeatClock {
	return q.clock
}

// Position returns where the last played beat fell in the phrase
func (q *Sequencer) Position() Position {
	return q.last
}

// Tick plays one beat and advances the clock
func (q *Sequencer) Tick() {
	beat := q.clock.BeatIndex
	inBar := beat % BeatsPerBar
	if inBar == 0 {
		q.clock.Pattern = (q.clock.Pattern + 1) % len(q.patterns)
	}
	pat := q.patterns[q.clock.Pattern]
	bd := q.clock.BeatSeconds()

	switch beat % 4 {
	case 0:
		q.player.PlayHit(Hit{Drum: Kick, Volume: 0.2})
	case 2:
		q.player.PlayHit(Hit{Drum: Snare, Volume: 0.15})
	}
	q.player.PlayHit(Hit{Drum: HiHat, Volume: 0.1})

	melody := pat.Melody[inBar]
	q.player.PlayNote(Note{Freq: melody, Duration: bd * 0.8, Wave: Square, Volume: 0.08})

	if inBar%2 == 0 {
		q.player.PlayNote(Note{Freq: pat.Bass[inBar/2], Duration: bd * 1.5, Wave: Triangle, Volume: 0.12})
	}

	if inBar == 0 || inBar == 4 {
		for i, f := range pat.Chord {
			q.player.PlayNote(Note{
				Freq:     f,
				Duration: bd * 3,
				Wave:     Sine,
				Volume:   0.04,
				Delay:    float64(i) * 0.01,
			})
		}
	}

	if inBar == 2 || inBar == 6 {
		q.player.PlayNote(Note{Freq: melody * 2, Duration: bd * 0.3, Wave: Square, Volume: 0.03})
	}

	q.last = Position{
		Beat:      beat,
		BeatInBar: inBar,
		Bar:       (beat / BeatsPerBar) % BarsPerPhrase,
		Pattern:   q.clock.Pattern,
	}
	q.clock.BeatIndex++
}
