package audio

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// Note is a single pitched sound
type Note struct {
	Freq     float64
	Duration float64 // seconds
	Wave     Waveform
	Volume   float64
	Delay    float64 // seconds after now
}

// Hit is a single percussion sound
type Hit struct {
	Drum   DrumKind
	Volume float64
	Delay  float64
}

// Player is anything that can sound notes and drum hits
type Player interface {
	PlayNote(n Note)
	PlayHit(h Hit)
}

// Synth renders notes into voices on a mixer. A nil mixer makes it a silent sink.
type Synth struct {
	mixer *Mixer
	rate  int
	rng   *rand.Rand
	muted bool
	log   zerolog.Logger
}

// NewSynth renders notes and hits into mixer. A nil mixer gives a silent synth.
func NewSynth(mixer *Mixer, sampleRate int, rng *rand.Rand, log zerolog.Logger) *Synth {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Synth{
		mixer: mixer,
		rate:  sampleRate,
		rng:   rng,
		log:   log,
	}
}

// SetMuted drops new sounds while set; muting also cuts whatever is still ringing
func (s *Synth) SetMuted(muted bool) {
	s.muted = muted
	if muted && s.mixer != nil {
		s.mixer.Clear()
	}
}

func (s *Synth) Muted() bool {
	return s.muted
}

// Silent reports whether there is no output behind the synth
func (s *Synth) Silent() bool {
	return s.mixer == nil
}

// PlayNote schedules a tone n.Delay seconds from now
func (s *Synth) PlayNote(n Note) {
	if s.muted || s.mixer == nil || n.Freq <= 0 || n.Duration <= 0 {
		return
	}
	s.schedule(newTone(s.rate, n.Wave, n.Freq, n.Duration, n.Volume), n.Delay)
}

func (s *Synth) PlayHit(h Hit) {
	if s.muted || s.mixer == nil {
		return
	}
	s.schedule(newDrum(s.rng, s.rate, h.Drum, h.Volume), h.Delay)
}

func (s *Synth) schedule(v Voice, delay float64) {
	if !s.mixer.Schedule(v, int(delay*float64(s.rate))) {
		s.log.Debug().Msg("mixer full, voice dropped")
	}
}
