package audio

import "math"

// DefaultSampleRate is used when no rate is configured
const DefaultSampleRate = 44100

// envelopeFloor is the level every decay envelope ends on
const envelopeFloor = 0.01

// Voice generates mono samples in [-1,1]
type Voice interface {
	// Sample returns the next sample and whether the voice has finished
	Sample() (float64, bool)
}

// Waveform selects the oscillator shape of a tone
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Sawtooth
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	}
	return "unknown"
}

// oscillate evaluates a waveform at phase p in [0,1)
func oscillate(w Waveform, p float64) float64 {
	switch w {
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 1 - 4*math.Abs(p-0.5)
	case Sawtooth:
		return 2*p - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// envelope is an exponential ramp from a start level to envelopeFloor over n samples
type envelope struct {
	gain  float64
	ratio float64
}

func newEnvelope(level float64, n int) envelope {
	if level <= 0 || n <= 0 {
		return envelope{}
	}
	return envelope{
		gain:  level,
		ratio: math.Pow(envelopeFloor/level, 1/float64(n)),
	}
}

func (e *envelope) next() float64 {
	g := e.gain
	e.gain *= e.ratio
	return g
}

// toneVoice is a plain oscillator with a decaying envelope
type toneVoice struct {
	wave  Waveform
	step  float64 // phase increment per sample
	phase float64
	env   envelope
	i, n  int
}

func newTone(sr int, wave Waveform, freq, seconds, volume float64) *toneVoice {
	n := int(seconds * float64(sr))
	return &toneVoice{
		wave: wave,
		step: freq / float64(sr),
		env:  newEnvelope(volume, n),
		n:    n,
	}
}

func (t *toneVoice) Sample() (float64, bool) {
	if t.i >= t.n {
		return 0, true
	}
	v := oscillate(t.wave, t.phase) * t.env.next()
	t.phase += t.step
	t.phase -= math.Floor(t.phase)
	t.i++
	return v, false
}
