package audio

import (
	"math"
	"math/rand"
)

// DrumKind selects a percussion voice
type DrumKind int

const (
	Kick DrumKind = iota
	Snare
	HiHat
)

func (d DrumKind) String() string {
	switch d {
	case Kick:
		return "kick"
	case Snare:
		return "snare"
	case HiHat:
		return "hihat"
	}
	return "unknown"
}

const (
	kickLength    = 0.15
	kickSweep     = 0.1
	kickStartFreq = 150.0
	kickEndFreq   = 50.0
	kickCutoff    = 200.0

	snareLength = 0.1
	snareCutoff = 1000.0
	snareGain   = 0.5

	hihatLength = 0.05
	hihatCutoff = 5000.0
	hihatGain   = 0.3
)

// onePole is a first-order low-pass filter
type onePole struct {
	a float64
	y float64
}

func newOnePole(sr int, cutoff float64) onePole {
	return onePole{a: 1 - math.Exp(-2*math.Pi*cutoff/float64(sr))}
}

func (f *onePole) lowPass(x float64) float64 {
	f.y += f.a * (x - f.y)
	return f.y
}

func (f *onePole) highPass(x float64) float64 {
	return x - f.lowPass(x)
}

// kickVoice is a sine whose pitch falls quickly, through a low-pass
type kickVoice struct {
	rate   float64
	phase  float64
	filter onePole
	env    envelope
	i, n   int
	sweep  int
}

func newKick(sr int, volume float64) *kickVoice {
	n := int(kickLength * float64(sr))
	return &kickVoice{
		rate:   float64(sr),
		filter: newOnePole(sr, kickCutoff),
		env:    newEnvelope(volume, n),
		n:      n,
		sweep:  int(kickSweep * float64(sr)),
	}
}

func (k *kickVoice) Sample() (float64, bool) {
	if k.i >= k.n {
		return 0, true
	}
	freq := kickEndFreq
	if k.i < k.sweep {
		t := float64(k.i) / float64(k.sweep)
		freq = kickStartFreq * math.Pow(kickEndFreq/kickStartFreq, t)
	}
	k.phase += freq / k.rate
	k.phase -= math.Floor(k.phase)

	v := k.filter.lowPass(math.Sin(2*math.Pi*k.phase)) * k.env.next()
	k.i++
	return v, false
}

// noiseVoice plays a pre-rendered high-passed noise burst
type noiseVoice struct {
	buf []float64
	i   int
}

func newNoise(rng *rand.Rand, sr int, seconds, cutoff, volume float64) *noiseVoice {
	n := int(seconds * float64(sr))
	buf := make([]float64, n)
	filter := newOnePole(sr, cutoff)
	env := newEnvelope(volume, n)
	for i := range buf {
		buf[i] = filter.highPass(rng.Float64()*2-1) * env.next()
	}
	return &noiseVoice{buf: buf}
}

func (v *noiseVoice) Sample() (float64, bool) {
	if v.i >= len(v.buf) {
		return 0, true
	}
	s := v.buf[v.i]
	v.i++
	return s, false
}

// newDrum builds the voice for a percussion hit
func newDrum(rng *rand.Rand, sr int, kind DrumKind, volume float64) Voice {
	switch kind {
	case Snare:
		return newNoise(rng, sr, snareLength, snareCutoff, volume*snareGain)
	case HiHat:
		return newNoise(rng, sr, hihatLength, hihatCutoff, volume*hihatGain)
	default:
		return newKick(sr, volume)
	}
}
