package audio

import (
	"encoding/binary"
	"math"
	"sync"
)

// bytesPerFrame is one stereo frame of little-endian float32 samples
const bytesPerFrame = 8

// maxVoices bounds the mixer so a stalled device can't pile up voices
const maxVoices = 128

type scheduledVoice struct {
	voice Voice
	start int64
}

// Mixer sums scheduled voices into a float32 stereo stream.
// Schedule is called from the game loop while Read runs on the audio device goroutine.
type Mixer struct {
	mu     sync.Mutex
	voices []scheduledVoice
	pos    int64
}

// NewMixer returns an empty mixer positioned at frame zero
func NewMixer() *Mixer {
	return &Mixer{}
}

// Schedule queues v to start delay samples after the current stream position
func (m *Mixer) Schedule(v Voice, delay int) bool {
	if v == nil {
		return false
	}
	if delay < 0 {
		delay = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.voices) >= maxVoices {
		return false
	}
	m.voices = append(m.voices, scheduledVoice{voice: v, start: m.pos + int64(delay)})
	return true
}

// Active returns the number of voices queued or sounding
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Position returns the number of frames rendered so far
func (m *Mixer) Position() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

// Clear drops every queued voice
func (m *Mixer) Clear() {
	m.mu.Lock()
	m.voices = m.voices[:0]
	m.mu.Unlock()
}

// Read implements io.Reader. The stream never ends; silence is written when nothing plays.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := 0; i < frames; i++ {
		var sum float64
		live := m.voices[:0]
		for _, sv := range m.voices {
			if sv.start > m.pos {
				live = append(live, sv)
				continue
			}
			s, done := sv.voice.Sample()
			if done {
				continue
			}
			sum += s
			live = append(live, sv)
		}
		m.voices = live
		m.pos++

		v := float32(math.Max(-1, math.Min(1, sum)))
		bits := math.Float32bits(v)
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[off:], bits)
		binary.LittleEndian.PutUint32(p[off+4:], bits)
	}
	return frames * bytesPerFrame, nil
}
