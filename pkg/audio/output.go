package audio

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const outputBuffer = 60 * time.Millisecond

// Output streams a mixer to the audio device
type Output struct {
	player *audio.Player
}

// OpenOutput starts playing m on ctx
func OpenOutput(ctx *audio.Context, m *Mixer, volume float64) (*Output, error) {
	if ctx == nil {
		return nil, fmt.Errorf("no audio context")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("audio device: %w", err)
	}
	p, err := ctx.NewPlayerF32(m)
	if err != nil {
		return nil, fmt.Errorf("creating audio player: %w", err)
	}
	p.SetBufferSize(outputBuffer)
	p.SetVolume(volume)
	p.Play()
	return &Output{player: p}, nil
}

// Close stops the stream and releases the player
func (o *Output) Close() error {
	return o.player.Close()
}
