package audio

// Effects are the one-shot sounds layered over the music
type Effects struct {
	player Player
}

// NewEffects plays the one-shot sounds through p
func NewEffects(p Player) *Effects {
	return &Effects{player: p}
}

// Collision layers a kick under two low sawtooth buzzes
func (e *Effects) Collision() {
	e.player.PlayHit(Hit{Drum: Kick, Volume: 0.3})
	e.player.PlayNote(Note{Freq: 100, Duration: 0.2, Wave: Sawtooth, Volume: 0.2})
	e.player.PlayNote(Note{Freq: 80, Duration: 0.3, Wave: Sawtooth, Volume: 0.15})
}

// LevelUp plays a rising C major arpeggio
func (e *Effects) LevelUp() {
	e.arpeggio([]float64{523, 659, 784, 1047}, 0.1, 0.2, 0.08)
}

func (e *Effects) Victory() {
	e.arpeggio([]float64{523, 659, 784, 659, 784, 1047, 784, 1047, 1319}, 0.12, 0.3, 0.06)
}

func (e *Effects) GameOver() {
	e.arpeggio([]float64{392, 349, 330, 294, 262, 220}, 0.15, 0.4, 0.08)
}

// arpeggio plays each note as a square lead doubled an octave down on a triangle
func (e *Effects) arpeggio(notes []float64, step, length, lowVolume float64) {
	for i, f := range notes {
		at := float64(i) * step
		e.player.PlayNote(Note{Freq: f, Duration: length, Wave: Square, Volume: 0.1, Delay: at})
		e.player.PlayNote(Note{Freq: f / 2, Duration: length, Wave: Triangle, Volume: lowVolume, Delay: at})
	}
}
