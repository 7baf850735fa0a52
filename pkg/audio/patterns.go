package audio

// Pattern is one bar of music: a melody note per beat, a bass note per two beats and a chord
type Pattern struct {
	Melody [BeatsPerBar]float64
	Bass   [BeatsPerBar / 2]float64
	Chord  [3]float64
}

// DefaultPatterns cycle once per bar
var DefaultPatterns = []Pattern{
	{
		Melody: [BeatsPerBar]float64{523, 587, 659, 698, 784, 698, 659, 587},
		Bass:   [BeatsPerBar / 2]float64{131, 165, 196, 165},
		Chord:  [3]float64{262, 330, 392},
	},
	{
		Melody: [BeatsPerBar]float64{659, 523, 587, 659, 698, 784, 880, 784},
		Bass:   [BeatsPerBar / 2]float64{147, 175, 196, 175},
		Chord:  [3]float64{294, 370, 440},
	},
	{
		Melody: [BeatsPerBar]float64{784, 698, 659, 587, 523, 587, 659, 698},
		Bass:   [BeatsPerBar / 2]float64{131, 147, 165, 147},
		Chord:  [3]float64{330, 392, 494},
	},
	{
		Melody: [BeatsPerBar]float64{880, 784, 698, 659, 587, 659, 698, 784},
		Bass:   [BeatsPerBar / 2]float64{110, 131, 147, 131},
		Chord:  [3]float64{262, 330, 392},
	},
}
