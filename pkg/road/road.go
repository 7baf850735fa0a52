package road

// Road holds the canvas geometry and the scrolling centre line
type Road struct {
	Width  float64
	Height float64
	lines  []Line
}

// NewRoad creates a road for a canvas of the given size
func NewRoad(width, height float64) *Road {
	r := &Road{Width: width, Height: height}
	r.Reset()
	return r
}

// Reset puts the centre-line dashes back at their initial spacing
func (r *Road) Reset() {
	r.lines = make([]Line, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		r.lines = append(r.lines, Line{
			X: r.Width/2 - LineWidth/2,
			Y: float64(i) * lineSpacing,
		})
	}
}

// ZoneWidth returns the width of a single spawn zone
func (r *Road) ZoneWidth() float64 {
	return (r.Width - 2*ZoneMargin) / ZoneCount
}

// Zone returns the i-th spawn zone
func (r *Road) Zone(i int) Zone {
	w := r.ZoneWidth()
	return Zone{Index: i, Start: ZoneMargin + float64(i)*w, Width: w}
}

// Advance scrolls the dashes down by delta pixels, wrapping them to the top
func (r *Road) Advance(delta float64) {
	for i := range r.lines {
		r.lines[i].Y += delta
		if r.lines[i].Y > r.Height {
			r.lines[i].Y = lineRespawnY
		}
	}
}

// Lines returns a copy of the dashes for drawing
func (r *Road) Lines() []Line {
	return append([]Line(nil), r.lines...)
}
