package road

const (
	// ZoneCount is the number of equal-width spawn bands across the road
	ZoneCount = 5
	// ZoneMargin is the gap between the canvas edge and the first zone
	ZoneMargin = 15.0

	lineCount   = 12
	lineSpacing = 70.0
	// LineWidth and LineHeight describe one centre-line dash
	LineWidth  = 6.0
	LineHeight = 40.0
	// lineRespawnY is where a dash reappears after leaving the bottom
	lineRespawnY = -20.0
)

// Zone is a horizontal band of the road used to spread spawn positions
type Zone struct {
	Index int
	Start float64
	Width float64
}

// Line is a decorative centre-line dash
type Line struct {
	X, Y float64
}
