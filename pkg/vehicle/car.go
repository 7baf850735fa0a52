package vehicle

const (
	CarWidth  = 50.0
	CarHeight = 80.0
	// CarSpeed is the lateral speed in pixels per frame
	CarSpeed = 7.0
	// HitboxInset keeps collisions a little tighter than the sprite
	HitboxInset = 5.0
	// RoadEdge is the width of the shoulder the car may not enter
	RoadEdge = 10.0
	// carBottomOffset is the distance from the car's top edge to the bottom of the canvas
	carBottomOffset = 140.0
)

// Car represents the player's car
type Car struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// NewCar creates a car centred horizontally near the bottom of the canvas
func NewCar(canvasWidth, canvasHeight float64) *Car {
	c := &Car{Width: CarWidth, Height: CarHeight, Speed: CarSpeed}
	c.Reset(canvasWidth, canvasHeight)
	return c
}

// Reset puts the car back on its starting spot
func (c *Car) Reset(canvasWidth, canvasHeight float64) {
	c.X = canvasWidth/2 - c.Width/2
	c.Y = canvasHeight - carBottomOffset
}

// Bounds returns the visual rectangle of the car
func (c *Car) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// Hitbox returns the collision rectangle, inset from the sprite
func (c *Car) Hitbox() Rect {
	return c.Bounds().Inset(HitboxInset)
}

// Steer moves the car sideways and keeps it within [RoadEdge, canvasWidth-Width-RoadEdge].
// Holding both directions cancels out.
func (c *Car) Steer(left, right bool, canvasWidth float64) {
	if left {
		c.X -= c.Speed
	}
	if right {
		c.X += c.Speed
	}

	minX := RoadEdge
	maxX := canvasWidth - c.Width - RoadEdge
	if c.X < minX {
		c.X = minX
	}
	if c.X > maxX {
		c.X = maxX
	}
}
