package entity

// Rect is an axis-aligned rectangle in pixel coordinates (top-left origin)
type Rect struct {
	X, Y, W, H float64
}

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports strict overlap; touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Body represents the physical body of an entity.
// Position is the top-left corner in pixels, velocity is pixels per frame.
type Body struct {
	X, Y      float64
	VX, VY    float64
	Width     float64
	Height    float64
	Direction int // -1 left, 1 right
}

// Bounds returns the body's bounding box
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// SetPos moves the body and stops it
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
	b.VX = 0
	b.VY = 0
}

// CenterX returns the horizontal center
func (b *Body) CenterX() float64 { return b.X + b.Width/2 }

// ApplyVelocity advances the position by one frame of velocity
func (b *Body) ApplyVelocity() {
	b.X += b.VX
	b.Y += b.VY
}
