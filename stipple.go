package stipple

// Point is a 2D position in canvas-local coordinates. The origin is at the
// top-left, with Y increasing downward. Value type; no identity.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Used for the padded canvas area that
// bounds particle spawn positions.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Padding is the inset applied to each edge of the canvas. The sampler aligns
// images and the pool spawns particles inside the padded area.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// HAlign controls horizontal placement of the sampled image within the
// padded canvas area.
type HAlign uint8

const (
	AlignHCenter HAlign = iota // center horizontally (default)
	AlignLeft                  // align to the left edge of the padded area
	AlignRight                 // align to the right edge of the padded area
)

// VAlign controls vertical placement of the sampled image within the
// padded canvas area.
type VAlign uint8

const (
	AlignVCenter VAlign = iota // center vertically (default)
	AlignTop                   // align to the top edge of the padded area
	AlignBottom                // align to the bottom edge of the padded area
)

// Sample is one target position produced by the image sampler, optionally
// carrying property overrides (such as the sampled pixel color under the
// "fill" key). Samples are ephemeral: the pool consumes each one to seed a
// single particle's transition and never retains it.
type Sample struct {
	To    Point
	Props Properties // optional overlay; nil means defaults only
}
