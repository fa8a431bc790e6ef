package flexbox

import "math"

// Unbounded marks an axis with no upper size limit.
const Unbounded = math.MaxFloat64

// Size holds a width and height in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Offset is a position relative to the parent container's origin.
type Offset struct {
	X float64
	Y float64
}

// Constraints is the size range a parent passes down during layout.
// A child must come out of layout with a size inside the range.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Loose returns constraints that allow any size up to the given one.
func Loose(size Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Tight returns constraints that force exactly the given size.
func Tight(size Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// Constrain clamps size into the constraint range.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  math.Min(math.Max(size.Width, c.MinWidth), c.MaxWidth),
		Height: math.Min(math.Max(size.Height, c.MinHeight), c.MaxHeight),
	}
}
