package flexbox

// Box is a leaf layout node: something with a natural size that a container
// measures and places. Box deliberately carries no flex metadata of its own -
// containers attach per-child configuration through the descriptors in this
// package ([Flex], [ChildOffset]) without Box's type knowing about them.
type Box struct {
	// Preferred is the size the box wants when unconstrained.
	Preferred Size

	size Size
}

// Size returns the size from the most recent layout.
func (b *Box) Size() Size {
	return b.size
}

// Layout sizes the box to its preferred size clamped into constraints.
func (b *Box) Layout(constraints Constraints) {
	b.size = constraints.Constrain(b.Preferred)
}
