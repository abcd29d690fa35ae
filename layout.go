package forms

// LayoutType identifies a container placement strategy.
type LayoutType uint8

const (
	// LayoutAbsolute keeps children at their explicitly set positions.
	LayoutAbsolute LayoutType = iota
	// LayoutVertical stacks children top to bottom.
	LayoutVertical
	// LayoutFlow places children left to right, wrapping into rows.
	LayoutFlow
)

// Layout places a container's children inside its viewport. Implementations
// write child desired bounds; the container's update pass resolves the
// derived rectangles afterwards.
type Layout interface {
	// Type identifies the strategy.
	Type() LayoutType

	// update re-places the container's children. Child positions are
	// relative to the container's viewport.
	update(ct *Container)
}

// NewLayout creates a layout of the given type with default spacing.
// Unknown types are a contract violation and fall back to absolute.
func NewLayout(t LayoutType) Layout {
	switch t {
	case LayoutAbsolute:
		return NewAbsoluteLayout()
	case LayoutVertical:
		return NewVerticalLayout()
	case LayoutFlow:
		return NewFlowLayout()
	}
	contractViolationf("unknown layout type %d", uint8(t))
	return NewAbsoluteLayout()
}

// layoutSize finalizes a child's desired size before placement, applying
// auto-sizing, and returns the size the layout should reserve for it.
func layoutSize(w Widget) Vec2 {
	c := w.control()
	c.applyAutoSize()
	return Vec2{X: c.bounds.W, Y: c.bounds.H}
}
