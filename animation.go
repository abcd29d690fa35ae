package forms

// AnimationProperty identifies a control property that an animation engine
// can drive through the AnimationTarget contract. The engine needs no
// knowledge of widget kinds; every control answers for all identifiers.
type AnimationProperty int

const (
	// AnimatePosition animates the X and Y of the control's desired bounds.
	AnimatePosition AnimationProperty = iota + 1
	// AnimatePositionX animates only the X coordinate.
	AnimatePositionX
	// AnimatePositionY animates only the Y coordinate.
	AnimatePositionY
	// AnimateSize animates the width and height of the desired bounds.
	AnimateSize
	// AnimateSizeWidth animates only the width.
	AnimateSizeWidth
	// AnimateSizeHeight animates only the height.
	AnimateSizeHeight
	// AnimateOpacity animates the control's opacity.
	AnimateOpacity
)

// String returns a human-readable name for the animation property.
func (p AnimationProperty) String() string {
	switch p {
	case AnimatePosition:
		return "position"
	case AnimatePositionX:
		return "position.x"
	case AnimatePositionY:
		return "position.y"
	case AnimateSize:
		return "size"
	case AnimateSizeWidth:
		return "size.width"
	case AnimateSizeHeight:
		return "size.height"
	case AnimateOpacity:
		return "opacity"
	}
	return "unknown"
}

// AnimationTarget is the write side of the animation engine's view of a
// control. All three methods treat an unknown property identifier as a
// contract violation: they panic under strict contracts and degrade to a
// no-op (or zero count) otherwise.
type AnimationTarget interface {
	// AnimationPropertyComponentCount returns how many float components the
	// property carries: 2 for position and size, 1 for the single-axis and
	// opacity properties.
	AnimationPropertyComponentCount(prop AnimationProperty) int

	// AnimationPropertyValue writes the property's current components into
	// dst, which must hold at least the component count.
	AnimationPropertyValue(prop AnimationProperty, dst []float32)

	// SetAnimationPropertyValue blends the property from its current value
	// toward the supplied components. blendWeight is clamped to [0, 1];
	// 1 replaces the current value, lower weights interpolate linearly.
	SetAnimationPropertyValue(prop AnimationProperty, value []float32, blendWeight float32)
}

// animationComponentCount is the arity table behind
// AnimationPropertyComponentCount. Returns 0 for unknown identifiers.
func animationComponentCount(prop AnimationProperty) int {
	switch prop {
	case AnimatePosition, AnimateSize:
		return 2
	case AnimatePositionX, AnimatePositionY,
		AnimateSizeWidth, AnimateSizeHeight, AnimateOpacity:
		return 1
	}
	return 0
}

// lerpf interpolates from a toward b by weight t.
func lerpf(a, b, t float32) float32 {
	return a + (b-a)*t
}
