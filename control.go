package forms

import "strings"

// Alignment positions a control inside its layout area and text inside a
// control's viewport. Horizontal and vertical bits combine.
type Alignment uint8

const (
	AlignLeft    Alignment = 0x01
	AlignHCenter Alignment = 0x02
	AlignRight   Alignment = 0x04
	AlignTop     Alignment = 0x10
	AlignVCenter Alignment = 0x20
	AlignBottom  Alignment = 0x40

	AlignTopLeft      = AlignTop | AlignLeft
	AlignTopHCenter   = AlignTop | AlignHCenter
	AlignTopRight     = AlignTop | AlignRight
	AlignVCenterLeft  = AlignVCenter | AlignLeft
	AlignCenter       = AlignVCenter | AlignHCenter
	AlignVCenterRight = AlignVCenter | AlignRight
	AlignBottomLeft   = AlignBottom | AlignLeft
	AlignBottomCenter = AlignBottom | AlignHCenter
	AlignBottomRight  = AlignBottom | AlignRight
)

// ParseAlignment maps an alignment name from the theme vocabulary
// (ALIGN_TOP_LEFT, ALIGN_VCENTER_RIGHT, ...) to its value.
// Returns false for unknown names.
func ParseAlignment(name string) (Alignment, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ALIGN_LEFT":
		return AlignLeft, true
	case "ALIGN_HCENTER":
		return AlignHCenter, true
	case "ALIGN_RIGHT":
		return AlignRight, true
	case "ALIGN_TOP":
		return AlignTop, true
	case "ALIGN_VCENTER":
		return AlignVCenter, true
	case "ALIGN_BOTTOM":
		return AlignBottom, true
	case "ALIGN_TOP_LEFT":
		return AlignTopLeft, true
	case "ALIGN_TOP_HCENTER":
		return AlignTopHCenter, true
	case "ALIGN_TOP_RIGHT":
		return AlignTopRight, true
	case "ALIGN_VCENTER_LEFT":
		return AlignVCenterLeft, true
	case "ALIGN_CENTER":
		return AlignCenter, true
	case "ALIGN_VCENTER_RIGHT":
		return AlignVCenterRight, true
	case "ALIGN_BOTTOM_LEFT":
		return AlignBottomLeft, true
	case "ALIGN_BOTTOM_HCENTER":
		return AlignBottomCenter, true
	case "ALIGN_BOTTOM_RIGHT":
		return AlignBottomRight, true
	}
	return 0, false
}

// alignPos places a box of the given size inside an area according to the
// alignment bits, offset by the box's margin.
func alignPos(area Rect, size Vec2, a Alignment, margin SideLengths) Vec2 {
	pos := Vec2{X: area.X + margin.Left, Y: area.Y + margin.Top}
	switch {
	case a&AlignHCenter != 0:
		pos.X = area.X + (area.W-size.X)/2
	case a&AlignRight != 0:
		pos.X = area.X + area.W - size.X - margin.Right
	}
	switch {
	case a&AlignVCenter != 0:
		pos.Y = area.Y + (area.H-size.Y)/2
	case a&AlignBottom != 0:
		pos.Y = area.Y + area.H - size.Y - margin.Bottom
	}
	return pos
}

// Widget is the capability interface every control kind implements:
// identity, container test, input hooks, intrinsic measurement and drawing.
// The shared state behind those capabilities lives in the embedded Control;
// the unexported accessor keeps the set of widget kinds closed to this
// package.
type Widget interface {
	// control returns the shared per-widget state.
	control() *Control

	// container returns the embedded container, or nil for leaf widgets.
	container() *Container

	// Kind returns the widget kind name, which doubles as the default
	// theme style name ("button", "label", ...).
	Kind() string

	// IsContainer reports whether the widget owns child controls.
	IsContainer() bool

	// TouchEvent handles a pointer event in screen coordinates and reports
	// whether the event was consumed. Geometry must be current, so deliver
	// events after Form.Update has run for the frame.
	TouchEvent(evt TouchEvent) bool

	// KeyEvent handles a keyboard event and reports whether it was consumed.
	KeyEvent(evt KeyEvent) bool

	// measure returns the widget's intrinsic content size, excluding border
	// and padding.
	measure() Vec2

	// draw emits the widget's quads for its current overlay. opacity is the
	// widget's own opacity multiplied down the ancestor chain.
	draw(dl *DrawList, opacity float32)
}

// styleRef tracks whether a control still shares its theme's style or owns a
// private copy. Exactly one of the two fields is non-nil once themed.
type styleRef struct {
	shared *Style
	owned  *Style
}

// current returns the style lookups resolve against, or nil when unthemed.
func (r *styleRef) current() *Style {
	if r.owned != nil {
		return r.owned
	}
	return r.shared
}

// mutable returns a style this control may write to, cloning the shared
// style on first use so sibling controls keep their template values.
func (r *styleRef) mutable() *Style {
	if r.owned == nil {
		if r.shared != nil {
			r.owned = r.shared.clone()
		} else {
			r.owned = NewStyle("", nil)
		}
	}
	return r.owned
}

// setShared resets the reference to a shared style, dropping any private copy.
func (r *styleRef) setShared(s *Style) {
	r.shared = s
	r.owned = nil
}

// Control is the state shared by every widget kind: identity, the state
// machine, the six bounds rectangles, the themed style reference, the
// listener registry and the animation channel. Widgets embed it and layer
// their own behavior on top.
type Control struct {
	self   Widget
	id     string
	parent *Container

	state     State
	visible   bool
	focusable bool

	// consumeInput controls whether handled press events stop propagating
	// to the controls behind this one.
	consumeInput bool

	style     styleRef
	styleName string

	// Geometry. bounds is the desired rectangle relative to the parent's
	// viewport; the remaining five are derived by the update pass.
	bounds             Rect
	clipBounds         Rect
	absoluteBounds     Rect
	absoluteClipBounds Rect
	viewportBounds     Rect
	viewportClipBounds Rect

	autoWidth  bool
	autoHeight bool
	alignment  Alignment

	opacity float32
	zIndex  int

	dirty      bool
	childDirty bool

	listeners listenerRegistry

	// Press tracking for release pairing.
	pressed      bool
	pressContact int
	restoreState State
}

// initControl wires a freshly constructed widget's shared state.
// self is the outermost widget value embedding this control.
func (c *Control) initControl(self Widget, id string) {
	c.self = self
	c.id = id
	c.state = StateNormal
	c.visible = true
	c.consumeInput = true
	c.opacity = 1
	c.alignment = AlignTopLeft
	c.dirty = true
}

func (c *Control) control() *Control { return c }

func (c *Control) container() *Container { return nil }

// Kind returns "control" for the base type; widget kinds override it.
func (c *Control) Kind() string { return "control" }

// IsContainer reports false for leaf controls.
func (c *Control) IsContainer() bool { return false }

// ID returns the control's identifier, unique within its parent's scope.
func (c *Control) ID() string { return c.id }

// Parent returns the container that owns this control, or nil for roots.
func (c *Control) Parent() *Container { return c.parent }

// form walks to the root of the tree and returns it if it is a Form.
func (c *Control) form() *Form {
	cur := c
	for cur.parent != nil {
		cur = &cur.parent.controlBase
	}
	if f, ok := cur.self.(*Form); ok {
		return f
	}
	return nil
}

// theme returns the theme of the owning form, or nil when detached.
func (c *Control) theme() *Theme {
	if f := c.form(); f != nil {
		return f.themeRes
	}
	return nil
}

// State returns the control's current state.
func (c *Control) State() State { return c.state }

// SetState transitions the control to a single state. Masks with zero or
// several bits are a contract violation and leave the state unchanged.
func (c *Control) SetState(s State) {
	if !s.IsSingle() {
		contractViolationf("SetState requires a single state, got %v", s)
		return
	}
	if c.state == s {
		return
	}
	c.state = s
	c.markDirty()
}

// Enabled reports whether the control accepts input.
func (c *Control) Enabled() bool { return c.state != StateDisabled }

// SetEnabled toggles between the disabled state and the normal state.
func (c *Control) SetEnabled(enabled bool) {
	if enabled == c.Enabled() {
		return
	}
	if enabled {
		c.SetState(StateNormal)
	} else {
		c.SetState(StateDisabled)
	}
}

// HasFocus reports whether the control is the form's focused control.
func (c *Control) HasFocus() bool { return c.state == StateFocus }

// Visible reports whether the control is drawn and hit-testable.
func (c *Control) Visible() bool { return c.visible }

// SetVisible shows or hides the control and its descendants.
func (c *Control) SetVisible(v bool) {
	if c.visible == v {
		return
	}
	c.visible = v
	c.markDirty()
}

// Focusable reports whether the form may grant this control focus.
func (c *Control) Focusable() bool { return c.focusable }

// SetFocusable overrides the widget kind's default focusability.
func (c *Control) SetFocusable(f bool) { c.focusable = f }

// ConsumeInputEvents reports whether handled presses stop propagating.
func (c *Control) ConsumeInputEvents() bool { return c.consumeInput }

// SetConsumeInputEvents controls whether handled presses stop propagating
// to controls behind this one. Defaults to true.
func (c *Control) SetConsumeInputEvents(consume bool) { c.consumeInput = consume }

// Opacity returns the control's own opacity in [0, 1].
func (c *Control) Opacity() float32 { return c.opacity }

// SetOpacity sets the control's opacity, clamped to [0, 1].
// Effective drawing opacity multiplies down the ancestor chain.
func (c *Control) SetOpacity(o float32) {
	o = clampf(o, 0, 1)
	if c.opacity == o {
		return
	}
	c.opacity = o
	c.markDirty()
}

// ZIndex returns the control's draw order bias among its siblings.
func (c *Control) ZIndex() int { return c.zIndex }

// SetZIndex sets the draw order bias. Higher values draw later (on top)
// and hit-test earlier.
func (c *Control) SetZIndex(z int) {
	if c.zIndex == z {
		return
	}
	c.zIndex = z
	if c.parent != nil {
		c.parent.sortStale = true
	}
	c.markDirty()
}

// Alignment returns how layouts place this control inside available space.
func (c *Control) Alignment() Alignment { return c.alignment }

// SetAlignment sets the layout alignment.
func (c *Control) SetAlignment(a Alignment) {
	if c.alignment == a {
		return
	}
	c.alignment = a
	c.markDirty()
}

// AutoWidth reports whether the width is derived from content.
func (c *Control) AutoWidth() bool { return c.autoWidth }

// SetAutoWidth derives the control's width from its content when enabled.
func (c *Control) SetAutoWidth(auto bool) {
	if c.autoWidth == auto {
		return
	}
	c.autoWidth = auto
	c.markDirty()
}

// AutoHeight reports whether the height is derived from content.
func (c *Control) AutoHeight() bool { return c.autoHeight }

// SetAutoHeight derives the control's height from its content when enabled.
func (c *Control) SetAutoHeight(auto bool) {
	if c.autoHeight == auto {
		return
	}
	c.autoHeight = auto
	c.markDirty()
}

// Bounds returns the desired bounds relative to the parent's viewport,
// exactly as last set or laid out.
func (c *Control) Bounds() Rect { return c.bounds }

// SetBounds sets the desired bounds relative to the parent's viewport.
// Derived rectangles refresh on the next update pass.
func (c *Control) SetBounds(r Rect) {
	if c.bounds == r {
		return
	}
	c.bounds = r
	c.markDirty()
}

// Position returns the desired position relative to the parent's viewport.
func (c *Control) Position() Vec2 { return Vec2{X: c.bounds.X, Y: c.bounds.Y} }

// SetPosition moves the desired bounds.
func (c *Control) SetPosition(x, y float32) {
	if c.bounds.X == x && c.bounds.Y == y {
		return
	}
	c.bounds.X = x
	c.bounds.Y = y
	c.markDirty()
}

// Size returns the desired size.
func (c *Control) Size() Vec2 { return Vec2{X: c.bounds.W, Y: c.bounds.H} }

// SetSize resizes the desired bounds. Negative sizes clamp to zero.
func (c *Control) SetSize(w, h float32) {
	w = maxf(w, 0)
	h = maxf(h, 0)
	if c.bounds.W == w && c.bounds.H == h {
		return
	}
	c.bounds.W = w
	c.bounds.H = h
	c.markDirty()
}

// X returns the desired X position.
func (c *Control) X() float32 { return c.bounds.X }

// SetX moves the desired X position.
func (c *Control) SetX(x float32) { c.SetPosition(x, c.bounds.Y) }

// Y returns the desired Y position.
func (c *Control) Y() float32 { return c.bounds.Y }

// SetY moves the desired Y position.
func (c *Control) SetY(y float32) { c.SetPosition(c.bounds.X, y) }

// Width returns the desired width.
func (c *Control) Width() float32 { return c.bounds.W }

// SetWidth resizes the desired width.
func (c *Control) SetWidth(w float32) { c.SetSize(w, c.bounds.H) }

// Height returns the desired height.
func (c *Control) Height() float32 { return c.bounds.H }

// SetHeight resizes the desired height.
func (c *Control) SetHeight(h float32) { c.SetSize(c.bounds.W, h) }

// ClipBounds returns the desired bounds clipped by the ancestor chain,
// still relative to the parent's viewport.
func (c *Control) ClipBounds() Rect { return c.clipBounds }

// AbsoluteBounds returns the desired bounds in screen coordinates.
func (c *Control) AbsoluteBounds() Rect { return c.absoluteBounds }

// AbsoluteClipBounds returns the screen-space bounds clipped by the
// ancestor chain. Hit testing and drawing use this rectangle.
func (c *Control) AbsoluteClipBounds() Rect { return c.absoluteClipBounds }

// ViewportBounds returns the screen-space content area: the absolute bounds
// shrunk by the current state's border and padding.
func (c *Control) ViewportBounds() Rect { return c.viewportBounds }

// ViewportClipBounds returns the content area clipped by the ancestor chain.
func (c *Control) ViewportClipBounds() Rect { return c.viewportClipBounds }

// markDirty flags this control and percolates a child-dirty mark to the
// root so the next frame's update pass knows to descend here. The walk
// stops at the first already-marked ancestor.
func (c *Control) markDirty() {
	c.dirty = true
	for p := c.parent; p != nil && !p.childDirty; p = p.parent {
		p.childDirty = true
	}
}

// needsUpdate reports whether this control or any descendant is dirty.
func (c *Control) needsUpdate() bool { return c.dirty || c.childDirty }

// resolveGeometry derives the five computed rectangles from the desired
// bounds, the parent's viewport origin and the parent's clip region.
func (c *Control) resolveGeometry(parentViewport, parentClip Rect) {
	c.absoluteBounds = Rect{
		X: parentViewport.X + c.bounds.X,
		Y: parentViewport.Y + c.bounds.Y,
		W: c.bounds.W,
		H: c.bounds.H,
	}
	c.absoluteClipBounds = c.absoluteBounds.Intersect(parentClip)
	c.clipBounds = Rect{
		X: c.absoluteClipBounds.X - parentViewport.X,
		Y: c.absoluteClipBounds.Y - parentViewport.Y,
		W: c.absoluteClipBounds.W,
		H: c.absoluteClipBounds.H,
	}

	b := c.Border(c.state)
	p := c.Padding(c.state)
	c.viewportBounds = Rect{
		X: c.absoluteBounds.X + b.Left + p.Left,
		Y: c.absoluteBounds.Y + b.Top + p.Top,
		W: maxf(c.bounds.W-b.Horizontal()-p.Horizontal(), 0),
		H: maxf(c.bounds.H-b.Vertical()-p.Vertical(), 0),
	}
	c.viewportClipBounds = c.viewportBounds.Intersect(c.absoluteClipBounds)
}

// applyAutoSize replaces auto-sized dimensions with the widget's intrinsic
// size plus the current state's border and padding.
func (c *Control) applyAutoSize() {
	if !c.autoWidth && !c.autoHeight {
		return
	}
	m := c.self.measure()
	b := c.Border(c.state)
	p := c.Padding(c.state)
	if c.autoWidth {
		c.bounds.W = maxf(m.X+b.Horizontal()+p.Horizontal(), 0)
	}
	if c.autoHeight {
		c.bounds.H = maxf(m.Y+b.Vertical()+p.Vertical(), 0)
	}
}

// measure returns the base intrinsic size: zero. Widget kinds override it.
func (c *Control) measure() Vec2 { return Vec2{} }

// Style returns the style lookups currently resolve against: the private
// copy when one exists, otherwise the shared theme style. Nil when unthemed.
func (c *Control) Style() *Style { return c.style.current() }

// SetStyle points the control at a shared style, discarding any private
// overrides accumulated through themed setters.
func (c *Control) SetStyle(s *Style) {
	c.style.setShared(s)
	if s != nil {
		c.styleName = s.name
	}
	c.markDirty()
}

// StyleName returns the style name this control resolves in its theme.
func (c *Control) StyleName() string {
	if c.styleName != "" {
		return c.styleName
	}
	return c.self.Kind()
}

// SetStyleName names the theme style to bind on the next update pass.
// Use SetStyle to attach a style object directly.
func (c *Control) SetStyleName(name string) {
	c.styleName = name
	c.style = styleRef{}
	c.markDirty()
}

// bindStyle attaches the theme style for unthemed controls. Called during
// the form's update pass so controls added mid-frame get themed.
func (c *Control) bindStyle(t *Theme) {
	if c.style.current() != nil || t == nil {
		return
	}
	if c.styleName != "" {
		if s, ok := t.Style(c.styleName); ok {
			c.style.setShared(s)
			return
		}
		formsLogger.Warn("style not found in theme", "style", c.styleName, "control", c.id)
	}
	c.style.setShared(t.StyleFor(c.self.Kind()))
}

// overlay resolves the overlay for one state against the current style.
func (c *Control) overlay(state State) *Overlay {
	s := c.style.current()
	if s == nil {
		return neutralOverlay
	}
	return s.OverlayForState(state)
}

// stateArg resolves a variadic getter state argument: empty means NORMAL,
// anything else must be a single state.
func stateArg(states []State) State {
	if len(states) == 0 {
		return StateNormal
	}
	s := states[0]
	if !s.IsSingle() {
		contractViolationf("themed getter requires a single state, got %v", s)
		return StateNormal
	}
	return s
}

// maskArg resolves a variadic setter state argument: empty means all four
// states, anything else must be a valid mask.
func maskArg(states []State) State {
	if len(states) == 0 {
		return StateAll
	}
	mask := State(0)
	for _, s := range states {
		mask |= s
	}
	if mask == 0 || mask&^StateAll != 0 {
		contractViolationf("themed setter received malformed state mask %#x", uint8(mask))
		return 0
	}
	return mask
}

// eachMaskState invokes f once per single state present in the mask.
func eachMaskState(mask State, f func(State)) {
	for _, bit := range [...]State{StateNormal, StateFocus, StateActive, StateDisabled} {
		if mask&bit != 0 {
			f(bit)
		}
	}
}

// overrideOverlay clones the shared style on first write and returns the
// mutable overlay for the state.
func (c *Control) overrideOverlay(state State) *Overlay {
	return c.style.mutable().mutableOverlay(overlayForState(state))
}

// SkinColor returns the skin color for a state (default NORMAL).
func (c *Control) SkinColor(states ...State) uint32 {
	return c.overlay(stateArg(states)).SkinColor()
}

// SetSkinColor sets the skin color for the masked states (default all).
// The first themed setter call copies the shared style, so sibling controls
// keep their template values.
func (c *Control) SetSkinColor(color uint32, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetSkinColor(color) })
	c.markDirty()
}

// SkinRegion returns the skin's atlas region for a state (default NORMAL).
func (c *Control) SkinRegion(states ...State) Rect {
	return c.overlay(stateArg(states)).SkinRegion()
}

// SetSkinRegion sets the skin's atlas region for the masked states.
func (c *Control) SetSkinRegion(region Rect, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetSkinRegion(region) })
	c.markDirty()
}

// imageFor resolves a named image for a state, falling back to the NORMAL
// overlay when the state's own overlay lacks it. A name absent from both is
// a contract violation.
func (c *Control) imageFor(id string, state State) *ThemeImage {
	if img, ok := c.overlay(state).Image(id); ok {
		return img
	}
	if img, ok := c.overlay(StateNormal).Image(id); ok {
		return img
	}
	contractViolationf("control %q has no image %q", c.id, id)
	return nil
}

// ImageColor returns the color of a named image for a state.
// Unknown image ids are a contract violation and yield transparent.
func (c *Control) ImageColor(id string, states ...State) uint32 {
	img := c.imageFor(id, stateArg(states))
	if img == nil {
		return ColorTransparent
	}
	return img.color
}

// SetImageColor sets the color of a named image for the masked states,
// creating the image if the overlay lacks it.
func (c *Control) SetImageColor(id string, color uint32, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) {
		o := c.overrideOverlay(s)
		if o.images == nil {
			o.images = NewImageList()
		}
		if img, ok := o.images.Image(id); ok {
			img.color = color
		} else {
			o.images.Add(NewThemeImage(id, Rect{}, color))
		}
	})
	c.markDirty()
}

// ImageRegion returns the atlas region of a named image for a state.
// Unknown image ids are a contract violation and yield an empty region.
func (c *Control) ImageRegion(id string, states ...State) Rect {
	img := c.imageFor(id, stateArg(states))
	if img == nil {
		return Rect{}
	}
	return img.region
}

// SetImageRegion sets the atlas region of a named image for the masked
// states, creating the image if the overlay lacks it.
func (c *Control) SetImageRegion(id string, region Rect, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) {
		o := c.overrideOverlay(s)
		if o.images == nil {
			o.images = NewImageList()
		}
		if img, ok := o.images.Image(id); ok {
			img.region = region
		} else {
			o.images.Add(NewThemeImage(id, region, ColorWhite))
		}
	})
	c.markDirty()
}

// CursorColor returns the cursor color for a state (default NORMAL).
func (c *Control) CursorColor(states ...State) uint32 {
	return c.overlay(stateArg(states)).CursorColor()
}

// SetCursorColor sets the cursor color for the masked states.
func (c *Control) SetCursorColor(color uint32, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetCursorColor(color) })
	c.markDirty()
}

// CursorRegion returns the cursor's atlas region for a state.
func (c *Control) CursorRegion(states ...State) Rect {
	return c.overlay(stateArg(states)).CursorRegion()
}

// SetCursorRegion sets the cursor's atlas region for the masked states.
func (c *Control) SetCursorRegion(region Rect, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetCursorRegion(region) })
	c.markDirty()
}

// Font returns the font for a state, falling back to the theme's default
// and then the form's font provider.
func (c *Control) Font(states ...State) Font {
	if f := c.overlay(stateArg(states)).Font(); f != nil {
		return f
	}
	if t := c.theme(); t != nil && t.font != nil {
		return t.font
	}
	if f := c.form(); f != nil && f.fonts != nil {
		return f.fonts.ActiveFont()
	}
	return nil
}

// SetFont sets the font for the masked states.
func (c *Control) SetFont(f Font, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetFont(f) })
	c.markDirty()
}

// FontSize returns the font size for a state. Zero means the font's
// natural size.
func (c *Control) FontSize(states ...State) float32 {
	return c.overlay(stateArg(states)).FontSize()
}

// SetFontSize sets the font size for the masked states.
func (c *Control) SetFontSize(size float32, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetFontSize(size) })
	c.markDirty()
}

// TextColor returns the text color for a state (default NORMAL).
func (c *Control) TextColor(states ...State) uint32 {
	return c.overlay(stateArg(states)).TextColor()
}

// SetTextColor sets the text color for the masked states (default all).
func (c *Control) SetTextColor(color uint32, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetTextColor(color) })
	c.markDirty()
}

// TextAlignment returns the text alignment for a state.
func (c *Control) TextAlignment(states ...State) Alignment {
	return c.overlay(stateArg(states)).TextAlignment()
}

// SetTextAlignment sets the text alignment for the masked states.
func (c *Control) SetTextAlignment(a Alignment, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetTextAlignment(a) })
	c.markDirty()
}

// TextRightToLeft returns the text direction for a state.
func (c *Control) TextRightToLeft(states ...State) bool {
	return c.overlay(stateArg(states)).TextRightToLeft()
}

// SetTextRightToLeft sets the text direction for the masked states.
func (c *Control) SetTextRightToLeft(rtl bool, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetTextRightToLeft(rtl) })
	c.markDirty()
}

// Margin returns the margin for a state (default NORMAL). Layouts add it
// around the control when placing siblings.
func (c *Control) Margin(states ...State) SideLengths {
	return c.overlay(stateArg(states)).Margin()
}

// SetMargin sets the margin for the masked states.
func (c *Control) SetMargin(m SideLengths, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetMargin(m) })
	c.markDirty()
}

// Border returns the border thickness for a state (default NORMAL).
func (c *Control) Border(states ...State) SideLengths {
	return c.overlay(stateArg(states)).Border()
}

// SetBorder sets the border thickness for the masked states.
func (c *Control) SetBorder(b SideLengths, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetBorder(b) })
	c.markDirty()
}

// Padding returns the padding for a state (default NORMAL).
func (c *Control) Padding(states ...State) SideLengths {
	return c.overlay(stateArg(states)).Padding()
}

// SetPadding sets the padding for the masked states.
func (c *Control) SetPadding(p SideLengths, states ...State) {
	mask := maskArg(states)
	if mask == 0 {
		return
	}
	eachMaskState(mask, func(s State) { c.overrideOverlay(s).SetPadding(p) })
	c.markDirty()
}

// OverlayType maps the control's live state to the overlay drawn for it.
// There is no blending across overlays; transitions switch atomically.
func (c *Control) OverlayType() OverlayType {
	return overlayForState(c.state)
}

// AddListener registers a listener for every event flag in the mask.
// Within one event type, listeners are notified in registration order.
func (c *Control) AddListener(l Listener, events EventType) {
	if l == nil || events == 0 || events&^eventAll != 0 {
		contractViolationf("AddListener on %q with mask %#x", c.id, uint8(events))
		return
	}
	c.listeners.add(l, events)
}

// RemoveListener removes a listener from every event flag in the mask.
// Listeners are matched by identity.
func (c *Control) RemoveListener(l Listener, events EventType) {
	c.listeners.remove(l, events)
}

// NotifyListeners synchronously invokes the listeners registered for the
// event type, in registration order.
func (c *Control) NotifyListeners(evt EventType) {
	c.listeners.notify(c.self, evt)
}

// AnimationPropertyComponentCount returns the float component count of an
// animation property. Unknown properties are a contract violation.
func (c *Control) AnimationPropertyComponentCount(prop AnimationProperty) int {
	n := animationComponentCount(prop)
	if n == 0 {
		contractViolationf("unknown animation property %d on %q", int(prop), c.id)
	}
	return n
}

// AnimationPropertyValue writes the property's current components into dst.
// Unknown properties and short destinations are contract violations that
// leave dst untouched.
func (c *Control) AnimationPropertyValue(prop AnimationProperty, dst []float32) {
	n := animationComponentCount(prop)
	if n == 0 {
		contractViolationf("unknown animation property %d on %q", int(prop), c.id)
		return
	}
	if len(dst) < n {
		contractViolationf("animation value buffer too small for %v: %d < %d", prop, len(dst), n)
		return
	}
	switch prop {
	case AnimatePosition:
		dst[0], dst[1] = c.bounds.X, c.bounds.Y
	case AnimatePositionX:
		dst[0] = c.bounds.X
	case AnimatePositionY:
		dst[0] = c.bounds.Y
	case AnimateSize:
		dst[0], dst[1] = c.bounds.W, c.bounds.H
	case AnimateSizeWidth:
		dst[0] = c.bounds.W
	case AnimateSizeHeight:
		dst[0] = c.bounds.H
	case AnimateOpacity:
		dst[0] = c.opacity
	}
}

// SetAnimationPropertyValue blends the property from its current value
// toward the supplied components. blendWeight is clamped to [0, 1];
// 1 replaces, lower weights interpolate linearly from the current value.
func (c *Control) SetAnimationPropertyValue(prop AnimationProperty, value []float32, blendWeight float32) {
	n := animationComponentCount(prop)
	if n == 0 {
		contractViolationf("unknown animation property %d on %q", int(prop), c.id)
		return
	}
	if len(value) < n {
		contractViolationf("animation value buffer too small for %v: %d < %d", prop, len(value), n)
		return
	}
	w := clampf(blendWeight, 0, 1)
	switch prop {
	case AnimatePosition:
		c.SetPosition(lerpf(c.bounds.X, value[0], w), lerpf(c.bounds.Y, value[1], w))
	case AnimatePositionX:
		c.SetX(lerpf(c.bounds.X, value[0], w))
	case AnimatePositionY:
		c.SetY(lerpf(c.bounds.Y, value[0], w))
	case AnimateSize:
		c.SetSize(lerpf(c.bounds.W, value[0], w), lerpf(c.bounds.H, value[1], w))
	case AnimateSizeWidth:
		c.SetWidth(lerpf(c.bounds.W, value[0], w))
	case AnimateSizeHeight:
		c.SetHeight(lerpf(c.bounds.H, value[0], w))
	case AnimateOpacity:
		c.SetOpacity(lerpf(c.opacity, value[0], w))
	}
}

// hit reports whether a screen point lands on the control's visible area.
func (c *Control) hit(p Vec2) bool {
	return c.visible && c.absoluteClipBounds.Contains(p)
}

// processTouch implements the base press/release pairing: press inside the
// bounds notifies EventPress and records the contact, the matching release
// notifies EventRelease. Returns whether the event was consumed.
// The disabled state gates before any processing.
func (c *Control) processTouch(evt TouchEvent) bool {
	if c.state == StateDisabled {
		return false
	}
	switch evt.Kind {
	case TouchPress:
		if !c.hit(evt.Pos()) {
			return false
		}
		c.pressed = true
		c.pressContact = evt.Contact
		c.NotifyListeners(EventPress)
		return c.consumeInput
	case TouchRelease:
		if !c.pressed || c.pressContact != evt.Contact {
			return false
		}
		c.pressed = false
		c.NotifyListeners(EventRelease)
		return c.consumeInput
	case TouchMove:
		return c.pressed && c.pressContact == evt.Contact && c.consumeInput
	}
	return false
}

// TouchEvent handles a pointer event with the base press/release pairing.
// Widget kinds override this to add their own state transitions.
func (c *Control) TouchEvent(evt TouchEvent) bool {
	return c.processTouch(evt)
}

// KeyEvent handles a keyboard event. The base control consumes nothing;
// widget kinds with keyboard behavior override it.
func (c *Control) KeyEvent(evt KeyEvent) bool { return false }

// draw renders the control's skin for its current overlay.
// Widget kinds override this and usually call drawSkin first.
func (c *Control) draw(dl *DrawList, opacity float32) {
	c.drawSkin(dl, opacity)
}

// drawSkin emits the control's background: a nine-patch when the skin has
// an atlas region, a flat quad with an optional outline otherwise.
func (c *Control) drawSkin(dl *DrawList, opacity float32) {
	o := c.overlay(c.state)
	skin := o.Skin()
	if skin == nil {
		return
	}
	color := ModulateAlpha(skin.color, opacity)
	r := c.absoluteBounds
	if r.IsEmpty() {
		return
	}
	t := c.theme()
	if t != nil && t.texture != 0 && !skin.region.IsEmpty() {
		dl.AddNinePatch(r, skin.region, skin.border, t.texture, t.atlasSize, color)
		return
	}
	dl.AddRect(r.X, r.Y, r.W, r.H, color)
	b := o.Border()
	if bc := ModulateAlpha(skin.borderColor, opacity); b != (SideLengths{}) {
		dl.AddRectOutline(r.X, r.Y, r.W, r.H, bc, maxf(b.Top, 1))
	}
}

// drawImage emits one named themed image into the given screen rectangle,
// or a flat quad for images without an atlas region.
func (c *Control) drawImage(dl *DrawList, id string, dst Rect, opacity float32) {
	img, ok := c.overlay(c.state).Image(id)
	if !ok {
		img, ok = c.overlay(StateNormal).Image(id)
	}
	if !ok || dst.IsEmpty() {
		return
	}
	color := ModulateAlpha(img.color, opacity)
	if color>>24 == 0 {
		return
	}
	t := c.theme()
	if t != nil && t.texture != 0 && !img.region.IsEmpty() {
		u0, v0, u1, v1 := t.UV(img.region)
		dl.AddTexturedRect(dst, t.texture, u0, v0, u1, v1, color)
		return
	}
	dl.AddRect(dst.X, dst.Y, dst.W, dst.H, color)
}
