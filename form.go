package forms

import "fmt"

// Renderer consumes finalized draw lists. Backends implement it over a real
// graphics API; tests implement it with a capturing mock.
type Renderer interface {
	// Render draws one finalized list.
	Render(dl *DrawList) error

	// FontTextureID returns the texture holding the backend's default font
	// atlas, or 0 when the backend ships none.
	FontTextureID() uint32

	// Resize notifies the backend of a display size change.
	Resize(width, height int)
}

// focusSink is implemented by widgets holding transient state tied to focus
// (TextBox editing). The form notifies the holder before moving focus away.
type focusSink interface {
	loseFocus()
}

// NavDirection is a keyboard focus movement direction.
type NavDirection uint8

const (
	NavUp NavDirection = iota
	NavDown
	NavLeft
	NavRight
)

// String returns a human-readable name for the navigation direction.
func (d NavDirection) String() string {
	switch d {
	case NavUp:
		return "Up"
	case NavDown:
		return "Down"
	case NavLeft:
		return "Left"
	case NavRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction (Up<->Down, Left<->Right).
func (d NavDirection) Opposite() NavDirection {
	switch d {
	case NavUp:
		return NavDown
	case NavDown:
		return NavUp
	case NavLeft:
		return NavRight
	case NavRight:
		return NavLeft
	default:
		return d
	}
}

// IsVertical reports true for Up/Down directions.
func (d NavDirection) IsVertical() bool { return d == NavUp || d == NavDown }

// IsHorizontal reports true for Left/Right directions.
func (d NavDirection) IsHorizontal() bool { return d == NavLeft || d == NavRight }

// Form is the root of a control tree. It binds the tree to a theme, a font
// provider and optionally a renderer, runs the per-frame update pass, routes
// input and owns keyboard focus.
//
// The frame cycle is Update, input delivery, then Draw or Render:
//
//	form.Update(dt)
//	form.TouchEvent(evt) // any number of events
//	if err := form.Render(); err != nil { ... }
//
// Forms are single-threaded; drive one form from one goroutine.
type Form struct {
	Container

	themeRes *Theme
	fonts    FontProvider
	renderer Renderer

	focus     Widget
	pressedBy map[int]Widget
	actions   actionRegistry

	pointer     Vec2
	pointerSeen bool

	clock float32
}

// FormOption configures a form during construction.
type FormOption func(*Form)

// WithTheme sets the form's theme. Defaults to DefaultTheme().
func WithTheme(t *Theme) FormOption {
	return func(f *Form) { f.themeRes = t }
}

// WithFontProvider sets the fallback font source for overlays that name no
// font. Defaults to a provider holding the built-in BasicFont.
func WithFontProvider(p FontProvider) FormOption {
	return func(f *Form) { f.fonts = p }
}

// WithRenderer sets the renderer Render() submits frames to. Forms without
// one still update, route input and Draw into caller-owned lists.
func WithRenderer(r Renderer) FormOption {
	return func(f *Form) { f.renderer = r }
}

// NewForm creates a root container of the given size at the origin, with an
// absolute layout. Reposition it with SetPosition to overlay part of the
// display.
func NewForm(id string, width, height float32, opts ...FormOption) *Form {
	f := &Form{pressedBy: make(map[int]Widget)}
	f.layout = NewAbsoluteLayout()
	f.initControl(f, id)
	f.bounds = Rect{W: maxf(width, 0), H: maxf(height, 0)}
	for _, opt := range opts {
		opt(f)
	}
	if f.themeRes == nil {
		f.themeRes = DefaultTheme()
	}
	if f.fonts == nil {
		f.fonts = NewStaticFontProvider("default", NewBasicFont())
	}
	return f
}

// Kind returns "form".
func (f *Form) Kind() string { return "form" }

// Theme returns the form's theme.
func (f *Form) Theme() *Theme { return f.themeRes }

// SetTheme swaps the form's theme. Controls sharing their old theme style
// rebind on the next update; private style copies survive the swap.
func (f *Form) SetTheme(t *Theme) {
	if t == nil {
		contractViolationf("SetTheme(nil) on form %q", f.id)
		return
	}
	f.themeRes = t
	unbindShared(f.self)
	f.markDirty()
}

// unbindShared drops shared style references across a subtree so bindTree
// resolves them against the new theme.
func unbindShared(w Widget) {
	c := w.control()
	if c.style.owned == nil {
		c.style = styleRef{}
	}
	if sub := w.container(); sub != nil {
		for _, child := range sub.children {
			unbindShared(child)
		}
	}
}

// FontProvider returns the form's font provider.
func (f *Form) FontProvider() FontProvider { return f.fonts }

// SetFontProvider swaps the fallback font source.
func (f *Form) SetFontProvider(p FontProvider) {
	f.fonts = p
	f.markDirty()
}

// Renderer returns the renderer Render() submits to, or nil.
func (f *Form) Renderer() Renderer { return f.renderer }

// SetRenderer swaps the renderer.
func (f *Form) SetRenderer(r Renderer) { f.renderer = r }

// Clock returns the form's accumulated time in seconds. It advances by the
// elapsed argument of each Update call and paces the text caret blink.
func (f *Form) Clock() float32 { return f.clock }

// Update advances the form by elapsed seconds and resolves geometry for the
// frame: newly added controls bind their theme styles, then a single
// top-down pass re-lays-out and re-clips the tree. The pass is skipped
// entirely when nothing is dirty. Call once per frame before delivering
// input or drawing.
func (f *Form) Update(elapsed float32) {
	NextFrame()
	f.clock += elapsed
	f.bindTree(f.themeRes)
	if !f.needsUpdate() {
		return
	}
	f.updateTree(Rect{}, f.bounds)
	if formsVerbose() {
		formsLogger.Debug("form updated", "form", f.id, "w", f.bounds.W, "h", f.bounds.H)
	}
}

// Draw assembles the form's frame into the caller's draw list: the tree in
// z order under its clip rectangles, then the themed cursor. The list is
// not finalized; callers submitting it themselves must call Finalize.
func (f *Form) Draw(dl *DrawList) {
	if !f.visible {
		return
	}
	clip := f.absoluteClipBounds
	if !clip.IsEmpty() {
		dl.PushClipRect(clip)
		f.draw(dl, f.opacity)
		dl.PopClipRect()
	}
	f.drawCursor(dl)
}

// drawCursor draws the themed cursor image at the last seen pointer
// position. Untextured themes and overlays without a cursor region draw
// nothing; the platform cursor is assumed visible then.
func (f *Form) drawCursor(dl *DrawList) {
	if !f.pointerSeen {
		return
	}
	o := f.overlay(f.state)
	region := o.CursorRegion()
	t := f.themeRes
	if t == nil || t.texture == 0 || region.IsEmpty() {
		return
	}
	color := ModulateAlpha(o.CursorColor(), f.opacity)
	if color>>24 == 0 {
		return
	}
	u0, v0, u1, v1 := t.UV(region)
	dst := Rect{X: f.pointer.X, Y: f.pointer.Y, W: region.W, H: region.H}
	dl.AddTexturedRect(dst, t.texture, u0, v0, u1, v1, color)
}

// Render assembles one frame into a pooled draw list and submits it through
// the configured renderer.
func (f *Form) Render() error {
	if f.renderer == nil {
		return fmt.Errorf("form %q has no renderer", f.id)
	}
	dl := AcquireDrawList()
	f.Draw(dl)
	dl.Finalize()
	err := f.renderer.Render(dl)
	ReleaseDrawList(dl)
	if err != nil {
		return fmt.Errorf("render form %q: %w", f.id, err)
	}
	return nil
}

// Resize propagates a display size change to the renderer. The form's own
// bounds are independent of the display; resize those with SetSize.
func (f *Form) Resize(width, height int) {
	if f.renderer != nil {
		f.renderer.Resize(width, height)
	}
}

// TouchEvent routes one pointer event into the tree and reports whether the
// UI consumed it. Presses hit-test front to back; the consuming widget owns
// the contact until its release, so moves and the release reach it even
// after the pointer leaves its bounds. A press on a focusable widget moves
// focus there; a press anywhere else clears focus.
//
// Deliver events after Update has run for the frame, so hit testing sees
// current geometry.
func (f *Form) TouchEvent(evt TouchEvent) bool {
	f.pointer = evt.Pos()
	f.pointerSeen = true
	if !f.visible || f.state == StateDisabled {
		return false
	}
	switch evt.Kind {
	case TouchPress:
		w := f.routeTouch(evt)
		if w == nil {
			f.ClearFocus()
			return false
		}
		f.pressedBy[evt.Contact] = w
		if w.control().focusable {
			f.SetFocus(w)
		} else if f.focus != nil && w != f.focus {
			f.ClearFocus()
		}
		if formsVerbose() {
			formsLogger.Debug("press routed", "form", f.id, "to", w.control().id, "contact", evt.Contact)
		}
		return true
	case TouchMove:
		w, ok := f.pressedBy[evt.Contact]
		if !ok {
			return false
		}
		return w.TouchEvent(evt)
	case TouchRelease:
		w, ok := f.pressedBy[evt.Contact]
		if !ok {
			return false
		}
		delete(f.pressedBy, evt.Contact)
		return w.TouchEvent(evt)
	}
	return false
}

// KeyEvent routes one keyboard event: the focused widget sees it first,
// then registered actions, and remaining presses fall through to focus
// movement. Arrows move focus to the spatially nearest focusable; Tab
// cycles in tree order, Shift+Tab in reverse. Reports whether the event
// was consumed.
func (f *Form) KeyEvent(evt KeyEvent) bool {
	if !f.visible || f.state == StateDisabled {
		return false
	}
	if f.focus != nil && f.focus.KeyEvent(evt) {
		return true
	}
	if evt.Kind != KeyEventPress {
		return false
	}
	if f.actions.handle(evt) {
		return true
	}
	switch evt.Key {
	case KeyUp:
		return f.Navigate(NavUp)
	case KeyDown:
		return f.Navigate(NavDown)
	case KeyLeft:
		return f.Navigate(NavLeft)
	case KeyRight:
		return f.Navigate(NavRight)
	case KeyTab:
		return f.cycleFocus(evt.Mods&ModShift == 0)
	}
	return false
}

// CharEvent routes one typed character to the focused widget and reports
// whether it was consumed. Backends call this from their character
// callbacks; key press/release events flow through KeyEvent.
func (f *Form) CharEvent(r rune) bool {
	return f.KeyEvent(KeyEvent{Kind: KeyEventChar, Char: r})
}

// Focused returns the widget holding keyboard focus, or nil.
func (f *Form) Focused() Widget { return f.focus }

// SetFocus grants keyboard focus to a widget in this form's tree. Only a
// focusable, enabled widget takes focus; the previous holder drops any
// transient editing state and returns from FOCUS to NORMAL. A widget mid
// press stays ACTIVE and restores to FOCUS on its release. Reports whether
// the widget holds focus afterwards.
func (f *Form) SetFocus(w Widget) bool {
	if w == nil {
		f.ClearFocus()
		return false
	}
	c := w.control()
	if !c.focusable || c.state == StateDisabled {
		return false
	}
	if f.focus == w {
		return true
	}
	prev := f.focus
	f.focus = w
	dropFocus(prev)
	if c.state == StateNormal {
		c.SetState(StateFocus)
	}
	if formsVerbose() {
		formsLogger.Debug("focus moved", "form", f.id, "to", c.id)
	}
	return true
}

// ClearFocus releases keyboard focus from whichever widget holds it.
func (f *Form) ClearFocus() {
	prev := f.focus
	f.focus = nil
	dropFocus(prev)
}

// dropFocus notifies a previous focus holder and restores its state. Runs
// after the form's focus field has moved on, so widgets consulting
// Focused() during loseFocus see the new owner.
func dropFocus(prev Widget) {
	if prev == nil {
		return
	}
	if sink, ok := prev.(focusSink); ok {
		sink.loseFocus()
	}
	if c := prev.control(); c.state == StateFocus {
		c.SetState(StateNormal)
	}
}

// controlRemoved severs form-held references into a detached subtree:
// keyboard focus and any in-flight contact ownership.
func (f *Form) controlRemoved(w Widget) {
	if f.focus != nil && inSubtree(w, f.focus) {
		f.ClearFocus()
	}
	for contact, pressed := range f.pressedBy {
		if inSubtree(w, pressed) {
			delete(f.pressedBy, contact)
		}
	}
}

// inSubtree reports whether inner is root itself or a descendant of it.
func inSubtree(root, inner Widget) bool {
	if root == inner {
		return true
	}
	sub := root.container()
	if sub == nil {
		return false
	}
	for p := inner.control().parent; p != nil; p = p.controlBase.parent {
		if p == sub {
			return true
		}
	}
	return false
}

// Navigate moves focus to the nearest focusable widget in the given
// direction, measured between absolute origins with the cross axis
// penalized double. With no current focus the first focusable in tree order
// takes it. Reports whether focus moved.
func (f *Form) Navigate(dir NavDirection) bool {
	candidates := f.focusables()
	if len(candidates) == 0 {
		return false
	}
	if f.focus == nil {
		return f.SetFocus(candidates[0])
	}
	from := f.focus.control().absoluteBounds
	var best Widget
	bestDist := float32(1e9)
	for _, w := range candidates {
		if w == f.focus {
			continue
		}
		r := w.control().absoluteBounds
		var primary, cross float32
		switch dir {
		case NavUp:
			primary, cross = from.Y-r.Y, absf(r.X-from.X)
		case NavDown:
			primary, cross = r.Y-from.Y, absf(r.X-from.X)
		case NavLeft:
			primary, cross = from.X-r.X, absf(r.Y-from.Y)
		case NavRight:
			primary, cross = r.X-from.X, absf(r.Y-from.Y)
		}
		if primary <= 0 {
			continue
		}
		if dist := primary + cross*2; dist < bestDist {
			bestDist = dist
			best = w
		}
	}
	if best == nil {
		return false
	}
	return f.SetFocus(best)
}

// cycleFocus moves focus through the focusable widgets in tree order,
// wrapping at the ends.
func (f *Form) cycleFocus(forward bool) bool {
	candidates := f.focusables()
	if len(candidates) == 0 {
		return false
	}
	idx := -1
	for i, w := range candidates {
		if w == f.focus {
			idx = i
			break
		}
	}
	n := len(candidates)
	switch {
	case idx < 0 && forward:
		return f.SetFocus(candidates[0])
	case idx < 0:
		return f.SetFocus(candidates[n-1])
	case forward:
		return f.SetFocus(candidates[(idx+1)%n])
	default:
		return f.SetFocus(candidates[(idx+n-1)%n])
	}
}

// focusables collects the form's visible, enabled, focusable widgets in
// tree order. Hidden or disabled containers exclude their whole subtree.
func (f *Form) focusables() []Widget {
	var out []Widget
	collectFocusables(&f.Container, &out)
	return out
}

func collectFocusables(ct *Container, out *[]Widget) {
	if !ct.visible || ct.state == StateDisabled {
		return
	}
	for _, w := range ct.children {
		c := w.control()
		if !c.visible || c.state == StateDisabled {
			continue
		}
		if c.focusable {
			*out = append(*out, w)
		}
		if sub := w.container(); sub != nil {
			collectFocusables(sub, out)
		}
	}
}
