package forms

import "sort"

// controlBase aliases Control so Container can embed it without the field
// name colliding with the Control(id) lookup method.
type controlBase = Control

// Container is a control that owns an ordered list of child controls and
// delegates their placement to a layout. Children draw inside the
// container's viewport and are clipped to it.
type Container struct {
	controlBase

	children  []Widget
	drawOrder []Widget
	sortStale bool
	layout    Layout
}

// NewContainer creates an empty container. The layout defaults to absolute;
// pass WithLayout to pick another strategy.
func NewContainer(id string, opts ...Option) *Container {
	ct := &Container{layout: NewAbsoluteLayout()}
	ct.initControl(ct, id)
	o := applyControlOptions(ct, opts)
	if HasOpt(o, OptLayout) {
		ct.layout = NewLayout(GetOpt(o, OptLayout))
	}
	return ct
}

func (ct *Container) container() *Container { return ct }

// Kind returns "container".
func (ct *Container) Kind() string { return "container" }

// IsContainer reports true.
func (ct *Container) IsContainer() bool { return true }

// Layout returns the container's active layout.
func (ct *Container) Layout() Layout { return ct.layout }

// SetLayout swaps the placement strategy. Children keep their desired
// bounds; the next update pass re-places them under the new layout.
func (ct *Container) SetLayout(l Layout) {
	if l == nil {
		contractViolationf("SetLayout(nil) on %q", ct.id)
		return
	}
	ct.layout = l
	ct.markDirty()
}

// AddControl appends a child. Adding a nil widget or one that already has
// a parent is a contract violation.
func (ct *Container) AddControl(w Widget) {
	ct.InsertControl(w, len(ct.children))
}

// InsertControl inserts a child at an index, clamped to the child list.
func (ct *Container) InsertControl(w Widget, index int) {
	if w == nil {
		contractViolationf("InsertControl(nil) on %q", ct.id)
		return
	}
	c := w.control()
	if c.parent != nil {
		contractViolationf("control %q already has a parent", c.id)
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(ct.children) {
		index = len(ct.children)
	}
	ct.children = append(ct.children, nil)
	copy(ct.children[index+1:], ct.children[index:])
	ct.children[index] = w
	c.parent = ct
	c.markDirty()
	ct.sortStale = true
	ct.markDirty()
}

// RemoveControl detaches a child, matched by identity. Reports whether the
// widget was a child of this container.
func (ct *Container) RemoveControl(w Widget) bool {
	if w == nil {
		return false
	}
	for i, child := range ct.children {
		if child == w {
			ct.children = append(ct.children[:i:i], ct.children[i+1:]...)
			w.control().parent = nil
			ct.sortStale = true
			ct.markDirty()
			if f := ct.form(); f != nil {
				f.controlRemoved(w)
			}
			return true
		}
	}
	return false
}

// Controls returns the container's direct children in insertion order.
// The slice is the container's own; treat it as read-only.
func (ct *Container) Controls() []Widget { return ct.children }

// FindControl searches the subtree for a control by ID, depth first in
// insertion order. Returns nil when no control carries the ID.
func (ct *Container) FindControl(id string) Widget {
	for _, child := range ct.children {
		if child.control().ID() == id {
			return child
		}
		if sub := child.container(); sub != nil {
			if found := sub.FindControl(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// ControlAt returns the child at an index, or nil when out of range.
func (ct *Container) ControlAt(index int) Widget {
	if index < 0 || index >= len(ct.children) {
		return nil
	}
	return ct.children[index]
}

// Control finds a control by id, searching this container's subtree
// depth-first in insertion order. Returns nil when no control matches.
func (ct *Container) Control(id string) Widget {
	for _, w := range ct.children {
		if w.control().id == id {
			return w
		}
		if sub := w.container(); sub != nil {
			if found := sub.Control(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// sorted returns the children ordered for drawing: ascending z-index,
// insertion order among equals. Hit testing walks this in reverse.
func (ct *Container) sorted() []Widget {
	if ct.sortStale || len(ct.drawOrder) != len(ct.children) {
		ct.drawOrder = append(ct.drawOrder[:0], ct.children...)
		sort.SliceStable(ct.drawOrder, func(i, j int) bool {
			return ct.drawOrder[i].control().zIndex < ct.drawOrder[j].control().zIndex
		})
		ct.sortStale = false
	}
	return ct.drawOrder
}

// measure returns the content extent: the union of the children's laid-out
// bounds plus their trailing margins.
func (ct *Container) measure() Vec2 {
	ct.layout.update(ct)
	var ext Vec2
	for _, w := range ct.children {
		c := w.control()
		if !c.visible {
			continue
		}
		m := c.Margin(c.state)
		ext.X = maxf(ext.X, c.bounds.X+c.bounds.W+m.Right)
		ext.Y = maxf(ext.Y, c.bounds.Y+c.bounds.H+m.Bottom)
	}
	return ext
}

// bindTree attaches theme styles to every unthemed control in the subtree.
func (ct *Container) bindTree(t *Theme) {
	ct.bindStyle(t)
	for _, w := range ct.children {
		if sub := w.container(); sub != nil {
			sub.bindTree(t)
		} else {
			w.control().bindStyle(t)
		}
	}
}

// updateTree resolves this container's geometry, re-places its children
// through the layout and recurses. Runs once per frame from the form root
// when anything in the tree is dirty.
func (ct *Container) updateTree(parentViewport, parentClip Rect) {
	ct.applyAutoSize()
	ct.resolveGeometry(parentViewport, parentClip)
	ct.layout.update(ct)
	for _, w := range ct.children {
		if sub := w.container(); sub != nil {
			sub.updateTree(ct.viewportBounds, ct.viewportClipBounds)
			continue
		}
		c := w.control()
		c.applyAutoSize()
		c.resolveGeometry(ct.viewportBounds, ct.viewportClipBounds)
		c.dirty = false
	}
	ct.dirty = false
	ct.childDirty = false
}

// draw renders the container's skin, then its children in z order, each
// clipped to its own clip bounds.
func (ct *Container) draw(dl *DrawList, opacity float32) {
	ct.drawSkin(dl, opacity)
	for _, w := range ct.sorted() {
		drawChild(dl, w, opacity)
	}
}

// drawChild emits one child widget under its own clip rectangle.
func drawChild(dl *DrawList, w Widget, parentOpacity float32) {
	c := w.control()
	if !c.visible {
		return
	}
	clip := c.absoluteClipBounds
	if clip.IsEmpty() {
		return
	}
	dl.PushClipRect(clip)
	w.draw(dl, parentOpacity*c.opacity)
	dl.PopClipRect()
}

// routeTouch offers a press to the subtree, topmost child first, and
// returns the widget that consumed it, or nil. Children in front of their
// siblings see the event first; invisible and missed children pass.
func (ct *Container) routeTouch(evt TouchEvent) Widget {
	if ct.state == StateDisabled {
		return nil
	}
	order := ct.sorted()
	for i := len(order) - 1; i >= 0; i-- {
		w := order[i]
		c := w.control()
		if !c.visible || !c.hit(evt.Pos()) {
			continue
		}
		if sub := w.container(); sub != nil {
			if hit := sub.routeTouch(evt); hit != nil {
				return hit
			}
			continue
		}
		if w.TouchEvent(evt) {
			return w
		}
	}
	if ct.processTouch(evt) {
		return ct.self
	}
	return nil
}

// TouchEvent offers the event to the subtree, falling back to the
// container's own press handling when no child consumes it.
func (ct *Container) TouchEvent(evt TouchEvent) bool {
	if evt.Kind == TouchPress {
		return ct.routeTouch(evt) != nil
	}
	return ct.processTouch(evt)
}
