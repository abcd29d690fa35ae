package forms

import "math"

// radioSegments is the tessellation count for the flat-theme circle art.
const radioSegments = 24

// RadioButton is a button belonging to a named group in which at most one
// button is selected. A full click selects it and deselects whichever group
// member held the selection; both sides notify EventValueChanged. Clicking
// the selected button again changes nothing.
type RadioButton struct {
	Button
	groupID  string
	selected bool
	iconSize float32
}

// NewRadioButton creates a radio button.
func NewRadioButton(id string, opts ...Option) *RadioButton {
	rb := &RadioButton{}
	o := rb.initButton(rb, id, opts)
	rb.groupID = GetOpt(o, OptGroup)
	rb.selected = GetOpt(o, OptChecked)
	return rb
}

// Kind returns "radiobutton".
func (rb *RadioButton) Kind() string { return "radiobutton" }

// Group returns the button's group id.
func (rb *RadioButton) Group() string { return rb.groupID }

// SetGroup moves the button to another group. The selected flag is kept,
// so the caller resolves any double selection this creates.
func (rb *RadioButton) SetGroup(group string) { rb.groupID = group }

// Selected reports whether this button holds its group's selection.
func (rb *RadioButton) Selected() bool { return rb.selected }

// Select makes this button its group's selection, deselecting the group
// member that held it. Already-selected buttons are left alone.
func (rb *RadioButton) Select() {
	if rb.selected {
		return
	}
	rb.clearGroup()
	rb.selected = true
	rb.markDirty()
	rb.NotifyListeners(EventValueChanged)
}

// SetSelected selects through Select, or deselects leaving the group with
// no selection.
func (rb *RadioButton) SetSelected(selected bool) {
	if selected {
		rb.Select()
		return
	}
	if !rb.selected {
		return
	}
	rb.selected = false
	rb.markDirty()
	rb.NotifyListeners(EventValueChanged)
}

// IconSize returns the circle diameter, or 0 when it tracks the text line
// height.
func (rb *RadioButton) IconSize() float32 { return rb.iconSize }

// SetIconSize overrides the circle diameter. Zero returns to tracking the
// text line height.
func (rb *RadioButton) SetIconSize(side float32) {
	rb.iconSize = maxf(side, 0)
	rb.markDirty()
}

// clearGroup deselects the group's current selection, walking the whole
// tree this button is mounted in.
func (rb *RadioButton) clearGroup() {
	if rb.groupID == "" {
		return
	}
	var root *Container
	for p := rb.parent; p != nil; p = p.parent {
		root = p
	}
	if root == nil {
		return
	}
	clearRadioGroup(root, rb.groupID, rb)
}

func clearRadioGroup(ct *Container, groupID string, except *RadioButton) {
	for _, w := range ct.children {
		if sub := w.container(); sub != nil {
			clearRadioGroup(sub, groupID, except)
			continue
		}
		other, ok := w.(*RadioButton)
		if !ok || other == except || other.groupID != groupID || !other.selected {
			continue
		}
		other.selected = false
		other.markDirty()
		other.NotifyListeners(EventValueChanged)
	}
}

func (rb *RadioButton) TouchEvent(evt TouchEvent) bool {
	wasPressed := rb.pressed
	consumed := rb.Button.TouchEvent(evt)
	if evt.Kind == TouchRelease && wasPressed && !rb.pressed &&
		rb.pressContact == evt.Contact && rb.hit(evt.Pos()) {
		rb.Select()
	}
	return consumed
}

func (rb *RadioButton) KeyEvent(evt KeyEvent) bool {
	wasActive := rb.state == StateActive
	consumed := rb.Button.KeyEvent(evt)
	if consumed && evt.Kind == KeyEventRelease && wasActive {
		rb.Select()
	}
	return consumed
}

func (rb *RadioButton) measure() Vec2 {
	size := rb.textSize(rb.text, false)
	side := rb.iconSide()
	size.X += side + SpaceSM
	size.Y = maxf(size.Y, side)
	return size
}

func (rb *RadioButton) draw(dl *DrawList, opacity float32) {
	rb.drawSkin(dl, opacity)
	area := rb.viewportBounds
	clip := rb.viewportClipBounds
	if area.IsEmpty() || clip.IsEmpty() {
		return
	}
	side := minf(rb.iconSide(), area.H)
	box := Rect{X: area.X, Y: area.Y + (area.H-side)/2, W: side, H: side}
	dl.PushClipRect(clip)
	rb.drawIcon(dl, box, opacity)
	dl.PopClipRect()
	indent := side + SpaceSM
	textArea := Rect{X: area.X + indent, Y: area.Y, W: area.W - indent, H: area.H}
	if textArea.W > 0 {
		rb.drawTextArea(dl, textArea, clip.Intersect(textArea), rb.text, false, opacity)
	}
}

// drawIcon draws the ring, and the selection dot inside it while selected.
// Textured themes draw the "mark" image over the full box instead of the
// flat dot.
func (rb *RadioButton) drawIcon(dl *DrawList, box Rect, opacity float32) {
	center := Vec2{X: box.X + box.W/2, Y: box.Y + box.H/2}
	radius := box.W / 2
	o := rb.overlay(rb.state)
	if skin := o.Skin(); skin != nil {
		if bc := ModulateAlpha(skin.BorderColor(), opacity); bc>>24 != 0 && radius > 0 {
			dl.AddPolygonFilled(circlePoints(center, radius, radioSegments), bc)
			if radius > 1.5 {
				dl.AddPolygonFilled(circlePoints(center, radius-1.5, radioSegments), ModulateAlpha(skin.Color(), opacity))
			}
		}
	}
	if !rb.selected {
		return
	}
	img, ok := o.Image("mark")
	if !ok {
		img, ok = rb.overlay(StateNormal).Image("mark")
	}
	if !ok {
		return
	}
	if t := rb.theme(); t != nil && t.texture != 0 && !img.Region().IsEmpty() {
		rb.drawImage(dl, "mark", box, opacity)
		return
	}
	color := ModulateAlpha(img.Color(), opacity)
	if color>>24 != 0 {
		dl.AddPolygonFilled(circlePoints(center, radius*0.45, radioSegments), color)
	}
}

// iconSide returns the circle diameter, deriving it from the font line
// height unless overridden.
func (rb *RadioButton) iconSide() float32 {
	if rb.iconSize > 0 {
		return rb.iconSize
	}
	f := rb.Font()
	if f == nil {
		return 12
	}
	return f.LineHeight(textScale(f, rb.FontSize()))
}

// circlePoints tessellates a circle outline for AddPolygonFilled.
func circlePoints(center Vec2, radius float32, segments int) []Vec2 {
	pts := make([]Vec2, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Vec2{
			X: center.X + radius*float32(math.Cos(a)),
			Y: center.Y + radius*float32(math.Sin(a)),
		}
	}
	return pts
}
