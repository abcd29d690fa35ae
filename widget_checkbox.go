package forms

// CheckBox is a button that flips a checked flag on every full click. The
// box outline uses the skin's border color; while checked, the style's
// "mark" image fills the box. EventValueChanged fires on every flip,
// whether from input or SetChecked.
type CheckBox struct {
	Button
	checked  bool
	iconSize float32
}

// NewCheckBox creates a check box.
func NewCheckBox(id string, opts ...Option) *CheckBox {
	cb := &CheckBox{}
	o := cb.initButton(cb, id, opts)
	cb.checked = GetOpt(o, OptChecked)
	return cb
}

// Kind returns "checkbox".
func (cb *CheckBox) Kind() string { return "checkbox" }

// Checked reports whether the box is checked.
func (cb *CheckBox) Checked() bool { return cb.checked }

// SetChecked sets the checked flag, notifying EventValueChanged listeners
// on a change.
func (cb *CheckBox) SetChecked(checked bool) {
	if cb.checked == checked {
		return
	}
	cb.checked = checked
	cb.markDirty()
	cb.NotifyListeners(EventValueChanged)
}

// IconSize returns the box side length, or 0 when it tracks the text line
// height.
func (cb *CheckBox) IconSize() float32 { return cb.iconSize }

// SetIconSize overrides the box side length. Zero returns to tracking the
// text line height.
func (cb *CheckBox) SetIconSize(side float32) {
	cb.iconSize = maxf(side, 0)
	cb.markDirty()
}

func (cb *CheckBox) TouchEvent(evt TouchEvent) bool {
	wasPressed := cb.pressed
	consumed := cb.Button.TouchEvent(evt)
	if evt.Kind == TouchRelease && wasPressed && !cb.pressed &&
		cb.pressContact == evt.Contact && cb.hit(evt.Pos()) {
		cb.SetChecked(!cb.checked)
	}
	return consumed
}

func (cb *CheckBox) KeyEvent(evt KeyEvent) bool {
	wasActive := cb.state == StateActive
	consumed := cb.Button.KeyEvent(evt)
	if consumed && evt.Kind == KeyEventRelease && wasActive {
		cb.SetChecked(!cb.checked)
	}
	return consumed
}

func (cb *CheckBox) measure() Vec2 {
	size := cb.textSize(cb.text, false)
	side := cb.iconSide()
	size.X += side + SpaceSM
	size.Y = maxf(size.Y, side)
	return size
}

func (cb *CheckBox) draw(dl *DrawList, opacity float32) {
	cb.drawSkin(dl, opacity)
	area := cb.viewportBounds
	clip := cb.viewportClipBounds
	if area.IsEmpty() || clip.IsEmpty() {
		return
	}
	side := minf(cb.iconSide(), area.H)
	box := Rect{X: area.X, Y: area.Y + (area.H-side)/2, W: side, H: side}
	dl.PushClipRect(clip)
	cb.drawIcon(dl, box, opacity)
	dl.PopClipRect()
	indent := side + SpaceSM
	textArea := Rect{X: area.X + indent, Y: area.Y, W: area.W - indent, H: area.H}
	if textArea.W > 0 {
		cb.drawTextArea(dl, textArea, clip.Intersect(textArea), cb.text, false, opacity)
	}
}

// drawIcon draws the box outline, and the mark inside it while checked.
func (cb *CheckBox) drawIcon(dl *DrawList, box Rect, opacity float32) {
	if skin := cb.overlay(cb.state).Skin(); skin != nil {
		if bc := ModulateAlpha(skin.BorderColor(), opacity); bc>>24 != 0 {
			dl.AddRectOutline(box.X, box.Y, box.W, box.H, bc, 1)
		}
	}
	if !cb.checked {
		return
	}
	inset := maxf(2, box.W/5)
	mark := Rect{X: box.X + inset, Y: box.Y + inset, W: box.W - 2*inset, H: box.H - 2*inset}
	cb.drawImage(dl, "mark", mark, opacity)
}

// iconSide returns the box side length, deriving it from the font line
// height unless overridden.
func (cb *CheckBox) iconSide() float32 {
	if cb.iconSize > 0 {
		return cb.iconSize
	}
	f := cb.Font()
	if f == nil {
		return 12
	}
	return f.LineHeight(textScale(f, cb.FontSize()))
}
