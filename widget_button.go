package forms

// Button is a clickable control. A press inside the button fires EventPress
// and switches it to the ACTIVE state; the matching release fires
// EventRelease, and EventClick on top of it when the pointer comes back up
// inside the button's bounds. Buttons are focusable by default.
type Button struct {
	Label
}

// NewButton creates a button.
func NewButton(id string, opts ...Option) *Button {
	b := &Button{}
	b.initButton(b, id, opts)
	return b
}

// initButton wires the base control and label for widget kinds built on
// Button, and returns the parsed options for their own keys.
func (b *Button) initButton(self Widget, id string, opts []Option) options {
	b.initControl(self, id)
	b.focusable = true
	b.autoWidth = true
	b.autoHeight = true
	o := applyControlOptions(self, opts)
	b.text = GetOpt(o, OptText)
	b.wrap = GetOpt(o, OptTextWrap)
	return o
}

// Kind returns "button".
func (b *Button) Kind() string { return "button" }

func (b *Button) TouchEvent(evt TouchEvent) bool {
	if b.state == StateDisabled {
		return false
	}
	switch evt.Kind {
	case TouchPress:
		if !b.hit(evt.Pos()) {
			return false
		}
		b.pressed = true
		b.pressContact = evt.Contact
		b.press()
		return b.consumeInput
	case TouchRelease:
		if !b.pressed || b.pressContact != evt.Contact {
			return false
		}
		b.pressed = false
		b.release(b.hit(evt.Pos()))
		return b.consumeInput
	case TouchMove:
		return b.pressed && b.pressContact == evt.Contact && b.consumeInput
	}
	return false
}

// KeyEvent activates the button with Enter or Space while it has focus.
// The release half of the key stroke completes the click.
func (b *Button) KeyEvent(evt KeyEvent) bool {
	if b.state == StateDisabled {
		return false
	}
	if evt.Key != KeyEnter && evt.Key != KeySpace {
		return false
	}
	switch evt.Kind {
	case KeyEventPress:
		if b.state != StateActive {
			b.press()
		}
		return true
	case KeyEventRelease:
		if b.state != StateActive {
			return false
		}
		b.release(true)
		return true
	}
	return false
}

// press enters the ACTIVE state, remembering the state to return to.
func (b *Button) press() {
	if b.state != StateActive {
		b.restoreState = b.state
		b.SetState(StateActive)
	}
	b.NotifyListeners(EventPress)
}

// release leaves the ACTIVE state. clicked reports whether the release
// landed inside the button, completing a full click.
func (b *Button) release(clicked bool) {
	if b.state == StateActive {
		b.SetState(b.releaseTarget())
	}
	b.NotifyListeners(EventRelease)
	if clicked {
		b.NotifyListeners(EventClick)
	}
}

// releaseTarget picks the state a button returns to after ACTIVE: FOCUS
// while the form still considers it focused, NORMAL otherwise. Without a
// form the state held before the press is restored.
func (b *Button) releaseTarget() State {
	if f := b.form(); f != nil {
		if f.Focused() == b.self {
			return StateFocus
		}
		return StateNormal
	}
	if b.restoreState == StateFocus {
		return StateFocus
	}
	return StateNormal
}
