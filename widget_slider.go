package forms

import "fmt"

const (
	sliderDefaultW = 150
	sliderGrabW    = 12
	sliderGrabH    = 18
)

// Slider is a horizontal value control. Pressing anywhere on it jumps the
// value to the pointer and starts a drag; left and right arrow keys adjust
// by the step, or 1% of the range without one. Every stored-value change
// notifies EventValueChanged. The style's "track", "fill" and "grab" images
// provide the art.
type Slider struct {
	Button
	value float32
	min   float32
	max   float32
	step  float32

	valueVisible   bool
	valuePrecision int
	valueAlign     Alignment
}

// NewSlider creates a slider with a 0 to 100 range unless WithRange says
// otherwise.
func NewSlider(id string, opts ...Option) *Slider {
	s := &Slider{max: 100, valuePrecision: 2, valueAlign: AlignBottomCenter}
	o := s.initButton(s, id, opts)
	if r := GetOpt(o, OptRange); r.HasRange {
		if r.Min > r.Max {
			contractViolationf("slider %q range: min %g > max %g", id, r.Min, r.Max)
		} else {
			s.min, s.max = r.Min, r.Max
		}
	}
	s.step = maxf(GetOpt(o, OptStep), 0)
	s.value = s.snap(GetOpt(o, OptValue))
	return s
}

// Kind returns "slider".
func (s *Slider) Kind() string { return "slider" }

// Value returns the current value.
func (s *Slider) Value() float32 { return s.value }

// SetValue sets the value, clamped to the range and snapped to the step.
// EventValueChanged fires when the stored value changes.
func (s *Slider) SetValue(v float32) {
	v = s.snap(v)
	if v == s.value {
		return
	}
	s.value = v
	s.markDirty()
	s.NotifyListeners(EventValueChanged)
}

// Min returns the lower end of the range.
func (s *Slider) Min() float32 { return s.min }

// Max returns the upper end of the range.
func (s *Slider) Max() float32 { return s.max }

// SetRange replaces the value range. The current value is re-clamped, and
// EventValueChanged fires if that moves it.
func (s *Slider) SetRange(minVal, maxVal float32) {
	if minVal > maxVal {
		contractViolationf("slider %q range: min %g > max %g", s.id, minVal, maxVal)
		return
	}
	s.min, s.max = minVal, maxVal
	s.markDirty()
	s.SetValue(s.value)
}

// Step returns the value granularity, 0 for continuous.
func (s *Slider) Step() float32 { return s.step }

// SetStep sets the value granularity. The current value is re-snapped, and
// EventValueChanged fires if that moves it.
func (s *Slider) SetStep(step float32) {
	if step < 0 {
		contractViolationf("slider %q step: %g < 0", s.id, step)
		return
	}
	s.step = step
	s.SetValue(s.value)
}

// ValueTextVisible reports whether the numeric value is drawn.
func (s *Slider) ValueTextVisible() bool { return s.valueVisible }

// SetValueTextVisible toggles drawing the numeric value.
func (s *Slider) SetValueTextVisible(visible bool) {
	if s.valueVisible == visible {
		return
	}
	s.valueVisible = visible
	s.markDirty()
}

// SetValueTextPrecision sets the decimal places of the value text.
func (s *Slider) SetValueTextPrecision(digits int) {
	if digits < 0 {
		digits = 0
	}
	s.valuePrecision = digits
	s.markDirty()
}

// SetValueTextAlignment positions the value text within the viewport.
func (s *Slider) SetValueTextAlignment(a Alignment) {
	s.valueAlign = a
	s.markDirty()
}

func (s *Slider) TouchEvent(evt TouchEvent) bool {
	if s.state == StateDisabled {
		return false
	}
	switch evt.Kind {
	case TouchPress:
		if !s.hit(evt.Pos()) {
			return false
		}
		s.pressed = true
		s.pressContact = evt.Contact
		s.press()
		s.SetValue(s.valueAt(evt.X))
		return s.consumeInput
	case TouchMove:
		if !s.pressed || s.pressContact != evt.Contact {
			return false
		}
		s.SetValue(s.valueAt(evt.X))
		return s.consumeInput
	case TouchRelease:
		if !s.pressed || s.pressContact != evt.Contact {
			return false
		}
		s.pressed = false
		s.SetValue(s.valueAt(evt.X))
		s.release(s.hit(evt.Pos()))
		return s.consumeInput
	}
	return false
}

// KeyEvent adjusts the value with the left and right arrows; other keys
// fall through to the button handling.
func (s *Slider) KeyEvent(evt KeyEvent) bool {
	if s.state == StateDisabled {
		return false
	}
	if evt.Kind == KeyEventPress {
		switch evt.Key {
		case KeyLeft:
			s.SetValue(s.value - s.keyStep())
			return true
		case KeyRight:
			s.SetValue(s.value + s.keyStep())
			return true
		}
	}
	return s.Button.KeyEvent(evt)
}

// keyStep is the arrow-key increment: the configured step, else 1% of the
// range.
func (s *Slider) keyStep() float32 {
	if s.step > 0 {
		return s.step
	}
	return (s.max - s.min) / 100
}

// snap clamps v into the range, rounded to the nearest step multiple.
func (s *Slider) snap(v float32) float32 {
	if s.step > 0 {
		v = s.min + float32(int((v-s.min)/s.step+0.5))*s.step
	}
	return clampf(v, s.min, s.max)
}

// trackArea returns the horizontal band holding track and grab, vertically
// centered in the viewport.
func (s *Slider) trackArea() Rect {
	area := s.viewportBounds
	h := minf(sliderGrabH, area.H)
	return Rect{X: area.X, Y: area.Y + (area.H-h)/2, W: area.W, H: h}
}

// valueAt converts a screen X position to a value on the track.
func (s *Slider) valueAt(x float32) float32 {
	track := s.trackArea()
	usable := track.W - sliderGrabW
	if usable <= 0 {
		return s.min
	}
	ratio := clampf((x-track.X-sliderGrabW/2)/usable, 0, 1)
	return s.snap(s.min + ratio*(s.max-s.min))
}

func (s *Slider) measure() Vec2 {
	size := s.textSize(s.text, false)
	if s.valueVisible {
		v := s.textSize(s.valueText(), false)
		size.Y += v.Y
		size.X = maxf(size.X, v.X)
	}
	size.Y += sliderGrabH
	size.X = maxf(size.X, sliderDefaultW)
	return size
}

func (s *Slider) draw(dl *DrawList, opacity float32) {
	s.drawSkin(dl, opacity)
	area := s.viewportBounds
	clip := s.viewportClipBounds
	if area.IsEmpty() || clip.IsEmpty() {
		return
	}
	track := s.trackArea()
	ratio := float32(0)
	if s.max > s.min {
		ratio = (s.value - s.min) / (s.max - s.min)
	}
	thickness := maxf(4, track.H/2)
	band := Rect{X: track.X, Y: track.Y + (track.H-thickness)/2, W: track.W, H: thickness}

	dl.PushClipRect(clip)
	s.drawImage(dl, "track", band, opacity)
	if fillW := ratio * band.W; fillW > 0 {
		s.drawImage(dl, "fill", Rect{X: band.X, Y: band.Y, W: fillW, H: band.H}, opacity)
	}
	grabX := track.X + ratio*(track.W-sliderGrabW)
	s.drawImage(dl, "grab", Rect{X: grabX, Y: track.Y, W: sliderGrabW, H: track.H}, opacity)
	dl.PopClipRect()

	s.drawText(dl, s.text, false, opacity)
	if s.valueVisible {
		s.drawAlignedText(dl, area, clip, s.valueText(), false, s.valueAlign, opacity)
	}
}

func (s *Slider) valueText() string {
	return fmt.Sprintf("%.*f", s.valuePrecision, s.value)
}
