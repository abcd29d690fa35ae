package forms

// Option configures a widget at construction time.
//
// Options cover the common Control surface (bounds, style, alignment) plus
// widget-specific settings (text, range, group). Anything an Option can set
// can also be changed later through the corresponding setter.
type Option func(*options)

// options holds widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptBadgeCount = forms.NewOptKey("badgeCount", 0)
//
//	// Set options
//	myWidget := NewBadgeButton("inbox", forms.WithOpt(OptBadgeCount, 3))
//
//	// Read in widget implementation
//	count := forms.ApplyAndGet(opts, OptBadgeCount)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// applyControlOptions applies the built-in Control options to a freshly
// constructed widget and returns the parsed set so the constructor can read
// its widget-specific keys. Called after the widget has set its own defaults,
// so only explicitly set options override them.
func applyControlOptions(w Widget, opts []Option) options {
	o := applyOptions(opts)
	c := w.control()
	if HasOpt(o, OptStyleName) {
		c.styleName = GetOpt(o, OptStyleName)
	}
	if HasOpt(o, OptX) {
		c.SetX(GetOpt(o, OptX))
	}
	if HasOpt(o, OptY) {
		c.SetY(GetOpt(o, OptY))
	}
	if HasOpt(o, OptWidth) {
		c.SetWidth(GetOpt(o, OptWidth))
		c.SetAutoWidth(false)
	}
	if HasOpt(o, OptHeight) {
		c.SetHeight(GetOpt(o, OptHeight))
		c.SetAutoHeight(false)
	}
	if GetOpt(o, OptAutoSize) {
		c.SetAutoWidth(true)
		c.SetAutoHeight(true)
	}
	if HasOpt(o, OptAlignment) {
		c.SetAlignment(GetOpt(o, OptAlignment))
	}
	if HasOpt(o, OptMargin) {
		c.SetMargin(GetOpt(o, OptMargin))
	}
	if HasOpt(o, OptOpacity) {
		c.SetOpacity(GetOpt(o, OptOpacity))
	}
	if HasOpt(o, OptZIndex) {
		c.SetZIndex(GetOpt(o, OptZIndex))
	}
	if HasOpt(o, OptFocusable) {
		c.SetFocusable(GetOpt(o, OptFocusable))
	}
	if HasOpt(o, OptConsumeInput) {
		c.SetConsumeInputEvents(GetOpt(o, OptConsumeInput))
	}
	if GetOpt(o, OptDisabled) {
		c.SetEnabled(false)
	}
	if HasOpt(o, OptVisible) {
		c.SetVisible(GetOpt(o, OptVisible))
	}
	return o
}

// RangeValue holds min/max range for sliders.
type RangeValue struct {
	Min, Max float32
	HasRange bool
}

// --- Core Options ---
var (
	OptStyleName    = NewOptKey("style", "")
	OptDisabled     = NewOptKey("disabled", false)
	OptVisible      = NewOptKey("visible", true)
	OptFocusable    = NewOptKey("focusable", false)
	OptConsumeInput = NewOptKey("consumeInput", true)
	OptX            = NewOptKey[float32]("x", 0)
	OptY            = NewOptKey[float32]("y", 0)
	OptWidth        = NewOptKey[float32]("width", 0)
	OptHeight       = NewOptKey[float32]("height", 0)
	OptAutoSize     = NewOptKey("autoSize", false)
	OptAlignment    = NewOptKey("alignment", AlignTopLeft)
	OptMargin       = NewOptKey("margin", SideLengths{})
	OptOpacity      = NewOptKey[float32]("opacity", 1)
	OptZIndex       = NewOptKey("zIndex", 0)
)

// --- Text Options ---
var (
	OptText     = NewOptKey("text", "")
	OptTextWrap = NewOptKey("textWrap", false)
)

// --- Slider Options ---
var (
	OptRange = NewOptKey("range", RangeValue{})
	OptStep  = NewOptKey[float32]("step", 0)
	OptValue = NewOptKey[float32]("value", 0)
)

// --- CheckBox / RadioButton Options ---
var (
	OptChecked = NewOptKey("checked", false)
	OptGroup   = NewOptKey("group", "")
)

// --- Container Options ---
var (
	OptLayout = NewOptKey("layout", LayoutAbsolute)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithStyleName binds the widget to a named theme style instead of the
// default style for its kind.
func WithStyleName(name string) Option { return WithOpt(OptStyleName, name) }

// WithDisabled creates the widget in the DISABLED state.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithVisible sets the initial visibility.
func WithVisible(visible bool) Option { return WithOpt(OptVisible, visible) }

// WithFocusable overrides the widget kind's default focusability.
func WithFocusable(focusable bool) Option { return WithOpt(OptFocusable, focusable) }

// WithConsumeInput overrides whether the widget swallows input it handles.
func WithConsumeInput(consume bool) Option { return WithOpt(OptConsumeInput, consume) }

// WithPosition sets the widget position within its parent.
func WithPosition(x, y float32) Option {
	return func(o *options) {
		WithOpt(OptX, x)(o)
		WithOpt(OptY, y)(o)
	}
}

// WithSize sets a fixed size, disabling auto-sizing for both dimensions.
func WithSize(width, height float32) Option {
	return func(o *options) {
		WithOpt(OptWidth, width)(o)
		WithOpt(OptHeight, height)(o)
	}
}

// WithWidth sets a fixed width, disabling horizontal auto-sizing.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a fixed height, disabling vertical auto-sizing.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithBounds sets position and fixed size in one call.
func WithBounds(x, y, width, height float32) Option {
	return func(o *options) {
		WithOpt(OptX, x)(o)
		WithOpt(OptY, y)(o)
		WithOpt(OptWidth, width)(o)
		WithOpt(OptHeight, height)(o)
	}
}

// AutoSize makes both dimensions track the widget's measured content size.
func AutoSize() Option { return WithOpt(OptAutoSize, true) }

// WithAlignment positions the widget within its parent's viewport.
func WithAlignment(a Alignment) Option { return WithOpt(OptAlignment, a) }

// WithMargin sets the outer margin used by alignment and layouts.
func WithMargin(m SideLengths) Option { return WithOpt(OptMargin, m) }

// WithOpacity sets the widget opacity in [0, 1].
func WithOpacity(opacity float32) Option { return WithOpt(OptOpacity, opacity) }

// WithZIndex sets the draw order among siblings (higher draws later).
func WithZIndex(z int) Option { return WithOpt(OptZIndex, z) }

// WithText sets the initial text of a Label, Button or TextBox.
func WithText(text string) Option { return WithOpt(OptText, text) }

// WithTextWrap enables word wrapping for Label text.
func WithTextWrap() Option { return WithOpt(OptTextWrap, true) }

// WithRange sets the minimum and maximum values of a Slider.
func WithRange(minVal, maxVal float32) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasRange: true})
}

// WithStep snaps Slider values to multiples of step above the minimum.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithValue sets the initial value of a Slider.
func WithValue(v float32) Option { return WithOpt(OptValue, v) }

// Checked creates a CheckBox or RadioButton in the checked state.
func Checked() Option { return WithOpt(OptChecked, true) }

// WithGroup assigns a RadioButton to a named group. Selecting any button in
// a group deselects the others.
func WithGroup(group string) Option { return WithOpt(OptGroup, group) }

// WithLayout sets the layout strategy of a Container.
func WithLayout(t LayoutType) Option { return WithOpt(OptLayout, t) }
