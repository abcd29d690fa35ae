package forms

// TouchKind discriminates touch (or mouse-as-touch) events delivered to a form.
type TouchKind uint8

const (
	// TouchPress is a finger or mouse button going down.
	TouchPress TouchKind = iota
	// TouchRelease is a finger or mouse button going up.
	TouchRelease
	// TouchMove is a contact moving while down.
	TouchMove
)

// String returns a human-readable name for the touch kind.
func (k TouchKind) String() string {
	switch k {
	case TouchPress:
		return "press"
	case TouchRelease:
		return "release"
	case TouchMove:
		return "move"
	}
	return "?"
}

// TouchEvent is a single pointer event in screen coordinates.
// Contact identifies the pointer for multi-touch platforms; mouse input uses
// contact 0 for the left button. Backends translate platform events into
// these and deliver them through Form.TouchEvent.
type TouchEvent struct {
	Kind    TouchKind
	X, Y    float32
	Contact int
}

// Pos returns the event position as a vector.
func (e TouchEvent) Pos() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// KeyKind discriminates keyboard events delivered to a form.
type KeyKind uint8

const (
	// KeyEventPress is a key going down (including platform auto-repeats).
	KeyEventPress KeyKind = iota
	// KeyEventRelease is a key going up.
	KeyEventRelease
	// KeyEventChar is a translated Unicode character.
	KeyEventChar
)

// Mods is a bitmask of modifier keys held during a key event.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// KeyEvent is a single keyboard event. Press/release events carry Key;
// char events carry the typed rune in Char.
type KeyEvent struct {
	Kind KeyKind
	Key  Key
	Char rune
	Mods Mods
}

// MouseButton represents a mouse button. Backends map buttons onto touch
// contact indices (left = 0, right = 1, middle = 2).
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyS
	KeyT
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// Backends without native key repeat (such as the ebiten adapter)
// synthesize one: the first repeat fires KeyRepeatDelay seconds after
// the press, then one every KeyRepeatInterval.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

var keyNames = [KeyCount]string{
	KeyNone: "--", KeyTab: "Tab",
	KeyLeft: "Left", KeyRight: "Right", KeyUp: "Up", KeyDown: "Down",
	KeyPageUp: "PgUp", KeyPageDown: "PgDn", KeyHome: "Home", KeyEnd: "End",
	KeyInsert: "Ins", KeyDelete: "Del", KeyBackspace: "Backspace",
	KeySpace: "Space", KeyEnter: "Enter", KeyEscape: "Esc",
	KeyA: "A", KeyC: "C", KeyS: "S", KeyT: "T",
	KeyV: "V", KeyX: "X", KeyY: "Y", KeyZ: "Z",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4",
	KeyF5: "F5", KeyF6: "F6", KeyF7: "F7", KeyF8: "F8",
	KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
}

// KeyName returns a short display label for a key, suitable for
// rendering shortcut hints.
func KeyName(k Key) string {
	if k >= 0 && k < KeyCount && keyNames[k] != "" {
		return keyNames[k]
	}
	return "?"
}
