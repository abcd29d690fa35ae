package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/forms"
)

// mouseButtons maps ebiten mouse buttons onto touch contact indices.
// The slice index is the contact, matching forms.MouseButtonLeft and
// friends.
var mouseButtons = [forms.MouseButtonCount]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

var keyMap = map[ebiten.Key]forms.Key{
	ebiten.KeyTab:         forms.KeyTab,
	ebiten.KeyArrowLeft:   forms.KeyLeft,
	ebiten.KeyArrowRight:  forms.KeyRight,
	ebiten.KeyArrowUp:     forms.KeyUp,
	ebiten.KeyArrowDown:   forms.KeyDown,
	ebiten.KeyPageUp:      forms.KeyPageUp,
	ebiten.KeyPageDown:    forms.KeyPageDown,
	ebiten.KeyHome:        forms.KeyHome,
	ebiten.KeyEnd:         forms.KeyEnd,
	ebiten.KeyInsert:      forms.KeyInsert,
	ebiten.KeyDelete:      forms.KeyDelete,
	ebiten.KeyBackspace:   forms.KeyBackspace,
	ebiten.KeySpace:       forms.KeySpace,
	ebiten.KeyEnter:       forms.KeyEnter,
	ebiten.KeyNumpadEnter: forms.KeyEnter,
	ebiten.KeyEscape:      forms.KeyEscape,
	ebiten.KeyA:           forms.KeyA,
	ebiten.KeyC:           forms.KeyC,
	ebiten.KeyS:           forms.KeyS,
	ebiten.KeyT:           forms.KeyT,
	ebiten.KeyV:           forms.KeyV,
	ebiten.KeyX:           forms.KeyX,
	ebiten.KeyY:           forms.KeyY,
	ebiten.KeyZ:           forms.KeyZ,
	ebiten.KeyF1:          forms.KeyF1,
	ebiten.KeyF2:          forms.KeyF2,
	ebiten.KeyF3:          forms.KeyF3,
	ebiten.KeyF4:          forms.KeyF4,
	ebiten.KeyF5:          forms.KeyF5,
	ebiten.KeyF6:          forms.KeyF6,
	ebiten.KeyF7:          forms.KeyF7,
	ebiten.KeyF8:          forms.KeyF8,
	ebiten.KeyF9:          forms.KeyF9,
	ebiten.KeyF10:         forms.KeyF10,
	ebiten.KeyF11:         forms.KeyF11,
	ebiten.KeyF12:         forms.KeyF12,
}

// InputAdapter polls Ebitengine's input state and feeds a form. Call
// Update once per game tick, before the form's own Update:
//
//	func (g *Game) Update() error {
//	    g.input.Update()
//	    g.form.Update(1.0 / float32(ebiten.TPS()))
//	    return nil
//	}
//
// Mouse buttons become touch contacts 0 through 2. OS touches become
// contacts 3 and up, so a mouse drag and a finger drag can coexist.
// Ebitengine reports no key auto-repeat, so the adapter synthesizes
// repeats from held-key durations.
type InputAdapter struct {
	form *forms.Form

	lastX, lastY int
	cursorSeen   bool

	keys     []ebiten.Key
	runes    []rune
	touchIDs []ebiten.TouchID

	wheelX, wheelY float64
}

// NewInputAdapter creates an adapter delivering input to form.
func NewInputAdapter(form *forms.Form) *InputAdapter {
	return &InputAdapter{form: form}
}

// Retarget switches event delivery to another form. Contacts held on
// the old form stay there until released; retarget between gestures,
// not mid-drag.
func (a *InputAdapter) Retarget(form *forms.Form) {
	a.form = form
}

// Form returns the form currently receiving events.
func (a *InputAdapter) Form() *forms.Form {
	return a.form
}

// Wheel returns the scroll delta recorded by the last Update call. The
// form itself does not consume wheel input; games read it here for
// their own camera or list scrolling.
func (a *InputAdapter) Wheel() (x, y float32) {
	return float32(a.wheelX), float32(a.wheelY)
}

// Update polls input state once and delivers the resulting events.
func (a *InputAdapter) Update() {
	if a.form == nil {
		return
	}
	mods := readMods()
	a.pollCursor()
	a.pollMouseButtons()
	a.pollTouches()
	a.pollKeys(mods)
	a.pollChars()
	a.wheelX, a.wheelY = ebiten.Wheel()
}

func (a *InputAdapter) pollCursor() {
	x, y := ebiten.CursorPosition()
	if a.cursorSeen && x == a.lastX && y == a.lastY {
		return
	}
	a.lastX, a.lastY = x, y
	a.cursorSeen = true

	held := false
	for contact, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b) {
			held = true
			a.form.TouchEvent(forms.TouchEvent{
				Kind:    forms.TouchMove,
				X:       float32(x),
				Y:       float32(y),
				Contact: contact,
			})
		}
	}
	if !held {
		// Unpressed moves keep the form's pointer position current for
		// cursor drawing.
		a.form.TouchEvent(forms.TouchEvent{
			Kind: forms.TouchMove,
			X:    float32(x),
			Y:    float32(y),
		})
	}
}

func (a *InputAdapter) pollMouseButtons() {
	x, y := ebiten.CursorPosition()
	for contact, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			a.form.TouchEvent(forms.TouchEvent{
				Kind:    forms.TouchPress,
				X:       float32(x),
				Y:       float32(y),
				Contact: contact,
			})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			a.form.TouchEvent(forms.TouchEvent{
				Kind:    forms.TouchRelease,
				X:       float32(x),
				Y:       float32(y),
				Contact: contact,
			})
		}
	}
}

// touchContact offsets OS touch IDs past the mouse button contacts.
func touchContact(id ebiten.TouchID) int {
	return int(forms.MouseButtonCount) + int(id)
}

func (a *InputAdapter) pollTouches() {
	a.touchIDs = inpututil.AppendJustPressedTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		x, y := ebiten.TouchPosition(id)
		a.form.TouchEvent(forms.TouchEvent{
			Kind:    forms.TouchPress,
			X:       float32(x),
			Y:       float32(y),
			Contact: touchContact(id),
		})
	}

	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		a.form.TouchEvent(forms.TouchEvent{
			Kind:    forms.TouchMove,
			X:       float32(x),
			Y:       float32(y),
			Contact: touchContact(id),
		})
	}

	a.touchIDs = inpututil.AppendJustReleasedTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		// A released touch no longer reports a position; use where it
		// was last tick.
		x, y := inpututil.TouchPositionInPreviousTick(id)
		a.form.TouchEvent(forms.TouchEvent{
			Kind:    forms.TouchRelease,
			X:       float32(x),
			Y:       float32(y),
			Contact: touchContact(id),
		})
	}
}

func (a *InputAdapter) pollKeys(mods forms.Mods) {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	repeatDelay := int(forms.KeyRepeatDelay * float32(tps))
	repeatInterval := int(forms.KeyRepeatInterval * float32(tps))
	if repeatInterval < 1 {
		repeatInterval = 1
	}

	a.keys = inpututil.AppendPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		fk, ok := keyMap[k]
		if !ok {
			continue
		}
		d := inpututil.KeyPressDuration(k)
		if d == 1 || (d > repeatDelay && (d-repeatDelay)%repeatInterval == 0) {
			a.form.KeyEvent(forms.KeyEvent{
				Kind: forms.KeyEventPress,
				Key:  fk,
				Mods: mods,
			})
		}
	}

	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		fk, ok := keyMap[k]
		if !ok {
			continue
		}
		a.form.KeyEvent(forms.KeyEvent{
			Kind: forms.KeyEventRelease,
			Key:  fk,
			Mods: mods,
		})
	}
}

func (a *InputAdapter) pollChars() {
	a.runes = ebiten.AppendInputChars(a.runes[:0])
	for _, ch := range a.runes {
		a.form.CharEvent(ch)
	}
}

func readMods() forms.Mods {
	var m forms.Mods
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= forms.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= forms.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= forms.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= forms.ModSuper
	}
	return m
}
