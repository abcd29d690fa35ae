package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/forms"
)

// GLFWAdapter wires a GLFW window's input callbacks to a form. Mouse
// buttons become touch contacts (left 0, right 1, middle 2), cursor motion
// becomes touch moves, and key/char callbacks feed the form's keyboard
// routing. Framebuffer resizes forward to the form's renderer.
type GLFWAdapter struct {
	window *glfw.Window
	form   *forms.Form

	down [forms.MouseButtonCount]bool
}

// NewGLFWAdapter installs input callbacks on the window targeting the form.
// The adapter holds the window's key, char, mouse button, cursor position
// and framebuffer size callbacks; install competing callbacks before
// creating it and chain from there if the application needs them too.
func NewGLFWAdapter(window *glfw.Window, form *forms.Form) *GLFWAdapter {
	a := &GLFWAdapter{window: window, form: form}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFramebufferSizeCallback(a.sizeCallback)

	return a
}

// Retarget points the adapter at a different form, for applications that
// switch screens. Held buttons are forgotten; retarget between frames, not
// mid-gesture.
func (a *GLFWAdapter) Retarget(form *forms.Form) {
	a.form = form
	a.down = [forms.MouseButtonCount]bool{}
}

// Form returns the form currently receiving events.
func (a *GLFWAdapter) Form() *forms.Form { return a.form }

func (a *GLFWAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToForms(key)
	if k == forms.KeyNone {
		return
	}
	evt := forms.KeyEvent{Key: k, Mods: glfwModsToForms(mods)}
	switch action {
	case glfw.Press, glfw.Repeat:
		evt.Kind = forms.KeyEventPress
	case glfw.Release:
		evt.Kind = forms.KeyEventRelease
	default:
		return
	}
	a.form.KeyEvent(evt)
}

func (a *GLFWAdapter) charCallback(w *glfw.Window, char rune) {
	a.form.CharEvent(char)
}

func (a *GLFWAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToForms(button)
	if b < 0 {
		return
	}
	x, y := w.GetCursorPos()
	evt := forms.TouchEvent{X: float32(x), Y: float32(y), Contact: int(b)}
	switch action {
	case glfw.Press:
		a.down[b] = true
		evt.Kind = forms.TouchPress
	case glfw.Release:
		a.down[b] = false
		evt.Kind = forms.TouchRelease
	default:
		return
	}
	a.form.TouchEvent(evt)
}

func (a *GLFWAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	x, y := float32(xpos), float32(ypos)
	moved := false
	for b := 0; b < int(forms.MouseButtonCount); b++ {
		if a.down[b] {
			a.form.TouchEvent(forms.TouchEvent{Kind: forms.TouchMove, X: x, Y: y, Contact: b})
			moved = true
		}
	}
	if !moved {
		// No button held; deliver an unpressed move so the form tracks the
		// pointer for cursor drawing.
		a.form.TouchEvent(forms.TouchEvent{Kind: forms.TouchMove, X: x, Y: y, Contact: int(forms.MouseButtonLeft)})
	}
}

func (a *GLFWAdapter) sizeCallback(w *glfw.Window, width, height int) {
	a.form.Resize(width, height)
}

// GLFWClipboard is a forms.ClipboardProvider backed by the window system
// clipboard. Register it with forms.SetClipboardProvider to enable TextBox
// cut/copy/paste.
type GLFWClipboard struct {
	Window *glfw.Window
}

// GetText retrieves text from the system clipboard.
func (c *GLFWClipboard) GetText() string {
	return c.Window.GetClipboardString()
}

// SetText copies text to the system clipboard.
func (c *GLFWClipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}

// glfwModsToForms maps GLFW modifier bits to forms modifier bits.
func glfwModsToForms(mods glfw.ModifierKey) forms.Mods {
	var m forms.Mods
	if mods&glfw.ModShift != 0 {
		m |= forms.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= forms.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= forms.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= forms.ModSuper
	}
	return m
}

// glfwKeyToForms maps GLFW keys to forms keys.
func glfwKeyToForms(key glfw.Key) forms.Key {
	switch key {
	case glfw.KeyTab:
		return forms.KeyTab
	case glfw.KeyLeft:
		return forms.KeyLeft
	case glfw.KeyRight:
		return forms.KeyRight
	case glfw.KeyUp:
		return forms.KeyUp
	case glfw.KeyDown:
		return forms.KeyDown
	case glfw.KeyPageUp:
		return forms.KeyPageUp
	case glfw.KeyPageDown:
		return forms.KeyPageDown
	case glfw.KeyHome:
		return forms.KeyHome
	case glfw.KeyEnd:
		return forms.KeyEnd
	case glfw.KeyInsert:
		return forms.KeyInsert
	case glfw.KeyDelete:
		return forms.KeyDelete
	case glfw.KeyBackspace:
		return forms.KeyBackspace
	case glfw.KeySpace:
		return forms.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return forms.KeyEnter
	case glfw.KeyEscape:
		return forms.KeyEscape
	case glfw.KeyA:
		return forms.KeyA
	case glfw.KeyC:
		return forms.KeyC
	case glfw.KeyS:
		return forms.KeyS
	case glfw.KeyT:
		return forms.KeyT
	case glfw.KeyV:
		return forms.KeyV
	case glfw.KeyX:
		return forms.KeyX
	case glfw.KeyY:
		return forms.KeyY
	case glfw.KeyZ:
		return forms.KeyZ
	case glfw.KeyF1:
		return forms.KeyF1
	case glfw.KeyF2:
		return forms.KeyF2
	case glfw.KeyF3:
		return forms.KeyF3
	case glfw.KeyF4:
		return forms.KeyF4
	case glfw.KeyF5:
		return forms.KeyF5
	case glfw.KeyF6:
		return forms.KeyF6
	case glfw.KeyF7:
		return forms.KeyF7
	case glfw.KeyF8:
		return forms.KeyF8
	case glfw.KeyF9:
		return forms.KeyF9
	case glfw.KeyF10:
		return forms.KeyF10
	case glfw.KeyF11:
		return forms.KeyF11
	case glfw.KeyF12:
		return forms.KeyF12
	default:
		return forms.KeyNone
	}
}

// glfwMouseButtonToForms maps GLFW mouse buttons to forms mouse buttons.
func glfwMouseButtonToForms(button glfw.MouseButton) forms.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return forms.MouseButtonLeft
	case glfw.MouseButtonRight:
		return forms.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return forms.MouseButtonMiddle
	default:
		return -1
	}
}
