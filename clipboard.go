package forms

// ClipboardProvider bridges TextBox cut/copy/paste to the system
// clipboard. backend/opengl ships a GLFW-backed implementation; hosts
// with their own windowing register whatever wraps it:
//
//	forms.SetClipboardProvider(&opengl.GLFWClipboard{Window: window})
type ClipboardProvider interface {
	// GetText returns the clipboard's text, or "" when it is empty or
	// holds non-text data.
	GetText() string

	// SetText replaces the clipboard's contents.
	SetText(text string)
}

// One provider serves every form; there is only one system clipboard.
var clipboardProvider ClipboardProvider

// SetClipboardProvider registers the clipboard implementation behind the
// TextBox Ctrl+X/C/V chords. Without one the chords are no-ops; pass nil
// to revert to that.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// ClipboardAvailable reports whether a clipboard provider is registered.
func ClipboardAvailable() bool {
	return clipboardProvider != nil
}

func clipboardText() string {
	if clipboardProvider == nil {
		return ""
	}
	return clipboardProvider.GetText()
}

func setClipboardText(text string) {
	if clipboardProvider != nil {
		clipboardProvider.SetText(text)
	}
}
