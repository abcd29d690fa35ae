package forms

import "strings"

const (
	textBoxDefaultW = 200
	maxUndoDepth    = 50
)

// TextBox is a single-line text editor. A press places the caret and starts
// editing, switching the box to the ACTIVE state; Enter or Escape, or focus
// moving elsewhere, ends it. While editing the box captures the keyboard:
// arrows move the caret (Ctrl jumps words, Shift extends the selection),
// Home/End jump the line, Ctrl+A/C/X/V drive the selection and clipboard,
// and Ctrl+Z/Y walk the undo history. Every text change notifies
// EventTextChanged listeners. The style's "caret" and "selection" images
// provide the editing art.
type TextBox struct {
	Label

	editing    bool
	caret      int
	selStart   int
	selEnd     int
	scroll     float32
	blinkPhase float32
	password   bool

	undoStack []string
	undoIndex int
}

// NewTextBox creates a text box.
func NewTextBox(id string, opts ...Option) *TextBox {
	tb := &TextBox{selStart: -1, selEnd: -1}
	tb.initControl(tb, id)
	tb.focusable = true
	tb.autoWidth = true
	tb.autoHeight = true
	o := applyControlOptions(tb, opts)
	tb.text = GetOpt(o, OptText)
	tb.caret = len([]rune(tb.text))
	return tb
}

// Kind returns "textbox".
func (tb *TextBox) Kind() string { return "textbox" }

// SetText replaces the text without notifying EventTextChanged; only edits
// made through the box itself notify. The caret is clamped into the new
// text and the selection dropped.
func (tb *TextBox) SetText(text string) {
	if tb.text == text {
		return
	}
	tb.text = text
	if n := len([]rune(text)); tb.caret > n {
		tb.caret = n
	}
	tb.clearSelection()
	tb.markDirty()
}

// Editing reports whether the box currently captures the keyboard.
func (tb *TextBox) Editing() bool { return tb.editing }

// CaretPosition returns the caret's rune index.
func (tb *TextBox) CaretPosition() int { return tb.caret }

// SetCaretPosition moves the caret to a rune index, clamped to the text.
func (tb *TextBox) SetCaretPosition(pos int) {
	n := len([]rune(tb.text))
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}
	tb.caret = pos
	tb.resetBlink()
	tb.markDirty()
}

// Password reports whether the text is drawn masked.
func (tb *TextBox) Password() bool { return tb.password }

// SetPassword toggles drawing the text as mask characters.
func (tb *TextBox) SetPassword(password bool) {
	if tb.password == password {
		return
	}
	tb.password = password
	tb.markDirty()
}

// SetEnabled ends editing when the box is disabled.
func (tb *TextBox) SetEnabled(enabled bool) {
	if !enabled {
		tb.stopEditing()
	}
	tb.Control.SetEnabled(enabled)
}

func (tb *TextBox) TouchEvent(evt TouchEvent) bool {
	if tb.state == StateDisabled {
		return false
	}
	switch evt.Kind {
	case TouchPress:
		if !tb.hit(evt.Pos()) {
			return false
		}
		tb.pressed = true
		tb.pressContact = evt.Contact
		if !tb.editing {
			tb.startEditing()
		}
		tb.placeCaret(evt.X)
		tb.clearSelection()
		tb.resetBlink()
		tb.NotifyListeners(EventPress)
		return tb.consumeInput
	case TouchMove:
		return tb.pressed && tb.pressContact == evt.Contact && tb.consumeInput
	case TouchRelease:
		if !tb.pressed || tb.pressContact != evt.Contact {
			return false
		}
		tb.pressed = false
		tb.NotifyListeners(EventRelease)
		if tb.hit(evt.Pos()) {
			tb.NotifyListeners(EventClick)
		}
		return tb.consumeInput
	}
	return false
}

func (tb *TextBox) KeyEvent(evt KeyEvent) bool {
	if tb.state == StateDisabled {
		return false
	}
	switch evt.Kind {
	case KeyEventChar:
		if !tb.editing || evt.Char < 32 {
			return false
		}
		tb.insert([]rune{evt.Char})
		return true
	case KeyEventPress:
		if !tb.editing {
			if evt.Key == KeyEnter {
				tb.startEditing()
				tb.selectAll()
				return true
			}
			return false
		}
		return tb.editKey(evt)
	case KeyEventRelease:
		return tb.editing
	}
	return false
}

// editKey handles one key press while editing. Every key is consumed so
// form-level navigation stays out of an editing box.
func (tb *TextBox) editKey(evt KeyEvent) bool {
	runes := []rune(tb.text)
	n := len(runes)
	ctrl := evt.Mods&ModCtrl != 0
	shift := evt.Mods&ModShift != 0

	if ctrl {
		switch evt.Key {
		case KeyA:
			tb.selectAll()
			return true
		case KeyC:
			if start, end := tb.selectedRange(); start >= 0 {
				setClipboardText(string(runes[start:end]))
			}
			return true
		case KeyX:
			if start, end := tb.selectedRange(); start >= 0 {
				setClipboardText(string(runes[start:end]))
				tb.splice(start, end, nil)
			}
			return true
		case KeyV:
			if clip := clipboardText(); clip != "" {
				tb.insert([]rune(clip))
			}
			return true
		case KeyZ:
			if shift {
				tb.redo()
			} else {
				tb.undo()
			}
			return true
		case KeyY:
			tb.redo()
			return true
		}
	}

	switch evt.Key {
	case KeyLeft:
		anchor := tb.caret
		if tb.caret > 0 {
			if ctrl {
				tb.caret = findWordBoundaryLeft(runes, tb.caret)
			} else {
				tb.caret--
			}
		}
		tb.extendOrClear(shift, anchor)
	case KeyRight:
		anchor := tb.caret
		if tb.caret < n {
			if ctrl {
				tb.caret = findWordBoundaryRight(runes, tb.caret)
			} else {
				tb.caret++
			}
		}
		tb.extendOrClear(shift, anchor)
	case KeyHome:
		anchor := tb.caret
		tb.caret = 0
		tb.extendOrClear(shift, anchor)
	case KeyEnd:
		anchor := tb.caret
		tb.caret = n
		tb.extendOrClear(shift, anchor)
	case KeyBackspace:
		if start, end := tb.selectedRange(); start >= 0 {
			tb.splice(start, end, nil)
		} else if tb.caret > 0 {
			tb.splice(tb.caret-1, tb.caret, nil)
		}
	case KeyDelete:
		if start, end := tb.selectedRange(); start >= 0 {
			tb.splice(start, end, nil)
		} else if tb.caret < n {
			tb.splice(tb.caret, tb.caret+1, nil)
		}
	case KeyEscape, KeyEnter:
		tb.stopEditing()
	}
	tb.resetBlink()
	return true
}

// startEditing switches the box into the ACTIVE state and begins capturing
// the keyboard.
func (tb *TextBox) startEditing() {
	tb.editing = true
	if tb.state != StateActive {
		tb.restoreState = tb.state
		tb.SetState(StateActive)
	}
	tb.resetBlink()
	tb.markDirty()
}

// stopEditing releases the keyboard and leaves the ACTIVE state, returning
// to FOCUS while the form still considers the box focused.
func (tb *TextBox) stopEditing() {
	if !tb.editing {
		return
	}
	tb.editing = false
	if tb.state == StateActive {
		switch {
		case tb.formFocused():
			tb.SetState(StateFocus)
		case tb.restoreState == StateFocus:
			tb.SetState(StateFocus)
		default:
			tb.SetState(StateNormal)
		}
	}
	tb.markDirty()
}

// loseFocus ends editing when the form moves focus elsewhere.
func (tb *TextBox) loseFocus() {
	tb.stopEditing()
}

func (tb *TextBox) formFocused() bool {
	f := tb.form()
	return f != nil && f.Focused() == tb.self
}

// insert places runes at the caret, replacing any selection.
func (tb *TextBox) insert(ins []rune) {
	start, end := tb.selectedRange()
	if start < 0 {
		start, end = tb.caret, tb.caret
	}
	tb.splice(start, end, ins)
}

// splice replaces the rune range [start, end) with ins, places the caret
// after the insertion, records undo and notifies once.
func (tb *TextBox) splice(start, end int, ins []rune) {
	tb.pushUndo()
	runes := []rune(tb.text)
	out := make([]rune, 0, len(runes)-(end-start)+len(ins))
	out = append(out, runes[:start]...)
	out = append(out, ins...)
	out = append(out, runes[end:]...)
	tb.caret = start + len(ins)
	tb.clearSelection()
	tb.resetBlink()
	tb.commit(string(out))
}

// commit stores edited text and notifies EventTextChanged listeners.
func (tb *TextBox) commit(text string) {
	tb.text = text
	tb.markDirty()
	tb.NotifyListeners(EventTextChanged)
}

func (tb *TextBox) hasSelection() bool {
	return tb.selStart >= 0 && tb.selStart != tb.selEnd
}

// selectedRange returns the selection as start <= end, or (-1, -1) without
// one.
func (tb *TextBox) selectedRange() (start, end int) {
	if !tb.hasSelection() {
		return -1, -1
	}
	if tb.selStart < tb.selEnd {
		return tb.selStart, tb.selEnd
	}
	return tb.selEnd, tb.selStart
}

func (tb *TextBox) clearSelection() {
	tb.selStart = -1
	tb.selEnd = -1
}

func (tb *TextBox) selectAll() {
	n := len([]rune(tb.text))
	tb.selStart = 0
	tb.selEnd = n
	tb.caret = n
	tb.resetBlink()
	tb.markDirty()
}

// extendOrClear grows the selection from the pre-move caret when shift is
// held, otherwise drops it.
func (tb *TextBox) extendOrClear(shift bool, anchor int) {
	if !shift {
		tb.clearSelection()
		return
	}
	if tb.selStart < 0 {
		tb.selStart = anchor
	}
	tb.selEnd = tb.caret
}

// pushUndo saves the current text before a mutation, truncating any redo
// history past the write point.
func (tb *TextBox) pushUndo() {
	if tb.undoIndex < len(tb.undoStack) {
		tb.undoStack = tb.undoStack[:tb.undoIndex]
	}
	if n := len(tb.undoStack); n > 0 && tb.undoStack[n-1] == tb.text {
		return
	}
	tb.undoStack = append(tb.undoStack, tb.text)
	tb.undoIndex = len(tb.undoStack)
	if len(tb.undoStack) > maxUndoDepth {
		tb.undoStack = tb.undoStack[1:]
		tb.undoIndex--
	}
}

// undo restores the text before the latest edit.
func (tb *TextBox) undo() {
	if tb.undoIndex == len(tb.undoStack) && len(tb.undoStack) > 0 &&
		tb.undoStack[len(tb.undoStack)-1] != tb.text {
		tb.undoStack = append(tb.undoStack, tb.text)
	}
	if tb.undoIndex == 0 {
		return
	}
	tb.undoIndex--
	tb.restore(tb.undoStack[tb.undoIndex])
}

// redo reapplies an undone edit.
func (tb *TextBox) redo() {
	if tb.undoIndex >= len(tb.undoStack)-1 {
		return
	}
	tb.undoIndex++
	tb.restore(tb.undoStack[tb.undoIndex])
}

func (tb *TextBox) restore(text string) {
	tb.caret = len([]rune(text))
	tb.clearSelection()
	tb.resetBlink()
	tb.commit(text)
}

// displayText is the drawn text: mask characters when password mode is on.
func (tb *TextBox) displayText() string {
	if !tb.password {
		return tb.text
	}
	return strings.Repeat("*", len([]rune(tb.text)))
}

// placeCaret moves the caret to the rune boundary nearest the screen X.
func (tb *TextBox) placeCaret(x float32) {
	f := tb.Font(tb.state)
	if f == nil {
		tb.caret = 0
		return
	}
	scale := textScale(f, tb.FontSize(tb.state))
	runes := []rune(tb.displayText())
	clickX := x - tb.viewportBounds.X + tb.scroll
	pos := 0
	for i := 0; i <= len(runes); i++ {
		if measureText(f, string(runes[:i]), scale).X > clickX {
			break
		}
		pos = i
	}
	tb.caret = pos
	tb.markDirty()
}

// resetBlink restarts the caret blink in its visible half.
func (tb *TextBox) resetBlink() {
	if f := tb.form(); f != nil {
		tb.blinkPhase = f.clock
	} else {
		tb.blinkPhase = 0
	}
}

// caretVisible implements the half-second blink.
func (tb *TextBox) caretVisible() bool {
	clock := float32(0)
	if f := tb.form(); f != nil {
		clock = f.clock
	}
	return int((clock-tb.blinkPhase)*2)%2 == 0
}

// updateScroll keeps the caret inside the visible span, leaving slack past
// the right edge so there is room to keep typing.
func (tb *TextBox) updateScroll(caretX, maxWidth float32) {
	if caretX-tb.scroll > maxWidth {
		tb.scroll = caretX - maxWidth + 10
	}
	if caretX < tb.scroll {
		tb.scroll = caretX
	}
	if tb.scroll < 0 {
		tb.scroll = 0
	}
}

func (tb *TextBox) measure() Vec2 {
	size := tb.textSize(tb.displayText(), false)
	size.X = maxf(size.X+10, textBoxDefaultW)
	if size.Y == 0 {
		if f := tb.Font(); f != nil {
			size.Y = f.LineHeight(textScale(f, tb.FontSize()))
		}
	}
	return size
}

func (tb *TextBox) draw(dl *DrawList, opacity float32) {
	tb.drawSkin(dl, opacity)
	area := tb.viewportBounds
	clip := tb.viewportClipBounds
	if area.IsEmpty() || clip.IsEmpty() {
		return
	}
	f := tb.Font(tb.state)
	if f == nil {
		return
	}
	scale := textScale(f, tb.FontSize(tb.state))
	lineH := f.LineHeight(scale)
	text := tb.displayText()
	runes := []rune(text)
	if tb.caret > len(runes) {
		tb.caret = len(runes)
	}

	caretX := measureText(f, string(runes[:tb.caret]), scale).X
	tb.updateScroll(caretX, area.W)
	textY := area.Y + (area.H-lineH)/2

	dl.PushClipRect(clip)
	if tb.editing && tb.hasSelection() {
		start, end := tb.selectedRange()
		x0 := measureText(f, string(runes[:start]), scale).X - tb.scroll
		x1 := measureText(f, string(runes[:end]), scale).X - tb.scroll
		tb.drawImage(dl, "selection", Rect{X: area.X + x0, Y: textY, W: x1 - x0, H: lineH}, opacity)
	}
	if text != "" && f.TextureID() != 0 {
		color := ModulateAlpha(tb.TextColor(tb.state), opacity)
		if color>>24 != 0 {
			dl.SetTexture(f.TextureID())
			dl.AddGlyphQuads(f.GetGlyphQuads(text, area.X-tb.scroll, textY, scale), color)
		}
	}
	if tb.editing && tb.caretVisible() {
		tb.drawImage(dl, "caret", Rect{X: area.X + caretX - tb.scroll, Y: textY, W: 1, H: lineH}, opacity)
	}
	dl.PopClipRect()
}

// findWordBoundaryLeft finds the start of the word to the left of pos.
func findWordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isWhitespace(runes[pos]) {
		pos--
	}
	for pos > 0 && !isWhitespace(runes[pos-1]) {
		pos--
	}
	return pos
}

// findWordBoundaryRight finds the end of the word to the right of pos.
func findWordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	if pos >= n {
		return n
	}
	for pos < n && !isWhitespace(runes[pos]) {
		pos++
	}
	for pos < n && isWhitespace(runes[pos]) {
		pos++
	}
	return pos
}

// isWhitespace returns true if the rune is a whitespace character.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
