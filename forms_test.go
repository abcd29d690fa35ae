package forms_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-theft-auto/forms"
)

// mockRenderer is a test renderer that counts frames instead of drawing.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
	lastVerts   int
	fail        error
}

func (m *mockRenderer) Render(dl *forms.DrawList) error {
	m.renderCalls++
	m.lastCmds = len(dl.CmdBuffer)
	m.lastVerts = len(dl.VtxBuffer)
	return m.fail
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }

func (m *mockRenderer) Resize(width, height int) {}

// bareForm creates a form with an empty theme so geometry in tests is not
// offset by style borders or padding.
func bareForm(width, height float32) *forms.Form {
	return forms.NewForm("test", width, height, forms.WithTheme(forms.NewTheme()))
}

func press(f *forms.Form, x, y float32) bool {
	return f.TouchEvent(forms.TouchEvent{Kind: forms.TouchPress, X: x, Y: y})
}

func move(f *forms.Form, x, y float32) bool {
	return f.TouchEvent(forms.TouchEvent{Kind: forms.TouchMove, X: x, Y: y})
}

func release(f *forms.Form, x, y float32) bool {
	return f.TouchEvent(forms.TouchEvent{Kind: forms.TouchRelease, X: x, Y: y})
}

func click(f *forms.Form, x, y float32) {
	press(f, x, y)
	release(f, x, y)
}

func keyPress(f *forms.Form, k forms.Key, mods forms.Mods) bool {
	return f.KeyEvent(forms.KeyEvent{Kind: forms.KeyEventPress, Key: k, Mods: mods})
}

func keyRelease(f *forms.Form, k forms.Key, mods forms.Mods) bool {
	return f.KeyEvent(forms.KeyEvent{Kind: forms.KeyEventRelease, Key: k, Mods: mods})
}

func keyTap(f *forms.Form, k forms.Key, mods forms.Mods) {
	keyPress(f, k, mods)
	keyRelease(f, k, mods)
}

// mustPanic asserts that fn panics. Used for strict-contract checks.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic under strict contracts", name)
		}
	}()
	fn()
}

func TestFormDefaults(t *testing.T) {
	f := forms.NewForm("hud", 800, 600)

	if f.Kind() != "form" {
		t.Errorf("expected kind %q, got %q", "form", f.Kind())
	}
	if f.Theme() == nil {
		t.Error("expected a default theme")
	}
	if f.FontProvider() == nil {
		t.Error("expected a default font provider")
	}
	if f.FontProvider().ActiveFont() == nil {
		t.Error("expected the default provider to carry a font")
	}
	if f.Renderer() != nil {
		t.Error("expected no renderer until one is set")
	}
	if got := f.Size(); got.X != 800 || got.Y != 600 {
		t.Errorf("expected size 800x600, got %gx%g", got.X, got.Y)
	}
	if f.Focused() != nil {
		t.Error("fresh form should hold no focus")
	}
	if !f.IsContainer() {
		t.Error("a form is a container")
	}
}

func TestFormNegativeSizeClamps(t *testing.T) {
	f := forms.NewForm("hud", -10, -20)
	if got := f.Size(); got.X != 0 || got.Y != 0 {
		t.Errorf("expected clamped size 0x0, got %gx%g", got.X, got.Y)
	}
}

func TestFormClockAccumulates(t *testing.T) {
	f := bareForm(100, 100)
	f.Update(0.5)
	f.Update(0.5)
	if f.Clock() != 1.0 {
		t.Errorf("expected clock 1.0, got %g", f.Clock())
	}
}

func TestFormRender(t *testing.T) {
	renderer := &mockRenderer{}
	f := forms.NewForm("hud", 320, 200, forms.WithRenderer(renderer))
	f.Update(0.016)

	if err := f.Render(); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastVerts == 0 {
		t.Error("expected the default theme's form skin to emit vertices")
	}
	if renderer.lastCmds == 0 {
		t.Error("expected at least one finalized draw command")
	}
}

func TestFormRenderWithoutRenderer(t *testing.T) {
	f := bareForm(100, 100)
	if err := f.Render(); err == nil {
		t.Error("expected an error rendering without a renderer")
	}
}

func TestFormRenderWrapsBackendError(t *testing.T) {
	renderer := &mockRenderer{fail: errors.New("device lost")}
	f := forms.NewForm("hud", 100, 100, forms.WithRenderer(renderer))
	f.Update(0)

	err := f.Render()
	if err == nil {
		t.Fatal("expected the backend error to surface")
	}
	if !strings.Contains(err.Error(), "device lost") {
		t.Errorf("expected wrapped backend error, got %v", err)
	}
}

func TestFormDrawIntoCallerList(t *testing.T) {
	f := forms.NewForm("hud", 100, 100)
	f.Update(0)

	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)
	f.Draw(dl)
	dl.Finalize()

	if len(dl.CmdBuffer) == 0 {
		t.Error("expected Draw to emit commands for the themed form background")
	}
}

func TestFormHiddenDrawsNothing(t *testing.T) {
	f := forms.NewForm("hud", 100, 100)
	f.Update(0)
	f.SetVisible(false)

	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)
	f.Draw(dl)
	dl.Finalize()

	if len(dl.CmdBuffer) != 0 {
		t.Errorf("hidden form should draw nothing, got %d commands", len(dl.CmdBuffer))
	}
}

func TestFormFocusFollowsPress(t *testing.T) {
	f := bareForm(800, 600)
	b1 := forms.NewButton("b1", forms.WithBounds(10, 10, 100, 30))
	b2 := forms.NewButton("b2", forms.WithBounds(10, 60, 100, 30))
	f.AddControl(b1)
	f.AddControl(b2)
	f.Update(0)

	if !press(f, 20, 20) {
		t.Fatal("press on a button should be consumed")
	}
	if f.Focused() != b1 {
		t.Fatal("expected focus on b1 after press")
	}
	if b1.State() != forms.StateActive {
		t.Errorf("expected b1 ACTIVE mid-press, got %v", b1.State())
	}
	release(f, 20, 20)
	if b1.State() != forms.StateFocus {
		t.Errorf("expected b1 FOCUS after release, got %v", b1.State())
	}

	click(f, 20, 70)
	if f.Focused() != b2 {
		t.Error("expected focus to move to b2")
	}
	if b1.State() != forms.StateNormal {
		t.Errorf("expected b1 back to NORMAL, got %v", b1.State())
	}
}

func TestFormPressOnEmptySpaceClearsFocus(t *testing.T) {
	f := bareForm(800, 600)
	b := forms.NewButton("b", forms.WithBounds(10, 10, 100, 30))
	f.AddControl(b)
	f.Update(0)

	click(f, 20, 20)
	if f.Focused() == nil {
		t.Fatal("expected focus after clicking the button")
	}

	// Inside the form but outside every child. The form consumes it.
	if !press(f, 400, 400) {
		t.Error("press inside the form should be consumed by the form itself")
	}
	if f.Focused() != nil {
		t.Error("expected focus cleared by a press on empty space")
	}
	release(f, 400, 400)
}

func TestFormPressOutsideFormMisses(t *testing.T) {
	f := bareForm(200, 200)
	f.Update(0)
	if press(f, 500, 500) {
		t.Error("press outside the form should not be consumed")
	}
}

func TestFormContactOwnsDrag(t *testing.T) {
	f := bareForm(800, 600)
	b := forms.NewButton("b", forms.WithBounds(10, 10, 100, 30))
	var releases, clicks int
	b.AddListener(forms.ListenerFunc(func(w forms.Widget, evt forms.EventType) {
		switch evt {
		case forms.EventRelease:
			releases++
		case forms.EventClick:
			clicks++
		}
	}), forms.EventRelease|forms.EventClick)
	f.AddControl(b)
	f.Update(0)

	press(f, 20, 20)
	// The pointer leaves the button; the contact still routes to it.
	if !move(f, 500, 500) {
		t.Error("move should route to the pressed widget")
	}
	if !release(f, 500, 500) {
		t.Error("release should route to the pressed widget")
	}
	if releases != 1 {
		t.Errorf("expected 1 release event, got %d", releases)
	}
	if clicks != 0 {
		t.Errorf("release outside the bounds must not click, got %d", clicks)
	}
	if b.State() != forms.StateFocus {
		t.Errorf("expected FOCUS after the drag ends, got %v", b.State())
	}
}

func TestFormMoveWithoutPressIgnored(t *testing.T) {
	f := bareForm(800, 600)
	f.Update(0)
	if move(f, 20, 20) {
		t.Error("move without a held contact should not be consumed")
	}
	if release(f, 20, 20) {
		t.Error("release without a held contact should not be consumed")
	}
}

func TestFormHiddenIgnoresInput(t *testing.T) {
	f := bareForm(800, 600)
	b := forms.NewButton("b", forms.WithBounds(10, 10, 100, 30))
	f.AddControl(b)
	f.Update(0)
	f.SetVisible(false)

	if press(f, 20, 20) {
		t.Error("hidden form should ignore touches")
	}
	if keyPress(f, forms.KeyTab, 0) {
		t.Error("hidden form should ignore keys")
	}
}

func TestFormSetFocusRules(t *testing.T) {
	f := bareForm(800, 600)
	label := forms.NewLabel("plain", forms.WithText("x"))
	b := forms.NewButton("b", forms.WithBounds(10, 10, 100, 30))
	disabled := forms.NewButton("d", forms.WithBounds(10, 60, 100, 30), forms.WithDisabled(true))
	f.AddControl(label)
	f.AddControl(b)
	f.AddControl(disabled)
	f.Update(0)

	if f.SetFocus(label) {
		t.Error("labels are not focusable")
	}
	if f.SetFocus(disabled) {
		t.Error("disabled widgets must not take focus")
	}
	if !f.SetFocus(b) {
		t.Fatal("expected the button to take focus")
	}
	if !b.HasFocus() {
		t.Error("expected HasFocus after SetFocus")
	}
	if !f.SetFocus(b) {
		t.Error("focusing the focus holder again reports true")
	}

	f.ClearFocus()
	if f.Focused() != nil {
		t.Error("expected no focus after ClearFocus")
	}
	if b.State() != forms.StateNormal {
		t.Errorf("expected NORMAL after losing focus, got %v", b.State())
	}

	if f.SetFocus(nil) {
		t.Error("SetFocus(nil) clears and reports false")
	}
}

func TestFormNavigateSpatial(t *testing.T) {
	f := bareForm(800, 600)
	b1 := forms.NewButton("b1", forms.WithBounds(0, 0, 50, 20))
	b2 := forms.NewButton("b2", forms.WithBounds(0, 100, 50, 20))
	b3 := forms.NewButton("b3", forms.WithBounds(100, 0, 50, 20))
	f.AddControl(b1)
	f.AddControl(b2)
	f.AddControl(b3)
	f.Update(0)

	// Without focus the first focusable takes it.
	if !f.Navigate(forms.NavDown) {
		t.Fatal("expected navigation to seed focus")
	}
	if f.Focused() != b1 {
		t.Fatalf("expected initial focus on b1")
	}

	if !f.Navigate(forms.NavDown) || f.Focused() != b2 {
		t.Error("expected NavDown to land on b2")
	}
	if !f.Navigate(forms.NavUp) || f.Focused() != b1 {
		t.Error("expected NavUp back on b1")
	}
	if !f.Navigate(forms.NavRight) || f.Focused() != b3 {
		t.Error("expected NavRight to land on b3")
	}
	if !f.Navigate(forms.NavLeft) || f.Focused() != b1 {
		t.Error("expected NavLeft back on b1")
	}

	// Nothing above b1.
	if f.Navigate(forms.NavUp) {
		t.Error("expected no candidate above the top row")
	}
}

func TestFormArrowKeysNavigate(t *testing.T) {
	f := bareForm(800, 600)
	b1 := forms.NewButton("b1", forms.WithBounds(0, 0, 50, 20))
	b2 := forms.NewButton("b2", forms.WithBounds(0, 100, 50, 20))
	f.AddControl(b1)
	f.AddControl(b2)
	f.Update(0)
	f.SetFocus(b1)

	if !keyPress(f, forms.KeyDown, 0) {
		t.Error("expected the arrow press to be consumed by navigation")
	}
	if f.Focused() != b2 {
		t.Error("expected KeyDown to move focus to b2")
	}
}

func TestFormTabCyclesFocus(t *testing.T) {
	f := bareForm(800, 600)
	b1 := forms.NewButton("b1", forms.WithBounds(0, 0, 50, 20))
	b2 := forms.NewButton("b2", forms.WithBounds(0, 30, 50, 20))
	b3 := forms.NewButton("b3", forms.WithBounds(0, 60, 50, 20))
	f.AddControl(b1)
	f.AddControl(b2)
	f.AddControl(b3)
	f.Update(0)

	keyPress(f, forms.KeyTab, 0)
	if f.Focused() != b1 {
		t.Fatal("expected first Tab to focus b1")
	}
	keyPress(f, forms.KeyTab, 0)
	if f.Focused() != b2 {
		t.Error("expected Tab to advance to b2")
	}
	keyPress(f, forms.KeyTab, forms.ModShift)
	if f.Focused() != b1 {
		t.Error("expected Shift+Tab to step back to b1")
	}
	keyPress(f, forms.KeyTab, forms.ModShift)
	if f.Focused() != b3 {
		t.Error("expected Shift+Tab to wrap to b3")
	}
	keyPress(f, forms.KeyTab, 0)
	if f.Focused() != b1 {
		t.Error("expected Tab to wrap forward to b1")
	}
}

func TestFormFocusSkipsHiddenAndDisabled(t *testing.T) {
	f := bareForm(800, 600)
	b1 := forms.NewButton("b1", forms.WithBounds(0, 0, 50, 20))
	b2 := forms.NewButton("b2", forms.WithBounds(0, 30, 50, 20))
	b3 := forms.NewButton("b3", forms.WithBounds(0, 60, 50, 20))
	f.AddControl(b1)
	f.AddControl(b2)
	f.AddControl(b3)
	f.Update(0)

	b2.SetVisible(false)
	b3.SetEnabled(false)

	keyPress(f, forms.KeyTab, 0)
	keyPress(f, forms.KeyTab, 0)
	if f.Focused() != b1 {
		t.Error("expected the cycle to stay on the only eligible widget")
	}
}

func TestFormActionDispatch(t *testing.T) {
	f := bareForm(800, 600)
	f.Update(0)

	var fired int
	f.RegisterAction(forms.Action{
		Name:    "toggle",
		Key:     forms.KeyT,
		Handler: func() { fired++ },
	})

	if !keyPress(f, forms.KeyT, 0) {
		t.Fatal("expected the registered chord to be consumed")
	}
	if fired != 1 {
		t.Fatalf("expected the handler to run once, got %d", fired)
	}

	// Releases never dispatch.
	keyRelease(f, forms.KeyT, 0)
	if fired != 1 {
		t.Errorf("release must not dispatch, got %d", fired)
	}

	// Mods must match exactly.
	if keyPress(f, forms.KeyT, forms.ModCtrl) {
		t.Error("chord with extra modifier should not match")
	}
	if fired != 1 {
		t.Errorf("expected no extra dispatch, got %d", fired)
	}
}

func TestFormActionCondition(t *testing.T) {
	f := bareForm(800, 600)
	f.Update(0)

	enabled := false
	var fired int
	f.RegisterAction(forms.Action{
		Name:      "guarded",
		Key:       forms.KeyS,
		Mods:      forms.ModCtrl,
		Handler:   func() { fired++ },
		Condition: func() bool { return enabled },
	})

	if keyPress(f, forms.KeyS, forms.ModCtrl) {
		t.Error("gated-off action should not consume")
	}
	enabled = true
	if !keyPress(f, forms.KeyS, forms.ModCtrl) {
		t.Error("expected the chord to fire once the condition passes")
	}
	if fired != 1 {
		t.Errorf("expected 1 dispatch, got %d", fired)
	}
}

func TestFormActionFirstRegisteredWins(t *testing.T) {
	f := bareForm(800, 600)
	f.Update(0)

	var order []string
	f.RegisterAction(forms.Action{Name: "first", Key: forms.KeyF1, Handler: func() { order = append(order, "first") }})
	f.RegisterAction(forms.Action{Name: "second", Key: forms.KeyF1, Handler: func() { order = append(order, "second") }})

	keyPress(f, forms.KeyF1, 0)
	if len(order) != 1 || order[0] != "first" {
		t.Errorf("expected only the first registration to run, got %v", order)
	}
}

func TestFormActionPrecedesNavigation(t *testing.T) {
	f := bareForm(800, 600)
	b1 := forms.NewButton("b1", forms.WithBounds(0, 0, 50, 20))
	b2 := forms.NewButton("b2", forms.WithBounds(0, 100, 50, 20))
	f.AddControl(b1)
	f.AddControl(b2)
	f.Update(0)
	f.SetFocus(b1)

	var fired int
	f.RegisterAction(forms.Action{Name: "down", Key: forms.KeyDown, Handler: func() { fired++ }})

	keyPress(f, forms.KeyDown, 0)
	if fired != 1 {
		t.Error("expected the bound chord to shadow focus navigation")
	}
	if f.Focused() != b1 {
		t.Error("focus must not move when an action consumed the press")
	}
}

func TestFormActionShadowedByEditingTextBox(t *testing.T) {
	f := bareForm(800, 600)
	tb := forms.NewTextBox("name", forms.WithBounds(10, 10, 200, 20))
	f.AddControl(tb)
	f.Update(0)

	var fired int
	f.RegisterAction(forms.Action{Name: "t", Key: forms.KeyT, Handler: func() { fired++ }})

	click(f, 15, 15) // start editing
	if !tb.Editing() {
		t.Fatal("expected the press to start editing")
	}
	keyPress(f, forms.KeyT, 0)
	if fired != 0 {
		t.Error("an editing text box captures the keyboard ahead of actions")
	}

	keyPress(f, forms.KeyEnter, 0) // stop editing
	keyRelease(f, forms.KeyEnter, 0)
	keyPress(f, forms.KeyT, 0)
	if fired != 1 {
		t.Error("expected the action to fire once editing ended")
	}
}

func TestFormUnregisterAction(t *testing.T) {
	f := bareForm(800, 600)
	f.Update(0)

	var fired int
	f.RegisterAction(forms.Action{Name: "once", Key: forms.KeyF2, Handler: func() { fired++ }})

	if !f.UnregisterAction("once") {
		t.Error("expected UnregisterAction to find the action")
	}
	if f.UnregisterAction("once") {
		t.Error("expected the second removal to report false")
	}
	if keyPress(f, forms.KeyF2, 0) {
		t.Error("removed action must not consume")
	}
	if fired != 0 {
		t.Errorf("removed action must not dispatch, got %d", fired)
	}
}

func TestFormClearActions(t *testing.T) {
	f := bareForm(800, 600)
	f.Update(0)
	f.RegisterAction(forms.Action{Name: "a", Key: forms.KeyF3, Handler: func() {}})
	f.RegisterAction(forms.Action{Name: "b", Key: forms.KeyF4, Handler: func() {}})
	f.ClearActions()

	if keyPress(f, forms.KeyF3, 0) || keyPress(f, forms.KeyF4, 0) {
		t.Error("cleared actions must not consume")
	}
}

func TestFormActionContractViolations(t *testing.T) {
	forms.SetStrictContracts(true)
	defer forms.SetStrictContracts(false)

	f := bareForm(100, 100)
	mustPanic(t, "nil handler", func() {
		f.RegisterAction(forms.Action{Name: "broken", Key: forms.KeyA})
	})
	mustPanic(t, "no key", func() {
		f.RegisterAction(forms.Action{Name: "broken", Handler: func() {}})
	})
}

func TestFormSetThemeRebindsSharedStyles(t *testing.T) {
	f := forms.NewForm("hud", 400, 300, forms.WithTheme(forms.DefaultTheme()))
	b1 := forms.NewButton("b1", forms.WithBounds(0, 0, 80, 24))
	b2 := forms.NewButton("b2", forms.WithBounds(0, 30, 80, 24))
	f.AddControl(b1)
	f.AddControl(b2)
	f.Update(0)

	// b1 takes a private copy; b2 keeps sharing the theme style.
	b1.SetSkinColor(forms.ColorRed)

	f.SetTheme(forms.GTATheme())
	f.Update(0)

	if got := b2.SkinColor(); got != forms.RGBA(40, 40, 40, 255) {
		t.Errorf("expected b2 to rebind to the GTA button skin, got %#x", got)
	}
	if got := b1.SkinColor(); got != forms.ColorRed {
		t.Errorf("expected b1's private override to survive the swap, got %#x", got)
	}
}

func TestFormSetThemeNilViolation(t *testing.T) {
	forms.SetStrictContracts(true)
	defer forms.SetStrictContracts(false)

	f := bareForm(100, 100)
	mustPanic(t, "SetTheme(nil)", func() { f.SetTheme(nil) })
}

func TestFormCharEventWithoutFocus(t *testing.T) {
	f := bareForm(100, 100)
	f.Update(0)
	if f.CharEvent('x') {
		t.Error("char without a focused editor should not be consumed")
	}
}

func TestFormResizeForwards(t *testing.T) {
	renderer := &mockRenderer{}
	f := forms.NewForm("hud", 100, 100, forms.WithRenderer(renderer))
	f.Resize(1024, 768) // must not panic without further wiring

	f.SetRenderer(nil)
	f.Resize(640, 480) // nor without a renderer
}

func BenchmarkFormFrame(b *testing.B) {
	renderer := &mockRenderer{}
	f := forms.NewForm("hud", 1280, 720, forms.WithRenderer(renderer))
	panel := forms.NewContainer("panel", forms.WithBounds(20, 20, 300, 0), forms.WithLayout(forms.LayoutVertical))
	panel.SetAutoHeight(true)
	panel.AddControl(forms.NewLabel("title", forms.WithText("Settings")))
	for i := 0; i < 10; i++ {
		panel.AddControl(forms.NewButton("item", forms.WithText("Item"), forms.WithSize(120, 24)))
	}
	panel.AddControl(forms.NewSlider("volume", forms.WithRange(0, 100), forms.WithValue(40)))
	f.AddControl(panel)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Update(0.016)
		if err := f.Render(); err != nil {
			b.Fatal(err)
		}
	}
}
