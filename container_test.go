package forms_test

import (
	"testing"

	"github.com/go-theft-auto/forms"
)

func TestContainerAddAndInsert(t *testing.T) {
	ct := forms.NewContainer("panel")
	b1 := forms.NewButton("b1")
	b2 := forms.NewButton("b2")
	b3 := forms.NewButton("b3")

	ct.AddControl(b1)
	ct.AddControl(b3)
	ct.InsertControl(b2, 1)

	got := ct.Controls()
	if len(got) != 3 {
		t.Fatalf("expected 3 children, got %d", len(got))
	}
	for i, want := range []forms.Widget{b1, b2, b3} {
		if got[i] != want {
			t.Errorf("child %d out of order", i)
		}
	}
	if b2.Parent() != ct {
		t.Error("expected the container as parent")
	}

	// Indexes clamp to the child list.
	first := forms.NewButton("first")
	last := forms.NewButton("last")
	ct.InsertControl(first, -5)
	ct.InsertControl(last, 99)
	if ct.ControlAt(0) != first || ct.ControlAt(4) != last {
		t.Error("expected out-of-range indexes to clamp to the ends")
	}
}

func TestContainerControlAt(t *testing.T) {
	ct := forms.NewContainer("panel")
	b := forms.NewButton("b")
	ct.AddControl(b)

	if ct.ControlAt(0) != b {
		t.Error("expected the child at index 0")
	}
	if ct.ControlAt(-1) != nil || ct.ControlAt(1) != nil {
		t.Error("expected nil outside the child range")
	}
}

func TestContainerRemoveControl(t *testing.T) {
	ct := forms.NewContainer("panel")
	b1 := forms.NewButton("b1")
	b2 := forms.NewButton("b2")
	ct.AddControl(b1)
	ct.AddControl(b2)

	if !ct.RemoveControl(b1) {
		t.Fatal("expected the removal to succeed")
	}
	if b1.Parent() != nil {
		t.Error("expected the removed child to be orphaned")
	}
	if len(ct.Controls()) != 1 || ct.ControlAt(0) != b2 {
		t.Error("expected only b2 to remain")
	}

	if ct.RemoveControl(b1) {
		t.Error("removing a non-child must report false")
	}
	if ct.RemoveControl(nil) {
		t.Error("removing nil must report false")
	}
}

func TestContainerInsertViolations(t *testing.T) {
	ct1 := forms.NewContainer("one")
	ct2 := forms.NewContainer("two")
	b := forms.NewButton("b")
	ct1.AddControl(b)

	// Non-strict: the reparent attempt is dropped.
	ct2.AddControl(b)
	if len(ct2.Controls()) != 0 {
		t.Error("a parented control must not join a second container")
	}
	if b.Parent() != ct1 {
		t.Error("expected the original parent to keep the child")
	}

	forms.SetStrictContracts(true)
	defer forms.SetStrictContracts(false)
	mustPanic(t, "insert nil", func() { ct1.AddControl(nil) })
	mustPanic(t, "reparent", func() { ct2.AddControl(b) })
}

func TestContainerFindControl(t *testing.T) {
	f := bareForm(400, 300)
	outer := forms.NewContainer("outer")
	inner := forms.NewContainer("inner")
	deep := forms.NewButton("deep")
	inner.AddControl(deep)
	outer.AddControl(inner)
	f.AddControl(outer)

	if got := f.FindControl("deep"); got != deep {
		t.Error("expected the nested button by id")
	}
	if got := f.Control("inner"); got != inner {
		t.Error("expected the nested container by id")
	}
	if f.FindControl("missing") != nil {
		t.Error("expected nil for an unknown id")
	}
}

func TestContainerZOrderRouting(t *testing.T) {
	f := bareForm(200, 200)
	low := forms.NewButton("low", forms.WithBounds(0, 0, 50, 50))
	high := forms.NewButton("high", forms.WithBounds(0, 0, 50, 50), forms.WithZIndex(1))
	f.AddControl(low)
	f.AddControl(high)
	f.Update(0)

	click(f, 25, 25)
	if f.Focused() != high {
		t.Error("expected the higher z-index to hit-test first")
	}

	high.SetZIndex(-1)
	f.Update(0)
	click(f, 25, 25)
	if f.Focused() != low {
		t.Error("expected the z change to flip the routing order")
	}
}

func TestContainerZOrderDrawing(t *testing.T) {
	f := bareForm(200, 200)
	low := forms.NewButton("low", forms.WithBounds(0, 0, 50, 50), forms.WithZIndex(1))
	high := forms.NewButton("high", forms.WithBounds(0, 0, 50, 50))
	low.SetSkinColor(forms.ColorRed)
	high.SetSkinColor(forms.ColorGreen)
	f.AddControl(low)
	f.AddControl(high)
	f.Update(0)

	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)
	f.Draw(dl)
	dl.Finalize()

	if len(dl.VtxBuffer) != 8 {
		t.Fatalf("expected 8 vertices for two flat quads, got %d", len(dl.VtxBuffer))
	}
	if dl.VtxBuffer[0].Color != forms.ColorGreen {
		t.Errorf("expected the z 0 quad first, got %#x", dl.VtxBuffer[0].Color)
	}
	if dl.VtxBuffer[4].Color != forms.ColorRed {
		t.Errorf("expected the z 1 quad on top, got %#x", dl.VtxBuffer[4].Color)
	}
}

func TestContainerAutoSizeFromChildren(t *testing.T) {
	f := bareForm(400, 300)
	panel := forms.NewContainer("panel")
	panel.SetAutoWidth(true)
	panel.SetAutoHeight(true)

	child := forms.NewLabel("child", forms.WithBounds(10, 5, 50, 20))
	child.SetMargin(forms.SideLengths{Right: 4, Bottom: 6})
	hidden := forms.NewLabel("hidden", forms.WithBounds(200, 200, 50, 50))
	hidden.SetVisible(false)

	panel.AddControl(child)
	panel.AddControl(hidden)
	f.AddControl(panel)
	f.Update(0)

	if got := panel.Size(); got != (forms.Vec2{X: 64, Y: 31}) {
		t.Errorf("expected content extent {64 31}, got %+v", got)
	}
}

func TestContainerHiddenChildSkipsInput(t *testing.T) {
	f := bareForm(200, 200)
	b := forms.NewButton("b", forms.WithBounds(10, 10, 50, 30))
	f.AddControl(b)
	f.Update(0)
	b.SetVisible(false)

	press(f, 20, 20)
	if f.Focused() != nil {
		t.Error("a hidden child must not take the press")
	}
	if b.State() != forms.StateNormal {
		t.Errorf("hidden child state must not change, got %v", b.State())
	}
	release(f, 20, 20)
}

func TestContainerRemoveSweepsFocusAndContacts(t *testing.T) {
	f := bareForm(400, 300)
	panel := forms.NewContainer("panel", forms.WithBounds(0, 0, 200, 200))
	b := forms.NewButton("b", forms.WithBounds(10, 10, 80, 30))
	panel.AddControl(b)
	f.AddControl(panel)
	f.Update(0)

	press(f, 20, 20)
	if f.Focused() != b {
		t.Fatal("expected the press to focus the button")
	}

	if !f.RemoveControl(panel) {
		t.Fatal("expected the panel removal to succeed")
	}
	if f.Focused() != nil {
		t.Error("removing the subtree must clear focus")
	}
	if release(f, 20, 20) {
		t.Error("the held contact must be severed with the subtree")
	}
}

func TestContainerSetLayout(t *testing.T) {
	ct := forms.NewContainer("panel")
	if ct.Layout().Type() != forms.LayoutAbsolute {
		t.Errorf("expected the absolute default, got %v", ct.Layout().Type())
	}

	vl := forms.NewVerticalLayout()
	ct.SetLayout(vl)
	if ct.Layout() != vl {
		t.Error("expected the assigned layout")
	}

	ct.SetLayout(nil)
	if ct.Layout() != vl {
		t.Error("a nil layout must be rejected")
	}

	forms.SetStrictContracts(true)
	defer forms.SetStrictContracts(false)
	mustPanic(t, "SetLayout(nil)", func() { ct.SetLayout(nil) })
}

func TestContainerLayoutOption(t *testing.T) {
	ct := forms.NewContainer("panel", forms.WithLayout(forms.LayoutFlow))
	if ct.Layout().Type() != forms.LayoutFlow {
		t.Errorf("expected a flow layout, got %v", ct.Layout().Type())
	}
}

func TestContainerUpdateIdempotent(t *testing.T) {
	f := bareForm(300, 200)
	ct := forms.NewContainer("panel", forms.WithBounds(10, 10, 200, 150))
	ct.SetLayout(forms.NewVerticalLayout())
	a := forms.NewLabel("a", forms.WithBounds(0, 0, 80, 30))
	b := forms.NewLabel("b", forms.WithBounds(0, 0, 80, 30))
	ct.AddControl(a)
	ct.AddControl(b)
	f.AddControl(ct)
	f.Update(0)

	type geometry interface {
		Bounds() forms.Rect
		ClipBounds() forms.Rect
		AbsoluteBounds() forms.Rect
		AbsoluteClipBounds() forms.Rect
		ViewportBounds() forms.Rect
		ViewportClipBounds() forms.Rect
	}
	snap := func() [3][6]forms.Rect {
		var out [3][6]forms.Rect
		for i, g := range []geometry{ct, a, b} {
			out[i] = [6]forms.Rect{
				g.Bounds(), g.ClipBounds(), g.AbsoluteBounds(),
				g.AbsoluteClipBounds(), g.ViewportBounds(), g.ViewportClipBounds(),
			}
		}
		return out
	}

	before := snap()
	f.Update(0.016)
	if got := snap(); got != before {
		t.Errorf("clean update moved geometry: expected %+v, got %+v", before, got)
	}

	// A dirty walk that changes no geometry must settle on the same
	// rectangles.
	b.SetZIndex(5)
	f.Update(0.016)
	if got := snap(); got != before {
		t.Errorf("dirty no-op update moved geometry: expected %+v, got %+v", before, got)
	}
}

func TestContainerNestedClipContainment(t *testing.T) {
	f := bareForm(300, 200)
	outer := forms.NewContainer("outer", forms.WithBounds(20, 20, 200, 100))
	outer.SetPadding(forms.UniformSides(5))
	inner := forms.NewContainer("inner", forms.WithBounds(150, 10, 100, 80))
	g1 := forms.NewLabel("g1", forms.WithBounds(20, 60, 60, 40))
	g2 := forms.NewLabel("g2", forms.WithBounds(80, 10, 40, 30))
	inner.AddControl(g1)
	inner.AddControl(g2)
	outer.AddControl(inner)
	f.AddControl(outer)
	f.Update(0)

	if got := outer.ViewportClipBounds(); got != (forms.Rect{X: 25, Y: 25, W: 190, H: 90}) {
		t.Errorf("outer viewport clip: expected {25 25 190 90}, got %+v", got)
	}
	// The inner container hangs past the outer viewport's right edge.
	if got := inner.AbsoluteBounds(); got != (forms.Rect{X: 175, Y: 35, W: 100, H: 80}) {
		t.Errorf("inner absolute: expected {175 35 100 80}, got %+v", got)
	}
	if got := inner.AbsoluteClipBounds(); got != (forms.Rect{X: 175, Y: 35, W: 40, H: 80}) {
		t.Errorf("inner absolute clip: expected {175 35 40 80}, got %+v", got)
	}
	if got := inner.ClipBounds(); got != (forms.Rect{X: 150, Y: 10, W: 40, H: 80}) {
		t.Errorf("inner clip: expected {150 10 40 80}, got %+v", got)
	}
	if got := inner.ViewportClipBounds(); got != (forms.Rect{X: 175, Y: 35, W: 40, H: 80}) {
		t.Errorf("inner viewport clip: expected {175 35 40 80}, got %+v", got)
	}

	// The grandchild clips against the already-clipped inner viewport, so
	// its clip is inside every ancestor clip.
	if got := g1.AbsoluteClipBounds(); got != (forms.Rect{X: 195, Y: 95, W: 20, H: 20}) {
		t.Errorf("g1 absolute clip: expected {195 95 20 20}, got %+v", got)
	}
	if got := g1.AbsoluteClipBounds().Intersect(inner.ViewportClipBounds()); got != g1.AbsoluteClipBounds() {
		t.Errorf("g1 clip escapes the inner clip: %+v", got)
	}
	if !g2.AbsoluteClipBounds().IsEmpty() {
		t.Errorf("g2 sits past the clipped region, expected an empty clip, got %+v", g2.AbsoluteClipBounds())
	}
}
