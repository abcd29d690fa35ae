package forms_test

import (
	"testing"

	"github.com/go-theft-auto/forms"
)

// stackForm builds a form holding one container under the given layout.
func stackForm(t *testing.T, w, h float32, l forms.Layout) (*forms.Form, *forms.Container) {
	t.Helper()
	f := bareForm(w, h)
	ct := forms.NewContainer("panel", forms.WithBounds(0, 0, w, h))
	ct.SetLayout(l)
	f.AddControl(ct)
	return f, ct
}

func fixedLabel(id string, w, h float32) *forms.Label {
	return forms.NewLabel(id, forms.WithBounds(0, 0, w, h))
}

func TestVerticalLayoutStacks(t *testing.T) {
	f, ct := stackForm(t, 200, 300, forms.NewVerticalLayout())
	c1 := fixedLabel("c1", 100, 50)
	c2 := fixedLabel("c2", 100, 50)
	c3 := fixedLabel("c3", 100, 50)
	ct.AddControl(c1)
	ct.AddControl(c2)
	ct.AddControl(c3)
	f.Update(0)

	for i, c := range []*forms.Label{c1, c2, c3} {
		want := float32(i) * 50
		if got := c.Position(); got.Y != want || got.X != 0 {
			t.Errorf("child %d: expected {0 %g}, got %+v", i, want, got)
		}
	}
}

func TestVerticalLayoutSpacing(t *testing.T) {
	f, ct := stackForm(t, 200, 300, &forms.VerticalLayout{Spacing: 10})
	var kids []*forms.Label
	for i := 0; i < 3; i++ {
		c := fixedLabel("c", 100, 50)
		kids = append(kids, c)
		ct.AddControl(c)
	}
	f.Update(0)

	for i, want := range []float32{0, 60, 120} {
		if got := kids[i].Position().Y; got != want {
			t.Errorf("child %d: expected y %g, got %g", i, want, got)
		}
	}
}

func TestVerticalLayoutMargins(t *testing.T) {
	f, ct := stackForm(t, 200, 300, forms.NewVerticalLayout())
	c1 := fixedLabel("c1", 100, 50)
	c2 := fixedLabel("c2", 100, 50)
	c2.SetMargin(forms.SideLengths{Top: 5, Bottom: 5})
	c3 := fixedLabel("c3", 100, 50)
	ct.AddControl(c1)
	ct.AddControl(c2)
	ct.AddControl(c3)
	f.Update(0)

	for i, c := range []*forms.Label{c1, c2, c3} {
		want := []float32{0, 55, 110}[i]
		if got := c.Position().Y; got != want {
			t.Errorf("child %d: expected y %g, got %g", i, want, got)
		}
	}
}

func TestVerticalLayoutSkipsHidden(t *testing.T) {
	f, ct := stackForm(t, 200, 300, forms.NewVerticalLayout())
	c1 := fixedLabel("c1", 100, 50)
	c2 := fixedLabel("c2", 100, 50)
	c2.SetVisible(false)
	c3 := fixedLabel("c3", 100, 50)
	ct.AddControl(c1)
	ct.AddControl(c2)
	ct.AddControl(c3)
	f.Update(0)

	if got := c3.Position().Y; got != 50 {
		t.Errorf("expected the hidden child to take no row, got y %g", got)
	}
}

func TestVerticalLayoutBottomUp(t *testing.T) {
	f, ct := stackForm(t, 200, 300, &forms.VerticalLayout{BottomUp: true})
	c1 := fixedLabel("c1", 100, 50)
	c2 := fixedLabel("c2", 100, 50)
	ct.AddControl(c1)
	ct.AddControl(c2)
	f.Update(0)

	if got := c1.Position().Y; got != 250 {
		t.Errorf("expected the first child on the bottom edge, got y %g", got)
	}
	if got := c2.Position().Y; got != 200 {
		t.Errorf("expected the stack to grow upward, got y %g", got)
	}
}

func TestVerticalLayoutHorizontalAlignment(t *testing.T) {
	f, ct := stackForm(t, 200, 300, forms.NewVerticalLayout())
	right := forms.NewLabel("right", forms.WithBounds(0, 0, 50, 20), forms.WithAlignment(forms.AlignTopRight))
	center := forms.NewLabel("center", forms.WithBounds(0, 0, 50, 20), forms.WithAlignment(forms.AlignTopHCenter))
	ct.AddControl(right)
	ct.AddControl(center)
	f.Update(0)

	if got := right.Position().X; got != 150 {
		t.Errorf("expected right-aligned at x 150, got %g", got)
	}
	if got := center.Position().X; got != 75 {
		t.Errorf("expected centered at x 75, got %g", got)
	}
}

func TestFlowLayoutWraps(t *testing.T) {
	f, ct := stackForm(t, 200, 100, forms.NewFlowLayout())
	c1 := fixedLabel("c1", 90, 20)
	c2 := fixedLabel("c2", 90, 20)
	c3 := fixedLabel("c3", 90, 20)
	ct.AddControl(c1)
	ct.AddControl(c2)
	ct.AddControl(c3)
	f.Update(0)

	want := []forms.Vec2{{X: 0, Y: 0}, {X: 94, Y: 0}, {X: 0, Y: 24}}
	for i, c := range []*forms.Label{c1, c2, c3} {
		if got := c.Position(); got != want[i] {
			t.Errorf("child %d: expected %+v, got %+v", i, want[i], got)
		}
	}
}

func TestFlowLayoutRowHeightFromTallest(t *testing.T) {
	f, ct := stackForm(t, 200, 100, forms.NewFlowLayout())
	ct.AddControl(fixedLabel("short", 90, 20))
	ct.AddControl(fixedLabel("tall", 90, 30))
	wrapped := fixedLabel("wrapped", 90, 20)
	ct.AddControl(wrapped)
	f.Update(0)

	if got := wrapped.Position().Y; got != 34 {
		t.Errorf("expected the second row below the tallest child, got y %g", got)
	}
}

func TestFlowLayoutMarginsAdvance(t *testing.T) {
	f, ct := stackForm(t, 400, 100, forms.NewFlowLayout())
	c1 := fixedLabel("c1", 50, 20)
	c1.SetMargin(forms.SideLengths{Left: 3, Right: 7})
	c2 := fixedLabel("c2", 50, 20)
	ct.AddControl(c1)
	ct.AddControl(c2)
	f.Update(0)

	if got := c1.Position().X; got != 3 {
		t.Errorf("expected the left margin honored, got x %g", got)
	}
	// 3 + 50 + 7 advance, then the default spacing.
	if got := c2.Position().X; got != 64 {
		t.Errorf("expected the next child at x 64, got %g", got)
	}
}

func TestFlowLayoutOversizedChildOwnsRow(t *testing.T) {
	f, ct := stackForm(t, 200, 200, forms.NewFlowLayout())
	a := fixedLabel("a", 50, 20)
	wide := fixedLabel("wide", 300, 20)
	c := fixedLabel("c", 50, 20)
	ct.AddControl(a)
	ct.AddControl(wide)
	ct.AddControl(c)
	f.Update(0)

	// A child wider than the viewport still gets a row of its own at x 0
	// rather than wrapping forever; the draw pass clips the overflow.
	if got := a.Position(); got != (forms.Vec2{X: 0, Y: 0}) {
		t.Errorf("a: expected {0 0}, got %+v", got)
	}
	if got := wide.Position(); got != (forms.Vec2{X: 0, Y: 24}) {
		t.Errorf("wide: expected {0 24}, got %+v", got)
	}
	if got := c.Position(); got != (forms.Vec2{X: 0, Y: 48}) {
		t.Errorf("c: expected {0 48}, got %+v", got)
	}
}

func TestAbsoluteLayoutAnchors(t *testing.T) {
	f, ct := stackForm(t, 200, 100, forms.NewAbsoluteLayout())
	corner := forms.NewLabel("corner", forms.WithBounds(0, 0, 50, 40), forms.WithAlignment(forms.AlignBottomRight))
	corner.SetMargin(forms.SideLengths{Right: 5, Bottom: 3})
	top := forms.NewLabel("top", forms.WithBounds(0, 0, 100, 20), forms.WithAlignment(forms.AlignTopHCenter))
	ct.AddControl(corner)
	ct.AddControl(top)
	f.Update(0)

	if got := corner.Position(); got != (forms.Vec2{X: 145, Y: 57}) {
		t.Errorf("expected the corner anchor {145 57}, got %+v", got)
	}
	if got := top.Position(); got != (forms.Vec2{X: 50, Y: 0}) {
		t.Errorf("expected the centered anchor {50 0}, got %+v", got)
	}
}

func TestAbsoluteLayoutLeavesTopLeft(t *testing.T) {
	f, ct := stackForm(t, 200, 100, forms.NewAbsoluteLayout())
	c := fixedLabel("c", 30, 30)
	c.SetPosition(17, 23)
	ct.AddControl(c)
	f.Update(0)

	if got := c.Position(); got != (forms.Vec2{X: 17, Y: 23}) {
		t.Errorf("expected the explicit position kept, got %+v", got)
	}
}

func TestNewLayoutFactory(t *testing.T) {
	cases := []struct {
		t    forms.LayoutType
		want forms.LayoutType
	}{
		{forms.LayoutAbsolute, forms.LayoutAbsolute},
		{forms.LayoutVertical, forms.LayoutVertical},
		{forms.LayoutFlow, forms.LayoutFlow},
	}
	for _, c := range cases {
		if got := forms.NewLayout(c.t).Type(); got != c.want {
			t.Errorf("NewLayout(%v): expected %v, got %v", c.t, c.want, got)
		}
	}

	// Unknown types degrade to absolute.
	if got := forms.NewLayout(forms.LayoutType(99)).Type(); got != forms.LayoutAbsolute {
		t.Errorf("expected the absolute fallback, got %v", got)
	}

	forms.SetStrictContracts(true)
	defer forms.SetStrictContracts(false)
	mustPanic(t, "unknown layout type", func() { forms.NewLayout(forms.LayoutType(99)) })
}
