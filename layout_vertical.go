package forms

// VerticalLayout stacks visible children top to bottom in insertion order.
// Each child's vertical margin and the layout's spacing separate the rows;
// the child's horizontal alignment bits position it across the viewport.
type VerticalLayout struct {
	// Spacing is added between consecutive children, on top of margins.
	Spacing float32

	// BottomUp anchors the stack at the bottom of the viewport and grows
	// it upward instead.
	BottomUp bool
}

// NewVerticalLayout creates a vertical layout with no extra spacing.
func NewVerticalLayout() *VerticalLayout { return &VerticalLayout{} }

// Type returns LayoutVertical.
func (l *VerticalLayout) Type() LayoutType { return LayoutVertical }

func (l *VerticalLayout) update(ct *Container) {
	avail := ct.ViewportBounds()

	alignX := func(c *Control, size Vec2, m SideLengths) float32 {
		return alignPos(Rect{W: avail.W, H: size.Y}, size, c.alignment&(AlignLeft|AlignHCenter|AlignRight), m).X
	}

	if l.BottomUp {
		y := avail.H
		first := true
		for _, w := range ct.Controls() {
			c := w.control()
			if !c.visible {
				continue
			}
			size := layoutSize(w)
			m := c.Margin(c.state)
			if !first {
				y -= l.Spacing
			}
			first = false
			y -= m.Bottom + size.Y
			c.bounds.X = alignX(c, size, m)
			c.bounds.Y = y
			y -= m.Top
		}
		return
	}

	var y float32
	first := true
	for _, w := range ct.Controls() {
		c := w.control()
		if !c.visible {
			continue
		}
		size := layoutSize(w)
		m := c.Margin(c.state)
		if !first {
			y += l.Spacing
		}
		first = false
		y += m.Top
		c.bounds.X = alignX(c, size, m)
		c.bounds.Y = y
		y += size.Y + m.Bottom
	}
}
