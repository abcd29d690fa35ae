package forms

// FlowLayout places visible children left to right in insertion order and
// wraps to a new row when the next child would cross the viewport's right
// edge. Row height is the tallest child in the row including its margins.
type FlowLayout struct {
	// HorizontalSpacing separates children within a row.
	HorizontalSpacing float32

	// VerticalSpacing separates rows.
	VerticalSpacing float32
}

// NewFlowLayout creates a flow layout with the default spacing.
func NewFlowLayout() *FlowLayout {
	return &FlowLayout{HorizontalSpacing: SpaceSM, VerticalSpacing: SpaceSM}
}

// Type returns LayoutFlow.
func (l *FlowLayout) Type() LayoutType { return LayoutFlow }

func (l *FlowLayout) update(ct *Container) {
	avail := ct.ViewportBounds()

	var x, y, rowH float32
	firstInRow := true
	for _, w := range ct.Controls() {
		c := w.control()
		if !c.visible {
			continue
		}
		size := layoutSize(w)
		m := c.Margin(c.state)
		advance := m.Left + size.X + m.Right

		if !firstInRow && x+l.HorizontalSpacing+advance > avail.W {
			x = 0
			y += rowH + l.VerticalSpacing
			rowH = 0
			firstInRow = true
		}
		if !firstInRow {
			x += l.HorizontalSpacing
		}
		firstInRow = false

		c.bounds.X = x + m.Left
		c.bounds.Y = y + m.Top
		x += advance
		rowH = maxf(rowH, m.Top+size.Y+m.Bottom)
	}
}
