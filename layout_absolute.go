package forms

// AbsoluteLayout honors the positions set on each child and moves nothing.
// Children whose alignment is anything other than top-left are the
// exception: they are anchored to the matching edge of the container's
// viewport instead, margins included.
type AbsoluteLayout struct{}

// NewAbsoluteLayout creates an absolute layout.
func NewAbsoluteLayout() *AbsoluteLayout { return &AbsoluteLayout{} }

// Type returns LayoutAbsolute.
func (l *AbsoluteLayout) Type() LayoutType { return LayoutAbsolute }

func (l *AbsoluteLayout) update(ct *Container) {
	avail := ct.ViewportBounds()
	area := Rect{W: avail.W, H: avail.H}
	for _, w := range ct.Controls() {
		c := w.control()
		if !c.visible {
			continue
		}
		size := layoutSize(w)
		if c.alignment != AlignTopLeft {
			pos := alignPos(area, size, c.alignment, c.Margin(c.state))
			c.bounds.X = pos.X
			c.bounds.Y = pos.Y
		}
	}
}
