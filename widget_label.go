package forms

import "strings"

// Label displays static text inside its viewport, aligned per the style's
// text alignment. Labels auto-size to their text by default and do not
// consume input events, so touches fall through to widgets behind them.
type Label struct {
	Control
	text string
	wrap bool
}

// NewLabel creates a label.
func NewLabel(id string, opts ...Option) *Label {
	l := &Label{}
	l.initControl(l, id)
	l.consumeInput = false
	l.autoWidth = true
	l.autoHeight = true
	o := applyControlOptions(l, opts)
	l.text = GetOpt(o, OptText)
	l.wrap = GetOpt(o, OptTextWrap)
	return l
}

// Kind returns "label".
func (l *Label) Kind() string { return "label" }

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.markDirty()
}

// TextWrap reports whether long lines wrap to the viewport width.
func (l *Label) TextWrap() bool { return l.wrap }

// SetTextWrap toggles wrapping of long lines to the viewport width.
// Wrapped labels usually pair with a fixed width and auto height.
func (l *Label) SetTextWrap(wrap bool) {
	if l.wrap == wrap {
		return
	}
	l.wrap = wrap
	l.markDirty()
}

func (l *Label) measure() Vec2 {
	return l.textSize(l.text, l.wrap)
}

func (l *Label) draw(dl *DrawList, opacity float32) {
	l.drawSkin(dl, opacity)
	l.drawText(dl, l.text, l.wrap, opacity)
}

// textScale converts an overlay font size to a glyph scale factor.
// Size zero keeps the font's native raster size.
func textScale(f Font, size float32) float32 {
	if size <= 0 {
		return 1
	}
	return fontScale(f, size)
}

// breakLines splits text into draw lines: explicit newlines always break,
// and with wrap enabled each paragraph is wrapped to fit maxWidth.
func breakLines(f Font, text string, scale, maxWidth float32, wrap bool) []string {
	paragraphs := strings.Split(text, "\n")
	if !wrap || maxWidth <= 0 {
		return paragraphs
	}
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, WrapText(f, p, scale, maxWidth, WrapModeAuto)...)
	}
	return lines
}

// mirrorAlignment flips the horizontal alignment bits so right-to-left text
// anchors at the opposite edge.
func mirrorAlignment(a Alignment) Alignment {
	v := a &^ (AlignLeft | AlignHCenter | AlignRight)
	switch {
	case a&AlignHCenter != 0:
		return a
	case a&AlignRight != 0:
		return v | AlignLeft
	default:
		return v | AlignRight
	}
}

// textSize measures text with the normal-state font. Wrap measurement uses
// the viewport width from the previous layout pass; auto-sized wrapped text
// settles on the second update.
func (c *Control) textSize(text string, wrap bool) Vec2 {
	if text == "" {
		return Vec2{}
	}
	f := c.Font()
	if f == nil {
		return Vec2{}
	}
	scale := textScale(f, c.FontSize())
	lines := breakLines(f, text, scale, c.viewportBounds.W, wrap)
	size := Vec2{Y: f.LineHeight(scale) * float32(len(lines))}
	for _, line := range lines {
		if w := measureText(f, line, scale).X; w > size.X {
			size.X = w
		}
	}
	return size
}

// drawText renders text inside the viewport using the current state's font,
// size, color and alignment. Each line is aligned independently; the block
// of lines is positioned by the vertical alignment bits.
func (c *Control) drawText(dl *DrawList, text string, wrap bool, opacity float32) {
	c.drawTextArea(dl, c.viewportBounds, c.viewportClipBounds, text, wrap, opacity)
}

// drawTextArea renders text into an explicit area, for widgets that share
// their viewport between text and other art.
func (c *Control) drawTextArea(dl *DrawList, area, clip Rect, text string, wrap bool, opacity float32) {
	align := c.TextAlignment(c.state)
	if c.TextRightToLeft(c.state) {
		align = mirrorAlignment(align)
	}
	c.drawAlignedText(dl, area, clip, text, wrap, align, opacity)
}

// drawAlignedText renders text with an explicit alignment, bypassing the
// style's text alignment.
func (c *Control) drawAlignedText(dl *DrawList, area, clip Rect, text string, wrap bool, align Alignment, opacity float32) {
	if text == "" {
		return
	}
	f := c.Font(c.state)
	if f == nil || f.TextureID() == 0 {
		return
	}
	color := ModulateAlpha(c.TextColor(c.state), opacity)
	if color>>24 == 0 {
		return
	}
	if area.IsEmpty() || clip.IsEmpty() {
		return
	}
	scale := textScale(f, c.FontSize(c.state))
	lines := breakLines(f, text, scale, area.W, wrap)
	lineH := f.LineHeight(scale)
	blockH := lineH * float32(len(lines))

	dl.PushClipRect(clip)
	dl.SetTexture(f.TextureID())
	y := alignPos(area, Vec2{Y: blockH}, align, SideLengths{}).Y
	for _, line := range lines {
		if line != "" {
			lw := measureText(f, line, scale).X
			x := alignPos(area, Vec2{X: lw}, align, SideLengths{}).X
			dl.AddGlyphQuads(f.GetGlyphQuads(line, x, y, scale), color)
		}
		y += lineH
	}
	dl.PopClipRect()
}
