package forms

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontProvider abstracts font loading, caching and selection, allowing
// different implementations to be injected (game fonts, system fonts, mock
// fonts for testing).
//
// The forms package does not depend on any concrete font implementation.
// Applications inject a FontProvider when creating a form:
//
//	fontMgr := font.NewManager()
//	fontMgr.LoadFonts(gameDir)
//
//	form := forms.NewForm("hud", 1280, 720, forms.WithFontProvider(fontMgr))
type FontProvider interface {
	// ActiveFont returns the currently active font for rendering.
	// Returns nil if no font is loaded or active.
	ActiveFont() Font

	// SetActiveFont sets the active font by name.
	// Returns an error if the font is not found.
	SetActiveFont(name string) error
}

// Font is a single font that can measure and render text.
//
// Implementations should be GPU-oriented, using pre-generated texture
// atlases rather than CPU rasterization at render time.
type Font interface {
	// TextureID returns the renderer texture ID for the font atlas.
	TextureID() uint32

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// MeasureText returns the pixel dimensions of the text at the given
	// scale. Newlines start a new line.
	MeasureText(text string, scale float32) Vec2

	// GetGlyphQuads generates quads for rendering the text with its top
	// left corner at (x, y). The returned slice should be used immediately
	// and not stored.
	GetGlyphQuads(text string, x, y, scale float32) []GlyphQuad

	// LineHeight returns the line height at the given scale.
	LineHeight(scale float32) float32
}

// fontScale converts a themed font size in pixels to a scale factor for
// the font's natural size. Zero or negative sizes mean natural size.
func fontScale(f Font, size float32) float32 {
	if f == nil || size <= 0 {
		return 1
	}
	if lh := f.LineHeight(1); lh > 0 {
		return size / lh
	}
	return 1
}

// StaticFontProvider is a FontProvider backed by a fixed name-to-font map.
// The zero value is unusable; create one with NewStaticFontProvider.
type StaticFontProvider struct {
	fonts  map[string]Font
	active Font
}

// NewStaticFontProvider creates a provider holding the given font under
// the given name, with that font active.
func NewStaticFontProvider(name string, f Font) *StaticFontProvider {
	return &StaticFontProvider{
		fonts:  map[string]Font{name: f},
		active: f,
	}
}

// AddFont registers a font under a name. The first font added to an empty
// provider becomes active.
func (p *StaticFontProvider) AddFont(name string, f Font) {
	if p.fonts == nil {
		p.fonts = make(map[string]Font)
	}
	p.fonts[name] = f
	if p.active == nil {
		p.active = f
	}
}

// ActiveFont returns the active font, or nil when none is set.
func (p *StaticFontProvider) ActiveFont() Font { return p.active }

// SetActiveFont activates a registered font by name.
func (p *StaticFontProvider) SetActiveFont(name string) error {
	f, ok := p.fonts[name]
	if !ok {
		return fmt.Errorf("font %q not registered", name)
	}
	p.active = f
	return nil
}

// Basic font atlas geometry: ASCII 32-126 in a 16-column grid of
// fixed-size cells rendered from the 7x13 bitmap face.
const (
	basicCellW = 7
	basicCellH = 13
	basicCols  = 16
	basicRows  = 6
	basicFirst = ' '
	basicLast  = '~'
)

// BasicFont is the built-in monospace bitmap font, rendered once into an
// RGBA atlas from the 7x13 face. It needs no font files, which makes it
// the default for examples and headless tests.
//
// The atlas must be uploaded by the application's renderer; pass Atlas()
// to the backend and record the resulting id with SetTextureID.
type BasicFont struct {
	atlas   *image.RGBA
	texture uint32
}

// NewBasicFont rasterizes the builtin face into a fresh atlas.
func NewBasicFont() *BasicFont {
	atlas := image.NewRGBA(image.Rect(0, 0, basicCols*basicCellW, basicRows*basicCellH))
	d := xfont.Drawer{
		Dst:  atlas,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	ascent := basicfont.Face7x13.Ascent
	for r := rune(basicFirst); r <= basicLast; r++ {
		idx := int(r - basicFirst)
		col := idx % basicCols
		row := idx / basicCols
		d.Dot = fixed.P(col*basicCellW, row*basicCellH+ascent)
		d.DrawString(string(r))
	}
	return &BasicFont{atlas: atlas}
}

// Atlas returns the font's glyph atlas for texture upload.
func (f *BasicFont) Atlas() *image.RGBA { return f.atlas }

// TextureID returns the uploaded atlas texture id, zero before upload.
func (f *BasicFont) TextureID() uint32 { return f.texture }

// SetTextureID records the renderer texture holding the atlas.
func (f *BasicFont) SetTextureID(id uint32) { f.texture = id }

// HasGlyph reports whether the rune is in the printable ASCII range.
func (f *BasicFont) HasGlyph(r rune) bool { return r >= basicFirst && r <= basicLast }

// LineHeight returns the scaled cell height.
func (f *BasicFont) LineHeight(scale float32) float32 { return basicCellH * scale }

// MeasureText returns the pixel extent of the text. Newlines wrap to new
// lines; the width is the widest line.
func (f *BasicFont) MeasureText(text string, scale float32) Vec2 {
	if text == "" {
		return Vec2{}
	}
	var maxLine, line float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			maxLine = maxf(maxLine, line)
			line = 0
			lines++
			continue
		}
		line += basicCellW
	}
	maxLine = maxf(maxLine, line)
	return Vec2{X: maxLine * scale, Y: float32(lines) * basicCellH * scale}
}

// GetGlyphQuads generates one quad per visible rune. Runes outside the
// atlas are mapped through glyphFallback, and unmapped ones render as '?'.
func (f *BasicFont) GetGlyphQuads(text string, x, y, scale float32) []GlyphQuad {
	if text == "" {
		return nil
	}
	quads := make([]GlyphQuad, 0, len(text))
	const texW = float32(basicCols * basicCellW)
	const texH = float32(basicRows * basicCellH)
	cw := basicCellW * scale
	ch := basicCellH * scale

	px, py := x, y
	for _, r := range text {
		if r == '\n' {
			px = x
			py += ch
			continue
		}
		g := glyphFallback(r)
		if g < basicFirst || g > basicLast {
			g = '?'
		}
		if g == ' ' {
			px += cw
			continue
		}
		idx := int(g - basicFirst)
		col := float32(idx % basicCols)
		row := float32(idx / basicCols)
		quads = append(quads, GlyphQuad{
			X0: px, Y0: py,
			X1: px + cw, Y1: py + ch,
			U0: col * basicCellW / texW, V0: row * basicCellH / texH,
			U1: (col + 1) * basicCellW / texW, V1: (row + 1) * basicCellH / texH,
		})
		px += cw
	}
	return quads
}

// glyphFallback maps common Unicode symbols to ASCII equivalents for
// fonts limited to ASCII 32-126.
func glyphFallback(r rune) rune {
	if r >= basicFirst && r <= basicLast {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→', '⯈':
		return '>'
	case '◄', '◀', '◂', '←', '⯇':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
