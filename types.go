package forms

// Vec2 is a 2D point or extent in pixels.
type Vec2 struct {
	X, Y float32
}

// Add returns v translated by o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v translated by the negation of o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v with both components scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle. The origin sits at the top left
// and the extent grows right and down.
type Rect struct {
	X, Y float32
	W, H float32
}

// Contains reports whether p falls inside r. Points on the right and
// bottom edges are outside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether r and o overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Intersect returns the overlap of r and o, or the zero Rect when
// there is none.
func (r Rect) Intersect(o Rect) Rect {
	x1 := maxf(r.X, o.X)
	y1 := maxf(r.Y, o.Y)
	x2 := minf(r.X+r.W, o.X+o.W)
	y2 := minf(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// SideLengths holds per-side thickness values for margins, borders and
// padding.
type SideLengths struct {
	Top, Bottom, Left, Right float32
}

// Horizontal returns the combined left and right thickness.
func (s SideLengths) Horizontal() float32 {
	return s.Left + s.Right
}

// Vertical returns the combined top and bottom thickness.
func (s SideLengths) Vertical() float32 {
	return s.Top + s.Bottom
}

// UniformSides returns a SideLengths with the same thickness on every
// side.
func UniformSides(v float32) SideLengths {
	return SideLengths{Top: v, Bottom: v, Left: v, Right: v}
}

// Vertex is one corner of a textured, colored triangle. Field order
// and types are the exact attribute layout the renderers bind, so the
// struct must not be rearranged.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd is one renderer draw call: a contiguous index range sharing
// a texture and a clip rectangle.
type DrawCmd struct {
	ElemCount    uint32     // indices to draw
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 means untextured
	VertexOffset uint32     // first vertex in the list's buffer
	IndexOffset  uint32     // first index in the list's buffer
}

// Packed colors are 0xAABBGGRR, alpha in the top byte and red in the
// bottom, the byte order GL consumes for RGBA8 vertex attributes.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorMagenta     uint32 = 0xFFFF00FF
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA packs four 8-bit channels into a color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf packs four float channels into a color, clamping each to
// [0, 1] first.
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(channelByte(r), channelByte(g), channelByte(b), channelByte(a))
}

func channelByte(v float32) uint8 {
	return uint8(clampf(v, 0, 1) * 255)
}

// UnpackRGBA splits a packed color back into its channels.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// ModulateAlpha scales the alpha channel of a packed color by opacity.
// Used when drawing controls whose effective opacity is below 1.
func ModulateAlpha(c uint32, opacity float32) uint32 {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return c &^ 0xFF000000
	}
	a := float32(c>>24) * opacity
	return c&0x00FFFFFF | uint32(a)<<24
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func maxf(a, b float32) float32 {
	if a < b {
		return b
	}
	return a
}

func minf(a, b float32) float32 {
	if b < a {
		return b
	}
	return a
}
