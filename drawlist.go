package forms

import (
	"sync"

	earcut "github.com/flywave/go-earcut"
)

// Draw lists are pooled: the form rebuilds its list on every Render, and
// reusing the buffers keeps steady-state frames allocation free.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clips:     make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList returns a cleared DrawList from the pool. Pair it with
// ReleaseDrawList.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList puts a DrawList back in the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates a frame's vertices, indices and draw commands.
// Consecutive primitives sharing a texture and clip rectangle batch into
// a single command.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clips   [][4]float32
	clip    [4]float32
	texture uint32
	vtxBase uint32 // VtxBuffer length when the open command started
	idxBase uint32 // IdxBuffer length when the open command started
}

// Clear empties the list for a new frame, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clips = dl.clips[:0]
	dl.clip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.texture = 0
	dl.vtxBase = 0
	dl.idxBase = 0
}

// PushClipRect makes r the scissor for subsequent primitives. The
// rectangle is taken as given, not intersected with the previous top.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clips = append(dl.clips, dl.clip)
	dl.clip = [4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}
	dl.splitDraw()
}

// PopClipRect restores the clip rectangle active before the matching push.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clips)
	if n > 0 {
		dl.clip = dl.clips[n-1]
		dl.clips = dl.clips[:n-1]
		dl.splitDraw()
	}
}

// sealCommand writes the open command's final element count.
func (dl *DrawList) sealCommand() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxBase
	}
}

// openCommand appends a fresh command at the current buffer offsets.
func (dl *DrawList) openCommand() {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.texture,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.vtxBase = uint32(len(dl.VtxBuffer))
	dl.idxBase = uint32(len(dl.IdxBuffer))
}

// SetTexture selects the texture for subsequent primitives, splitting off
// a new command when it differs from the current one.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.texture == textureID {
		return
	}
	dl.sealCommand()
	dl.texture = textureID
	dl.openCommand()
}

// splitDraw seals the open command and starts the next one under the
// current clip and texture.
func (dl *DrawList) splitDraw() {
	dl.sealCommand()
	dl.openCommand()
}

// addVertices appends vertices and returns their base index relative to
// the open command's vertex offset.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	base := uint16(len(dl.VtxBuffer) - int(dl.vtxBase))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return base
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// quad emits four corners, in top-left winding order, as two triangles.
func (dl *DrawList) quad(tl, tr, br, bl Vertex) {
	i := dl.addVertices(tl, tr, br, bl)
	dl.addIndices(i, i+1, i+2, i, i+2, i+3)
}

// AddRect draws a filled rectangle. Fully transparent colors draw
// nothing, here and in every other primitive.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	dl.SetTexture(0)
	dl.quad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws a rectangle outline as four edge strips: top,
// bottom, then the sides between them.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line as a quad extruded half the thickness to each side.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1.0)
	if dx != 0 || dy != 0 {
		inv = 1.0 / sqrtf(dx*dx+dy*dy)
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.SetTexture(0)
	dl.quad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	dl.SetTexture(0)
	i := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.addIndices(i, i+1, i+2)
}

// AddPolygonFilled draws a filled simple polygon. Concave outlines are
// triangulated; polygons with fewer than three points are skipped.
func (dl *DrawList) AddPolygonFilled(points []Vec2, color uint32) {
	if color&0xFF000000 == 0 || len(points) < 3 {
		return
	}

	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, float64(p.X), float64(p.Y))
	}
	tris, err := earcut.Earcut(flat, nil, 2)
	if err != nil || len(tris) < 3 {
		return
	}

	dl.SetTexture(0)
	verts := make([]Vertex, len(points))
	for i, p := range points {
		verts[i] = Vertex{Pos: [2]float32{p.X, p.Y}, Color: color}
	}
	base := dl.addVertices(verts...)
	for i := 0; i+2 < len(tris); i += 3 {
		dl.addIndices(base+uint16(tris[i]), base+uint16(tris[i+1]), base+uint16(tris[i+2]))
	}
}

// AddTexturedRect draws a rectangle sampling the given texture between the
// normalized coordinates (u0, v0) and (u1, v1), tinted by color.
func (dl *DrawList) AddTexturedRect(r Rect, textureID uint32, u0, v0, u1, v1 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	dl.SetTexture(textureID)
	dl.quad(
		Vertex{Pos: [2]float32{r.X, r.Y}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
}

// AddNinePatch draws a skinned rectangle: the atlas region is split into a
// 3x3 grid by the border insets, corners keep their size, edges stretch
// along one axis and the center stretches along both. Borders larger than
// the destination collapse toward its center.
func (dl *DrawList) AddNinePatch(dst, region Rect, border SideLengths, textureID uint32, atlasSize Vec2, color uint32) {
	if color&0xFF000000 == 0 || dst.IsEmpty() || atlasSize.X <= 0 || atlasSize.Y <= 0 {
		return
	}
	if border == (SideLengths{}) {
		u0 := region.X / atlasSize.X
		v0 := region.Y / atlasSize.Y
		dl.AddTexturedRect(dst, textureID,
			u0, v0,
			(region.X+region.W)/atlasSize.X, (region.Y+region.H)/atlasSize.Y,
			color)
		return
	}

	bl := minf(border.Left, dst.W/2)
	br := minf(border.Right, dst.W/2)
	bt := minf(border.Top, dst.H/2)
	bb := minf(border.Bottom, dst.H/2)

	// Column and row edges in destination and atlas space.
	dx := [4]float32{dst.X, dst.X + bl, dst.X + dst.W - br, dst.X + dst.W}
	dy := [4]float32{dst.Y, dst.Y + bt, dst.Y + dst.H - bb, dst.Y + dst.H}
	sx := [4]float32{region.X, region.X + border.Left, region.X + region.W - border.Right, region.X + region.W}
	sy := [4]float32{region.Y, region.Y + border.Top, region.Y + region.H - border.Bottom, region.Y + region.H}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			w := dx[col+1] - dx[col]
			h := dy[row+1] - dy[row]
			if w <= 0 || h <= 0 {
				continue
			}
			dl.AddTexturedRect(
				Rect{X: dx[col], Y: dy[row], W: w, H: h},
				textureID,
				sx[col]/atlasSize.X, sy[row]/atlasSize.Y,
				sx[col+1]/atlasSize.X, sy[row+1]/atlasSize.Y,
				color,
			)
		}
	}
}

// GlyphQuad is one character's screen rectangle and atlas coordinates.
// 0 names the top-left corner and 1 the bottom-right.
type GlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32
	U0, V0 float32 // atlas UVs
	U1, V1 float32
}

// AddGlyphQuads draws a glyph run in a uniform color. The font atlas
// texture must be set with SetTexture first.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}

	for _, q := range quads {
		dl.quad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
}

// Finalize seals the open command and drops empty ones. Call it once all
// primitives are in; Form.Render does this for its own list.
func (dl *DrawList) Finalize() {
	dl.sealCommand()

	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}

// sqrtf approximates a square root with two Newton iterations from x/2.
func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	guess := x / 2
	guess = (guess + x/guess) / 2
	guess = (guess + x/guess) / 2
	return guess
}
