// Package ebiten provides an Ebitengine backend for the forms package:
// a Renderer that draws finalized DrawLists with DrawTriangles and
// SubImage clipping, plus an input adapter polled from the game's
// Update callback.
package ebiten

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/forms"
)

// Renderer implements forms.Renderer on top of an ebiten.Image target.
//
// Ebitengine has no persistent render target between frames, so the
// target screen is set from the game's Draw callback before rendering:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    g.renderer.SetScreen(screen)
//	    g.form.Render()
//	}
type Renderer struct {
	screen   *ebiten.Image
	textures map[uint32]*ebiten.Image
	nextID   uint32
	fontTex  uint32

	// 3x3 white image with a 1x1 sub-image sampled at its center, the
	// usual Ebitengine trick for untextured triangles.
	white *ebiten.Image

	scratch []ebiten.Vertex
}

// NewRenderer creates an Ebitengine-backed renderer.
func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		textures: make(map[uint32]*ebiten.Image),
		nextID:   1,
		white:    white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// SetScreen sets the target image for subsequent Render calls. Call it
// at the top of every Draw callback; the screen image is only valid for
// the duration of that callback.
func (r *Renderer) SetScreen(screen *ebiten.Image) {
	r.screen = screen
}

// LoadBasicFont uploads the built-in font's atlas and binds the
// resulting texture ID to the font. The same ID becomes the renderer's
// default font texture.
func (r *Renderer) LoadBasicFont(f *forms.BasicFont) uint32 {
	id := r.UploadRGBA(f.Atlas())
	f.SetTextureID(id)
	r.fontTex = id
	return id
}

// RegisterImage registers an existing ebiten.Image under a fresh
// texture ID so draw lists can reference it. The image's bounds should
// start at the origin; sub-images of a shared atlas are better uploaded
// as separate images.
func (r *Renderer) RegisterImage(img *ebiten.Image) uint32 {
	id := r.nextID
	r.nextID++
	r.textures[id] = img
	return id
}

// UploadRGBA creates a texture from an RGBA image and returns its ID.
func (r *Renderer) UploadRGBA(img *image.RGBA) uint32 {
	return r.RegisterImage(ebiten.NewImageFromImage(img))
}

// UploadAlpha creates a texture from single-channel coverage data, as
// produced by most font rasterizers. Pixels become white with the given
// alpha so vertex colors tint the result.
func (r *Renderer) UploadAlpha(data []byte, width, height int) (uint32, error) {
	if len(data) < width*height {
		return 0, fmt.Errorf("alpha texture data too short: %d bytes for %dx%d", len(data), width, height)
	}
	pix := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		v := data[i]
		pix[i*4+0] = v
		pix[i*4+1] = v
		pix[i*4+2] = v
		pix[i*4+3] = v
	}
	img := ebiten.NewImage(width, height)
	img.WritePixels(pix)
	return r.RegisterImage(img), nil
}

// DeleteTexture releases a texture created by RegisterImage, UploadRGBA
// or UploadAlpha.
func (r *Renderer) DeleteTexture(id uint32) {
	if img, ok := r.textures[id]; ok {
		img.Deallocate()
		delete(r.textures, id)
	}
	if r.fontTex == id {
		r.fontTex = 0
	}
}

// FontTextureID returns the texture ID of the default font atlas, or 0
// if LoadBasicFont has not been called.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// Resize is a no-op; Ebitengine hands the renderer a correctly sized
// screen image every frame.
func (r *Renderer) Resize(width, height int) {}

// Render draws a finalized draw list onto the current screen image.
func (r *Renderer) Render(dl *forms.DrawList) error {
	if r.screen == nil {
		return errors.New("no screen set: call SetScreen from the Draw callback")
	}

	// Finalizing is idempotent; lists from Form.Render arrive finalized,
	// hand-built lists may not.
	dl.Finalize()

	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer) == 0 {
		return nil
	}

	// Convert positions and colors once; source coordinates are filled
	// per command because they depend on the bound texture's size.
	if cap(r.scratch) < len(dl.VtxBuffer) {
		r.scratch = make([]ebiten.Vertex, len(dl.VtxBuffer))
	}
	vs := r.scratch[:len(dl.VtxBuffer)]
	for i, v := range dl.VtxBuffer {
		vs[i] = ebiten.Vertex{
			DstX:   v.Pos[0],
			DstY:   v.Pos[1],
			ColorR: float32(v.Color&0xFF) / 255,
			ColorG: float32(v.Color>>8&0xFF) / 255,
			ColorB: float32(v.Color>>16&0xFF) / 255,
			ColorA: float32(v.Color>>24&0xFF) / 255,
		}
	}

	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}
	screenBounds := r.screen.Bounds()

	for ci := range dl.CmdBuffer {
		cmd := &dl.CmdBuffer[ci]
		if cmd.ElemCount == 0 {
			continue
		}

		clip := image.Rect(
			int(cmd.ClipRect[0]), int(cmd.ClipRect[1]),
			int(cmd.ClipRect[2]), int(cmd.ClipRect[3]),
		).Intersect(screenBounds)
		if clip.Empty() {
			continue
		}

		// Each command's vertices occupy the half-open range from its
		// vertex offset to the next command's.
		start := int(cmd.VertexOffset)
		end := len(vs)
		if ci+1 < len(dl.CmdBuffer) {
			end = int(dl.CmdBuffer[ci+1].VertexOffset)
		}

		src := r.white
		if cmd.TextureID != 0 {
			img, ok := r.textures[cmd.TextureID]
			if !ok {
				return fmt.Errorf("draw list references unknown texture %d", cmd.TextureID)
			}
			src = img
			size := img.Bounds().Size()
			sw, sh := float32(size.X), float32(size.Y)
			for i := start; i < end; i++ {
				vs[i].SrcX = dl.VtxBuffer[i].TexCoord[0] * sw
				vs[i].SrcY = dl.VtxBuffer[i].TexCoord[1] * sh
			}
		} else {
			for i := start; i < end; i++ {
				vs[i].SrcX = 1
				vs[i].SrcY = 1
			}
		}

		// Indices are stored relative to the command's vertex offset, so
		// they index the vertex sub-slice directly. Sub-images share the
		// screen's coordinate space, which makes them a scissor rect.
		target := r.screen.SubImage(clip).(*ebiten.Image)
		target.DrawTriangles(
			vs[start:],
			dl.IdxBuffer[cmd.IndexOffset:cmd.IndexOffset+cmd.ElemCount],
			src,
			op,
		)
	}
	return nil
}
