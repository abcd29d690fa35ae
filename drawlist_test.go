package forms_test

import (
	"testing"

	"github.com/go-theft-auto/forms"
)

func TestDrawListAddRect(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.AddRect(10, 20, 30, 40, forms.ColorRed)
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("expected 1 command, got %d", len(dl.CmdBuffer))
	}
	cmd := dl.CmdBuffer[0]
	if cmd.ElemCount != 6 || cmd.VertexOffset != 0 || cmd.IndexOffset != 0 {
		t.Errorf("expected 6 elems at offset 0/0, got %d at %d/%d", cmd.ElemCount, cmd.VertexOffset, cmd.IndexOffset)
	}
	if cmd.TextureID != 0 {
		t.Errorf("expected untextured command, got texture %d", cmd.TextureID)
	}
	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Fatalf("expected 4 verts and 6 indices, got %d / %d", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if dl.VtxBuffer[0].Pos != [2]float32{10, 20} || dl.VtxBuffer[2].Pos != [2]float32{40, 60} {
		t.Errorf("unexpected corner positions %v and %v", dl.VtxBuffer[0].Pos, dl.VtxBuffer[2].Pos)
	}
	if dl.VtxBuffer[0].Color != forms.ColorRed {
		t.Errorf("expected red vertices, got %#x", dl.VtxBuffer[0].Color)
	}
	want := []uint16{0, 1, 2, 0, 2, 3}
	for i, idx := range want {
		if dl.IdxBuffer[i] != idx {
			t.Errorf("index %d: expected %d, got %d", i, idx, dl.IdxBuffer[i])
		}
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, forms.ColorTransparent)
	dl.AddRect(0, 0, 10, 10, forms.RGBA(10, 10, 10, 0))
	dl.AddTriangle(0, 0, 5, 0, 5, 5, forms.ColorTransparent)
	dl.AddGlyphQuads([]forms.GlyphQuad{{X1: 5, Y1: 5}}, forms.ColorTransparent)
	dl.Finalize()

	if len(dl.CmdBuffer) != 0 || len(dl.VtxBuffer) != 0 {
		t.Errorf("expected nothing drawn, got %d commands and %d verts", len(dl.CmdBuffer), len(dl.VtxBuffer))
	}
}

func TestDrawListClipSplitsCommands(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, forms.ColorWhite)
	dl.PushClipRect(forms.Rect{X: 5, Y: 5, W: 20, H: 20})
	dl.AddRect(5, 5, 10, 10, forms.ColorWhite)
	dl.PopClipRect()
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	first, second := dl.CmdBuffer[0], dl.CmdBuffer[1]
	if first.ElemCount != 6 || second.ElemCount != 6 {
		t.Errorf("expected 6 elems per command, got %d / %d", first.ElemCount, second.ElemCount)
	}
	if second.VertexOffset != 4 || second.IndexOffset != 6 {
		t.Errorf("expected second command at offset 4/6, got %d/%d", second.VertexOffset, second.IndexOffset)
	}
	if second.ClipRect != [4]float32{5, 5, 25, 25} {
		t.Errorf("expected clip {5 5 25 25}, got %v", second.ClipRect)
	}
}

func TestDrawListTextureSwitchSplitsCommands(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 5, 5, forms.ColorWhite)
	dl.AddTexturedRect(forms.Rect{W: 5, H: 5}, 7, 0, 0, 1, 1, forms.ColorWhite)
	dl.AddRect(0, 0, 5, 5, forms.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(dl.CmdBuffer))
	}
	wantTex := []uint32{0, 7, 0}
	wantVtx := []uint32{0, 4, 8}
	wantIdx := []uint32{0, 6, 12}
	for i, cmd := range dl.CmdBuffer {
		if cmd.TextureID != wantTex[i] {
			t.Errorf("command %d: expected texture %d, got %d", i, wantTex[i], cmd.TextureID)
		}
		if cmd.VertexOffset != wantVtx[i] || cmd.IndexOffset != wantIdx[i] {
			t.Errorf("command %d: expected offsets %d/%d, got %d/%d", i, wantVtx[i], wantIdx[i], cmd.VertexOffset, cmd.IndexOffset)
		}
		if cmd.ElemCount != 6 {
			t.Errorf("command %d: expected 6 elems, got %d", i, cmd.ElemCount)
		}
	}
}

func TestDrawListSameTextureBatches(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.AddTexturedRect(forms.Rect{W: 5, H: 5}, 7, 0, 0, 1, 1, forms.ColorWhite)
	dl.AddTexturedRect(forms.Rect{X: 10, W: 5, H: 5}, 7, 0, 0, 1, 1, forms.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("expected a single batched command, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 12 || len(dl.VtxBuffer) != 8 {
		t.Errorf("expected 12 elems over 8 verts, got %d / %d", dl.CmdBuffer[0].ElemCount, len(dl.VtxBuffer))
	}
}

func TestDrawListRectOutline(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.AddRectOutline(0, 0, 10, 10, forms.ColorWhite, 1)
	dl.Finalize()

	if len(dl.VtxBuffer) != 16 || len(dl.IdxBuffer) != 24 {
		t.Fatalf("expected 16 verts and 24 indices, got %d / %d", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if dl.VtxBuffer[4].Pos != [2]float32{0, 9} {
		t.Errorf("expected bottom edge to start at {0 9}, got %v", dl.VtxBuffer[4].Pos)
	}
}

func TestDrawListLine(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.AddLine(0, 0, 10, 0, forms.ColorWhite, 2)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Fatalf("expected one quad, got %d verts / %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	top, bottom := dl.VtxBuffer[0].Pos[1], dl.VtxBuffer[3].Pos[1]
	if top <= 0 || bottom != -top {
		t.Errorf("expected quad expanded symmetrically about the line, got %v / %v", top, bottom)
	}
	if dl.VtxBuffer[1].Pos[0] != 10 {
		t.Errorf("expected far end at x=10, got %v", dl.VtxBuffer[1].Pos[0])
	}
}

func TestDrawListPolygon(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.AddTriangle(0, 0, 5, 0, 5, 5, forms.ColorWhite)
	if len(dl.VtxBuffer) != 3 || len(dl.IdxBuffer) != 3 {
		t.Fatalf("expected a bare triangle, got %d verts / %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}

	square := []forms.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	dl.AddPolygonFilled(square, forms.ColorWhite)
	if len(dl.VtxBuffer) != 7 || len(dl.IdxBuffer) != 9 {
		t.Errorf("expected square to triangulate into 4 verts / 6 indices, got %d / %d total", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}

	dl.AddPolygonFilled(square[:2], forms.ColorWhite)
	if len(dl.VtxBuffer) != 7 {
		t.Errorf("expected degenerate polygon to be skipped, got %d verts", len(dl.VtxBuffer))
	}
}

func TestDrawListNinePatchZeroBorder(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dst := forms.Rect{W: 30, H: 30}
	region := forms.Rect{W: 12, H: 12}
	dl.AddNinePatch(dst, region, forms.SideLengths{}, 5, forms.Vec2{X: 48, Y: 48}, forms.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("expected plain textured quad, got %d verts", len(dl.VtxBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 5 {
		t.Errorf("expected texture 5, got %d", dl.CmdBuffer[0].TextureID)
	}
	if dl.VtxBuffer[2].TexCoord != [2]float32{0.25, 0.25} {
		t.Errorf("expected far corner UV {0.25 0.25}, got %v", dl.VtxBuffer[2].TexCoord)
	}
}

func TestDrawListNinePatchGrid(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dst := forms.Rect{W: 30, H: 30}
	region := forms.Rect{W: 12, H: 12}
	border := forms.UniformSides(4)
	dl.AddNinePatch(dst, region, border, 5, forms.Vec2{X: 48, Y: 48}, forms.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 36 || len(dl.IdxBuffer) != 54 {
		t.Fatalf("expected 9 cells of 4 verts, got %d verts / %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if dl.VtxBuffer[16].Pos != [2]float32{4, 4} {
		t.Errorf("expected center cell to start at {4 4}, got %v", dl.VtxBuffer[16].Pos)
	}
}

func TestDrawListNinePatchRejectsBadInput(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	region := forms.Rect{W: 12, H: 12}
	dl.AddNinePatch(forms.Rect{W: 30, H: 30}, region, forms.UniformSides(4), 5, forms.Vec2{}, forms.ColorWhite)
	dl.AddNinePatch(forms.Rect{}, region, forms.UniformSides(4), 5, forms.Vec2{X: 48, Y: 48}, forms.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("expected nothing drawn, got %d verts / %d commands", len(dl.VtxBuffer), len(dl.CmdBuffer))
	}
}

func TestDrawListGlyphQuads(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.SetTexture(3)
	quads := []forms.GlyphQuad{
		{X0: 0, Y0: 0, X1: 7, Y1: 13, U0: 0, V0: 0, U1: 0.5, V1: 1},
		{X0: 7, Y0: 0, X1: 14, Y1: 13, U0: 0.5, V0: 0, U1: 1, V1: 1},
	}
	dl.AddGlyphQuads(quads, forms.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 8 || len(dl.IdxBuffer) != 12 {
		t.Fatalf("expected 2 glyph quads, got %d verts / %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 3 {
		t.Errorf("expected glyphs on texture 3, got %d", dl.CmdBuffer[0].TextureID)
	}
	if dl.VtxBuffer[1].TexCoord != [2]float32{0.5, 0} {
		t.Errorf("expected top-right UV {0.5 0}, got %v", dl.VtxBuffer[1].TexCoord)
	}
}

func TestDrawListFinalizeDropsEmptyCommands(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.PushClipRect(forms.Rect{W: 10, H: 10})
	dl.PopClipRect()
	dl.Finalize()

	if len(dl.CmdBuffer) != 0 {
		t.Errorf("expected empty commands to be dropped, got %d", len(dl.CmdBuffer))
	}
}

func TestDrawListClear(t *testing.T) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	dl.PushClipRect(forms.Rect{W: 10, H: 10})
	dl.AddRect(0, 0, 10, 10, forms.ColorWhite)
	dl.Clear()

	if len(dl.CmdBuffer) != 0 || len(dl.VtxBuffer) != 0 || len(dl.IdxBuffer) != 0 {
		t.Errorf("expected cleared buffers, got %d/%d/%d", len(dl.CmdBuffer), len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
}

func TestDrawListPool(t *testing.T) {
	dl1 := forms.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(0, 0, 100, 100, forms.ColorWhite)
	forms.ReleaseDrawList(dl1)

	// Acquire again, might get the same or a different list.
	dl2 := forms.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	forms.ReleaseDrawList(dl2)

	forms.ReleaseDrawList(nil)
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, forms.ColorWhite)
	}
}

func BenchmarkDrawListNinePatch(b *testing.B) {
	dl := forms.AcquireDrawList()
	defer forms.ReleaseDrawList(dl)
	dst := forms.Rect{W: 120, H: 40}
	region := forms.Rect{W: 24, H: 24}
	border := forms.UniformSides(6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddNinePatch(dst, region, border, 1, forms.Vec2{X: 256, Y: 256}, forms.ColorWhite)
	}
}
