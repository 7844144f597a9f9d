package ptex

import "math"
import "errors"
import "image"
import "testing"

import "github.com/tinne26/ptex/core"
import "github.com/tinne26/ptex/drawable"
import "github.com/tinne26/ptex/internal"

func newTestPatch(t *testing.T, width, height int, opts *NinePatchOptions) *NinePatch {
	t.Helper()
	texture := asTestImage(newPatchTextureRGBA())
	patch, err := NewNinePatch(testPatchDescriptor(texture), width, height, opts)
	if err != nil { t.Fatal(err) }
	return patch
}

func TestNinePatchLayout(t *testing.T) {
	patch := newTestPatch(t, 20, 20, nil)
	defer patch.Release()

	if w, h := patch.Size(); w != 20 || h != 20 {
		t.Fatalf("expected size 20x20, got %dx%d", w, h)
	}
	if patch.Image().Bounds() != image.Rect(0, 0, 20, 20) {
		t.Fatalf("expected 20x20 offscreen, got %v", patch.Image().Bounds())
	}

	expected := [9]core.Rect{
		{X: 0, Y: 0, W: 4, H: 4}, {X: 4, Y: 0, W: 12, H: 4}, {X: 16, Y: 0, W: 4, H: 4},
		{X: 0, Y: 4, W: 4, H: 12}, {X: 4, Y: 4, W: 12, H: 12}, {X: 16, Y: 4, W: 4, H: 12},
		{X: 0, Y: 16, W: 4, H: 4}, {X: 4, Y: 16, W: 12, H: 4}, {X: 16, Y: 16, W: 4, H: 4},
	}
	if rects := patch.SliceRects(); rects != expected {
		t.Fatalf("unexpected slice rects:\n%v\nexpected:\n%v", rects, expected)
	}

	sources := [9]image.Rectangle{
		image.Rect( 0,  0,  4,  4), image.Rect( 4,  0, 12,  4), image.Rect(12,  0, 16,  4),
		image.Rect( 0,  4,  4, 12), image.Rect( 4,  4, 12, 12), image.Rect(12,  4, 16, 12),
		image.Rect( 0, 12,  4, 16), image.Rect( 4, 12, 12, 16), image.Rect(12, 12, 16, 16),
	}
	for slice := TopLeftSlice; slice <= BottomRightSlice; slice++ {
		if bounds := patch.Region(slice).Bounds(); bounds != sources[slice] {
			t.Fatalf("expected %s region %v, got %v", slice, sources[slice], bounds)
		}
	}

	// replay the render pass on a recording canvas
	canvas := newRecordingCanvas(20, 20)
	regions, layout := patch.Regions(), patch.SliceRects()
	blits := renderSlices(canvas, &regions, &layout)
	if blits != 9 || len(canvas.blits) != 9 {
		t.Fatalf("expected 9 blits, got %d (%d recorded)", blits, len(canvas.blits))
	}
	for i, blit := range canvas.blits {
		if blit.src != sources[i] || blit.dst != expected[i] {
			t.Fatalf("blit #%d: expected %v -> %s, got %v -> %s", i, sources[i], expected[i], blit.src, blit.dst)
		}
	}
}

func TestNinePatchMinSize(t *testing.T) {
	patch := newTestPatch(t, 0, -5, nil)
	defer patch.Release()
	if w, h := patch.Size(); w != 8 || h != 8 {
		t.Fatalf("expected size clamped to 8x8, got %dx%d", w, h)
	}
	if w, h := patch.MinSize(); w != 8 || h != 8 {
		t.Fatalf("expected min size 8x8, got %dx%d", w, h)
	}

	patch.SetSize(20, 20)
	patch.SetSize(1, 1)
	if w, h := patch.Size(); w != 8 || h != 8 {
		t.Fatalf("expected SetSize(1, 1) to clamp to 8x8, got %dx%d", w, h)
	}
	if patch.Image().Bounds() != image.Rect(0, 0, 8, 8) {
		t.Fatalf("expected 8x8 offscreen, got %v", patch.Image().Bounds())
	}
	patch.SetSize(30, 2)
	if w, h := patch.Size(); w != 30 || h != 8 {
		t.Fatalf("expected 30x8, got %dx%d", w, h)
	}
}

func TestNinePatchIdempotentResize(t *testing.T) {
	patch := newTestPatch(t, 20, 20, nil)
	defer patch.Release()
	if patch.renders != 1 { t.Fatalf("expected 1 render after creation, got %d", patch.renders) }

	patch.SetSize(20, 20)
	if patch.renders != 1 { t.Fatalf("same size resize rendered again (%d renders)", patch.renders) }

	patch.SetSize(30, 24)
	offscreen := patch.Image()
	patch.SetSize(30, 24)
	patch.SetSizePoint(image.Pt(30, 24))
	if patch.renders != 2 { t.Fatalf("expected 2 renders, got %d", patch.renders) }
	if patch.Image() != offscreen { t.Fatal("same size resize replaced the offscreen") }

	// different requests clamping to the same size are also no-ops
	patch.SetSize(1, 1)
	patch.SetSize(2, 3)
	if patch.renders != 3 { t.Fatalf("expected 3 renders, got %d", patch.renders) }

	patch.Redraw()
	if patch.renders != 4 { t.Fatalf("expected Redraw() to render, got %d renders", patch.renders) }
}

func TestNinePatchTiling(t *testing.T) {
	corners := [][4]int{ {4, 4, 4, 4}, {3, 5, 6, 2}, {0, 0, 0, 0}, {7, 0, 0, 1} }
	for _, corner := range corners {
		minW, minH := corner[0] + corner[2], corner[1] + corner[3]
		for height := minH; height < minH + 9; height++ {
			for width := minW; width < minW + 9; width++ {
				rects := layoutSlices(width, height, corner[0], corner[1], corner[2], corner[3])
				coverage := make([]int, width*height)
				for _, rect := range rects {
					for y := int(rect.Y); y < int(rect.Y + rect.H); y++ {
						for x := int(rect.X); x < int(rect.X + rect.W); x++ {
							if x < 0 || y < 0 || x >= width || y >= height {
								t.Fatalf("corners %v, size %dx%d: rect %s out of bounds", corner, width, height, rect)
							}
							coverage[y*width + x] += 1
						}
					}
				}
				for i, count := range coverage {
					if count != 1 {
						t.Fatalf("corners %v, size %dx%d: pixel (%d, %d) covered %d times", corner, width, height, i % width, i/width, count)
					}
				}
			}
		}
	}
}

func TestNinePatchDegenerate(t *testing.T) {
	texture := newTestImage(16, 16)
	tests := []struct {
		name string
		bottomRight Corner
		blits int
	}{
		{"zero width center", Corner{4, 12, 4, 4}, 6},
		{"zero height center", Corner{12, 4, 4, 4}, 6},
		{"zero center", Corner{4, 4, 4, 4}, 4},
	}
	for _, test := range tests {
		desc := Descriptor{ Texture: texture, TopLeft: Corner{0, 0, 4, 4}, BottomRight: test.bottomRight }
		patch, err := NewNinePatch(desc, 20, 20, nil)
		if err != nil { t.Fatalf("%s: %s", test.name, err) }
		if !patch.Region(CenterSlice).Empty() {
			t.Fatalf("%s: expected empty center region", test.name)
		}

		canvas := newRecordingCanvas(20, 20)
		regions, layout := patch.Regions(), patch.SliceRects()
		blits := renderSlices(canvas, &regions, &layout)
		if blits != test.blits || len(canvas.blits) != test.blits {
			t.Fatalf("%s: expected %d blits, got %d", test.name, test.blits, blits)
		}
		for _, blit := range canvas.blits {
			if blit.src.Empty() || blit.dst.Empty() {
				t.Fatalf("%s: blit with empty rect %v -> %s", test.name, blit.src, blit.dst)
			}
		}
		patch.Release()
	}

	// overlapping corners give a negative center
	desc := Descriptor{ Texture: texture, TopLeft: Corner{0, 0, 8, 8}, BottomRight: Corner{4, 4, 4, 4} }
	patch, err := NewNinePatch(desc, 20, 20, nil)
	if err != nil { t.Fatalf("negative center: %s", err) }
	for slice := TopLeftSlice; slice <= BottomRightSlice; slice++ {
		if patch.Region(slice).Empty() == slice.IsCorner() {
			t.Fatalf("negative center: unexpected %s region %v", slice, patch.Region(slice))
		}
	}
	canvas := newRecordingCanvas(20, 20)
	regions, layout := patch.Regions(), patch.SliceRects()
	if blits := renderSlices(canvas, &regions, &layout); blits != 4 || len(canvas.blits) != 4 {
		t.Fatalf("negative center: expected 4 corner blits, got %d", blits)
	}
	patch.Release()

	// zero size corners stretch the full texture
	desc = Descriptor{ Texture: texture, BottomRight: Corner{ X: 16, Y: 16 } }
	patch, err = NewNinePatch(desc, 0, 0, nil)
	if err != nil { t.Fatal(err) }
	if w, h := patch.Size(); w != 0 || h != 0 {
		t.Fatalf("expected 0x0 nine-patch, got %dx%d", w, h)
	}
	canvas = newRecordingCanvas(20, 20)
	patch.Draw(canvas, 0, 0)
	canvas.expectNone(t)
	patch.Release()
}

func TestNinePatchOptions(t *testing.T) {
	texture := asTestImage(newPatchTextureRGBA())
	desc := testPatchDescriptor(texture)

	for _, scale := range [][2]float64{ {-1, 1}, {1, -2}, {math.NaN(), 1}, {1, math.Inf(1)} } {
		_, err := NewNinePatch(desc, 20, 20, &NinePatchOptions{ ScaleX: scale[0], ScaleY: scale[1] })
		if !errors.Is(err, ErrInvalidArguments) {
			t.Fatalf("expected ErrInvalidArguments for scale %v, got %v", scale, err)
		}
	}

	_, err := NewNinePatch(Descriptor{}, 20, 20, nil)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}

	// targets must match the clamped size
	target := newOffscreen(10, 10)
	_, err = NewNinePatch(desc, 20, 20, &NinePatchOptions{ Target: target })
	if !errors.Is(err, ErrInvalidArguments) {
		t.Fatalf("expected ErrInvalidArguments on target size mismatch, got %v", err)
	}
	patch, err := NewNinePatch(desc, 4, 10, &NinePatchOptions{ Target: newOffscreen(8, 10) })
	if err != nil { t.Fatal(err) }
	if patch.Image().Bounds() != image.Rect(0, 0, 8, 10) {
		t.Fatalf("unexpected adopted target bounds %v", patch.Image().Bounds())
	}
	patch.Release()
	releaseOffscreen(target)

	patch, err = NewNinePatch(desc, 20, 20, &NinePatchOptions{ PivotX: 10, PivotY: 5, Smooth: true })
	if err != nil { t.Fatal(err) }
	defer patch.Release()
	if x, y := patch.Center(); x != 10 || y != 5 {
		t.Fatalf("expected center (10, 5), got (%v, %v)", x, y)
	}
	if x, y := patch.Scale(); x != 1 || y != 1 {
		t.Fatalf("expected default scale 1, got (%v, %v)", x, y)
	}
	if !patch.surface.IsSmoothing() {
		t.Fatal("expected smoothing to be enabled")
	}
}

func TestNinePatchDraw(t *testing.T) {
	var patch drawable.Drawable = newTestPatch(t, 20, 20, &NinePatchOptions{ PivotX: 10, PivotY: 10, ScaleX: 2, ScaleY: 2 })
	defer patch.(*NinePatch).Release()
	canvas := newRecordingCanvas(100, 100)
	src := image.Rect(0, 0, 20, 20)

	patch.Draw(canvas, 50, 50)
	canvas.expectSingle(t, src, core.Rect{X: 30, Y: 30, W: 40, H: 40})
	patch.DrawCenter(canvas)
	canvas.expectSingle(t, src, core.Rect{X: 30, Y: 30, W: 40, H: 40})
	patch.DrawBounds(canvas)
	canvas.expectSingle(t, src, core.Rect{X: 0, Y: 0, W: 100, H: 100})

	patch.(*NinePatch).SetProjector(drawable.PixelPerfect)
	wide := newRecordingCanvas(110, 90)
	patch.DrawBounds(wide)
	wide.expectSingle(t, src, core.Rect{X: 15, Y: 5, W: 80, H: 80})

	// draws follow resizes
	patch.SetSize(30, 20)
	patch.SetCenter(0, 0)
	patch.Draw(canvas, 0, 0)
	canvas.expectSingle(t, image.Rect(0, 0, 30, 20), core.Rect{X: 0, Y: 0, W: 60, H: 40})
}

func TestNinePatchRelease(t *testing.T) {
	patch := newTestPatch(t, 20, 20, nil)
	patch.Release()
	patch.Release()

	defer func() {
		if recover() == nil { t.Fatal("expected panic after Release()") }
	}()
	patch.SetSize(40, 40)
}

func TestNinePatchLayoutCache(t *testing.T) {
	defer internal.DefaultCache.SetCapacity(internal.DefaultCacheSize)
	internal.DefaultCache.SetCapacity(0)
	internal.DefaultCache.SetCapacity(internal.DefaultCacheSize)

	desc := testPatchDescriptor(newTestImage(16, 16))
	slices := deriveSlices(desc)
	if internal.DefaultCache.NumEntries() != 1 {
		t.Fatalf("expected 1 cached layout, got %d", internal.DefaultCache.NumEntries())
	}
	if deriveSlices(desc) != slices || internal.DefaultCache.NumEntries() != 1 {
		t.Fatal("cached layout mismatch")
	}
	if slices != computeSlices(desc.TopLeft, desc.BottomRight) {
		t.Fatal("cached layout doesn't match computed layout")
	}

	// disabled cache, same results
	internal.DefaultCache.SetCapacity(0)
	if deriveSlices(desc) != slices || internal.DefaultCache.NumEntries() != 0 {
		t.Fatal("unexpected layout with caching disabled")
	}
}
