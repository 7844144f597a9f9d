package ptex

// This file contains shared test fixtures: a canvas that records blits
// instead of drawing them, a synthetic nine-patch texture and a few
// helper functions.

import "os"
import "testing"

import "image"
import "image/color"
import "image/png"

import "github.com/tinne26/ptex/core"

type blitRecord struct {
	img core.Image
	src image.Rectangle
	dst core.Rect
}

// A core.Canvas that doesn't draw anything, only records blits.
type recordingCanvas struct {
	bounds image.Rectangle
	blits []blitRecord
}

func newRecordingCanvas(width, height int) *recordingCanvas {
	return &recordingCanvas{ bounds: image.Rect(0, 0, width, height) }
}

func (self *recordingCanvas) Bounds() image.Rectangle { return self.bounds }
func (self *recordingCanvas) Blit(img core.Image, src image.Rectangle, dst core.Rect) {
	self.blits = append(self.blits, blitRecord{ img, src, dst })
}

func (self *recordingCanvas) reset() { self.blits = self.blits[ : 0] }

func (self *recordingCanvas) expectSingle(t *testing.T, src image.Rectangle, dst core.Rect) {
	t.Helper()
	if len(self.blits) != 1 {
		t.Fatalf("expected exactly one blit, got %d", len(self.blits))
	}
	if self.blits[0].src != src || self.blits[0].dst != dst {
		t.Fatalf("expected blit %v -> %s, got %v -> %s", src, dst, self.blits[0].src, self.blits[0].dst)
	}
	self.reset()
}

func (self *recordingCanvas) expectNone(t *testing.T) {
	t.Helper()
	if len(self.blits) != 0 {
		t.Fatalf("expected no blits, got %d (first: %v -> %s)", len(self.blits), self.blits[0].src, self.blits[0].dst)
	}
}

// Colors for each slice of the synthetic patch texture, indexed by Slice.
var slicePalette = [9]color.RGBA{
	{255,   0,   0, 255}, {  0, 255,   0, 255}, {  0,   0, 255, 255},
	{255, 255,   0, 255}, {255,   0, 255, 255}, {  0, 255, 255, 255},
	{128,   0,   0, 255}, {  0, 128,   0, 255}, {  0,   0, 128, 255},
}

// Creates a 16x16 texture split in 4/8/4 columns and rows, each slice
// painted with its slicePalette color. testPatchDescriptor() describes it.
func newPatchTextureRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	bands := [3][2]int{ {0, 4}, {4, 12}, {12, 16} }
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			clr := slicePalette[row*3 + col]
			for y := bands[row][0]; y < bands[row][1]; y++ {
				for x := bands[col][0]; x < bands[col][1]; x++ {
					img.SetRGBA(x, y, clr)
				}
			}
		}
	}
	return img
}

func testPatchDescriptor(texture core.Image) Descriptor {
	return Descriptor{
		Texture: texture,
		TopLeft: Corner{ X: 0, Y: 0, W: 4, H: 4 },
		BottomRight: Corner{ X: 12, Y: 12, W: 4, H: 4 },
	}
}

// --- helpers ---

func exportAsPNG(filename string, img image.Image) {
	file, err := os.Create(filename)
	if err != nil { panic(err) }
	err = png.Encode(file, img)
	if err != nil { panic(err) }
	err = file.Close()
	if err != nil { panic(err) }
}

func equalSlices(a, b []byte) bool {
	if len(a) != len(b) { return false }
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] { return false }
	}
	return true
}
