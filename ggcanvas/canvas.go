//go:build cputext

package ggcanvas

import "image"

import "github.com/gogpu/gg"

import "github.com/tinne26/ptex/core"

var _ core.Canvas = (*Canvas)(nil)

// A [core.Canvas] drawing into a gg context. Blits go through
// [gg.Context.DrawImageEx], so the context transform is applied
// to destinations.
type Canvas struct {
	context *gg.Context

	// gg requires its own image buffers, which are copies of the
	// source. Consecutive blits tend to share a source (nine-patch
	// slices, sprite sheets), so the last conversion is memoized.
	lastImage core.Image
	lastBuffer *gg.ImageBuf
}

// Creates a canvas for the given context.
func New(context *gg.Context) *Canvas {
	if context == nil { panic("nil context") }
	return &Canvas{ context: context }
}

// Returns the underlying context.
func (self *Canvas) Context() *gg.Context { return self.context }

// Implements [core.Canvas].
func (self *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, self.context.Width(), self.context.Height())
}

// Implements [core.Canvas].
func (self *Canvas) Blit(img core.Image, src image.Rectangle, dst core.Rect) {
	if img == nil { panic("nil image") }
	bounds := img.Bounds()
	src = src.Intersect(bounds)
	if src.Empty() || dst.Empty() { return }

	// gg source rects are relative to the buffer origin
	rect := src.Sub(bounds.Min)
	self.context.DrawImageEx(self.buffer(img), gg.DrawImageOptions{
		X: dst.X,
		Y: dst.Y,
		DstWidth: dst.W,
		DstHeight: dst.H,
		SrcRect: &rect,
		Interpolation: gg.InterpBilinear,
		Opacity: 1.0,
		BlendMode: gg.BlendNormal,
	})
}

// Drops the memoized image buffer. Must be called if the pixels of
// the last drawn image are modified before drawing it again.
func (self *Canvas) Forget() {
	self.lastImage = nil
	self.lastBuffer = nil
}

func (self *Canvas) buffer(img core.Image) *gg.ImageBuf {
	if img != self.lastImage || self.lastBuffer == nil {
		self.lastBuffer = gg.ImageBufFromImage(img)
		self.lastImage = img
	}
	return self.lastBuffer
}
