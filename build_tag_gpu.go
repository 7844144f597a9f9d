//go:build !cputext

package ptex

import "image"

import "github.com/tinne26/ptex/core"
import "github.com/hajimehoshi/ebiten/v2"

var blitIndices []uint16 = []uint16{0, 1, 2, 2, 1, 3}

// A [core.Canvas] drawing directly into a [core.Target]. With
// Ebitengine, blits are issued as textured quads through
// [ebiten.Image.DrawTriangles], so fractional destinations are
// respected. Sampling defaults to nearest neighbor; see
// [TargetCanvas.SetSmooth]().
type TargetCanvas struct {
	target core.Target
	opts ebiten.DrawTrianglesOptions
	vertices [4]ebiten.Vertex
}

// Creates a canvas for the given target.
func NewTargetCanvas(target core.Target) *TargetCanvas {
	if target == nil { panic("nil target") }
	canvas := &TargetCanvas{ target: target }
	canvas.opts.Filter = ebiten.FilterNearest
	for i := 0; i < 4; i++ {
		canvas.vertices[i].ColorR = 1.0
		canvas.vertices[i].ColorG = 1.0
		canvas.vertices[i].ColorB = 1.0
		canvas.vertices[i].ColorA = 1.0
	}
	return canvas
}

// Returns the target the canvas draws to.
func (self *TargetCanvas) Target() core.Target { return self.target }

// Implements [core.Canvas].
func (self *TargetCanvas) Bounds() image.Rectangle { return self.target.Bounds() }

// Implements [core.Smoother]. Smooth sampling uses [ebiten.FilterLinear].
func (self *TargetCanvas) SetSmooth(enabled bool) {
	if enabled {
		self.opts.Filter = ebiten.FilterLinear
	} else {
		self.opts.Filter = ebiten.FilterNearest
	}
}

// Implements [core.Canvas].
func (self *TargetCanvas) Blit(img core.Image, src image.Rectangle, dst core.Rect) {
	if img == nil { panic("nil image") }
	src = src.Intersect(img.Bounds())
	if src.Empty() || dst.Empty() { return }

	// sub image prevents linear filtering from bleeding outside src
	source := img.SubImage(src).(*ebiten.Image)
	origin := self.target.Bounds().Min
	minX, minY := float32(float64(origin.X) + dst.X), float32(float64(origin.Y) + dst.Y)
	maxX, maxY := minX + float32(dst.W), minY + float32(dst.H)

	self.vertices[0].DstX, self.vertices[0].DstY = minX, minY // top-left
	self.vertices[1].DstX, self.vertices[1].DstY = maxX, minY // top-right
	self.vertices[2].DstX, self.vertices[2].DstY = minX, maxY // bottom-left
	self.vertices[3].DstX, self.vertices[3].DstY = maxX, maxY // bottom-right

	self.vertices[0].SrcX, self.vertices[0].SrcY = float32(src.Min.X), float32(src.Min.Y)
	self.vertices[1].SrcX, self.vertices[1].SrcY = float32(src.Max.X), float32(src.Min.Y)
	self.vertices[2].SrcX, self.vertices[2].SrcY = float32(src.Min.X), float32(src.Max.Y)
	self.vertices[3].SrcX, self.vertices[3].SrcY = float32(src.Max.X), float32(src.Max.Y)

	self.target.DrawTriangles(self.vertices[:], blitIndices, source, &self.opts)
}

// ---- offscreen helpers ----

// Ebitengine doesn't allow empty images, so zero sizes are allocated
// as 1x1. Callers track the logical size separately.
func newOffscreen(width, height int) core.Target {
	return ebiten.NewImage(max(width, 1), max(height, 1))
}

func releaseOffscreen(target core.Target) {
	target.Deallocate()
}

func clearOffscreen(target core.Target) {
	target.Clear()
}
