//go:build cputext

package ptex

import "math"
import "image"
import "image/color"

import "golang.org/x/image/draw"

import "github.com/tinne26/ptex/core"

// A [core.Canvas] drawing directly into a [core.Target]. Without
// Ebitengine, blits are implemented with the [golang.org/x/image/draw]
// scalers and destinations are rounded to whole pixels. Sampling
// defaults to nearest neighbor; see [TargetCanvas.SetSmooth]().
type TargetCanvas struct {
	target core.Target
	scaler draw.Scaler
}

// Creates a canvas for the given target.
func NewTargetCanvas(target core.Target) *TargetCanvas {
	if target == nil { panic("nil target") }
	return &TargetCanvas{ target: target, scaler: draw.NearestNeighbor }
}

// Returns the target the canvas draws to.
func (self *TargetCanvas) Target() core.Target { return self.target }

// Implements [core.Canvas].
func (self *TargetCanvas) Bounds() image.Rectangle { return self.target.Bounds() }

// Implements [core.Smoother]. Smooth sampling uses [draw.ApproxBiLinear].
func (self *TargetCanvas) SetSmooth(enabled bool) {
	if enabled {
		self.scaler = draw.ApproxBiLinear
	} else {
		self.scaler = draw.NearestNeighbor
	}
}

// Implements [core.Canvas].
func (self *TargetCanvas) Blit(img core.Image, src image.Rectangle, dst core.Rect) {
	if img == nil { panic("nil image") }
	src = src.Intersect(img.Bounds())
	if src.Empty() || dst.Empty() { return }

	origin := self.target.Bounds().Min
	minX, minY := int(math.Round(dst.X)), int(math.Round(dst.Y))
	maxX, maxY := int(math.Round(dst.X + dst.W)), int(math.Round(dst.Y + dst.H))
	rect := image.Rect(minX, minY, maxX, maxY).Add(origin)
	if rect.Empty() { return }
	self.scaler.Scale(self.target, rect, img, src, draw.Over, nil)
}

// ---- offscreen helpers ----

func newOffscreen(width, height int) core.Target {
	return image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

func releaseOffscreen(target core.Target) {
	// nothing to do, the garbage collector takes care of it
}

func clearOffscreen(target core.Target) {
	draw.Draw(target, target.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)
}
