package ptex

import "fmt"
import "image"

import "github.com/tinne26/ptex/core"

// A Surface decorates a raw [core.Canvas] with smoothing control and
// a polymorphic [Surface.Draw]() entry point that accepts both plain
// images and texture regions.
//
// Surfaces are also canvases themselves, so they can be passed to
// [Region] and drawable methods directly.
type Surface struct {
	canvas core.Canvas
	smooth bool
}

// Creates a surface for the given canvas. Typically:
//   surface := ptex.NewSurface(ptex.NewTargetCanvas(screen))
func NewSurface(canvas core.Canvas) *Surface {
	if canvas == nil { panic("nil canvas") }
	return &Surface{ canvas: canvas }
}

// Returns the underlying canvas.
func (self *Surface) Canvas() core.Canvas { return self.canvas }

// Returns the bounds of the underlying canvas.
func (self *Surface) Bounds() image.Rectangle { return self.canvas.Bounds() }

// Forwards the blit to the underlying canvas. See [core.Canvas].
func (self *Surface) Blit(img core.Image, src image.Rectangle, dst core.Rect) {
	self.canvas.Blit(img, src, dst)
}

// Enables or disables smooth sampling on subsequent draws. This is
// a best-effort setting: if the underlying canvas doesn't implement
// [core.Smoother], the call is silently ignored.
func (self *Surface) SetSmoothing(enabled bool) {
	self.smooth = enabled
	smoother, ok := self.canvas.(core.Smoother)
	if ok { smoother.SetSmooth(enabled) }
}

// Returns the last value passed to [Surface.SetSmoothing]().
// See also [Surface.SmoothingSupported]().
func (self *Surface) IsSmoothing() bool { return self.smooth }

// Returns whether the underlying canvas honors [Surface.SetSmoothing]().
func (self *Surface) SmoothingSupported() bool {
	_, ok := self.canvas.(core.Smoother)
	return ok
}

// Draws either a [core.Image], a [Region] or a *[Region].
//
// For regions, the arguments are interpreted exactly like in
// [Region.Draw](). For plain images, see [Surface.DrawImage]().
// Other types and unsupported argument counts return
// [ErrInvalidArguments].
func (self *Surface) Draw(img any, args ...float64) error {
	switch img := img.(type) {
	case nil:
		return fmt.Errorf("%w: Surface.Draw() with nil image", ErrInvalidArguments)
	case Region:
		return img.Draw(self, args...)
	case *Region:
		if img == nil {
			return fmt.Errorf("%w: Surface.Draw() with nil region", ErrInvalidArguments)
		}
		return img.Draw(self, args...)
	case core.Image:
		return self.DrawImage(img, args...)
	default:
		return fmt.Errorf("%w: Surface.Draw() can't draw %T", ErrInvalidArguments, img)
	}
}

// Draws a region with the given arguments. Equivalent to
// region.Draw(surface, args...). See [Region.Draw]().
func (self *Surface) DrawRegion(region Region, args ...float64) error {
	return region.Draw(self, args...)
}

// Draws a plain image, forwarding the arguments to the blit primitive:
//  - (dx, dy): whole image at native size, top-left at (dx, dy).
//  - (dx, dy, dw, dh): whole image stretched to the destination.
//  - (sx, sy, sw, sh, dx, dy, dw, dh): source area (image coordinates)
//    stretched to the destination.
// Plain images have no pivot. Unsupported argument counts return
// [ErrInvalidArguments] without drawing anything.
func (self *Surface) DrawImage(img core.Image, args ...float64) error {
	if img == nil {
		return fmt.Errorf("%w: Surface.DrawImage() with nil image", ErrInvalidArguments)
	}

	bounds := img.Bounds()
	switch len(args) {
	case 2:
		dst := core.Rect{ X: args[0], Y: args[1], W: float64(bounds.Dx()), H: float64(bounds.Dy()) }
		self.canvas.Blit(img, bounds, dst)
	case 4:
		dst := core.Rect{ X: args[0], Y: args[1], W: args[2], H: args[3] }
		self.canvas.Blit(img, bounds, dst)
	case 8:
		src := argsToRect(args[0 : 4]).Intersect(bounds)
		if src.Empty() { return nil }
		dst := core.Rect{ X: args[4], Y: args[5], W: args[6], H: args[7] }
		self.canvas.Blit(img, src, dst)
	default:
		return fmt.Errorf("%w: Surface.DrawImage() expects 2, 4 or 8 arguments, got %d", ErrInvalidArguments, len(args))
	}
	return nil
}
