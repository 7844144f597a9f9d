package ptex

import "fmt"
import "image"

import "github.com/tinne26/ptex/core"

// A Region is a rectangular area of a shared source image, with a
// pivot that determines which point of the region is placed at the
// draw coordinates. Regions are small immutable values: methods like
// [Region.WithPivot]() return modified copies, and any number of
// regions can reference the same source image.
//
// Regions can be drawn on any [core.Canvas] through one of the named
// operations:
//  - [Region.DrawAt](), at native size.
//  - [Region.DrawScaled](), stretched to a destination size.
//  - [Region.DrawSub](), only a part of the region.
// For data-driven callers, [Region.Draw]() selects the operation from
// the number of arguments instead.
type Region struct {
	image core.Image
	offsetX, offsetY int
	width, height int
	pivotX, pivotY float64
}

// Creates a new region for the given area of img. The area must have
// positive size and be contained within the image bounds. Otherwise,
// [ErrInvalidArguments] is returned.
func NewRegion(img core.Image, x, y, width, height int) (Region, error) {
	if img == nil {
		return Region{}, fmt.Errorf("%w: NewRegion() with nil image", ErrInvalidArguments)
	}
	if width <= 0 || height <= 0 {
		return Region{}, fmt.Errorf("%w: NewRegion() with non-positive size %dx%d", ErrInvalidArguments, width, height)
	}
	area := image.Rect(x, y, x + width, y + height)
	if !area.In(img.Bounds()) {
		return Region{}, fmt.Errorf("%w: region %v outside image bounds %v", ErrInvalidArguments, area, img.Bounds())
	}
	return newRegion(img, area), nil
}

// Internal constructor without validations. Nine-patch slices can
// be empty, and that's fine.
func newRegion(img core.Image, area image.Rectangle) Region {
	return Region{
		image: img,
		offsetX: area.Min.X,
		offsetY: area.Min.Y,
		width: area.Dx(),
		height: area.Dy(),
	}
}

// Returns a copy of the region with the given pivot. The pivot is
// relative to the region's own top-left corner, at native size.
func (self Region) WithPivot(x, y float64) Region {
	self.pivotX, self.pivotY = x, y
	return self
}

// Returns a copy of the region with the pivot set to the point
// corresponding to the given align. For example, [Center] places
// the pivot at the center of the region.
func (self Region) WithPivotAlign(align Align) Region {
	self.pivotX, self.pivotY = align.Pivot(float64(self.width), float64(self.height))
	return self
}

// Returns the shared source image.
func (self Region) Image() core.Image { return self.image }

// Returns the area of the region within the source image.
func (self Region) Bounds() image.Rectangle {
	return rectXYWH(self.offsetX, self.offsetY, self.width, self.height)
}

// Returns the native size of the region.
func (self Region) Size() (int, int) { return self.width, self.height }

// Returns the pivot of the region. See [Region.WithPivot]().
func (self Region) Pivot() (float64, float64) { return self.pivotX, self.pivotY }

// Returns whether the region has no area. Only regions derived from
// degenerate nine-patch descriptors can be empty.
func (self Region) Empty() bool { return self.width <= 0 || self.height <= 0 }

// Returns the destination rectangle that [Region.DrawAt]() would use.
func (self Region) RectAt(dx, dy float64) core.Rect {
	return core.Rect{
		X: dx - self.pivotX,
		Y: dy - self.pivotY,
		W: float64(self.width),
		H: float64(self.height),
	}
}

// Returns the destination rectangle that [Region.DrawScaled]() would
// use. The pivot is scaled proportionally to the destination size.
func (self Region) RectScaled(dx, dy, dw, dh float64) core.Rect {
	var px, py float64
	if self.width  > 0 { px = self.pivotX*dw/float64(self.width)  }
	if self.height > 0 { py = self.pivotY*dh/float64(self.height) }
	return core.Rect{ X: dx - px, Y: dy - py, W: dw, H: dh }
}

// Draws the whole region at native size, with the pivot placed at
// (dx, dy).
func (self Region) DrawAt(canvas core.Canvas, dx, dy float64) {
	if self.Empty() { return }
	canvas.Blit(self.image, self.Bounds(), self.RectAt(dx, dy))
}

// Draws the whole region stretched to dw x dh, with the scaled
// pivot placed at (dx, dy).
func (self Region) DrawScaled(canvas core.Canvas, dx, dy, dw, dh float64) {
	if self.Empty() { return }
	canvas.Blit(self.image, self.Bounds(), self.RectScaled(dx, dy, dw, dh))
}

// Draws the sub area of the region into the destination rectangle
// (dx, dy, dw, dh). The sub area is relative to the region's own
// origin and gets clipped to the region, so sampling never escapes
// it. The pivot is not applied: the destination is taken literally.
func (self Region) DrawSub(canvas core.Canvas, sub image.Rectangle, dx, dy, dw, dh float64) {
	dst := core.Rect{ X: dx, Y: dy, W: dw, H: dh }
	if dst.Empty() { return }
	src, ok := self.subBounds(sub)
	if !ok { return }
	canvas.Blit(self.image, src, dst)
}

// Returns the sub area translated to source image coordinates,
// or false if it doesn't overlap the region.
func (self Region) subBounds(sub image.Rectangle) (image.Rectangle, bool) {
	sub = sub.Intersect(image.Rect(0, 0, self.width, self.height))
	if sub.Empty() { return image.Rectangle{}, false }
	return sub.Add(image.Pt(self.offsetX, self.offsetY)), true
}

// Draws the region choosing the operation from the number of arguments:
//  - (dx, dy): [Region.DrawAt]().
//  - (dx, dy, dw, dh): [Region.DrawScaled]().
//  - (sx, sy, sw, sh, dx, dy, dw, dh): [Region.DrawSub](). The sub area
//    values are floored to whole pixels.
// Any other argument count returns [ErrInvalidArguments] without
// drawing anything.
func (self Region) Draw(canvas core.Canvas, args ...float64) error {
	switch len(args) {
	case 2:
		self.DrawAt(canvas, args[0], args[1])
	case 4:
		self.DrawScaled(canvas, args[0], args[1], args[2], args[3])
	case 8:
		self.DrawSub(canvas, argsToRect(args[0 : 4]), args[4], args[5], args[6], args[7])
	default:
		return fmt.Errorf("%w: Region.Draw() expects 2, 4 or 8 arguments, got %d", ErrInvalidArguments, len(args))
	}
	return nil
}

// Converts (x, y, w, h) float arguments to a pixel rectangle.
func argsToRect(args []float64) image.Rectangle {
	if len(args) != 4 { panic(preViolation) }
	x, y := floorInt(args[0]), floorInt(args[1])
	return rectXYWH(x, y, floorInt(args[2]), floorInt(args[3]))
}

// Returns a textual representation of the region, mostly
// useful for debugging.
func (self Region) String() string {
	return fmt.Sprintf("Region%v{pivot: (%g, %g)}", self.Bounds(), self.pivotX, self.pivotY)
}
