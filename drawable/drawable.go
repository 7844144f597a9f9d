// Package drawable provides the generic static image drawable used
// by ptex to expose pre-composed images, like nine-patch offscreens,
// as ordinary drawable objects.
package drawable

import "github.com/tinne26/ptex/core"

// The Drawable interface is implemented by objects that can be drawn
// as static images: [*Static] and nine-patches from the ptex package.
//
// Sizes are logical draw sizes in pixels. Centers are pivots relative
// to the drawable's top-left corner, and they determine which point
// is placed at the coordinates passed to Draw().
type Drawable interface {
	SetSize(width, height int)
	Size() (int, int)
	Draw(canvas core.Canvas, x, y float64)
	DrawBounds(canvas core.Canvas)
	DrawCenter(canvas core.Canvas)
	SetCenter(x, y float64)
	Center() (float64, float64)
}

var _ Drawable = (*Static)(nil)

// A Static is a drawable backed by a single image. The image is
// always drawn whole, stretched to the drawable size and scale.
type Static struct {
	image core.Image
	width, height int
	centerX, centerY float64
	scaleX, scaleY float64
	projector Projector
}

// Creates a new static drawable for the given image. The initial
// size is the image size, the center is (0, 0) and the scale is 1.
// The image can be nil, in which case draws will be no-ops until
// [Static.SetImage]() is called.
func NewStatic(img core.Image) *Static {
	static := &Static{ scaleX: 1.0, scaleY: 1.0 }
	if img != nil {
		bounds := img.Bounds()
		static.image = img
		static.width, static.height = bounds.Dx(), bounds.Dy()
	}
	return static
}

// Replaces the underlying image. The size is not modified.
func (self *Static) SetImage(img core.Image) { self.image = img }

// Returns the underlying image.
func (self *Static) Image() core.Image { return self.image }

// Sets the logical draw size. Negative values are clamped to zero.
func (self *Static) SetSize(width, height int) {
	self.width, self.height = max(width, 0), max(height, 0)
}

// Returns the logical draw size, without scaling.
func (self *Static) Size() (int, int) { return self.width, self.height }

// Sets the center (pivot) of the drawable, in unscaled coordinates
// relative to its top-left corner.
func (self *Static) SetCenter(x, y float64) {
	self.centerX, self.centerY = x, y
}

// Sets the center of the drawable from an align for its current size.
// The center is not updated automatically on later resizes.
func (self *Static) SetCenterAlign(align core.Align) {
	self.centerX, self.centerY = align.Pivot(float64(self.width), float64(self.height))
}

// Returns the center of the drawable. See [Static.SetCenter]().
func (self *Static) Center() (float64, float64) {
	return self.centerX, self.centerY
}

// Sets the scaling factors applied by [Static.Draw]() and
// [Static.DrawCenter](). Scales must be positive.
func (self *Static) SetScale(x, y float64) {
	if !(x > 0) || !(y > 0) { panic("Static.SetScale() requires positive scales") }
	self.scaleX, self.scaleY = x, y
}

// Returns the current scaling factors.
func (self *Static) Scale() (float64, float64) { return self.scaleX, self.scaleY }

// Sets the projector used by [Static.DrawBounds]().
func (self *Static) SetProjector(projector Projector) { self.projector = projector }

// Returns the projector used by [Static.DrawBounds]().
func (self *Static) Projector() Projector { return self.projector }

// Returns the destination rectangle that [Static.Draw]() would use.
func (self *Static) Rect(x, y float64) core.Rect {
	return core.Rect{
		X: x - self.centerX*self.scaleX,
		Y: y - self.centerY*self.scaleY,
		W: float64(self.width)*self.scaleX,
		H: float64(self.height)*self.scaleY,
	}
}

// Draws the drawable with its center placed at (x, y).
func (self *Static) Draw(canvas core.Canvas, x, y float64) {
	self.blit(canvas, self.Rect(x, y))
}

// Draws the drawable fitted into the canvas bounds, according to
// the current [Projector]. Center and scale are ignored.
func (self *Static) DrawBounds(canvas core.Canvas) {
	dst := self.projector.Fit(float64(self.width), float64(self.height), canvas.Bounds())
	self.blit(canvas, dst)
}

// Draws the drawable at its scaled size, centered on the canvas
// bounds. The drawable's own center is ignored.
func (self *Static) DrawCenter(canvas core.Canvas) {
	bounds := canvas.Bounds()
	width, height := float64(self.width)*self.scaleX, float64(self.height)*self.scaleY
	self.blit(canvas, core.Rect{
		X: (float64(bounds.Dx()) - width)/2.0,
		Y: (float64(bounds.Dy()) - height)/2.0,
		W: width,
		H: height,
	})
}

func (self *Static) blit(canvas core.Canvas, dst core.Rect) {
	if self.image == nil || dst.Empty() { return }
	canvas.Blit(self.image, self.image.Bounds(), dst)
}
