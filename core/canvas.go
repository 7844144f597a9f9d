package core

import "image"
import "strconv"

// A destination rectangle in canvas coordinates. Unlike source
// rectangles, destinations can be fractional: pivots are scaled
// along with the destination size and rarely land on whole pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Returns whether the rectangle has no area. NaN sizes are
// also considered empty.
func (self Rect) Empty() bool {
	return !(self.W > 0) || !(self.H > 0)
}

// Returns the rectangle translated by the given offsets.
func (self Rect) Add(x, y float64) Rect {
	return Rect{X: self.X + x, Y: self.Y + y, W: self.W, H: self.H}
}

// Returns a textual representation of the rectangle, like
// "(x, y | w x h)".
func (self Rect) String() string {
	return "(" + formatFloat(self.X) + ", " + formatFloat(self.Y) + " | " +
	       formatFloat(self.W) + " x " + formatFloat(self.H) + ")"
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// A Canvas is the raw 2D drawing context everything else is drawn
// through. Its only drawing primitive is a blit: sampling the src
// rectangle of img (in img coordinates) and placing it, scaled as
// necessary, on the dst rectangle (relative to Bounds().Min).
// 
// Implementations must clip src to the image bounds and skip empty
// source or destination rectangles without failing.
type Canvas interface {
	Bounds() image.Rectangle
	Blit(img Image, src image.Rectangle, dst Rect)
}

// Optional [Canvas] extension for contexts that can switch between
// smooth (bilinear) and pixelated (nearest neighbor) sampling.
// Callers should treat smoothing as a best-effort hint.
type Smoother interface {
	SetSmooth(enabled bool)
}
