package drawable

import "math"
import "image"
import "strconv"

import "github.com/tinne26/ptex/core"

// A Projector determines how [Static.DrawBounds]() fits a drawable
// into the bounds of a canvas.
type Projector uint8
const (
	// Fills the whole canvas without any regards for aspect ratio.
	// This is the default.
	Stretched Projector = iota

	// Proportional scaling respects the aspect ratio of the drawable,
	// which means that unfilled borders might be left on the canvas.
	Proportional

	// Integer scaling with no deformation nor distortions (unless
	// minification is required, in which case the projector falls
	// back to the same behavior as Proportional).
	PixelPerfect
)

// Returns a textual representation of the projector type.
func (self Projector) String() string {
	switch self {
	case Stretched: return "Stretched"
	case Proportional: return "Proportional"
	case PixelPerfect: return "PixelPerfect"
	default:
		return "ProjectorUndefined#" + strconv.Itoa(int(self))
	}
}

// Returns the destination rectangle for content of the given size
// projected into bounds. The result is relative to bounds.Min, like
// [core.Canvas] destinations. Empty content or bounds result in an
// empty rectangle.
func (self Projector) Fit(contentWidth, contentHeight float64, bounds image.Rectangle) core.Rect {
	boundsWidth, boundsHeight := float64(bounds.Dx()), float64(bounds.Dy())
	if !(contentWidth > 0) || !(contentHeight > 0) || bounds.Empty() {
		return core.Rect{}
	}

	switch self {
	case Stretched:
		return core.Rect{ W: boundsWidth, H: boundsHeight }
	case Proportional:
		return fitProportional(contentWidth, contentHeight, boundsWidth, boundsHeight)
	case PixelPerfect:
		return fitPixelPerfect(contentWidth, contentHeight, bounds.Dx(), bounds.Dy())
	default:
		panic("invalid Projector '" + self.String() + "'")
	}
}

func fitProportional(cw, ch, bw, bh float64) core.Rect {
	zoomLevel := math.Min(bw/cw, bh/ch)
	width, height := cw*zoomLevel, ch*zoomLevel
	return core.Rect{
		X: (bw - width)/2.0,
		Y: (bh - height)/2.0,
		W: width,
		H: height,
	}
}

func fitPixelPerfect(cw, ch float64, bw, bh int) core.Rect {
	zoomLevel := math.Min(float64(bw)/cw, float64(bh)/ch)
	if zoomLevel < 1.0 { // minification
		return fitProportional(cw, ch, float64(bw), float64(bh))
	}

	// integer scaling
	intZoomLevel := int(zoomLevel)
	outWidth  := int(cw)*intZoomLevel
	outHeight := int(ch)*intZoomLevel
	return core.Rect{
		X: float64((bw - outWidth) >> 1),
		Y: float64((bh - outHeight) >> 1),
		W: float64(outWidth),
		H: float64(outHeight),
	}
}
