package ptex

import "math"
import "image"

const preViolation = "precondition violation"

type errMsg string
func (self errMsg) Error() string { return string(self) }

// Returned (wrapped) when an operation receives an unsupported call
// shape: wrong argument count, non-positive scales, mismatched targets
// and similar programmer errors.
const ErrInvalidArguments = errMsg("invalid arguments")

// Returned (wrapped, see [*ConfigError]) when a nine-patch descriptor
// is malformed.
const ErrInvalidConfiguration = errMsg("invalid configuration")

// Converts a float argument to whole pixels, rounding down.
func floorInt(value float64) int {
	if math.IsNaN(value) { return 0 }
	return int(math.Floor(value))
}

// Builds a rectangle from an origin and a size. Unlike [image.Rect],
// negative sizes don't swap the coordinates, they collapse to an
// empty rectangle at the origin.
func rectXYWH(x, y, width, height int) image.Rectangle {
	if width  < 0 { width  = 0 }
	if height < 0 { height = 0 }
	return image.Rectangle{
		Min: image.Point{x, y},
		Max: image.Point{x + width, y + height},
	}
}
