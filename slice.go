package ptex

import "strconv"

// Identifies one of the nine slices of a [NinePatch]. See
// [NinePatch.Region]().
type Slice uint8

const (
	TopLeftSlice Slice = iota
	TopSlice
	TopRightSlice
	LeftSlice
	CenterSlice
	RightSlice
	BottomLeftSlice
	BottomSlice
	BottomRightSlice
)

// Returns a textual representation of the slice.
func (self Slice) String() string {
	switch self {
	case TopLeftSlice: return "TopLeft"
	case TopSlice: return "Top"
	case TopRightSlice: return "TopRight"
	case LeftSlice: return "Left"
	case CenterSlice: return "Center"
	case RightSlice: return "Right"
	case BottomLeftSlice: return "BottomLeft"
	case BottomSlice: return "Bottom"
	case BottomRightSlice: return "BottomRight"
	default:
		return "SliceInvalid#" + strconv.Itoa(int(self))
	}
}

// Returns whether the slice keeps its native size regardless of
// the nine-patch size.
func (self Slice) IsCorner() bool {
	switch self {
	case TopLeftSlice, TopRightSlice, BottomLeftSlice, BottomRightSlice:
		return true
	default:
		return false
	}
}
