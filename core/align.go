package core

// Aligns are a convenient way to define pivots. Given a box of
// known size, the align determines which point of the box has to
// be placed at the draw coordinates. For example, drawing a region
// at (0, 0) with a centered align means that the center of the
// region will be placed at (0, 0), and we will only see its bottom
// right quarter on the top-left corner of the [Target].
// 
// See [Align.Pivot]() for the conversion to pivot coordinates.
type Align uint8

// Returns the vertical component of the align. If the align
// is valid and [Align.HasVertComponent](), the result can only
// be [Top], [VertCenter] or [Bottom].
func (self Align) Vert() Align { return alignVertBits & self }

// Returns the horizontal component of the align. If the
// align is valid and [Align.HasHorzComponent]() is true,
// the result can only be [Left], [HorzCenter] or [Right].
func (self Align) Horz() Align { return alignHorzBits & self }

// Returns whether the vertical component of the align is set.
func (self Align) HasVertComponent() bool { return alignVertBits & self != 0 }

// Returns whether the horizontal component of the align is set.
func (self Align) HasHorzComponent() bool { return alignHorzBits & self != 0 }

// Returns the result of overriding the current align with
// the non-empty components of the new align. If both
// components are defined for the new align, the result
// will be the new align itself. If only one component
// is defined, only that component will be overwritten.
// If the new align is completely empty, the value of
// the current align will be returned unmodified.
func (self Align) Adjusted(align Align) Align {
	horz := align.Horz()
	vert := align.Vert()
	if horz != 0 {
		if vert != 0 { return align }
		return horz | self.Vert()
	} else if vert != 0 {
		return self.Horz() | vert
	} else {
		return self
	}
}

// Returns the pivot offset that corresponds to the align for a box
// of the given size. Missing components default to Left and Top,
// so the zero align maps to (0, 0).
func (self Align) Pivot(width, height float64) (float64, float64) {
	var x, y float64
	switch self.Horz() {
	case HorzCenter: x = width/2.0
	case Right: x = width
	}
	switch self.Vert() {
	case VertCenter: y = height/2.0
	case Bottom: y = height
	}
	return x, y
}

// Returns a textual representation of the align. Some examples:
//   (Top | Right).String() == "(Top | Right)"
//   (Right | Top).String() == "(Top | Right)"
//   Center.String() == "(VertCenter | HorzCenter)"
//   HorzCenter.String() == "(HorzCenter)"
func (self Align) String() string {
	if self == 0 { return "(ZeroAlign)" }
	if self.Vert() == 0 { return "(" + self.horzString() + ")" }
	if self.Horz() == 0 { return "(" + self.vertString() + ")" }
	return "(" + self.vertString() + " | " + self.horzString() + ")"
}

func (self Align) vertString() string {
	switch self.Vert() {
	case Top: return "Top"
	case VertCenter: return "VertCenter"
	case Bottom: return "Bottom"
	default:
		return "VertUnknown"
	}
}

func (self Align) horzString() string {
	switch self.Horz() {
	case Left: return "Left"
	case HorzCenter: return "HorzCenter"
	case Right: return "Right"
	default:
		return "HorzUnknown"
	}
}

// Aligns have a vertical and a horizontal component. To set
// both components at once, you can use a bitwise OR:
//   region.WithPivotAlign(ptex.Left | ptex.Bottom)
// To retrieve or compare the individual components, avoid
// bitwise operations and use [Align.Vert]() and [Align.Horz]()
// instead.
const (
	// Horizontal aligns
	Left       Align = 0b0010_0000
	HorzCenter Align = 0b0100_0000
	Right      Align = 0b1000_0000

	// Vertical aligns
	Top        Align = 0b0000_0001
	VertCenter Align = 0b0000_0010
	Bottom     Align = 0b0000_0100

	// Full aligns
	Center Align = HorzCenter | VertCenter

	alignVertBits Align = 0b0000_1111 // bit mask
	alignHorzBits Align = 0b1111_0000 // bit mask
)
