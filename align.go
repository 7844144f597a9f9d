package ptex

import "github.com/tinne26/ptex/core"

// Aligns can be used to define pivots without computing offsets by
// hand. See [core.Align] for the full documentation and
// [Region.WithPivotAlign]() for typical usage.
type Align = core.Align

const (
	Left       Align = core.Left
	HorzCenter Align = core.HorzCenter
	Right      Align = core.Right

	Top        Align = core.Top
	VertCenter Align = core.VertCenter
	Bottom     Align = core.Bottom

	Center Align = core.Center
)
