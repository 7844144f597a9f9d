package ptex

import "fmt"
import "math"
import "image"

import "github.com/tinne26/ptex/core"
import "github.com/tinne26/ptex/drawable"
import "github.com/tinne26/ptex/internal"

var _ drawable.Drawable = (*NinePatch)(nil)

// Optional parameters for [NewNinePatch]().
type NinePatchOptions struct {
	// Center (pivot) used when drawing the nine-patch as a whole.
	// See [NinePatch.SetCenter]().
	PivotX, PivotY float64

	// Draw scaling factors. See [NinePatch.SetScale](). Zero values
	// default to 1.
	ScaleX, ScaleY float64

	// Whether to use smooth sampling when stretching the edges
	// and the center. Pixel art typically wants this disabled.
	Smooth bool

	// Optional offscreen target to render into. Its size must match
	// the clamped nine-patch size. Ownership is transferred to the
	// nine-patch: the target is released along with it, and replaced
	// on the first size change.
	Target core.Target
}

func (self *NinePatchOptions) scales() (float64, float64, error) {
	x, y := self.ScaleX, self.ScaleY
	if x == 0 { x = 1.0 }
	if y == 0 { y = 1.0 }
	if !(x > 0) || !(y > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, fmt.Errorf("%w: nine-patch scale must be positive, got (%g, %g)", ErrInvalidArguments, x, y)
	}
	return x, y, nil
}

// A NinePatch composes a resizable panel from the nine slices of a
// [Descriptor]: the four corners keep their native size, the top and
// bottom edges stretch horizontally, the left and right edges stretch
// vertically and the center stretches on both axes.
//
// The slices are rendered once into an offscreen target owned by the
// nine-patch, and only rendered again when the size actually changes.
// The result can be drawn like any other static image through the
// [drawable.Drawable] methods.
//
// Nine-patches are not safe for concurrent use.
type NinePatch struct {
	regions [9]Region
	topLeftW, topLeftH int
	bottomRightW, bottomRightH int
	minWidth, minHeight int

	width, height int
	offscreen core.Target
	surface *Surface
	smooth bool

	static *drawable.Static
	renders int // render passes, for diagnostics
}

// Creates a nine-patch from the given descriptor. The requested size
// is clamped to the minimum size determined by the fixed corners (see
// [Descriptor.MinSize]()).
//
// Malformed descriptors return a [*ConfigError] matching
// [ErrInvalidConfiguration]. Invalid options return an error wrapping
// [ErrInvalidArguments]. Nothing is allocated on failure.
func NewNinePatch(desc Descriptor, width, height int, opts *NinePatchOptions) (*NinePatch, error) {
	err := desc.Validate()
	if err != nil { return nil, err }
	var options NinePatchOptions
	if opts != nil { options = *opts }
	scaleX, scaleY, err := options.scales()
	if err != nil { return nil, err }

	patch := &NinePatch{
		topLeftW: desc.TopLeft.W,
		topLeftH: desc.TopLeft.H,
		bottomRightW: desc.BottomRight.W,
		bottomRightH: desc.BottomRight.H,
		smooth: options.Smooth,
	}
	patch.minWidth, patch.minHeight = desc.MinSize()
	width, height = patch.clampSize(width, height)
	if options.Target != nil {
		bounds := options.Target.Bounds()
		if bounds.Dx() != width || bounds.Dy() != height {
			return nil, fmt.Errorf(
				"%w: target size %dx%d doesn't match nine-patch size %dx%d",
				ErrInvalidArguments, bounds.Dx(), bounds.Dy(), width, height,
			)
		}
	}

	// derive regions
	for i, area := range deriveSlices(desc) {
		patch.regions[i] = newRegion(desc.Texture, area)
	}
	centerWidth, centerHeight := desc.CenterSize()
	if centerWidth <= 0 || centerHeight <= 0 {
		internal.Logger().Warn(
			"ptex: degenerate nine-patch center",
			"centerWidth", centerWidth, "centerHeight", centerHeight,
		)
	}

	// set up offscreen and render
	if options.Target != nil {
		patch.setOffscreen(options.Target, width, height)
	} else {
		patch.allocate(width, height)
	}
	patch.render()

	patch.static = drawable.NewStatic(patch.offscreen)
	patch.static.SetSize(width, height)
	patch.static.SetCenter(options.PivotX, options.PivotY)
	patch.static.SetScale(scaleX, scaleY)
	return patch, nil
}

// ---- sizing ----

// Sets the size of the nine-patch. Values below the minimum size are
// clamped up to it. If the clamped size matches the current one, this
// is a no-op. Otherwise, the offscreen is replaced (which also clears
// it) and the slices are rendered again.
func (self *NinePatch) SetSize(width, height int) {
	self.assertAlive()
	width, height = self.clampSize(width, height)
	if width == self.width && height == self.height { return }

	releaseOffscreen(self.offscreen)
	self.allocate(width, height)
	self.render()
	self.static.SetImage(self.offscreen)
	self.static.SetSize(width, height)
}

// Same as [NinePatch.SetSize](), taking the size as a point.
func (self *NinePatch) SetSizePoint(size image.Point) {
	self.SetSize(size.X, size.Y)
}

// Returns the current size of the nine-patch.
func (self *NinePatch) Size() (int, int) { return self.width, self.height }

// Returns the minimum size of the nine-patch, determined by the
// fixed corners.
func (self *NinePatch) MinSize() (int, int) { return self.minWidth, self.minHeight }

func (self *NinePatch) clampSize(width, height int) (int, int) {
	return max(width, self.minWidth), max(height, self.minHeight)
}

// ---- slices ----

// Returns the region for the given slice. Regions of degenerate
// descriptors can be empty. See [Region.Empty]().
func (self *NinePatch) Region(slice Slice) Region {
	if slice > BottomRightSlice { panic("invalid " + slice.String()) }
	return self.regions[slice]
}

// Returns the nine regions, indexed by [Slice].
func (self *NinePatch) Regions() [9]Region { return self.regions }

// Returns the destination rectangles of the nine slices for the
// current size, indexed by [Slice]. The rectangles tile the whole
// nine-patch without gaps nor overlaps. The center rectangle is
// typically used to lay out content on top of the panel.
func (self *NinePatch) SliceRects() [9]core.Rect {
	return layoutSlices(self.width, self.height, self.topLeftW, self.topLeftH, self.bottomRightW, self.bottomRightH)
}

// ---- offscreen management ----

// Returns the offscreen image holding the composed nine-patch.
// The image is replaced on size changes, so it shouldn't be retained.
func (self *NinePatch) Image() core.Image {
	self.assertAlive()
	return self.offscreen
}

// Clears the offscreen and renders all the slices again. This is
// only necessary if the contents of the source texture have been
// modified since the last render.
func (self *NinePatch) Redraw() {
	self.assertAlive()
	clearOffscreen(self.offscreen)
	self.render()
}

// Releases the offscreen. The nine-patch can't be used afterwards.
// Calling Release() multiple times is allowed.
func (self *NinePatch) Release() {
	if self.offscreen == nil { return }
	releaseOffscreen(self.offscreen)
	self.offscreen = nil
	self.surface = nil
	self.static.SetImage(nil)
}

func (self *NinePatch) allocate(width, height int) {
	self.setOffscreen(newOffscreen(width, height), width, height)
	internal.Logger().Debug("ptex: nine-patch offscreen allocated", "width", width, "height", height)
}

func (self *NinePatch) setOffscreen(target core.Target, width, height int) {
	self.offscreen = target
	self.width, self.height = width, height
	self.surface = NewSurface(NewTargetCanvas(target))
	self.surface.SetSmoothing(self.smooth)
}

func (self *NinePatch) render() {
	layout := self.SliceRects()
	blits := renderSlices(self.surface, &self.regions, &layout)
	self.renders += 1
	internal.Logger().Debug(
		"ptex: nine-patch rendered",
		"width", self.width, "height", self.height, "blits", blits,
	)
}

func (self *NinePatch) assertAlive() {
	if self.offscreen == nil { panic("NinePatch used after Release()") }
}

// ---- drawable delegation ----

// Draws the composed nine-patch with its center placed at (x, y),
// applying the current scale. See [drawable.Static.Draw]().
func (self *NinePatch) Draw(canvas core.Canvas, x, y float64) {
	self.assertAlive()
	self.static.Draw(canvas, x, y)
}

// Draws the composed nine-patch fitted into the canvas bounds.
// See [drawable.Static.DrawBounds]().
//
// Notice that this stretches the composed image itself, corners
// included. To fill a canvas without distorting the corners, use
// [NinePatch.SetSizePoint](canvas.Bounds().Size()) first.
func (self *NinePatch) DrawBounds(canvas core.Canvas) {
	self.assertAlive()
	self.static.DrawBounds(canvas)
}

// Draws the composed nine-patch centered on the canvas bounds.
// See [drawable.Static.DrawCenter]().
func (self *NinePatch) DrawCenter(canvas core.Canvas) {
	self.assertAlive()
	self.static.DrawCenter(canvas)
}

// Sets the center (pivot) used by [NinePatch.Draw]().
func (self *NinePatch) SetCenter(x, y float64) { self.static.SetCenter(x, y) }

// Sets the center from an align for the current size. The center
// is not updated automatically on later resizes.
func (self *NinePatch) SetCenterAlign(align Align) { self.static.SetCenterAlign(align) }

// Returns the center (pivot) used by [NinePatch.Draw]().
func (self *NinePatch) Center() (float64, float64) { return self.static.Center() }

// Sets the scaling factors applied when drawing the composed
// nine-patch. This scales the final image, corners included;
// to resize the panel, use [NinePatch.SetSize]() instead.
// Scales must be positive.
func (self *NinePatch) SetScale(x, y float64) { self.static.SetScale(x, y) }

// Returns the current draw scaling factors.
func (self *NinePatch) Scale() (float64, float64) { return self.static.Scale() }

// Sets the projector used by [NinePatch.DrawBounds]().
func (self *NinePatch) SetProjector(projector drawable.Projector) {
	self.static.SetProjector(projector)
}

// ---- layout helpers ----

// Derives the nine source rectangles for the descriptor, going
// through the layout cache.
func deriveSlices(desc Descriptor) [9]image.Rectangle {
	tl, br := desc.TopLeft, desc.BottomRight
	key := internal.LayoutKey{tl.X, tl.Y, tl.W, tl.H, br.X, br.Y, br.W, br.H}
	slices, found := internal.DefaultCache.GetLayout(key)
	if found { return slices }
	slices = computeSlices(tl, br)
	internal.DefaultCache.SetLayout(key, slices)
	return slices
}

func computeSlices(tl, br Corner) [9]image.Rectangle {
	cx, cy := tl.X + tl.W, tl.Y + tl.H
	cw, ch := br.X - cx, br.Y - cy
	return [9]image.Rectangle{
		rectXYWH(tl.X, tl.Y, tl.W, tl.H), // top-left
		rectXYWH(  cx, tl.Y,   cw, tl.H), // top
		rectXYWH(br.X, tl.Y, br.W, tl.H), // top-right
		rectXYWH(tl.X,   cy, tl.W,   ch), // left
		rectXYWH(  cx,   cy,   cw,   ch), // center
		rectXYWH(br.X,   cy, br.W,   ch), // right
		rectXYWH(tl.X, br.Y, tl.W, br.H), // bottom-left
		rectXYWH(  cx, br.Y,   cw, br.H), // bottom
		rectXYWH(br.X, br.Y, br.W, br.H), // bottom-right
	}
}

// Computes the destination rectangles of the nine slices for a
// composite of the given size. Precondition: the size is at least
// the minimum size, so no column or row is negative.
func layoutSlices(width, height, topLeftW, topLeftH, bottomRightW, bottomRightH int) [9]core.Rect {
	xs := [3]int{0, topLeftW, width - bottomRightW}
	ys := [3]int{0, topLeftH, height - bottomRightH}
	widths  := [3]int{topLeftW, width - topLeftW - bottomRightW, bottomRightW}
	heights := [3]int{topLeftH, height - topLeftH - bottomRightH, bottomRightH}
	if widths[1] < 0 || heights[1] < 0 { panic(preViolation) }

	var rects [9]core.Rect
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			rects[row*3 + col] = core.Rect{
				X: float64(xs[col]),
				Y: float64(ys[row]),
				W: float64(widths[col]),
				H: float64(heights[row]),
			}
		}
	}
	return rects
}

// Draws each region stretched to its destination rectangle, skipping
// zero-extent pieces. Returns the number of blits issued.
func renderSlices(canvas core.Canvas, regions *[9]Region, layout *[9]core.Rect) int {
	var blits int
	for i := range regions {
		region, dst := regions[i], layout[i]
		if region.Empty() || dst.Empty() { continue }
		region.DrawScaled(canvas, dst.X, dst.Y, dst.W, dst.H)
		blits += 1
	}
	return blits
}
