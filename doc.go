// ptex is a package for drawing texture regions and resizable
// nine-patch panels, designed to be used with Ebitengine, a 2D
// game engine made by Hajime Hoshi for Golang.
//
// Everything is drawn through a [core.Canvas]. For Ebitengine
// images, wrap them with [NewTargetCanvas]():
//   func (self *Game) Draw(screen *ebiten.Image) {
//       canvas := ptex.NewTargetCanvas(screen)
//       self.icon.DrawAt(canvas, 32, 32)
//   }
//
// Regions are rectangular areas of a shared texture, with a pivot:
//   icon, err := ptex.NewRegion(atlas, 0, 16, 16, 16)
//   if err != nil { panic(err) }
//   icon = icon.WithPivotAlign(ptex.Center)
//
// Nine-patches are created from a [Descriptor], which can also be
// decoded from JSON with [DecodeDescriptor]():
//   panel, err := ptex.NewNinePatch(desc, 160, 96, nil)
//   if err != nil { panic(err) }
//   panel.SetSize(200, 120) // only re-renders when the size changes
//   panel.DrawCenter(canvas)
//
// If you need smoothing control or a single draw entry point for both
// regions and plain images, see [Surface].
//
// Without Ebitengine, the cputext build tag switches all image types
// to the standard [image.Image] and [image/draw.Image] interfaces.
package ptex
