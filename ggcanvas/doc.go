// Package ggcanvas adapts [github.com/gogpu/gg] contexts to the
// ptex [core.Canvas] interface, so regions and nine-patches can be
// drawn into software rendered images and exported.
//
// The adapter is only available with the cputext build tag, where
// ptex images are standard [image.Image] values:
//   dc := gg.NewContext(640, 480)
//   patch.DrawCenter(ggcanvas.New(dc))
//   err := dc.SavePNG("panel.png")
//
// The gg image pipeline always samples bilinearly, so canvases from
// this package don't implement [core.Smoother].
package ggcanvas
