//go:build !cputext

package core

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (-tags cputext).
// 
// Without Ebitengine, [Target] defaults to [image/draw.Image].
type Target = *ebiten.Image

// The image handle shared by texture regions, nine-patches and drawables.
// Images are never modified through this package unless they are also
// a [Target] owned by it (e.g., the offscreen of a nine-patch).
// 
// Without Ebitengine, [Image] defaults to [image.Image].
type Image = *ebiten.Image
