//go:build !cputext

package drawable

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/ptex/core"

func newTestImage(width, height int) core.Image {
	return ebiten.NewImage(width, height)
}
