//go:build cputext

package drawable

import "image"

import "github.com/tinne26/ptex/core"

func newTestImage(width, height int) core.Image {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}
