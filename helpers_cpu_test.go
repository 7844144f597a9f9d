//go:build cputext

package ptex

import "image"

import "github.com/tinne26/ptex/core"

func newTestImage(width, height int) core.Image {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func asTestImage(img *image.RGBA) core.Image { return img }

func newNilTestImage() core.Image {
	var img *image.RGBA
	return img
}
