//go:build !cputext

package ptex

import "image"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/ptex/core"

func newTestImage(width, height int) core.Image {
	return ebiten.NewImage(width, height)
}

func asTestImage(img *image.RGBA) core.Image {
	return ebiten.NewImageFromImage(img)
}

func newNilTestImage() core.Image {
	var img *ebiten.Image
	return img
}
