//go:build cputext

// ptex-render composes a nine-patch at the given size and saves it
// as a PNG, without opening any window. Requires the cputext tag:
//   go run -tags cputext ./cmd/ptex-render -texture panel.png -descriptor panel.json -size 200x120 -o out.png
package main

import "os"
import "fmt"
import "flag"
import "log/slog"

import "github.com/disintegration/imaging"
import "github.com/gogpu/gg"
import "github.com/lucasb-eyer/go-colorful"

import "github.com/tinne26/ptex"
import "github.com/tinne26/ptex/ggcanvas"

func main() {
	texturePath := flag.String("texture", "", "nine-patch texture image")
	descPath := flag.String("descriptor", "", "JSON file with the nine-patch corners")
	size := flag.String("size", "128x64", "nine-patch size, as WIDTHxHEIGHT")
	padding := flag.Int("pad", 0, "transparent or background padding around the panel")
	background := flag.String("bg", "", "background color (transparent if empty)")
	output := flag.String("o", "ninepatch.png", "output PNG file")
	verbose := flag.Bool("v", false, "log nine-patch allocations and renders")
	flag.Parse()

	if *texturePath == "" || *descPath == "" {
		fmt.Fprint(os.Stderr, "ptex-render: both -texture and -descriptor are required\n")
		flag.Usage()
		os.Exit(2)
	}
	var width, height int
	_, err := fmt.Sscanf(*size, "%dx%d", &width, &height)
	if err != nil || *padding < 0 {
		fmt.Fprintf(os.Stderr, "ptex-render: invalid size '%s' or padding %d\n", *size, *padding)
		os.Exit(2)
	}
	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: slog.LevelDebug })
		ptex.SetLogger(slog.New(handler))
	}

	// load texture and descriptor
	texture, err := imaging.Open(*texturePath)
	if err != nil { exitWithError(err) }
	file, err := os.Open(*descPath)
	if err != nil { exitWithError(err) }
	desc, err := ptex.DecodeDescriptor(file, texture)
	_ = file.Close()
	if err != nil { exitWithError(err) }

	// compose (the size might be clamped up)
	patch, err := ptex.NewNinePatch(desc, width, height, nil)
	if err != nil { exitWithError(err) }
	defer patch.Release()
	width, height = patch.Size()

	dc := gg.NewContext(width + *padding*2, height + *padding*2)
	defer dc.Close()
	if *background != "" {
		bg, err := colorful.Hex(*background)
		if err != nil { exitWithError(err) }
		dc.ClearWithColor(gg.FromColor(bg))
	}
	patch.DrawCenter(ggcanvas.New(dc))
	err = dc.SavePNG(*output)
	if err != nil { exitWithError(err) }
	slog.Info("nine-patch saved", "file", *output, "width", width, "height", height)
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "ptex-render: %s\n", err)
	os.Exit(1)
}
