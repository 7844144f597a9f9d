//go:build !cputext

// ptex-view opens a resizable window showing a nine-patch panel that
// follows the window size, which is handy to check descriptors.
//
// Usage:
//   ptex-view -texture panel.png -descriptor panel.json [-zoom 3] [-bg #20242c]
//
// Press escape to quit.
package main

import "os"
import "fmt"
import "flag"
import "log/slog"
import "image/color"

import "github.com/disintegration/imaging"
import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"
import "github.com/lucasb-eyer/go-colorful"

import "github.com/tinne26/ptex"

type Game struct {
	patch *ptex.NinePatch
	background color.Color
	margin int
	zoom int
	width, height int
}

func (self *Game) Layout(winWidth, winHeight int) (int, int) {
	self.width  = max(winWidth/self.zoom, 1)
	self.height = max(winHeight/self.zoom, 1)
	return self.width, self.height
}

func (self *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// no-op unless the window size changed
	self.patch.SetSize(self.width - self.margin*2, self.height - self.margin*2)
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	screen.Fill(self.background)
	self.patch.DrawCenter(ptex.NewTargetCanvas(screen))
}

func main() {
	texturePath := flag.String("texture", "", "nine-patch texture image")
	descPath := flag.String("descriptor", "", "JSON file with the nine-patch corners")
	zoom := flag.Int("zoom", 2, "integer zoom level")
	margin := flag.Int("margin", 8, "margin around the panel, in logical pixels")
	background := flag.String("bg", "#20242c", "background color")
	smooth := flag.Bool("smooth", false, "smooth stretching of edges and center")
	verbose := flag.Bool("v", false, "log nine-patch allocations and renders")
	flag.Parse()

	if *texturePath == "" || *descPath == "" {
		fmt.Fprint(os.Stderr, "ptex-view: both -texture and -descriptor are required\n")
		flag.Usage()
		os.Exit(2)
	}
	if *zoom < 1 {
		fmt.Fprintf(os.Stderr, "ptex-view: invalid zoom level %d\n", *zoom)
		os.Exit(2)
	}
	bg, err := colorful.Hex(*background)
	if err != nil { exitWithError(err) }
	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: slog.LevelDebug })
		ptex.SetLogger(slog.New(handler))
	}

	// load texture and descriptor
	img, err := imaging.Open(*texturePath)
	if err != nil { exitWithError(err) }
	texture := ebiten.NewImageFromImage(img)
	file, err := os.Open(*descPath)
	if err != nil { exitWithError(err) }
	desc, err := ptex.DecodeDescriptor(file, texture)
	_ = file.Close()
	if err != nil { exitWithError(err) }

	// create nine-patch and run
	minWidth, minHeight := desc.MinSize()
	patch, err := ptex.NewNinePatch(desc, minWidth, minHeight, &ptex.NinePatchOptions{ Smooth: *smooth })
	if err != nil { exitWithError(err) }
	defer patch.Release()

	winWidth  := max(minWidth  + *margin*2, 160)*(*zoom)
	winHeight := max(minHeight + *margin*2, 120)*(*zoom)
	ebiten.SetWindowTitle("ptex-view")
	ebiten.SetWindowSize(winWidth, winHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	game := &Game{ patch: patch, background: bg, margin: *margin, zoom: *zoom }
	err = ebiten.RunGame(game)
	if err != nil { exitWithError(err) }
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "ptex-view: %s\n", err)
	os.Exit(1)
}
