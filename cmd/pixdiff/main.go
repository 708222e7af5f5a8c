// Command pixdiff renders deterministic test scenes with the raster
// library and compares images byte for byte. The renderer promises
// bit-identical output for identical input; pixdiff is how that
// promise gets checked across machines, platforms and versions.
//
// Usage:
//
//	pixdiff render -scene star -size 512x512 -out star.png
//	pixdiff diff golden/star.png star.png
//	pixdiff suite -manifest testdata/suite.yaml [-update] [-keep dir]
//	pixdiff scenes
//
// Exit status is 0 when images match (or renders succeed), 1 when
// differences are found, and 2 on usage or I/O errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/raster"
	"github.com/gogpu/raster/pixfmt"
)

// errDiff marks "images differ" so it can map to its own exit status.
var errDiff = errors.New("differences found")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "diff":
		err = runDiff(os.Args[2:])
	case "suite":
		err = runSuite(os.Args[2:])
	case "scenes":
		err = runScenes()
	case "-h", "-help", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "pixdiff: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	switch {
	case err == nil:
	case errors.Is(err, errDiff):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "pixdiff: %v\n", err)
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: pixdiff <command> [arguments]

Commands:
  render   render a built-in scene to a .png or .bmp file
  diff     compare two images pixel by pixel
  suite    run a manifest of scene renders against golden images
  scenes   list the built-in scenes
`)
}

// setupLogging routes the library's debug diagnostics (cell counts,
// sweep statistics) to stderr.
func setupLogging(verbose bool) {
	if !verbose {
		return
	}
	raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var (
		sceneName  = fs.String("scene", "star", "scene to render")
		size       = fs.String("size", "512x512", "canvas size as WxH")
		out        = fs.String("out", "", "output file (.png or .bmp)")
		background = fs.String("background", "", "background color as hex")
		foreground = fs.String("color", "", "foreground color as hex")
		rule       = fs.String("rule", "nonzero", "fill rule, nonzero or evenodd")
		op         = fs.String("op", "", "compositing operator for the compop scene")
		verbose    = fs.Bool("v", false, "log rasterizer diagnostics")
	)
	fs.Parse(args)
	if *out == "" {
		return fmt.Errorf("render: -out is required")
	}
	setupLogging(*verbose)

	p := defaultParams()
	var err error
	if p.Width, p.Height, err = parseSize(*size); err != nil {
		return err
	}
	if *background != "" {
		p.Background = raster.Hex(*background)
	}
	if *foreground != "" {
		p.Color = raster.Hex(*foreground)
	}
	if p.Rule, err = parseRule(*rule); err != nil {
		return err
	}
	if *op != "" {
		var ok bool
		if p.Op, ok = pixfmt.CompOpByName(*op); !ok {
			return fmt.Errorf("unknown compositing operator %q", *op)
		}
	}

	buf, err := renderScene(*sceneName, p)
	if err != nil {
		return err
	}
	img, err := bufferImage(buf)
	if err != nil {
		return err
	}
	if err := writeImage(*out, img); err != nil {
		return err
	}
	fmt.Printf("%s: %s scene, %dx%d\n", *out, *sceneName, p.Width, p.Height)
	return nil
}

func runDiff(args []string) error {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	quiet := fs.Bool("q", false, "suppress output, report by exit status only")
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("diff: want exactly two image files, got %d", fs.NArg())
	}

	pathA, pathB := fs.Arg(0), fs.Arg(1)
	a, err := readImage(pathA)
	if err != nil {
		return err
	}
	b, err := readImage(pathB)
	if err != nil {
		return err
	}

	d, err := compareImages(a, b)
	if err != nil {
		return fmt.Errorf("%s vs %s: %w", pathA, pathB, err)
	}
	if !*quiet {
		fmt.Printf("%s vs %s: %v\n", pathA, pathB, d)
	}
	if !d.Equal() {
		return errDiff
	}
	return nil
}

func runSuite(args []string) error {
	fs := flag.NewFlagSet("suite", flag.ExitOnError)
	var (
		manifestPath = fs.String("manifest", "suite.yaml", "suite manifest file")
		update       = fs.Bool("update", false, "rewrite golden images instead of checking")
		keep         = fs.String("keep", "", "directory for failing renders")
		verbose      = fs.Bool("v", false, "log rasterizer diagnostics")
	)
	fs.Parse(args)
	setupLogging(*verbose)

	m, err := loadManifest(*manifestPath)
	if err != nil {
		return err
	}
	if *update {
		return runSuiteUpdate(m)
	}
	return runSuiteCheck(m, *keep)
}

func runScenes() error {
	for _, s := range scenes {
		fmt.Printf("  %-10s %s\n", s.name, s.desc)
	}
	return nil
}
