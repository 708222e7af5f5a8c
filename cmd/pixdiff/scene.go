package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gogpu/raster"
	"github.com/gogpu/raster/pixfmt"
)

// sceneParams parameterizes a scene without breaking determinism: the
// same params always render to the same bytes.
type sceneParams struct {
	Width      int
	Height     int
	Background raster.RGBA8
	Color      raster.RGBA8
	// Rule applies to the scenes whose geometry self-intersects (star,
	// clipbox). The rings scene is the even-odd rule by definition and
	// ignores it.
	Rule raster.FillingRule
	// Op is the operator shown by the compop scene.
	Op pixfmt.CompOp
}

func defaultParams() sceneParams {
	return sceneParams{
		Width:      512,
		Height:     512,
		Background: raster.White,
		Color:      raster.Hex("#c8283c"),
		Rule:       raster.FillNonZero,
		Op:         pixfmt.CompOpMultiply,
	}
}

type scene struct {
	name string
	desc string
	draw func(p sceneParams) (*pixfmt.Buffer, error)
}

// scenes is the built-in catalog, kept sorted by name.
var scenes = []scene{
	{"blend", "compositing operator bands over a gradient backdrop", drawBlend},
	{"clipbox", "star clipped to the central quarter", drawClipbox},
	{"compop", "one compositing operator applied across the tonal range", drawCompOp},
	{"gradient", "bilinear four-corner color ramp", drawGradient},
	{"grays", "overlapping translucent disks on a grayscale surface", drawGrays},
	{"rings", "concentric squares under the even-odd rule", drawRings},
	{"squares", "aligned, half-pixel and rotated squares", drawSquares},
	{"star", "seven-arm star under the configured fill rule", drawStar},
}

func sceneByName(name string) (scene, bool) {
	i := sort.Search(len(scenes), func(i int) bool { return scenes[i].name >= name })
	if i < len(scenes) && scenes[i].name == name {
		return scenes[i], true
	}
	return scene{}, false
}

func sceneNames() string {
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.name
	}
	return strings.Join(names, ", ")
}

// renderScene looks up and draws a named scene.
func renderScene(name string, p sceneParams) (*pixfmt.Buffer, error) {
	s, ok := sceneByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have: %s)", name, sceneNames())
	}
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d", p.Width, p.Height)
	}
	return s.draw(p)
}

// Path helpers. Geometry is expressed in fractions of the canvas so a
// scene renders sensibly at any size.

func addRect(r *raster.Rasterizer, x1, y1, x2, y2 float64) {
	r.MoveToD(x1, y1)
	r.LineToD(x2, y1)
	r.LineToD(x2, y2)
	r.LineToD(x1, y2)
	r.ClosePolygon()
}

// addNgon approximates a disk with an n-sided polygon. 48 sides keep
// the flattening error under a sub-pixel at the sizes the scenes use.
func addNgon(r *raster.Rasterizer, cx, cy, radius float64, n int, phase float64) {
	for i := 0; i < n; i++ {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		x := cx + radius*math.Cos(a)
		y := cy + radius*math.Sin(a)
		if i == 0 {
			r.MoveToD(x, y)
		} else {
			r.LineToD(x, y)
		}
	}
	r.ClosePolygon()
}

// addStarPolygon traces the {arms/step} star polygon: each vertex
// connects to the one step positions around the circle, so the outline
// crosses itself and the two fill rules disagree about the interior.
func addStarPolygon(r *raster.Rasterizer, cx, cy, radius float64, arms, step int, phase float64) {
	for i := 0; i < arms; i++ {
		a := phase + 2*math.Pi*float64(i*step)/float64(arms)
		x := cx + radius*math.Cos(a)
		y := cy + radius*math.Sin(a)
		if i == 0 {
			r.MoveToD(x, y)
		} else {
			r.LineToD(x, y)
		}
	}
	r.ClosePolygon()
}

func drawSquares(p sceneParams) (*pixfmt.Buffer, error) {
	pf, err := pixfmt.NewRGBA32(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(p.Background)

	w := float64(p.Width)
	h := float64(p.Height)
	side := w * 0.28
	sl := raster.NewScanlineU8()

	// Pixel-aligned: every edge lands on the grid, no AA fringe.
	ras := raster.NewRasterizer()
	x := math.Floor(w * 0.08)
	y := math.Floor(h * 0.3)
	addRect(ras, x, y, x+math.Floor(side), y+math.Floor(side))
	raster.RenderScanlinesAASolid(ras, sl, ren, p.Color)

	// Half-pixel shifted: every edge row and column covers 50%.
	ras.Reset()
	x = math.Floor(w*0.38) + 0.5
	addRect(ras, x, y+0.5, x+math.Floor(side), y+0.5+math.Floor(side))
	raster.RenderScanlinesAASolid(ras, sl, ren, p.Color)

	// Rotated 45 degrees: AA everywhere.
	ras.Reset()
	addNgon(ras, w*0.82, y+side/2, side*math.Sqrt2/2, 4, math.Pi/4)
	raster.RenderScanlinesAASolid(ras, sl, ren, p.Color)

	return pf.Buffer(), nil
}

func drawStar(p sceneParams) (*pixfmt.Buffer, error) {
	pf, err := pixfmt.NewRGBA32(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(p.Background)

	w := float64(p.Width)
	h := float64(p.Height)
	ras := raster.NewRasterizer(raster.WithFillingRule(p.Rule))
	addStarPolygon(ras, w/2, h/2, math.Min(w, h)*0.45, 7, 3, -math.Pi/2)
	raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren, p.Color)

	return pf.Buffer(), nil
}

func drawRings(p sceneParams) (*pixfmt.Buffer, error) {
	pf, err := pixfmt.NewRGBA32(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(p.Background)

	w := float64(p.Width)
	h := float64(p.Height)
	ras := raster.NewRasterizer(raster.WithFillingRule(raster.FillEvenOdd))
	for i := 0; i < 4; i++ {
		inset := (0.06 + 0.11*float64(i)) * math.Min(w, h)
		addRect(ras, inset, inset, w-inset, h-inset)
	}
	raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren, p.Color)

	return pf.Buffer(), nil
}

func drawClipbox(p sceneParams) (*pixfmt.Buffer, error) {
	pf, err := pixfmt.NewRGBA32(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(p.Background)

	w := float64(p.Width)
	h := float64(p.Height)
	ras := raster.NewRasterizer(
		raster.WithClipBox(w*0.25, h*0.25, w*0.75, h*0.75),
		raster.WithFillingRule(p.Rule),
	)
	addStarPolygon(ras, w/2, h/2, math.Min(w, h)*0.48, 7, 3, -math.Pi/2)
	raster.RenderScanlinesAASolid(ras, raster.NewScanlineU8(), ren, p.Color)

	return pf.Buffer(), nil
}

// cornerRamp interpolates four corner colors bilinearly, in integer
// arithmetic so the ramp is identical on every platform.
type cornerRamp struct {
	w, h               int
	c00, c10, c01, c11 raster.RGBA8
}

func (g *cornerRamp) Prepare() {}

func (g *cornerRamp) Generate(colors []raster.RGBA8, x, y, length int) {
	mx := int64(g.w - 1)
	my := int64(g.h - 1)
	if mx < 1 {
		mx = 1
	}
	if my < 1 {
		my = 1
	}
	wy0 := my - int64(y)
	wy1 := int64(y)
	for i := 0; i < length; i++ {
		wx0 := mx - int64(x+i)
		wx1 := int64(x + i)
		mix := func(a, b, c, d uint8) uint8 {
			v := int64(a)*wx0*wy0 + int64(b)*wx1*wy0 + int64(c)*wx0*wy1 + int64(d)*wx1*wy1
			return uint8(v / (mx * my))
		}
		colors[i] = raster.RGBA8{
			R: mix(g.c00.R, g.c10.R, g.c01.R, g.c11.R),
			G: mix(g.c00.G, g.c10.G, g.c01.G, g.c11.G),
			B: mix(g.c00.B, g.c10.B, g.c01.B, g.c11.B),
			A: mix(g.c00.A, g.c10.A, g.c01.A, g.c11.A),
		}
	}
}

func drawGradient(p sceneParams) (*pixfmt.Buffer, error) {
	pf, err := pixfmt.NewRGBA32(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(p.Background)

	w := float64(p.Width)
	h := float64(p.Height)
	ras := raster.NewRasterizer()
	addNgon(ras, w/2, h/2, math.Min(w, h)*0.46, 48, 0)

	gen := &cornerRamp{
		w: p.Width, h: p.Height,
		c00: p.Color,
		c10: raster.Hex("#ffb400"),
		c01: raster.Hex("#0064c8"),
		c11: raster.Hex("#1eb432"),
	}
	raster.RenderScanlinesAA(ras, raster.NewScanlineU8(), ren, raster.NewSpanAllocator(), gen)

	return pf.Buffer(), nil
}

// blendOps is the operator lineup shown by the blend scene, one band
// each, top to bottom.
var blendOps = []pixfmt.CompOp{
	pixfmt.CompOpSrcOver,
	pixfmt.CompOpMultiply,
	pixfmt.CompOpScreen,
	pixfmt.CompOpOverlay,
	pixfmt.CompOpPlus,
	pixfmt.CompOpDifference,
	pixfmt.CompOpExclusion,
	pixfmt.CompOpXor,
}

func drawBlend(p sceneParams) (*pixfmt.Buffer, error) {
	pf, err := pixfmt.NewRGBA32(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(p.Background)

	w := float64(p.Width)
	h := float64(p.Height)

	// Backdrop: a horizontal ramp so every operator shows its behavior
	// across the whole tonal range.
	ras := raster.NewRasterizer()
	addRect(ras, 0, 0, w, h)
	gen := &cornerRamp{
		w: p.Width, h: p.Height,
		c00: raster.Black, c10: raster.White,
		c01: raster.Black, c11: raster.White,
	}
	raster.RenderScanlinesAA(ras, raster.NewScanlineU8(), ren, raster.NewSpanAllocator(), gen)

	comp, err := pixfmt.WrapCompOpRGBA32(pf.Buffer(), pixfmt.CompOpSrcOver)
	if err != nil {
		return nil, err
	}
	renC := raster.NewBaseRenderer(comp)

	band := p.Color
	band.A = 176
	bandH := h / (float64(len(blendOps)) + 1)
	sl := raster.NewScanlineU8()
	for i, op := range blendOps {
		comp.SetOp(op)
		ras.Reset()
		y := (float64(i) + 0.5) * bandH
		addRect(ras, w*0.06, y+bandH*0.15, w*0.94, y+bandH*0.95)
		raster.RenderScanlinesAASolid(ras, sl, renC, band)
	}

	return pf.Buffer(), nil
}

// drawCompOp isolates a single operator: the foreground color sweeps
// its alpha from 0 at the top to 255 at the bottom, composited over a
// horizontal tonal ramp. Every (backdrop, alpha) combination of the
// operator ends up on the canvas, which makes golden images of this
// scene a thorough operator check.
func drawCompOp(p sceneParams) (*pixfmt.Buffer, error) {
	pf, err := pixfmt.NewRGBA32(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	ren := raster.NewBaseRenderer(pf)
	ren.Clear(p.Background)

	w := float64(p.Width)
	h := float64(p.Height)

	ras := raster.NewRasterizer()
	addRect(ras, 0, 0, w, h)
	backdrop := &cornerRamp{
		w: p.Width, h: p.Height,
		c00: raster.Black, c10: raster.White,
		c01: raster.Black, c11: raster.White,
	}
	alloc := raster.NewSpanAllocator()
	raster.RenderScanlinesAA(ras, raster.NewScanlineU8(), ren, alloc, backdrop)

	comp, err := pixfmt.WrapCompOpRGBA32(pf.Buffer(), p.Op)
	if err != nil {
		return nil, err
	}
	renC := raster.NewBaseRenderer(comp)

	transparent := p.Color
	transparent.A = 0
	opaque := p.Color
	opaque.A = 255
	fg := &cornerRamp{
		w: p.Width, h: p.Height,
		c00: transparent, c10: transparent,
		c01: opaque, c11: opaque,
	}
	ras.Reset()
	addRect(ras, w*0.1, h*0.05, w*0.9, h*0.95)
	raster.RenderScanlinesAA(ras, raster.NewScanlineU8(), renC, alloc, fg)

	return pf.Buffer(), nil
}

func drawGrays(p sceneParams) (*pixfmt.Buffer, error) {
	gray, err := pixfmt.NewGray8(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	ren := raster.NewBaseRenderer(gray)
	ren.Clear(raster.Black)

	w := float64(p.Width)
	h := float64(p.Height)
	r := math.Min(w, h) * 0.26
	sl := raster.NewScanlineU8()

	disks := []struct {
		cx, cy float64
		c      raster.RGBA8
	}{
		{w * 0.38, h * 0.38, raster.RGBA8{R: 255, A: 200}},
		{w * 0.62, h * 0.38, raster.RGBA8{G: 255, A: 200}},
		{w * 0.5, h * 0.62, raster.RGBA8{B: 255, A: 200}},
	}
	ras := raster.NewRasterizer()
	for _, d := range disks {
		ras.Reset()
		addNgon(ras, d.cx, d.cy, r, 48, 0)
		raster.RenderScanlinesAASolid(ras, sl, ren, d.c)
	}

	// Expand to RGBA for file output.
	out, err := pixfmt.NewRGBA32(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			out.CopyPixel(x, y, gray.GetPixel(x, y))
		}
	}
	return out.Buffer(), nil
}
