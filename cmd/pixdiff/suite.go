package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/raster"
	"github.com/gogpu/raster/pixfmt"
)

// manifest describes a regression suite: a set of named scene renders
// checked against golden images.
type manifest struct {
	// Size is the default canvas size as "WxH".
	Size string `yaml:"size"`
	// Format selects the golden image codec, "png" or "bmp".
	Format string `yaml:"format"`
	// Golden is the directory holding one image per case, relative to
	// the manifest file.
	Golden string         `yaml:"golden"`
	Cases  []manifestCase `yaml:"cases"`
}

type manifestCase struct {
	// Name defaults to the scene name and doubles as the golden file
	// stem.
	Name  string `yaml:"name"`
	Scene string `yaml:"scene"`
	// Size overrides the suite default for this case.
	Size string `yaml:"size,omitempty"`
	// Background and Color are hex colors ("#rrggbb" and friends).
	Background string `yaml:"background,omitempty"`
	Color      string `yaml:"color,omitempty"`
	// Rule is the fill rule, "nonzero" or "evenodd".
	Rule string `yaml:"rule,omitempty"`
	// Op names the compositing operator shown by the compop scene.
	Op string `yaml:"op,omitempty"`
	// File overrides the golden image path for this case, relative to
	// the manifest file. Cross-implementation references live outside
	// the golden directory.
	File string `yaml:"file,omitempty"`
	// Tolerance is the number of differing pixels accepted before the
	// case fails. Zero means byte-exact.
	Tolerance int `yaml:"tolerance,omitempty"`
}

// parseRule maps a manifest fill rule to the rasterizer's.
func parseRule(s string) (raster.FillingRule, error) {
	switch s {
	case "", "nonzero":
		return raster.FillNonZero, nil
	case "evenodd":
		return raster.FillEvenOdd, nil
	}
	return 0, fmt.Errorf("invalid fill rule %q (want nonzero or evenodd)", s)
}

// parseSize parses a "WxH" dimension string.
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if ok {
		w, err = strconv.Atoi(ws)
		if err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q (want WxH, e.g. 512x512)", s)
	}
	return w, h, nil
}

// loadManifest reads and validates a suite manifest. Defaults are
// applied here so the runner sees a fully resolved document.
func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if m.Size == "" {
		m.Size = "512x512"
	}
	if _, _, err := parseSize(m.Size); err != nil {
		return nil, err
	}
	switch m.Format {
	case "":
		m.Format = "png"
	case "png", "bmp":
	default:
		return nil, fmt.Errorf("invalid format %q (want png or bmp)", m.Format)
	}
	if m.Golden == "" {
		m.Golden = "golden"
	}
	if !filepath.IsAbs(m.Golden) {
		m.Golden = filepath.Join(filepath.Dir(path), m.Golden)
	}
	if len(m.Cases) == 0 {
		return nil, fmt.Errorf("manifest has no cases")
	}

	seen := make(map[string]bool, len(m.Cases))
	for i := range m.Cases {
		c := &m.Cases[i]
		if c.Scene == "" {
			return nil, fmt.Errorf("case %d: missing scene", i)
		}
		if _, ok := sceneByName(c.Scene); !ok {
			return nil, fmt.Errorf("case %d: unknown scene %q (have: %s)", i, c.Scene, sceneNames())
		}
		if c.Name == "" {
			c.Name = c.Scene
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
		if c.Size == "" {
			c.Size = m.Size
		}
		if _, _, err := parseSize(c.Size); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		if _, err := parseRule(c.Rule); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		if c.Op != "" {
			if _, ok := pixfmt.CompOpByName(c.Op); !ok {
				return nil, fmt.Errorf("case %q: unknown compositing operator %q", c.Name, c.Op)
			}
		}
		if c.Tolerance < 0 {
			return nil, fmt.Errorf("case %q: negative tolerance", c.Name)
		}
		if c.File != "" && !filepath.IsAbs(c.File) {
			c.File = filepath.Join(filepath.Dir(path), c.File)
		}
	}
	return &m, nil
}

// params resolves a case into scene parameters. The case is already
// validated, so the parse results are trusted here.
func (c *manifestCase) params() sceneParams {
	p := defaultParams()
	p.Width, p.Height, _ = parseSize(c.Size)
	if c.Background != "" {
		p.Background = raster.Hex(c.Background)
	}
	if c.Color != "" {
		p.Color = raster.Hex(c.Color)
	}
	p.Rule, _ = parseRule(c.Rule)
	if c.Op != "" {
		p.Op, _ = pixfmt.CompOpByName(c.Op)
	}
	return p
}

func (m *manifest) goldenPath(c *manifestCase) string {
	if c.File != "" {
		return c.File
	}
	return filepath.Join(m.Golden, c.Name+"."+m.Format)
}

// runSuiteUpdate renders every case and rewrites the golden images.
func runSuiteUpdate(m *manifest) error {
	if err := os.MkdirAll(m.Golden, 0o755); err != nil {
		return err
	}
	bar := progressbar.Default(int64(len(m.Cases)), "updating golden images")
	defer bar.Close()

	for i := range m.Cases {
		c := &m.Cases[i]
		buf, err := renderScene(c.Scene, c.params())
		if err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		img, err := bufferImage(buf)
		if err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		if err := writeImage(m.goldenPath(c), img); err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		bar.Add(1)
	}
	return nil
}

// runSuiteCheck renders every case and compares against the golden
// image. Failing renders land in keepDir when it is non-empty.
func runSuiteCheck(m *manifest, keepDir string) error {
	if keepDir != "" {
		if err := os.MkdirAll(keepDir, 0o755); err != nil {
			return err
		}
	}

	bar := progressbar.Default(int64(len(m.Cases)), "checking golden images")
	var failures []string
	fail := func(c *manifestCase, format string, args ...any) {
		failures = append(failures, fmt.Sprintf("%s: %s", c.Name, fmt.Sprintf(format, args...)))
	}

	for i := range m.Cases {
		c := &m.Cases[i]
		buf, err := renderScene(c.Scene, c.params())
		if err != nil {
			bar.Close()
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		got, err := bufferImage(buf)
		if err != nil {
			bar.Close()
			return fmt.Errorf("case %q: %w", c.Name, err)
		}

		want, err := readImage(m.goldenPath(c))
		switch {
		case err != nil:
			fail(c, "%v", err)
		default:
			d, err := compareImages(want, got)
			if err != nil {
				fail(c, "%v", err)
			} else if !d.Within(c.Tolerance) {
				fail(c, "%v", d)
			} else {
				bar.Add(1)
				continue
			}
		}

		if keepDir != "" {
			name := c.Name + "." + m.Format
			if err := writeImage(filepath.Join(keepDir, name), got); err != nil {
				fail(c, "keeping render: %v", err)
			}
		}
		bar.Add(1)
	}
	bar.Close()

	for _, f := range failures {
		fmt.Fprintln(os.Stderr, f)
	}
	passed := len(m.Cases) - len(failures)
	fmt.Printf("suite: %d passed, %d failed\n", passed, len(failures))
	if len(failures) > 0 {
		return errDiff
	}
	return nil
}
