package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/text"
)

var (
	errMissingColor = errors.New("missing color")
	errMissingPath  = errors.New("missing path")
	errUnknownOp    = errors.New("unknown operation")
)

// Scene is a YAML drawing script.
//
//	width: 320
//	height: 240
//	background: "#202020"
//	font: {size: 18}
//	ops:
//	  - {op: fill_rect, args: [10, 10, 100, 40], color: "#C0FF0000"}
//	  - {op: string, args: [20, 35], text: "REC", color: "#FFFFFF"}
//	  - {op: image, args: [200, 10, 64, 64], path: logo.png}
type Scene struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Background *Color   `yaml:"background"`
	Font       *FontRef `yaml:"font"`
	Ops        []Op     `yaml:"ops"`
}

// FontRef selects a TrueType or OpenType face. An empty path selects the
// bundled Go Regular font.
type FontRef struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// Op is one drawing step. Args holds the integer operands in the order of
// the matching overlay.Context method.
type Op struct {
	Op     string   `yaml:"op"`
	Args   []int    `yaml:"args"`
	Points [][2]int `yaml:"points"`
	Color  *Color   `yaml:"color"`
	Text   string   `yaml:"text"`
	Path   string   `yaml:"path"`
	Rule   string   `yaml:"rule"`
	Alpha  *float32 `yaml:"alpha"`
	Filter string   `yaml:"filter"`
}

// Color is an overlay.ARGB written as "#RRGGBB" or "#AARRGGBB".
type Color overlay.ARGB

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(v)
	return nil
}

func parseColor(s string) (overlay.ARGB, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return overlay.ARGB(v), nil
}

// LoadScene reads and decodes a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

// ParseScene decodes a scene script.
func ParseScene(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid size %dx%d", sc.Width, sc.Height)
	}
	return &sc, nil
}

// Render draws the scene onto a new surface. Relative image and font paths
// are resolved from dir.
func Render(sc *Scene, dir string) (*overlay.Surface, error) {
	s := overlay.NewSurface(sc.Width, sc.Height)
	if sc.Background != nil {
		s.Clear(overlay.ARGB(*sc.Background))
	}

	var opts []overlay.ContextOption
	if sc.Font != nil {
		face, err := loadFont(*sc.Font, dir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, overlay.WithFont(face))
	}

	dc := overlay.NewContextForSurface(s, opts...)
	for i, op := range sc.Ops {
		if err := apply(dc, op, dir); err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	return s, nil
}

func loadFont(ref FontRef, dir string) (text.Face, error) {
	data := goregular.TTF
	if ref.Path != "" {
		var err error
		data, err = os.ReadFile(resolve(dir, ref.Path)) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, fmt.Errorf("font: %w", err)
		}
	}
	face, err := text.NewShapedFace(data, ref.Size)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", ref.Path, err)
	}
	return face, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// apply runs one op against dc.
func apply(dc *overlay.Context, op Op, dir string) error {
	if op.Color != nil && op.Op != "background" && op.Op != "xor" {
		dc.SetColor(overlay.ARGB(*op.Color))
	}

	a := op.Args
	switch op.Op {
	case "color":
		if op.Color == nil {
			return errMissingColor
		}
	case "background":
		if op.Color == nil {
			return errMissingColor
		}
		dc.SetBackground(overlay.ARGB(*op.Color))
	case "translate":
		if err := need(a, 2); err != nil {
			return err
		}
		dc.Translate(a[0], a[1])
	case "clip":
		if len(a) == 0 {
			dc.ResetClip()
			return nil
		}
		if err := need(a, 4); err != nil {
			return err
		}
		dc.SetClipRect(a[0], a[1], a[2], a[3])
	case "clip_rect":
		if err := need(a, 4); err != nil {
			return err
		}
		dc.ClipRect(a[0], a[1], a[2], a[3])
	case "constrain":
		if err := need(a, 4); err != nil {
			return err
		}
		dc.Constrain(a[0], a[1], a[2], a[3])
	case "composite":
		return dc.SetComposite(composite(op))
	case "xor":
		if op.Color == nil {
			return errMissingColor
		}
		dc.SetXORMode(overlay.ARGB(*op.Color))
	case "paint":
		dc.SetPaintMode()
	case "point":
		if err := need(a, 2); err != nil {
			return err
		}
		dc.DrawPoint(a[0], a[1])
	case "line":
		if err := need(a, 4); err != nil {
			return err
		}
		dc.DrawLine(a[0], a[1], a[2], a[3])
	case "rect", "fill_rect", "clear_rect", "oval", "fill_oval":
		if err := need(a, 4); err != nil {
			return err
		}
		box(dc, op.Op)(a[0], a[1], a[2], a[3])
	case "round_rect", "fill_round_rect":
		if err := need(a, 6); err != nil {
			return err
		}
		if op.Op == "round_rect" {
			dc.DrawRoundRect(a[0], a[1], a[2], a[3], a[4], a[5])
		} else {
			dc.FillRoundRect(a[0], a[1], a[2], a[3], a[4], a[5])
		}
	case "copy_area":
		if err := need(a, 6); err != nil {
			return err
		}
		dc.CopyArea(a[0], a[1], a[2], a[3], a[4], a[5])
	case "polyline":
		dc.DrawPolyline(points(op.Points))
	case "polygon":
		dc.DrawPolygon(points(op.Points))
	case "fill_polygon":
		dc.FillPolygon(points(op.Points))
	case "string":
		if err := need(a, 2); err != nil {
			return err
		}
		dc.DrawString(op.Text, a[0], a[1])
	case "image":
		return drawImage(dc, op, dir)
	default:
		return errUnknownOp
	}
	return nil
}

func need(args []int, n int) error {
	if len(args) < n {
		return fmt.Errorf("want %d args, got %d", n, len(args))
	}
	return nil
}

func box(dc *overlay.Context, name string) func(x, y, w, h int) {
	switch name {
	case "rect":
		return dc.DrawRect
	case "fill_rect":
		return dc.FillRect
	case "clear_rect":
		return dc.ClearRect
	case "oval":
		return dc.DrawOval
	default:
		return dc.FillOval
	}
}

func points(pts [][2]int) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = image.Pt(p[0], p[1])
	}
	return out
}

func composite(op Op) overlay.Composite {
	var c overlay.Composite
	switch strings.ToLower(op.Rule) {
	case "clear":
		c = overlay.CompositeClear
	case "src":
		c = overlay.CompositeSrc
	case "", "src_over", "srcover":
		c = overlay.CompositeSrcOver
	}
	if op.Alpha != nil {
		c = c.WithAlpha(*op.Alpha)
	}
	return c
}

func drawImage(dc *overlay.Context, op Op, dir string) error {
	if op.Path == "" {
		return errMissingPath
	}
	img, err := imaging.Open(resolve(dir, op.Path))
	if err != nil {
		return err
	}
	src := overlay.FromImage(img)

	switch op.Filter {
	case "nearest":
		dc.SetScaleFilter(overlay.ScaleNearest)
	case "", "area":
		dc.SetScaleFilter(overlay.ScaleAreaAveraging)
	default:
		return fmt.Errorf("unknown filter %q", op.Filter)
	}

	a := op.Args
	switch len(a) {
	case 2:
		dc.DrawImage(src, a[0], a[1], nil)
	case 4:
		dc.DrawImageScaled(src, a[0], a[1], a[2], a[3], nil, nil)
	case 8:
		dc.DrawImageRegion(src, a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], nil, nil)
	default:
		return fmt.Errorf("want 2, 4 or 8 args, got %d", len(a))
	}
	return nil
}
