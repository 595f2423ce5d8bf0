package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RemBase is the root font size rem and em values are resolved against.
const RemBase = 16.0

// RGBA is a parsed color with straight alpha in [0, 1].
type RGBA struct {
	colorful.Color
	A float64
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl() and hsla().
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "#"):
		return parseHexColor(lower)
	case strings.HasPrefix(lower, "rgb"):
		return parseFuncColor(lower, "rgb")
	case strings.HasPrefix(lower, "hsl"):
		return parseFuncColor(lower, "hsl")
	default:
		return RGBA{}, fmt.Errorf("unsupported color %q", s)
	}
}

func parseHexColor(s string) (RGBA, error) {
	alpha := 1.0
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGBA{Color: c, A: alpha}, nil
}

func parseFuncColor(s, kind string) (RGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGBA{}, fmt.Errorf("invalid %s color %q", kind, s)
	}
	args := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("invalid %s color %q: expected 3 or 4 components", kind, s)
	}
	vals := make([]float64, len(args))
	for i, a := range args {
		v, pct, err := parseComponent(a)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid %s color %q: %w", kind, s, err)
		}
		switch {
		case i == 3 && pct:
			v /= 100
		case kind == "rgb" && i < 3 && pct:
			v = v / 100 * 255
		case kind == "hsl" && (i == 1 || i == 2):
			v /= 100
		}
		vals[i] = v
	}
	out := RGBA{A: 1}
	if len(vals) == 4 {
		out.A = clamp01(vals[3])
	}
	if kind == "rgb" {
		out.Color = colorful.Color{R: vals[0] / 255, G: vals[1] / 255, B: vals[2] / 255}.Clamped()
	} else {
		out.Color = colorful.Hsl(vals[0], clamp01(vals[1]), clamp01(vals[2])).Clamped()
	}
	return out, nil
}

func parseComponent(s string) (float64, bool, error) {
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "%"), "deg")
	v, err := strconv.ParseFloat(s, 64)
	return v, pct, err
}

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }

// ARGBHex formats the color as #AARRGGBB.
func (c RGBA) ARGBHex() string {
	r, g, b := c.Clamped().RGB255()
	a := uint8(math.Round(c.A * 255))
	return fmt.Sprintf("#%02X%02X%02X%02X", a, r, g, b)
}

// Components returns r, g, b, a in [0, 1] rounded to 3 decimals.
func (c RGBA) Components() (r, g, b, a float64) {
	cc := c.Clamped()
	return round(cc.R, 3), round(cc.G, 3), round(cc.B, 3), round(c.A, 3)
}

// Dimension is a number with an optional CSS unit.
type Dimension struct {
	Value float64
	Unit  string
}

// ParseDimension parses "8px", "1.25rem", "16" and similar.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 {
		ch := s[i-1]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '%' {
			i--
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid dimension %q", s)
	}
	return Dimension{Value: v, Unit: strings.ToLower(s[i:])}, nil
}

// Points converts to density-independent points (iOS pt, Android dp/sp).
func (d Dimension) Points() (float64, error) {
	switch d.Unit {
	case "", "px", "pt", "dp", "sp":
		return d.Value, nil
	case "rem", "em":
		return d.Value * RemBase, nil
	default:
		return 0, fmt.Errorf("unit %q has no absolute size", d.Unit)
	}
}

// FormatNumber renders f without trailing zeros, rounded to 4 decimals.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(round(f, 4), 'f', -1, 64)
}

func round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}
