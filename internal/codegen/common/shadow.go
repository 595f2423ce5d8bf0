package common

import (
	"fmt"
	"strings"
)

// Shadow is the first layer of a CSS box-shadow value.
type Shadow struct {
	X, Y, Blur, Spread float64
	Color              RGBA
	Inset              bool
}

// ParseShadow reads "<x> <y> [blur] [spread] <color>" with optional inset.
// Only the first comma separated layer is used.
func ParseShadow(s string) (Shadow, error) {
	layer := splitOutsideParens(s, ',')[0]
	var (
		sh      Shadow
		lengths []float64
		color   string
	)
	for _, part := range splitOutsideParens(layer, ' ') {
		if part == "" {
			continue
		}
		if strings.EqualFold(part, "inset") {
			sh.Inset = true
			continue
		}
		if d, err := ParseDimension(part); err == nil {
			p, err := d.Points()
			if err != nil {
				return Shadow{}, fmt.Errorf("shadow %q: %w", s, err)
			}
			lengths = append(lengths, p)
			continue
		}
		if color != "" {
			return Shadow{}, fmt.Errorf("shadow %q: unexpected %q", s, part)
		}
		color = part
	}
	if len(lengths) < 2 || len(lengths) > 4 {
		return Shadow{}, fmt.Errorf("shadow %q: expected 2 to 4 lengths", s)
	}
	sh.X, sh.Y = lengths[0], lengths[1]
	if len(lengths) > 2 {
		sh.Blur = lengths[2]
	}
	if len(lengths) > 3 {
		sh.Spread = lengths[3]
	}
	if color == "" {
		color = "#000000"
	}
	c, err := ParseColor(color)
	if err != nil {
		return Shadow{}, fmt.Errorf("shadow %q: %w", s, err)
	}
	sh.Color = c
	return sh, nil
}

func splitOutsideParens(s string, sep rune) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}
