package android

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/Alia5/tokenforge/internal/codegen/common"
	"github.com/Alia5/tokenforge/internal/tokens"
)

type resource struct {
	Name  string
	Value string
}

type style struct {
	Name     string
	TextSize string
	Family   string
}

type resources struct {
	Colors   []resource
	Dimens   []resource
	Floats   []resource
	Strings  []resource
	Integers []resource
	Styles   []style
}

// namer hands out resource names that are unique across all files of a run.
type namer struct {
	logger *slog.Logger
	seen   map[string]string
}

func newNamer(logger *slog.Logger) *namer {
	return &namer{logger: logger, seen: map[string]string{}}
}

// name builds the [a-z0-9_] resource name of tok. It reports false when the
// name is already taken.
func (n *namer) name(prefix string, tok tokens.Token) (string, bool) {
	name, lossy := common.ToResourceName(append([]string{prefix}, tok.Path...)...)
	if lossy {
		n.logger.Warn("Token name changed to a valid resource name", "platform", Platform,
			"token", tok.Name("."), "resource", name)
	}
	if prev, dup := n.seen[name]; dup {
		n.logger.Warn("Skipping token with colliding resource name", "platform", Platform,
			"resource", name, "token", tok.Name("."), "collides_with", prev)
		return "", false
	}
	n.seen[name] = tok.Name(".")
	return name, true
}

// collect walks the set once and converts every token into its Android
// resource form. Tokens that cannot be expressed are logged and skipped.
func collect(logger *slog.Logger, set *tokens.Set) resources {
	var res resources
	names := newNamer(logger)
	skip := func(kind string, tok tokens.Token, err error) {
		logger.Warn("Skipping "+kind+" token", "platform", Platform, "token", tok.Name("."), "error", err)
	}

	for _, c := range set.Categories() {
		switch c := c.(type) {
		case *tokens.Colors:
			for _, tok := range c.Tokens() {
				col, err := common.ParseColor(tok.Text())
				if err != nil {
					skip("color", tok, err)
					continue
				}
				if name, ok := names.name("color", tok); ok {
					res.Colors = append(res.Colors, resource{Name: name, Value: col.ARGBHex()})
				}
			}
		case *tokens.Typography:
			var primaryFamily string
			for _, tok := range c.FontFamilies() {
				name, ok := names.name("font_family", tok)
				if !ok {
					continue
				}
				// android:fontFamily takes a single family, not a CSS stack.
				family := strings.Trim(tok.Primary(), `"'`)
				res.Strings = append(res.Strings, resource{Name: name, Value: family})
				if primaryFamily == "" {
					primaryFamily = name
				}
			}
			for _, tok := range c.FontSizes() {
				pts, err := points(tok)
				if err != nil {
					skip("font size", tok, err)
					continue
				}
				name, ok := names.name("font_size", tok)
				if !ok {
					continue
				}
				res.Dimens = append(res.Dimens, resource{Name: name, Value: common.FormatNumber(pts) + "sp"})
				st := style{
					Name:     "TextAppearance.Tokens." + common.ToPascalCase(strings.TrimPrefix(name, "font_size")),
					TextSize: "@dimen/" + name,
				}
				if primaryFamily != "" {
					st.Family = "@string/" + primaryFamily
				}
				res.Styles = append(res.Styles, st)
			}
			for _, tok := range c.FontWeights() {
				w, err := strconv.Atoi(tok.Text())
				if err != nil {
					skip("font weight", tok, err)
					continue
				}
				if name, ok := names.name("font_weight", tok); ok {
					res.Integers = append(res.Integers, resource{Name: name, Value: strconv.Itoa(w)})
				}
			}
			for _, tok := range c.LineHeights() {
				v, err := strconv.ParseFloat(tok.Text(), 64)
				if err != nil {
					skip("line height", tok, err)
					continue
				}
				if name, ok := names.name("line_height", tok); ok {
					res.Floats = append(res.Floats, resource{Name: name, Value: common.FormatNumber(v)})
				}
			}
		case *tokens.Spacing:
			res.Dimens = append(res.Dimens, dimens(logger, names, "spacing", c.Tokens())...)
		case *tokens.Breakpoints:
			res.Dimens = append(res.Dimens, dimens(logger, names, "breakpoint", c.Tokens())...)
		case *tokens.Shadows:
			for _, tok := range c.Tokens() {
				sh, err := common.ParseShadow(tok.Text())
				if err != nil {
					skip("shadow", tok, err)
					continue
				}
				name, ok := names.name("shadow", tok)
				if !ok {
					continue
				}
				res.Colors = append(res.Colors, resource{Name: name + "_color", Value: sh.Color.ARGBHex()})
				res.Dimens = append(res.Dimens,
					resource{Name: name + "_dx", Value: common.FormatNumber(sh.X) + "dp"},
					resource{Name: name + "_dy", Value: common.FormatNumber(sh.Y) + "dp"},
					resource{Name: name + "_radius", Value: common.FormatNumber(sh.Blur) + "dp"},
				)
			}
		}
	}
	return res
}

func dimens(logger *slog.Logger, names *namer, prefix string, toks []tokens.Token) []resource {
	var out []resource
	for _, tok := range toks {
		pts, err := points(tok)
		if err != nil {
			logger.Warn("Skipping dimension token", "platform", Platform, "token", tok.Name("."), "error", err)
			continue
		}
		if name, ok := names.name(prefix, tok); ok {
			out = append(out, resource{Name: name, Value: common.FormatNumber(pts) + "dp"})
		}
	}
	return out
}

func points(tok tokens.Token) (float64, error) {
	d, err := common.ParseDimension(tok.Text())
	if err != nil {
		return 0, err
	}
	return d.Points()
}
