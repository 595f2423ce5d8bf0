package ios

import (
	"log/slog"
	"strconv"
	"text/template"

	"github.com/Alia5/tokenforge/internal/codegen/common"
	"github.com/Alia5/tokenforge/internal/tokens"
)

const swiftTemplate = `{{swiftHeader}}
import SwiftUI
{{- with .Colors}}

public extension Color {
{{- range .}}
    static let {{.Name}} = Color(red: {{.R}}, green: {{.G}}, blue: {{.B}}, opacity: {{.A}})
{{- end}}
}
{{- end}}
{{- with .Fonts}}

public extension Font {
{{- range .}}
    static let {{.Name}} = Font.system(size: {{.Value}})
{{- end}}
}
{{- end}}
{{- range .Enums}}

public enum {{.Name}} {
{{- range .Members}}
    public static let {{.Name}}{{if .Type}}: {{.Type}}{{end}} = {{.Value}}
{{- end}}
}
{{- end}}
{{- with .Shadows}}

public struct TokenShadow {
    public let color: Color
    public let radius: CGFloat
    public let x: CGFloat
    public let y: CGFloat
}

public enum Shadow {
{{- range .}}
    public static let {{.Name}} = TokenShadow(color: Color(red: {{.R}}, green: {{.G}}, blue: {{.B}}, opacity: {{.A}}), radius: {{.Radius}}, x: {{.X}}, y: {{.Y}})
{{- end}}
}
{{- end}}
`

type colorDecl struct {
	Name       string
	R, G, B, A string
}

type fontDecl struct {
	Name  string
	Value string
}

type member struct {
	Name  string
	Type  string
	Value string
}

type enumDecl struct {
	Name    string
	Members []member
}

type shadowDecl struct {
	colorDecl
	Radius, X, Y string
}

type swiftFile struct {
	Colors  []colorDecl
	Fonts   []fontDecl
	Enums   []enumDecl
	Shadows []shadowDecl
}

// fontWeights maps CSS numeric weights to SwiftUI Font.Weight members.
var fontWeights = map[string]string{
	"100": "ultraLight",
	"200": "thin",
	"300": "light",
	"400": "regular",
	"500": "medium",
	"600": "semibold",
	"700": "bold",
	"800": "heavy",
	"900": "black",
}

func renderSwift(logger *slog.Logger, set *tokens.Set) ([]byte, error) {
	logger.Debug("Generating Swift tokens")

	var file swiftFile
	for _, c := range set.Categories() {
		switch c := c.(type) {
		case *tokens.Colors:
			names := newIdents(logger, "Color")
			for _, tok := range c.Tokens() {
				col, err := common.ParseColor(tok.Text())
				if err != nil {
					logger.Warn("Skipping color token", "platform", Platform, "token", tok.Name("."), "error", err)
					continue
				}
				name, ok := names.add(tok)
				if !ok {
					continue
				}
				file.Colors = append(file.Colors, newColorDecl(name, col))
			}
		case *tokens.Typography:
			file.Fonts = append(file.Fonts, fontDecls(logger, c.FontSizes())...)
			file.Enums = appendEnum(file.Enums, stringEnum(logger, "FontFamily", c.FontFamilies()))
			file.Enums = appendEnum(file.Enums, dimensionEnum(logger, "FontSize", c.FontSizes()))
			file.Enums = appendEnum(file.Enums, weightEnum(logger, c.FontWeights()))
			file.Enums = appendEnum(file.Enums, numberEnum(logger, "LineHeight", c.LineHeights()))
		case *tokens.Spacing:
			file.Enums = appendEnum(file.Enums, dimensionEnum(logger, "Spacing", c.Tokens()))
		case *tokens.Breakpoints:
			file.Enums = appendEnum(file.Enums, dimensionEnum(logger, "Breakpoint", c.Tokens()))
		case *tokens.Shadows:
			names := newIdents(logger, "Shadow")
			for _, tok := range c.Tokens() {
				sh, err := common.ParseShadow(tok.Text())
				if err != nil {
					logger.Warn("Skipping shadow token", "platform", Platform, "token", tok.Name("."), "error", err)
					continue
				}
				name, ok := names.add(tok)
				if !ok {
					continue
				}
				file.Shadows = append(file.Shadows, shadowDecl{
					colorDecl: newColorDecl(name, sh.Color),
					Radius:    common.FormatNumber(sh.Blur / 2),
					X:         common.FormatNumber(sh.X),
					Y:         common.FormatNumber(sh.Y),
				})
			}
		}
	}

	return common.Render(FileName, swiftTemplate, template.FuncMap{
		"swiftHeader": func() string { return common.FileHeader("//", "Swift") },
	}, file)
}

func newColorDecl(name string, c common.RGBA) colorDecl {
	r, g, b, a := c.Components()
	return colorDecl{
		Name: name,
		R:    common.FormatNumber(r),
		G:    common.FormatNumber(g),
		B:    common.FormatNumber(b),
		A:    common.FormatNumber(a),
	}
}

func fontDecls(logger *slog.Logger, sizes []tokens.Token) []fontDecl {
	names := newIdents(logger, "Font")
	var out []fontDecl
	for _, tok := range sizes {
		pts, err := points(tok)
		if err != nil {
			logger.Warn("Skipping font size token", "platform", Platform, "token", tok.Name("."), "error", err)
			continue
		}
		name, ok := names.addWithPrefix("size", tok)
		if !ok {
			continue
		}
		out = append(out, fontDecl{Name: name, Value: common.FormatNumber(pts)})
	}
	return out
}

func appendEnum(enums []enumDecl, e enumDecl) []enumDecl {
	if len(e.Members) == 0 {
		return enums
	}
	return append(enums, e)
}

func stringEnum(logger *slog.Logger, enum string, toks []tokens.Token) enumDecl {
	names := newIdents(logger, enum)
	e := enumDecl{Name: enum}
	for _, tok := range toks {
		name, ok := names.add(tok)
		if !ok {
			continue
		}
		// Only the primary family is meaningful to UIFont/Font.custom.
		e.Members = append(e.Members, member{Name: name, Value: strconv.Quote(tok.Primary())})
	}
	return e
}

func dimensionEnum(logger *slog.Logger, enum string, toks []tokens.Token) enumDecl {
	names := newIdents(logger, enum)
	e := enumDecl{Name: enum}
	for _, tok := range toks {
		pts, err := points(tok)
		if err != nil {
			logger.Warn("Skipping dimension token", "platform", Platform, "enum", enum, "token", tok.Name("."), "error", err)
			continue
		}
		name, ok := names.add(tok)
		if !ok {
			continue
		}
		e.Members = append(e.Members, member{Name: name, Type: "CGFloat", Value: common.FormatNumber(pts)})
	}
	return e
}

func numberEnum(logger *slog.Logger, enum string, toks []tokens.Token) enumDecl {
	names := newIdents(logger, enum)
	e := enumDecl{Name: enum}
	for _, tok := range toks {
		v, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil {
			logger.Warn("Skipping numeric token", "platform", Platform, "enum", enum, "token", tok.Name("."), "error", err)
			continue
		}
		name, ok := names.add(tok)
		if !ok {
			continue
		}
		e.Members = append(e.Members, member{Name: name, Type: "CGFloat", Value: common.FormatNumber(v)})
	}
	return e
}

func weightEnum(logger *slog.Logger, toks []tokens.Token) enumDecl {
	names := newIdents(logger, "FontWeight")
	e := enumDecl{Name: "FontWeight"}
	for _, tok := range toks {
		weight, ok := fontWeights[tok.Text()]
		if !ok {
			logger.Warn("Skipping font weight token", "platform", Platform, "token", tok.Name("."), "value", tok.Text())
			continue
		}
		name, ok := names.add(tok)
		if !ok {
			continue
		}
		e.Members = append(e.Members, member{Name: name, Value: "Font.Weight." + weight})
	}
	return e
}

func points(tok tokens.Token) (float64, error) {
	d, err := common.ParseDimension(tok.Text())
	if err != nil {
		return 0, err
	}
	return d.Points()
}
