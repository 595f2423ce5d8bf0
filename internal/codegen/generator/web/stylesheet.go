package web

import (
	"log/slog"
	"strings"
	"text/template"

	"github.com/Alia5/tokenforge/internal/codegen/common"
	"github.com/Alia5/tokenforge/internal/tokens"
)

const stylesheetTemplate = `{{cssHeader}}
:root {
{{- range .}}
  /* {{.Comment}} */
{{- range .Props}}
  --{{.Name}}: {{.Value}};
{{- end}}
{{- end}}
}
`

type property struct {
	Name  string
	Value string
}

type group struct {
	Comment string
	Props   []property
}

// unsafeValueChars end a declaration or the :root block when they appear in a
// custom property value.
const unsafeValueChars = ";{}\n\r"

// typographyPrefixes maps typography keys to their custom property prefix.
var typographyPrefixes = map[string]string{
	"fontFamilies": "font-family",
	"fontSizes":    "font-size",
	"fontWeights":  "font-weight",
	"lineHeights":  "line-height",
}

func renderStylesheet(logger *slog.Logger, set *tokens.Set) ([]byte, error) {
	logger.Debug("Generating tokens.css")

	var groups []group
	add := func(comment, prefix string, toks []tokens.Token, format func(tokens.Token) string) {
		if len(toks) == 0 {
			return
		}
		g := group{Comment: comment}
		for _, tok := range toks {
			value := format(tok)
			if strings.ContainsAny(value, unsafeValueChars) {
				logger.Warn("Skipping token whose value would break the stylesheet", "platform", Platform,
					"token", tok.Name("."), "value", value)
				continue
			}
			g.Props = append(g.Props, property{
				Name:  common.ToKebab(append([]string{prefix}, tok.Path...)...),
				Value: value,
			})
		}
		if len(g.Props) > 0 {
			groups = append(groups, g)
		}
	}

	for _, c := range set.Categories() {
		switch c := c.(type) {
		case *tokens.Colors:
			add("colors", "color", c.Tokens(), plainValue)
		case *tokens.Typography:
			for _, key := range c.Document().Root.Keys() {
				prefix, ok := typographyPrefixes[key]
				if !ok {
					continue
				}
				format := plainValue
				if key == "fontFamilies" {
					format = fontStack
				}
				add(key, prefix, typographyTokens(c, key), format)
			}
		case *tokens.Spacing:
			add("spacing", "spacing", c.Tokens(), plainValue)
		case *tokens.Breakpoints:
			add("breakpoints", "breakpoint", c.Tokens(), plainValue)
		case *tokens.Shadows:
			add("shadows", "shadow", c.Tokens(), plainValue)
		}
	}

	return common.Render("tokens.css", stylesheetTemplate, template.FuncMap{
		"cssHeader": func() string { return common.BlockHeader("/*", "*/", "CSS") },
	}, groups)
}

func typographyTokens(t *tokens.Typography, key string) []tokens.Token {
	switch key {
	case "fontFamilies":
		return t.FontFamilies()
	case "fontSizes":
		return t.FontSizes()
	case "fontWeights":
		return t.FontWeights()
	case "lineHeights":
		return t.LineHeights()
	}
	return nil
}

func plainValue(tok tokens.Token) string { return tok.Text() }

// fontStack quotes family names containing spaces: ["JetBrains Mono", "monospace"]
// becomes "JetBrains Mono", monospace.
func fontStack(tok tokens.Token) string {
	var names []string
	if tok.Value.Kind == tokens.SequenceNode {
		for _, item := range tok.Value.Items {
			names = append(names, item.Text())
		}
	} else {
		names = []string{tok.Text()}
	}
	for i, n := range names {
		if strings.ContainsRune(n, ' ') && !strings.HasPrefix(n, `"`) && !strings.HasPrefix(n, "'") {
			names[i] = `"` + n + `"`
		}
	}
	return strings.Join(names, ", ")
}
