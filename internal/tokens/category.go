package tokens

import "strings"

// Category names, also the base names of the source files.
const (
	CategoryColors      = "colors"
	CategoryTypography  = "typography"
	CategorySpacing     = "spacing"
	CategoryBreakpoints = "breakpoints"
	CategoryShadows     = "shadows"
)

// categoryOrder is the canonical iteration order of a Set.
var categoryOrder = []string{
	CategoryColors,
	CategoryTypography,
	CategorySpacing,
	CategoryBreakpoints,
	CategoryShadows,
}

// CategoryNames returns the known category names in canonical order.
func CategoryNames() []string {
	return append([]string(nil), categoryOrder...)
}

func isKnownCategory(name string) bool {
	for _, c := range categoryOrder {
		if c == name {
			return true
		}
	}
	return false
}

// Document is one parsed category source file.
type Document struct {
	Category string
	Path     string
	Root     *Node
}

// Token is a leaf of a category tree. Path holds the keys leading to it,
// below the category's own top-level key.
type Token struct {
	Path  []string
	Value *Node
}

// Name joins the path with sep.
func (t Token) Name(sep string) string { return strings.Join(t.Path, sep) }

// Text is the leaf value rendered as a single string.
func (t Token) Text() string { return t.Value.Text() }

// Primary is the first item of a sequence value, such as the preferred
// family of a font stack, and Text for anything else.
func (t Token) Primary() string {
	if t.Value != nil && t.Value.Kind == SequenceNode && len(t.Value.Items) > 0 {
		return t.Value.Items[0].Text()
	}
	return t.Text()
}

// Category is implemented by exactly the five category variants below.
type Category interface {
	Name() string
	Document() Document
	root() *Node
}

type base struct{ doc Document }

// Document returns a copy of the source document; the tree is cloned.
func (b base) Document() Document {
	d := b.doc
	d.Root = b.doc.Root.Clone()
	return d
}

func (b base) root() *Node { return b.doc.Root }

// Colors holds the color palette. Nested entries are palette/shade pairs,
// flat entries are single named colors.
type Colors struct {
	base
	tokens []Token
}

func (*Colors) Name() string { return CategoryColors }

// Tokens returns the color leaves in source order.
func (c *Colors) Tokens() []Token { return cloneTokens(c.tokens) }

// Typography holds font families, sizes and the optional weights and line heights.
type Typography struct {
	base
	families    []Token
	sizes       []Token
	weights     []Token
	lineHeights []Token
}

func (*Typography) Name() string { return CategoryTypography }

func (t *Typography) FontFamilies() []Token { return cloneTokens(t.families) }
func (t *Typography) FontSizes() []Token    { return cloneTokens(t.sizes) }
func (t *Typography) FontWeights() []Token  { return cloneTokens(t.weights) }
func (t *Typography) LineHeights() []Token  { return cloneTokens(t.lineHeights) }

// Spacing holds spacing units.
type Spacing struct {
	base
	tokens []Token
}

func (*Spacing) Name() string { return CategorySpacing }

func (s *Spacing) Tokens() []Token { return cloneTokens(s.tokens) }

// Breakpoints holds responsive breakpoints.
type Breakpoints struct {
	base
	tokens []Token
}

func (*Breakpoints) Name() string { return CategoryBreakpoints }

func (b *Breakpoints) Tokens() []Token { return cloneTokens(b.tokens) }

// Shadows holds box-shadow definitions.
type Shadows struct {
	base
	tokens []Token
}

func (*Shadows) Name() string { return CategoryShadows }

func (s *Shadows) Tokens() []Token { return cloneTokens(s.tokens) }

// decodeCategory builds the typed variant for a document. The document tree
// itself is kept untouched for re-serialization.
func decodeCategory(doc Document) (Category, error) {
	b := base{doc: doc}
	switch doc.Category {
	case CategoryColors:
		return &Colors{base: b, tokens: leavesUnder(doc.Root, "colors")}, nil
	case CategoryTypography:
		return &Typography{
			base:        b,
			families:    leavesUnder(doc.Root, "fontFamilies"),
			sizes:       leavesUnder(doc.Root, "fontSizes"),
			weights:     leavesUnder(doc.Root, "fontWeights"),
			lineHeights: leavesUnder(doc.Root, "lineHeights"),
		}, nil
	case CategorySpacing:
		return &Spacing{base: b, tokens: leavesUnder(doc.Root, "spacing")}, nil
	case CategoryBreakpoints:
		return &Breakpoints{base: b, tokens: leavesUnderOrRoot(doc.Root, "breakpoints")}, nil
	case CategoryShadows:
		return &Shadows{base: b, tokens: leavesUnderOrRoot(doc.Root, "shadows")}, nil
	default:
		return nil, &UnknownCategoryError{Category: doc.Category}
	}
}

func leavesUnder(root *Node, key string) []Token {
	n, ok := root.Get(key)
	if !ok {
		return nil
	}
	return flatten(n, nil, nil)
}

func leavesUnderOrRoot(root *Node, key string) []Token {
	if n, ok := root.Get(key); ok {
		return flatten(n, nil, nil)
	}
	return flatten(root, nil, nil)
}

// flatten walks mappings depth-first in source order. Scalars and sequences
// are leaves.
func flatten(n *Node, prefix []string, out []Token) []Token {
	if n == nil {
		return out
	}
	if n.Kind != MappingNode {
		if len(prefix) == 0 {
			return out
		}
		return append(out, Token{Path: append([]string(nil), prefix...), Value: n})
	}
	for _, e := range n.Entries {
		out = flatten(e.Value, append(prefix, e.Key), out)
	}
	return out
}

func cloneTokens(in []Token) []Token {
	if in == nil {
		return nil
	}
	out := make([]Token, len(in))
	for i, t := range in {
		out[i] = Token{Path: append([]string(nil), t.Path...), Value: t.Value.Clone()}
	}
	return out
}
