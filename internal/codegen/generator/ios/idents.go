package ios

import (
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/Alia5/tokenforge/internal/codegen/common"
	"github.com/Alia5/tokenforge/internal/tokens"
)

var swiftKeywords = map[string]bool{
	"as": true, "break": true, "case": true, "catch": true, "class": true,
	"continue": true, "default": true, "defer": true, "do": true, "else": true,
	"enum": true, "extension": true, "false": true, "for": true, "func": true,
	"if": true, "import": true, "in": true, "init": true, "internal": true,
	"is": true, "let": true, "nil": true, "private": true, "protocol": true,
	"public": true, "repeat": true, "return": true, "self": true, "static": true,
	"struct": true, "super": true, "switch": true, "throw": true, "true": true,
	"try": true, "var": true, "where": true, "while": true,
}

// builtinMembers are static members SwiftUI already declares on the extended
// types. Redeclaring them in an extension does not compile.
var builtinMembers = map[string]map[string]bool{
	"Color": {
		"accentColor": true, "black": true, "blue": true, "brown": true, "clear": true,
		"cyan": true, "gray": true, "green": true, "indigo": true, "mint": true,
		"orange": true, "pink": true, "primary": true, "purple": true, "red": true,
		"secondary": true, "teal": true, "white": true, "yellow": true,
	},
}

// idents hands out unique Swift identifiers within one declaration scope.
type idents struct {
	logger *slog.Logger
	scope  string
	seen   map[string]string
}

func newIdents(logger *slog.Logger, scope string) *idents {
	return &idents{logger: logger, scope: scope, seen: map[string]string{}}
}

func (s *idents) add(tok tokens.Token) (string, bool) {
	return s.register(common.ToCamelCase(tok.Path...), tok)
}

func (s *idents) addWithPrefix(prefix string, tok tokens.Token) (string, bool) {
	return s.register(common.ToCamelCase(append([]string{prefix}, tok.Path...)...), tok)
}

func (s *idents) register(name string, tok tokens.Token) (string, bool) {
	name = common.SanitizeLeadingDigit(name)
	if name == "" {
		s.logger.Warn("Skipping token without a usable identifier", "platform", Platform, "scope", s.scope, "token", tok.Name("."))
		return "", false
	}
	if prev, dup := s.seen[name]; dup {
		s.logger.Warn("Skipping token with colliding identifier", "platform", Platform, "scope", s.scope,
			"identifier", name, "token", tok.Name("."), "collides_with", prev)
		return "", false
	}
	if builtinMembers[s.scope][name] {
		renamed := "token" + upperFirst(name)
		s.logger.Warn("Renaming token shadowing a SwiftUI member", "platform", Platform, "scope", s.scope,
			"token", tok.Name("."), "identifier", renamed)
		return s.register(renamed, tok)
	}
	s.seen[name] = tok.Name(".")
	if swiftKeywords[name] {
		return "`" + name + "`", true
	}
	return name, true
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
