package common

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// splitWords breaks a token path into words on separators and case changes.
// Digits stay attached to their run: ["teal", "500"] -> teal, 500.
func splitWords(parts ...string) []string {
	var words []string
	for _, part := range parts {
		fields := strings.FieldsFunc(part, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, f := range fields {
			words = append(words, splitCamel(f)...)
		}
	}
	return words
}

// splitCamel splits "fontSize" into font, Size and "XLarge" into X, Large.
func splitCamel(s string) []string {
	runes := []rune(s)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower)) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func ToPascalCase(parts ...string) string {
	var result strings.Builder
	for _, word := range splitWords(parts...) {
		r := []rune(word)
		result.WriteRune(unicode.ToUpper(r[0]))
		if len(r) > 1 {
			result.WriteString(strings.ToLower(string(r[1:])))
		}
	}
	return result.String()
}

func ToCamelCase(parts ...string) string {
	pascal := []rune(ToPascalCase(parts...))
	if len(pascal) == 0 {
		return ""
	}
	pascal[0] = unicode.ToLower(pascal[0])
	return string(pascal)
}

// ToSnakeCase lowercases and joins words with '_' (Android resource names).
func ToSnakeCase(parts ...string) string {
	words := splitWords(parts...)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// ToResourceName is ToSnakeCase restricted to [a-z0-9_]. Accents are folded
// (é becomes e) and any other character is dropped. lossy reports whether
// anything beyond case and separators was changed.
func ToResourceName(parts ...string) (name string, lossy bool) {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	var words []string
	for _, w := range splitWords(parts...) {
		w = strings.ToLower(w)
		folded, _, err := transform.String(fold, w)
		if err != nil {
			folded = w
		}
		clean := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, folded)
		if clean != w {
			lossy = true
		}
		if clean != "" {
			words = append(words, clean)
		}
	}
	return strings.Join(words, "_"), lossy
}

// ToKebab joins path parts with '-' keeping their case; characters not valid
// in a CSS custom property name are replaced by '-'.
func ToKebab(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
				return r
			}
			return '-'
		}, p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "-")
}

// SanitizeLeadingDigit prefixes names that start with a digit with "_"
// to keep identifiers valid in target languages.
func SanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "_" + name
	}
	return name
}
