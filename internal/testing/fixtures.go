package testing

import (
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"testing"
)

// Sources is a minimal but complete token source store covering all five
// categories.
var Sources = map[string]string{
	"colors.json": `{
  "colors": {
    "teal": {
      "500": "#14B8A6",
      "700": "#0F766E"
    },
    "white": "#FFFFFF"
  }
}`,
	"typography.json": `{
  "fontFamilies": {
    "sans": ["Inter", "sans-serif"],
    "mono": "JetBrains Mono"
  },
  "fontSizes": {
    "sm": "14px",
    "base": "16px",
    "xl": "1.25rem"
  },
  "fontWeights": {
    "bold": 700
  }
}`,
	"spacing.json": `{
  "spacing": {
    "sm": "8px",
    "md": "16px"
  }
}`,
	"breakpoints.json": `{
  "breakpoints": {
    "tablet": "768px"
  }
}`,
	"shadows.json": `{
  "shadows": {
    "card": "0 1px 2px rgba(0, 0, 0, 0.05)"
  }
}`,
}

// WriteSources writes the default sources with overrides applied into a fresh
// temp dir and returns it. An override with empty content removes the file.
func WriteSources(t *testing.T, overrides map[string]string) string {
	t.Helper()
	files := maps.Clone(Sources)
	for name, content := range overrides {
		if content == "" {
			delete(files, name)
			continue
		}
		files[name] = content
	}
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
