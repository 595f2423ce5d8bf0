package web_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/tokenforge/internal/codegen/generator/web"
	th "github.com/Alia5/tokenforge/internal/testing"
	"github.com/Alia5/tokenforge/internal/tokens"
)

func mergeSources(t *testing.T, overrides map[string]string) *tokens.Set {
	t.Helper()
	docs, err := tokens.LoadDir(th.WriteSources(t, overrides))
	require.NoError(t, err)
	require.NoError(t, tokens.Validate(docs))
	set, err := tokens.Merge(docs)
	require.NoError(t, err)
	return set
}

func TestStylesheetProperties(t *testing.T) {
	set := mergeSources(t, map[string]string{
		"colors.json": `{"colors": {"teal": {"500": "#14B8A6"}}}`,
	})

	arts, err := web.Render(th.DiscardLogger(), set)
	require.NoError(t, err)
	require.Len(t, arts, 2)
	assert.Equal(t, "tokens.css", arts[0].Path)

	lines := strings.Split(string(arts[0].Content), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	assert.Contains(t, lines, "--color-teal-500: #14B8A6;")
	assert.Contains(t, lines, "--font-size-base: 16px;")
	assert.Contains(t, lines, "--spacing-sm: 8px;")
	assert.Contains(t, lines, `--font-family-sans: Inter, sans-serif;`)
	assert.Contains(t, lines, `--font-family-mono: "JetBrains Mono";`)
	assert.Contains(t, lines, "--font-weight-bold: 700;")
	assert.Contains(t, lines, "--breakpoint-tablet: 768px;")
	assert.Contains(t, lines, "--shadow-card: 0 1px 2px rgba(0, 0, 0, 0.05);")
}

func TestStylesheetFollowsSourceOrder(t *testing.T) {
	set := mergeSources(t, map[string]string{
		"spacing.json": `{"spacing": {"xl": "32px", "xs": "2px"}}`,
	})

	arts, err := web.Render(th.DiscardLogger(), set)
	require.NoError(t, err)
	css := string(arts[0].Content)

	colors := strings.Index(css, "--color-")
	xl := strings.Index(css, "--spacing-xl")
	xs := strings.Index(css, "--spacing-xs")
	assert.Less(t, colors, xl)
	assert.Less(t, xl, xs)
}

func TestStylesheetSkipsAbsentCategories(t *testing.T) {
	set := mergeSources(t, map[string]string{"breakpoints.json": "", "shadows.json": ""})

	arts, err := web.Render(th.DiscardLogger(), set)
	require.NoError(t, err)
	css := string(arts[0].Content)
	assert.NotContains(t, css, "--breakpoint-")
	assert.NotContains(t, css, "--shadow-")
}

func TestStylesheetSkipsUnsafeValues(t *testing.T) {
	set := mergeSources(t, map[string]string{
		"spacing.json": `{"spacing": {"sm": "8px", "evil": "1px; } body { color: red", "brace": "{x}", "md": "16px"}}`,
	})

	arts, err := web.Render(th.DiscardLogger(), set)
	require.NoError(t, err)
	css := string(arts[0].Content)

	assert.NotContains(t, css, "--spacing-evil")
	assert.NotContains(t, css, "--spacing-brace")
	assert.NotContains(t, css, "body")
	assert.Contains(t, css, "--spacing-sm: 8px;")
	assert.Contains(t, css, "--spacing-md: 16px;")
	assert.Equal(t, 1, strings.Count(css, "{"))
	assert.Equal(t, 1, strings.Count(css, "}"))
}

func embeddedTokens(t *testing.T, js string) map[string]any {
	t.Helper()
	const prefix = "export const tokens = "
	start := strings.Index(js, prefix)
	end := strings.Index(js, ";\n\nexport default tokens;")
	require.GreaterOrEqual(t, start, 0)
	require.Greater(t, end, start)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(js[start+len(prefix):end]), &m))
	return m
}

func TestModuleEmbedsTokenSet(t *testing.T) {
	set := mergeSources(t, map[string]string{
		"spacing.json": `{"spacing": {"sm": "8px"}}`,
	})

	arts, err := web.Render(th.DiscardLogger(), set)
	require.NoError(t, err)
	js := string(arts[1].Content)

	assert.True(t, strings.HasSuffix(js, "export default tokens;\n"))
	m := embeddedTokens(t, js)
	spacing, ok := m["spacing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "8px", spacing["sm"])

	raw, err := json.Marshal(set)
	require.NoError(t, err)
	var want map[string]any
	require.NoError(t, json.Unmarshal(raw, &want))
	assert.Equal(t, want, m)
}

func TestGenerateWritesFiles(t *testing.T) {
	set := mergeSources(t, nil)
	out := filepath.Join(t.TempDir(), "web")

	arts, err := web.Generate(th.DiscardLogger(), out, set)
	require.NoError(t, err)

	for _, a := range arts {
		got, err := os.ReadFile(filepath.Join(out, a.Path))
		require.NoError(t, err)
		assert.Equal(t, a.Content, got)
	}
}
