package tokens_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	th "github.com/Alia5/tokenforge/internal/testing"
	"github.com/Alia5/tokenforge/internal/tokens"
)

func TestLoadDirCanonicalOrder(t *testing.T) {
	dir := th.WriteSources(t, nil)

	docs, err := tokens.LoadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, d := range docs {
		names = append(names, d.Category)
	}
	assert.Equal(t, tokens.CategoryNames(), names)
}

func TestLoadDirPreservesKeyOrder(t *testing.T) {
	dir := th.WriteSources(t, map[string]string{
		"spacing.json": `{"spacing": {"xl": "32px", "xs": "2px", "md": "16px"}}`,
	})

	docs, err := tokens.LoadDir(dir)
	require.NoError(t, err)

	spacing := docs[2]
	require.Equal(t, tokens.CategorySpacing, spacing.Category)
	inner, ok := spacing.Root.Get("spacing")
	require.True(t, ok)
	assert.Equal(t, []string{"xl", "xs", "md"}, inner.Keys())
}

func TestLoadDirErrors(t *testing.T) {
	type testCase struct {
		name      string
		overrides map[string]string
		category  string
		notExist  bool
	}

	testCases := []testCase{
		{
			name:      "missing required colors",
			overrides: map[string]string{"colors.json": ""},
			category:  tokens.CategoryColors,
			notExist:  true,
		},
		{
			name:      "missing required typography",
			overrides: map[string]string{"typography.json": ""},
			category:  tokens.CategoryTypography,
			notExist:  true,
		},
		{
			name:      "malformed json",
			overrides: map[string]string{"spacing.json": `{"spacing": `},
			category:  tokens.CategorySpacing,
		},
		{
			name:      "root is not a mapping",
			overrides: map[string]string{"colors.json": `["#fff"]`},
			category:  tokens.CategoryColors,
		},
		{
			name:      "malformed optional source",
			overrides: map[string]string{"shadows.json": `{"shadows": {`},
			category:  tokens.CategoryShadows,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := th.WriteSources(t, tc.overrides)

			_, err := tokens.LoadDir(dir)

			var srcErr *tokens.SourceReadError
			require.ErrorAs(t, err, &srcErr)
			assert.Equal(t, tc.category, srcErr.Category)
			assert.Equal(t, tc.notExist, errors.Is(err, fs.ErrNotExist))
		})
	}
}

func TestLoadDirSkipsAbsentOptionalSources(t *testing.T) {
	dir := th.WriteSources(t, map[string]string{
		"breakpoints.json": "",
		"shadows.json":     "",
	})

	docs, err := tokens.LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestLoadDirYAMLSource(t *testing.T) {
	dir := th.WriteSources(t, map[string]string{
		"spacing.json": "",
		"spacing.yaml": "spacing:\n  lg: 24px\n  sm: 8px\n",
	})

	docs, err := tokens.LoadDir(dir)
	require.NoError(t, err)

	inner, ok := docs[2].Root.Get("spacing")
	require.True(t, ok)
	assert.Equal(t, []string{"lg", "sm"}, inner.Keys())
	lg, _ := inner.Get("lg")
	assert.Equal(t, "24px", lg.Text())
}

func TestLoadDirDuplicateCategory(t *testing.T) {
	dir := th.WriteSources(t, map[string]string{
		"colors.yaml": "colors:\n  black: '#000'\n",
	})

	_, err := tokens.LoadDir(dir)

	var dupErr *tokens.DuplicateCategoryError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, tokens.CategoryColors, dupErr.Category)
	assert.Len(t, dupErr.Paths, 2)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	_, err := tokens.LoadDir(t.TempDir() + "/nope")

	var srcErr *tokens.SourceReadError
	require.ErrorAs(t, err, &srcErr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseDocumentJSON(t *testing.T) {
	type testCase struct {
		name     string
		path     string
		src      string
		expected string
		err      bool
	}

	testCases := []testCase{
		{name: "escaped slash", path: "colors.json", src: `{"colors": {"url": "a\/b"}}`, expected: `{"colors":{"url":"a/b"}}`},
		{name: "unicode escape", path: "colors.json", src: `{"colors": {"name": "caf\u00e9"}}`, expected: `{"colors":{"name":"café"}}`},
		{name: "number literal kept", path: "spacing.json", src: `{"spacing": {"n": 1.50}}`, expected: `{"spacing":{"n":1.50}}`},
		{name: "no extension is json", path: "colors", src: `{"colors": {"url": "a\/b"}}`, expected: `{"colors":{"url":"a/b"}}`},
		{name: "hex number is not json", path: "colors.json", src: `{"colors": {"n": 0x1F}}`, err: true},
		{name: "yaml mapping is not json", path: "colors.json", src: "colors:\n  white: '#fff'\n", err: true},
		{name: "trailing data", path: "colors.json", src: `{"colors": {}} {}`, err: true},
		{name: "duplicate key", path: "colors.json", src: `{"colors": {}, "colors": {}}`, err: true},
		{name: "truncated", path: "colors.json", src: `{"colors": [1, 2`, err: true},
		{name: "empty", path: "colors.json", src: "", err: true},
		{name: "yaml hex stays text", path: "colors.yaml", src: "colors:\n  n: 0x1F\n", expected: `{"colors":{"n":"0x1F"}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := tokens.ParseDocument("colors", tc.path, []byte(tc.src))
			if tc.err {
				var srcErr *tokens.SourceReadError
				require.ErrorAs(t, err, &srcErr)
				assert.Equal(t, tc.path, srcErr.Path)
				return
			}
			require.NoError(t, err)
			out, err := doc.Root.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(out))
		})
	}
}

func TestLoadDirJSONEscapes(t *testing.T) {
	dir := th.WriteSources(t, map[string]string{
		"spacing.json": `{"spacing": {"sm": "8px", "path": "a\/b"}}`,
	})

	docs, err := tokens.LoadDir(dir)
	require.NoError(t, err)
	inner, _ := docs[2].Root.Get("spacing")
	p, ok := inner.Get("path")
	require.True(t, ok)
	assert.Equal(t, "a/b", p.Text())
}
