package android_test

import (
	"encoding/xml"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/tokenforge/internal/codegen/artifact"
	"github.com/Alia5/tokenforge/internal/codegen/generator/android"
	th "github.com/Alia5/tokenforge/internal/testing"
	"github.com/Alia5/tokenforge/internal/tokens"
)

func render(t *testing.T, overrides map[string]string) map[string]string {
	t.Helper()
	docs, err := tokens.LoadDir(th.WriteSources(t, overrides))
	require.NoError(t, err)
	require.NoError(t, tokens.Validate(docs))
	set, err := tokens.Merge(docs)
	require.NoError(t, err)

	arts, err := android.Render(th.DiscardLogger(), set)
	require.NoError(t, err)
	return byPath(arts)
}

func byPath(arts []artifact.Artifact) map[string]string {
	out := map[string]string{}
	for _, a := range arts {
		out[a.Path] = string(a.Content)
	}
	return out
}

func TestAndroidResources(t *testing.T) {
	files := render(t, nil)
	require.Len(t, files, 3)

	colors := files["values/colors.xml"]
	assert.Contains(t, colors, `<color name="color_teal_500">#FF14B8A6</color>`)
	assert.Contains(t, colors, `<color name="color_white">#FFFFFFFF</color>`)
	assert.Contains(t, colors, `<color name="shadow_card_color">#0D000000</color>`)

	dimens := files["values/dimens.xml"]
	assert.Contains(t, dimens, `<dimen name="spacing_sm">8dp</dimen>`)
	assert.Contains(t, dimens, `<dimen name="font_size_xl">20sp</dimen>`)
	assert.Contains(t, dimens, `<dimen name="breakpoint_tablet">768dp</dimen>`)
	assert.Contains(t, dimens, `<dimen name="shadow_card_radius">2dp</dimen>`)

	typ := files["values/type.xml"]
	assert.Contains(t, typ, `<string name="font_family_sans" translatable="false">Inter</string>`)
	assert.Contains(t, typ, `<integer name="font_weight_bold">700</integer>`)
	assert.Contains(t, typ, `<style name="TextAppearance.Tokens.Base">`)
	assert.Contains(t, typ, `<item name="android:textSize">@dimen/font_size_base</item>`)
	assert.Contains(t, typ, `<item name="android:fontFamily">@string/font_family_sans</item>`)
}

func TestAndroidResourcesAreWellFormedXML(t *testing.T) {
	files := render(t, map[string]string{
		"typography.json": `{"fontFamilies": {"brand": "Tom & Jerry <Sans>"}, "fontSizes": {"md": "1rem"}, "lineHeights": {"tight": 1.25}}`,
	})

	for path, content := range files {
		var v struct {
			XMLName xml.Name `xml:"resources"`
		}
		assert.NoError(t, xml.Unmarshal([]byte(content), &v), path)
	}
	assert.Contains(t, files["values/type.xml"], "Tom &amp; Jerry &lt;Sans&gt;")
	assert.Contains(t, files["values/dimens.xml"], `<item name="line_height_tight" format="float" type="dimen">1.25</item>`)
}

func TestAndroidSkipsCollisions(t *testing.T) {
	files := render(t, map[string]string{
		"colors.json": `{"colors": {"brand-primary": "#FF0000", "brandPrimary": "#00FF00"}}`,
	})

	colors := files["values/colors.xml"]
	assert.Contains(t, colors, `<color name="color_brand_primary">#FFFF0000</color>`)
	assert.NotContains(t, colors, "#FF00FF00")
}

func TestAndroidResourceNamesAreASCII(t *testing.T) {
	files := render(t, map[string]string{
		"colors.json":  `{"colors": {"café": {"500": "#14B8A6"}, "红": "#FF0000"}}`,
		"spacing.json": `{"spacing": {"Grande": "32px"}}`,
	})

	colors := files["values/colors.xml"]
	assert.Contains(t, colors, `<color name="color_cafe_500">#FF14B8A6</color>`)
	assert.Contains(t, colors, `<color name="color">#FFFF0000</color>`)
	assert.NotContains(t, colors, "café")
	assert.Contains(t, files["values/dimens.xml"], `<dimen name="spacing_grande">32dp</dimen>`)

	nameAttr := regexp.MustCompile(`name="([^"]*)"`)
	for path, content := range files {
		for _, m := range nameAttr.FindAllStringSubmatch(content, -1) {
			if strings.HasPrefix(m[1], "TextAppearance.") || strings.HasPrefix(m[1], "android:") {
				continue
			}
			assert.Regexp(t, `^[a-z0-9_]+$`, m[1], path)
		}
	}
}

func TestAndroidFontFamilyStrings(t *testing.T) {
	type testCase struct {
		family   string
		expected string
	}

	testCases := []testCase{
		{family: `["Joe's Font", "serif"]`, expected: `Joe\'s Font`},
		{family: `"\"Quoted Sans\""`, expected: `Quoted Sans`},
		{family: `"@font/brand"`, expected: `\@font/brand`},
		{family: `"A & B"`, expected: `A &amp; B`},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			files := render(t, map[string]string{
				"typography.json": `{"fontFamilies": {"brand": ` + tc.family + `}, "fontSizes": {"md": "16px"}}`,
			})
			typ := files["values/type.xml"]
			assert.Contains(t, typ, `<string name="font_family_brand" translatable="false">`+tc.expected+`</string>`)
			assert.Contains(t, typ, `<item name="android:fontFamily">@string/font_family_brand</item>`)
		})
	}
}
