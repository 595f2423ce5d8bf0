package tokens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/tokenforge/internal/tokens"
)

func parse(t *testing.T, category, src string) tokens.Document {
	t.Helper()
	doc, err := tokens.ParseDocument(category, category+".json", []byte(src))
	require.NoError(t, err)
	return doc
}

func TestValidate(t *testing.T) {
	type testCase struct {
		name        string
		docs        []tokens.Document
		expectedErr *tokens.MissingKeyError
	}

	testCases := []testCase{
		{
			name: "all required keys present",
			docs: []tokens.Document{
				parse(t, "colors", `{"colors": {}}`),
				parse(t, "typography", `{"fontFamilies": {}, "fontSizes": {}}`),
				parse(t, "spacing", `{"spacing": {}}`),
				parse(t, "shadows", `{}`),
			},
		},
		{
			name: "colors key missing",
			docs: []tokens.Document{
				parse(t, "colors", `{"palette": {}}`),
				parse(t, "spacing", `{"spacing": {}}`),
			},
			expectedErr: &tokens.MissingKeyError{Category: "colors", Key: "colors"},
		},
		{
			name: "fontFamilies reported before fontSizes",
			docs: []tokens.Document{
				parse(t, "typography", `{}`),
			},
			expectedErr: &tokens.MissingKeyError{Category: "typography", Key: "fontFamilies"},
		},
		{
			name: "fontSizes missing",
			docs: []tokens.Document{
				parse(t, "typography", `{"fontFamilies": {"sans": "Inter"}}`),
			},
			expectedErr: &tokens.MissingKeyError{Category: "typography", Key: "fontSizes"},
		},
		{
			name: "first failure wins",
			docs: []tokens.Document{
				parse(t, "colors", `{}`),
				parse(t, "spacing", `{}`),
			},
			expectedErr: &tokens.MissingKeyError{Category: "colors", Key: "colors"},
		},
		{
			name: "breakpoints have no required keys",
			docs: []tokens.Document{
				parse(t, "breakpoints", `{"sm": "640px"}`),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tokens.Validate(tc.docs)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			var mk *tokens.MissingKeyError
			require.ErrorAs(t, err, &mk)
			assert.Equal(t, tc.expectedErr, mk)
			assert.Contains(t, err.Error(), tc.expectedErr.Key)
		})
	}
}

func TestValidateDoesNotModifyDocuments(t *testing.T) {
	doc := parse(t, "spacing", `{"spacing": {"sm": "8px"}}`)
	before, err := doc.Root.MarshalJSON()
	require.NoError(t, err)

	require.NoError(t, tokens.Validate([]tokens.Document{doc}))

	after, err := doc.Root.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
