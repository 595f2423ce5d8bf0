package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	type testCase struct {
		in   string
		argb string
	}

	testCases := []testCase{
		{in: "#14B8A6", argb: "#FF14B8A6"},
		{in: "#fff", argb: "#FFFFFFFF"},
		{in: "#00000080", argb: "#80000000"},
		{in: "rgb(255, 0, 0)", argb: "#FFFF0000"},
		{in: "rgba(0, 0, 0, 0.5)", argb: "#80000000"},
		{in: "hsl(0, 100%, 50%)", argb: "#FFFF0000"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.argb, c.ARGBHex())
		})
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"transparent", "#12345", "rgb(1,2)", "var(--x)"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestComponents(t *testing.T) {
	c, err := ParseColor("#14B8A6")
	require.NoError(t, err)
	r, g, b, a := c.Components()
	assert.Equal(t, 0.078, r)
	assert.Equal(t, 0.722, g)
	assert.Equal(t, 0.651, b)
	assert.Equal(t, 1.0, a)
}

func TestDimensionPoints(t *testing.T) {
	type testCase struct {
		in     string
		points float64
		err    bool
	}

	testCases := []testCase{
		{in: "8px", points: 8},
		{in: "16", points: 16},
		{in: "1.25rem", points: 20},
		{in: "0.5em", points: 8},
		{in: "50%", err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseDimension(tc.in)
			require.NoError(t, err)
			p, err := d.Points()
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.points, p)
		})
	}

	_, err := ParseDimension("px")
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "8", FormatNumber(8))
	assert.Equal(t, "1.25", FormatNumber(1.25))
	assert.Equal(t, "0.3333", FormatNumber(1.0/3))
}
