package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShadow(t *testing.T) {
	sh, err := ParseShadow("0 1px 2px rgba(0, 0, 0, 0.05)")
	require.NoError(t, err)
	assert.Equal(t, 0.0, sh.X)
	assert.Equal(t, 1.0, sh.Y)
	assert.Equal(t, 2.0, sh.Blur)
	assert.Equal(t, "#0D000000", sh.Color.ARGBHex())

	sh, err = ParseShadow("inset 0 4px 6px -1px #000, 0 2px 4px #111")
	require.NoError(t, err)
	assert.True(t, sh.Inset)
	assert.Equal(t, -1.0, sh.Spread)

	sh, err = ParseShadow("2px 2px")
	require.NoError(t, err)
	assert.Equal(t, "#FF000000", sh.Color.ARGBHex())

	_, err = ParseShadow("none")
	assert.Error(t, err)
}
