package styler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignSetGet(t *testing.T) {
	d := NewDesign()

	require.True(t, d.Set("width", "full"))
	require.Equal(t, "full", d.Get("sizing", "width"))
	require.True(t, d["sizing"].IsActive)
	require.False(t, d["layout"].IsActive)

	require.False(t, d.Set("notAProperty", "x"))
	require.Empty(t, d.Get("sizing", "height"))
	require.Empty(t, d.Get("noSuchCategory", "width"))
}

func TestMergeDesign(t *testing.T) {
	base := NewDesign()
	base.Set("width", "full")
	base.Set("color", "red-500")

	overlay := NewDesign()
	overlay.Set("color", "blue-500")
	overlay.Set("padding", "16px")

	merged := MergeDesign(base, overlay)

	assert.Equal(t, "full", merged.Get("sizing", "width"))
	assert.Equal(t, "blue-500", merged.Get("typography", "color"))
	assert.Equal(t, "16px", merged.Get("spacing", "padding"))
	assert.True(t, merged["sizing"].IsActive)
	assert.True(t, merged["spacing"].IsActive)
	assert.False(t, merged["effects"].IsActive)

	// Inputs are not mutated.
	assert.Equal(t, "red-500", base.Get("typography", "color"))
	assert.Empty(t, overlay.Get("sizing", "width"))
}

func TestPropertyCategory(t *testing.T) {
	require.Equal(t, "sizing", PropertyCategory("width"))
	require.Equal(t, "typography", PropertyCategory("color"))
	require.Equal(t, "positioning", PropertyCategory("zIndex"))
	require.Empty(t, PropertyCategory("nope"))
}

func TestSortedProperties(t *testing.T) {
	got := sortedProperties(map[string]string{
		"zIndex":  "1",
		"display": "flex",
		"color":   "red-500",
		"zzz":     "unknown",
	})
	require.Equal(t, []string{"display", "color", "zIndex", "zzz"}, got)
}

func TestEscapeArbitrary(t *testing.T) {
	require.Equal(t, "calc(100%_-_2rem)", escapeArbitrary(" calc(100% - 2rem) "))
	require.Equal(t, "calc(100% - 2rem)", unescapeArbitrary("calc(100%_-_2rem)"))

	// Literal underscores are escaped so they survive the round trip.
	require.Equal(t, `url(https://a\_b.png)`, escapeArbitrary("url(https://a_b.png)"))
	require.Equal(t, "url(https://a_b.png)", unescapeArbitrary(`url(https://a\_b.png)`))
	require.Equal(t, `a\_b_c`, escapeArbitrary("a_b c"))
	require.Equal(t, "a_b c", unescapeArbitrary(`a\_b_c`))
}
