package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	layers, err := Import(strings.NewReader(`<!DOCTYPE html>
<html><head><script>ignored()</script></head>
<body>
  <section id="hero" class="flex w-full">
    <h1 class="text-2xl font-bold">Welcome</h1>
    <a class="text-blue-500" href="/start">Start</a>
    <img src="/hero.png">
  </section>
</body></html>`))
	require.NoError(t, err)
	require.Len(t, layers, 1)

	section := layers[0]
	assert.NotEmpty(t, section.ID)
	assert.Equal(t, "section", section.Type)
	assert.Equal(t, "section", section.Tag)
	assert.Equal(t, []string{"flex", "w-full"}, []string(section.Classes))
	require.NotNil(t, section.Settings)
	assert.Equal(t, "hero", section.Settings.HTMLID)
	assert.Equal(t, "flex", section.Design.Get("layout", "display"))
	require.Len(t, section.Children, 3)

	heading := section.Children[0]
	assert.Equal(t, "heading", heading.Type)
	assert.Equal(t, "h1", heading.Tag)
	assert.Equal(t, "Welcome", heading.Text)
	assert.Equal(t, "2xl", heading.Design.Get("typography", "fontSize"))

	link := section.Children[1]
	assert.Equal(t, "link", link.Type)
	assert.Equal(t, "/start", link.URL)
	assert.Equal(t, "Start", link.Text)

	img := section.Children[2]
	assert.Equal(t, "image", img.Type)
	assert.Equal(t, "/hero.png", img.URL)
	assert.Empty(t, img.Text)
}

func TestImportAssignsUniqueIDs(t *testing.T) {
	layers, err := Import(strings.NewReader(`<div></div><div></div><div></div>`))
	require.NoError(t, err)
	require.Len(t, layers, 3)

	seen := map[string]bool{}
	for _, l := range layers {
		require.NotEmpty(t, l.ID)
		require.False(t, seen[l.ID], "duplicate layer id %s", l.ID)
		seen[l.ID] = true
		assert.Equal(t, "block", l.Type)
	}
}

func TestImportEmptyDocument(t *testing.T) {
	layers, err := Import(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, layers)
}

func TestImportRoundTripsThroughRenderer(t *testing.T) {
	layers, err := Import(strings.NewReader(
		`<body><p class="text-xl hover:text-red-500">Hello</p></body>`))
	require.NoError(t, err)
	require.Len(t, layers, 1)

	// An imported layer is directly renderable: neutral view keeps the
	// size token and drops the hover color.
	assert.Equal(t, []string{"text-xl", "hover:text-red-500"}, []string(layers[0].Classes))
	assert.Equal(t, "Hello", layers[0].Text)
}
