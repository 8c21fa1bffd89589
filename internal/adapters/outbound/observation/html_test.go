package observation_test

import (
	"strings"
	"testing"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/observation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTML_Elements(t *testing.T) {
	page := `<html><body style="font-family: Inter">
		<h1>Hello <em>there</em></h1>
		<div><p style="font-family: 'Comic Sans MS'">Fun</p></div>
		<script>document.write("cheap")</script>
	</body></html>`

	obs, err := observation.ParseHTML(strings.NewReader(page), "https://acme.example")
	require.NoError(t, err)

	assert.Equal(t, "https://acme.example", obs.URL)
	require.Len(t, obs.Elements, 3)

	assert.Equal(t, "h1", obs.Elements[0].Type)
	assert.Equal(t, "Hello", obs.Elements[0].Text)
	assert.Equal(t, "Inter", obs.Elements[0].FontFamily())

	assert.Equal(t, "em", obs.Elements[1].Type)
	assert.Equal(t, "there", obs.Elements[1].Text)
	assert.Equal(t, "Inter", obs.Elements[1].FontFamily())

	assert.Equal(t, "p", obs.Elements[2].Type)
	assert.Equal(t, "'Comic Sans MS'", obs.Elements[2].FontFamily())
}

func TestParseHTML_Colors(t *testing.T) {
	page := `<html><head><style>
		a { color: #0969DA; border-color: rgba(0, 0, 0, 0.5) }
	</style></head>
	<body><p style="color: #f00; background-color: rgb(1,2,3)">x</p></body></html>`

	obs, err := observation.ParseHTML(strings.NewReader(page), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"#0969DA", "rgba(0, 0, 0, 0.5)", "#f00", "rgb(1,2,3)"}, obs.Colors)
}

func TestParseHTML_InlineColorsKeepDeclarationOrder(t *testing.T) {
	page := `<p style="outline-color: #222; color: #111; background: #333; color: #444">x</p>`

	obs, err := observation.ParseHTML(strings.NewReader(page), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"#222", "#444", "#333"}, obs.Colors)
	require.Len(t, obs.Elements, 1)
	assert.Equal(t, "#444", obs.Elements[0].Styles["color"])
}

func TestParseHTML_Images(t *testing.T) {
	page := `<body><img src="/logo.png" alt="Acme Logo" width="120" height="40"><img src="/x.png"></body>`

	obs, err := observation.ParseHTML(strings.NewReader(page), "")
	require.NoError(t, err)

	require.Len(t, obs.Images, 2)
	assert.Equal(t, "Acme Logo", obs.Images[0].Alt)
	assert.Equal(t, 120, obs.Images[0].Width)
	assert.Equal(t, 40, obs.Images[0].Height)
	assert.Empty(t, obs.Images[1].Alt)
	assert.Empty(t, obs.Elements)
}

func TestParseHTML_Empty(t *testing.T) {
	obs, err := observation.ParseHTML(strings.NewReader(""), "")
	require.NoError(t, err)

	assert.NotNil(t, obs.Elements)
	assert.Empty(t, obs.Elements)
	assert.Empty(t, obs.Colors)
}
