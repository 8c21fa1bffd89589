package domain_test

import (
	"testing"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"#FF0000", "#ff0000"},
		{"#f00", "#ff0000"},
		{"#f008", "#ff0000"},
		{"#ff000080", "#ff0000"},
		{"  #AbCdEf ", "#abcdef"},
		{"rgb(255,0,0)", "#ff0000"},
		{"rgba(0, 128, 255, 0.5)", "#0080ff"},
		{"RGB( 1 , 2 , 3 )", "#010203"},
		{"rgb(300,0,0)", "#ff0000"},
		{"#12345", ""},
		{"#", ""},
		{"red", ""},
		{"", ""},
		{"hsl(0, 100%, 50%)", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NormalizeColor(tt.raw), tt.raw)
	}
}

func TestBrandGuideline_Normalize(t *testing.T) {
	g := domain.BrandGuideline{
		BrandName:   "Acme",
		CompanyName: "Acme Corp",
		Colors: &domain.ColorGuide{
			Primary:   map[string]domain.ColorSpec{"brand": {Hex: "#FF6600", Name: "Orange"}},
			Semantic:  map[string]domain.ColorSpec{"ok": {Hex: "rgb(0, 128, 0)"}},
			Neutral:   map[string]domain.ColorSpec{"white": {Hex: "#FFF"}, "odd": {Hex: "chalk"}},
			Forbidden: []string{"#F00", "nope", "rgba(255,105,180,0.4)"},
		},
	}
	g.Normalize()

	require.NotNil(t, g.Colors)
	assert.Equal(t, "#ff6600", g.Colors.Primary["brand"].Hex)
	assert.Equal(t, "Orange", g.Colors.Primary["brand"].Name)
	assert.Equal(t, "#008000", g.Colors.Semantic["ok"].Hex)
	assert.Equal(t, "#ffffff", g.Colors.Neutral["white"].Hex)
	assert.Equal(t, "chalk", g.Colors.Neutral["odd"].Hex)
	assert.Equal(t, []string{"#ff0000", "#ff69b4"}, g.Colors.Forbidden)
}

func TestBrandGuideline_NormalizeWithoutColors(t *testing.T) {
	g := domain.BrandGuideline{BrandName: "Acme", CompanyName: "Acme Corp"}
	g.Normalize()
	assert.Nil(t, g.Colors)
}
