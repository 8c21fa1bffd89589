package matching_test

import (
	"testing"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/matching"
	"github.com/stretchr/testify/assert"
)

func TestParseURL(t *testing.T) {
	info := matching.ParseURL("https://www.github.com/features")

	assert.Equal(t, "www.github.com", info.Hostname)
	assert.Equal(t, "github", info.Domain)
	assert.Equal(t, "www", info.Subdomain)
	assert.Equal(t, "github.com", info.Registrable)
	assert.False(t, info.Degraded)
}

func TestParseURL_WithoutScheme(t *testing.T) {
	info := matching.ParseURL("GitHub.com")

	assert.Equal(t, "github.com", info.Hostname)
	assert.Equal(t, "github", info.Domain)
	assert.Empty(t, info.Subdomain)
}

func TestParseURL_MultiLabelSuffix(t *testing.T) {
	info := matching.ParseURL("https://shop.example.co.uk")

	assert.Equal(t, "example.co.uk", info.Registrable)
	assert.Equal(t, "shop.example", info.Subdomain)
}

func TestParseURL_SingleLabelHost(t *testing.T) {
	info := matching.ParseURL("http://localhost:8080/")

	assert.Equal(t, "localhost", info.Hostname)
	assert.Equal(t, "localhost", info.Domain)
	assert.Equal(t, "localhost", info.Registrable)
}

func TestParseURL_Degraded(t *testing.T) {
	info := matching.ParseURL("https://Not A URL")

	assert.True(t, info.Degraded)
	assert.Equal(t, "https://not a url", info.Hostname)
	assert.Equal(t, info.Hostname, info.Domain)
	assert.Equal(t, "https://Not A URL", info.Raw)
}

func TestParseURL_JunkHostDegrades(t *testing.T) {
	for _, raw := range []string{"::::", "https://...", "-"} {
		info := matching.ParseURL(raw)
		assert.True(t, info.Degraded, raw)
		assert.Equal(t, raw, info.Hostname, raw)
	}
}

func TestParseURL_IPAddress(t *testing.T) {
	info := matching.ParseURL("http://[::1]:8080/")

	assert.False(t, info.Degraded)
	assert.Equal(t, "::1", info.Hostname)
}
