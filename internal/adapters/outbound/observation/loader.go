// Package observation loads website observations produced by an external
// scraper, or derives one from a saved HTML page.
package observation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// Loader implements domain.ObservationSource for .json and .html files.
type Loader struct{}

func New() *Loader { return &Loader{} }

// Load reads an observation from path. JSON files hold a WebsiteObservation;
// HTML files are parsed with ParseHTML.
func (l *Loader) Load(path string) (*domain.WebsiteObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening observation: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		obs, err := ParseHTML(f, "")
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		return obs, nil
	case ".json":
		var obs domain.WebsiteObservation
		if err := json.NewDecoder(f).Decode(&obs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		Normalize(&obs)
		return &obs, nil
	default:
		return nil, fmt.Errorf("unsupported observation format %q (want .json or .html)", filepath.Ext(path))
	}
}

// Decode reads a JSON observation, as posted to the HTTP API or MCP tools.
func Decode(data []byte) (*domain.WebsiteObservation, error) {
	var obs domain.WebsiteObservation
	if err := json.Unmarshal(data, &obs); err != nil {
		return nil, fmt.Errorf("decoding observation: %w", err)
	}
	Normalize(&obs)
	return &obs, nil
}

// Normalize replaces nil collections with empty ones.
func Normalize(obs *domain.WebsiteObservation) {
	if obs.Elements == nil {
		obs.Elements = []domain.Element{}
	}
	if obs.Colors == nil {
		obs.Colors = []string{}
	}
	if obs.Images == nil {
		obs.Images = []domain.Image{}
	}
}
