package matching

import (
	"sort"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/similarity"
)

const (
	suggestionCutoff = 0.1
	maxSuggestions   = 10
)

// Suggest scores every catalog brand by name similarity to query and returns
// up to ten with a score above 0.1, best first.
func Suggest(query string, catalog []domain.GuidelineSummary) []domain.BrandSuggestion {
	var out []domain.BrandSuggestion
	for _, brand := range catalog {
		score := similarity.Score(query, brand.BrandName)
		if score <= suggestionCutoff {
			continue
		}
		out = append(out, domain.BrandSuggestion{
			ID:          brand.ID,
			BrandName:   brand.BrandName,
			CompanyName: brand.CompanyName,
			Industry:    brand.Industry,
			Score:       score,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
