package matching_test

import (
	"testing"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []domain.GuidelineSummary {
	return []domain.GuidelineSummary{
		{ID: "git-hub", BrandName: "GitHub", CompanyName: "GitHub, Inc."},
		{ID: "git-lab", BrandName: "GitLab", CompanyName: "GitLab Inc."},
		{ID: "stripe", BrandName: "Stripe", CompanyName: "Stripe, Inc."},
	}
}

func TestDetect_HostnameMapping(t *testing.T) {
	m := matching.NewMatcher(nil)
	res := m.Detect("https://www.github.com", "", catalog())

	require.True(t, res.Success)
	require.NotNil(t, res.Brand)
	assert.Equal(t, "GitHub", res.Brand.BrandName)
	assert.GreaterOrEqual(t, res.Confidence, 0.9)
	assert.LessOrEqual(t, res.Confidence, 1.0)
	assert.Equal(t, "www.github.com", res.URLInfo.Hostname)
	assert.Empty(t, res.Error)
	assert.Empty(t, res.Suggestions)
}

func TestDetect_AlternativesCappedAtTwo(t *testing.T) {
	m := matching.NewMatcher(nil)
	cat := append(catalog(), domain.GuidelineSummary{ID: "uber", BrandName: "Uber", CompanyName: "Uber"})
	res := m.Detect("https://www.github.com", "", cat)

	require.True(t, res.Success)
	require.Len(t, res.Alternatives, 2)
	assert.Equal(t, "GitLab", res.Alternatives[0].Brand.BrandName)
	assert.Equal(t, domain.MethodFuzzyMatch, res.Alternatives[0].Method)
}

func TestDetect_FallbackOnlyIsNotConfident(t *testing.T) {
	m := matching.NewMatcher(nil)
	res := m.Detect("https://example.org", "", []domain.GuidelineSummary{
		{BrandName: "GitHub", CompanyName: "GitHub, Inc."},
		{BrandName: "Stripe", CompanyName: "Stripe, Inc."},
	})

	assert.False(t, res.Success)
	assert.Nil(t, res.Brand)
	assert.NotEmpty(t, res.Error)
	require.Len(t, res.Suggestions, 2)
	for _, c := range res.Suggestions {
		assert.Equal(t, 0.1, c.Score)
	}
	assert.Equal(t, "GitHub", res.Suggestions[0].BrandName)
}

func TestDetect_SuggestionsCappedAtThree(t *testing.T) {
	m := matching.NewMatcher(nil)
	cat := []domain.GuidelineSummary{
		{BrandName: "Zzz"}, {BrandName: "Yyy"}, {BrandName: "Www"}, {BrandName: "Vvv"},
	}
	res := m.Detect("https://example.org", "", cat)

	assert.False(t, res.Success)
	assert.Len(t, res.Suggestions, 3)
}

func TestDetect_EmptyCatalog(t *testing.T) {
	m := matching.NewMatcher(nil)
	res := m.Detect("https://www.github.com", "", nil)

	assert.False(t, res.Success)
	assert.Empty(t, res.Suggestions)
	assert.NotEmpty(t, res.Error)
	assert.Equal(t, "www.github.com", res.URLInfo.Hostname)
}

func TestDetect_MissingURL(t *testing.T) {
	m := matching.NewMatcher(nil)
	res := m.Detect("  ", "GitHub", catalog())

	assert.False(t, res.Success)
	assert.Equal(t, "url is required", res.Error)
}

func TestDetect_MalformedURLDegrades(t *testing.T) {
	m := matching.NewMatcher(nil)
	res := m.Detect("https://not a url", "Stripe, Inc.", catalog())

	assert.True(t, res.URLInfo.Degraded)
	require.True(t, res.Success)
	assert.Equal(t, "Stripe", res.Brand.BrandName)
}

func TestRank_LastRuleSetsMethod(t *testing.T) {
	m := matching.NewMatcher(nil)
	ranked := m.Rank("https://example.org", "corp", []domain.GuidelineSummary{
		{BrandName: "Initech", CompanyName: "Initech Corp"},
	})

	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.6, ranked[0].Score, 1e-9)
	assert.Equal(t, domain.MethodCompanyNamePartial, ranked[0].Method)
	assert.NotEmpty(t, ranked[0].Reason)
}

func TestRank_ScoreAccumulatesAndClamps(t *testing.T) {
	m := matching.NewMatcher(nil)
	ranked := m.Rank("https://example.org", "Initech Corp", []domain.GuidelineSummary{
		{BrandName: "Initech", CompanyName: "Initech Corp"},
	})

	require.Len(t, ranked, 1)
	// exact 0.8 + partial 0.6 + fuzzy 0.16 clamps to 1
	assert.Equal(t, 1.0, ranked[0].Score)
	assert.Equal(t, domain.MethodFuzzyMatch, ranked[0].Method)
}

func TestRank_BrandContainsDomain(t *testing.T) {
	m := matching.NewMatcher(nil)
	ranked := m.Rank("https://acmestore.io", "", []domain.GuidelineSummary{
		{BrandName: "Acme", CompanyName: "Acme Industries"},
	})

	require.Len(t, ranked, 1)
	// brand in domain 0.3 + fuzzy 0.2*0.8
	assert.InDelta(t, 0.46, ranked[0].Score, 1e-9)
}

func TestRank_EveryEntryRanked(t *testing.T) {
	m := matching.NewMatcher(nil)
	cat := catalog()
	ranked := m.Rank("https://unknown.example", "nothing alike", cat)

	require.Len(t, ranked, len(cat))
	for _, r := range ranked {
		assert.GreaterOrEqual(t, r.Score, 0.1)
	}
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRank_Deterministic(t *testing.T) {
	m := matching.NewMatcher(nil)
	cat := catalog()
	before := append([]domain.GuidelineSummary(nil), cat...)

	first := m.Detect("https://gitlab.com/explore", "", cat)
	second := m.Detect("https://gitlab.com/explore", "", cat)

	assert.Equal(t, first, second)
	assert.Equal(t, before, cat)
}

func TestDetect_ConfigMappingOverride(t *testing.T) {
	m := matching.NewMatcher(matching.NewHostnameTable(map[string]string{"initech.example": "Initech"}))
	res := m.Detect("https://initech.example", "", []domain.GuidelineSummary{
		{BrandName: "Stripe", CompanyName: "Stripe, Inc."},
		{BrandName: "Initech", CompanyName: "Initech Corp"},
	})

	require.True(t, res.Success)
	assert.Equal(t, "Initech", res.Brand.BrandName)
	assert.GreaterOrEqual(t, res.Confidence, 0.9)
}
