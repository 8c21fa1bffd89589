package compliance_test

import (
	"encoding/json"
	"testing"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/compliance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guideline() domain.BrandGuideline {
	return domain.BrandGuideline{
		ID:          "acme",
		BrandName:   "Acme",
		CompanyName: "Acme Corp",
		Colors: &domain.ColorGuide{
			Primary:   map[string]domain.ColorSpec{"brand": {Hex: "#ff6600"}},
			Forbidden: []string{"#ff0000"},
		},
		Typography: &domain.TypographyGuide{Fonts: domain.FontSet{Primary: "Inter"}},
		Logo:       &domain.LogoGuide{Rules: []string{"Top left"}},
		Tone:       &domain.ToneGuide{Forbidden: []string{"cheap"}},
	}
}

func observation() domain.WebsiteObservation {
	return domain.WebsiteObservation{
		URL: "https://acme.example",
		Elements: []domain.Element{
			{Type: "h1", Text: "Acme", Styles: map[string]string{"font-family": "Inter"}},
			{Type: "p", Text: "Cheap deals", Styles: map[string]string{"font-family": "Arial"}},
			{Type: "p", Text: "Quality tools", Styles: map[string]string{"font-family": "Inter"}},
			{Type: "p", Text: "Not cheap at all", Styles: map[string]string{"font-family": "Inter"}},
			{Type: "footer", Text: "Contact"},
			{Type: "a", Text: "Home"},
			{Type: "a", Text: "About"},
			{Type: "a", Text: "Blog"},
			{Type: "a", Text: "Jobs"},
			{Type: "a", Text: "Press"},
		},
		Colors: []string{"#ff6600", "rgb(255,0,0)", "#FF0000", "#333"},
		Images: []domain.Image{{Alt: "hero", Src: "/hero.png"}},
	}
}

func TestAnalyze_Report(t *testing.T) {
	report := compliance.NewAnalyzer().Analyze(observation(), guideline())

	// color: forbidden #ff0000 + unapproved #333333; typography: Arial; logo missing; tone: 2x cheap
	require.Len(t, report.Violations, 6)
	assert.Equal(t, domain.IssueColor, report.Violations[0].IssueType)
	assert.Equal(t, domain.IssueColor, report.Violations[1].IssueType)
	assert.Equal(t, domain.IssueTypography, report.Violations[2].IssueType)
	assert.Equal(t, domain.IssueLogo, report.Violations[3].IssueType)
	assert.Equal(t, domain.IssueTone, report.Violations[4].IssueType)
	assert.Equal(t, domain.IssueTone, report.Violations[5].IssueType)

	assert.Equal(t, 40, report.Score)
	assert.Equal(t, domain.SeverityBreakdown{High: 2, Medium: 4}, report.SeverityBreakdown)
	assert.Contains(t, report.Summary, "6 violations")
	assert.Contains(t, report.Summary, "2 high")
}

func TestAnalyze_ZeroElements(t *testing.T) {
	obs := domain.WebsiteObservation{Colors: []string{"#ff0000"}}
	report := compliance.NewAnalyzer().Analyze(obs, guideline())

	assert.Equal(t, 0, report.Score)
	assert.Len(t, report.Violations, 2)
}

func TestAnalyze_ScoreFloorsAtZero(t *testing.T) {
	obs := domain.WebsiteObservation{
		Elements: []domain.Element{{Type: "p", Text: "cheap cheap"}},
		Colors:   []string{"#ff0000", "#111"},
	}
	report := compliance.NewAnalyzer().Analyze(obs, guideline())

	assert.Equal(t, 0, report.Score)
}

func TestAnalyze_EmptyGuideline(t *testing.T) {
	report := compliance.NewAnalyzer().Analyze(observation(), domain.BrandGuideline{BrandName: "Bare"})

	assert.Equal(t, 100, report.Score)
	assert.NotNil(t, report.Violations)
	assert.Empty(t, report.Violations)
	assert.Equal(t, domain.SeverityBreakdown{}, report.SeverityBreakdown)
	assert.Contains(t, report.Summary, "no violations")
}

func TestAnalyze_SerializedSections(t *testing.T) {
	raw := `{"id":"acme","brandName":"Acme","companyName":"Acme Corp",
		"colors":"{\"forbidden\":[\"#ff0000\"]}","tone":"{\"forbidden\":[\"cheap\"]}"}`
	var g domain.BrandGuideline
	require.NoError(t, json.Unmarshal([]byte(raw), &g))

	obs := domain.WebsiteObservation{
		Elements: []domain.Element{{Type: "p", Text: "cheap"}, {Type: "p", Text: "fine"}},
		Colors:   []string{"rgb(255, 0, 0)"},
	}
	report := compliance.NewAnalyzer().Analyze(obs, g)

	require.Len(t, report.Violations, 2)
	assert.Equal(t, domain.SeverityHigh, report.Violations[0].Severity)
	assert.Equal(t, 0, report.Score)
}

func TestAnalyze_Pure(t *testing.T) {
	a := compliance.NewAnalyzer()
	first, err := json.Marshal(a.Analyze(observation(), guideline()))
	require.NoError(t, err)
	second, err := json.Marshal(a.Analyze(observation(), guideline()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

type spacingEvaluator struct{}

func (spacingEvaluator) Category() domain.IssueType { return "spacing" }
func (spacingEvaluator) Evaluate(domain.WebsiteObservation, domain.BrandGuideline) []domain.Violation {
	return []domain.Violation{{Issue: "tight", Severity: domain.SeverityLow, Priority: 4}}
}

func TestNewAnalyzer_CustomEvaluators(t *testing.T) {
	report := compliance.NewAnalyzer(spacingEvaluator{}).Analyze(observation(), guideline())

	require.Len(t, report.Violations, 1)
	assert.Equal(t, 1, report.SeverityBreakdown.Low)
	assert.Equal(t, 90, report.Score)
}

func TestDefaultEvaluators_Order(t *testing.T) {
	var got []domain.IssueType
	for _, e := range compliance.DefaultEvaluators() {
		got = append(got, e.Category())
	}
	assert.Equal(t, domain.IssueTypes, got)
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0, compliance.Score(0, 0))
	assert.Equal(t, 100, compliance.Score(4, 0))
	assert.Equal(t, 67, compliance.Score(3, 1))
	assert.Equal(t, 0, compliance.Score(2, 5))
}
