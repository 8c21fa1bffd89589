// Package compliance compares a website observation with a brand guideline
// and produces a scored, severity-ranked report.
package compliance

import (
	"fmt"
	"math"
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// Evaluator checks one guideline category. A missing category yields no
// violations.
type Evaluator interface {
	Category() domain.IssueType
	Evaluate(obs domain.WebsiteObservation, g domain.BrandGuideline) []domain.Violation
}

type colorEvaluator struct{}

func (colorEvaluator) Category() domain.IssueType { return domain.IssueColor }
func (colorEvaluator) Evaluate(obs domain.WebsiteObservation, g domain.BrandGuideline) []domain.Violation {
	return EvaluateColors(obs, g.Colors)
}

type typographyEvaluator struct{}

func (typographyEvaluator) Category() domain.IssueType { return domain.IssueTypography }
func (typographyEvaluator) Evaluate(obs domain.WebsiteObservation, g domain.BrandGuideline) []domain.Violation {
	return EvaluateTypography(obs, g.Typography)
}

type logoEvaluator struct{}

func (logoEvaluator) Category() domain.IssueType { return domain.IssueLogo }
func (logoEvaluator) Evaluate(obs domain.WebsiteObservation, g domain.BrandGuideline) []domain.Violation {
	return EvaluateLogo(obs, g.Logo)
}

type toneEvaluator struct{}

func (toneEvaluator) Category() domain.IssueType { return domain.IssueTone }
func (toneEvaluator) Evaluate(obs domain.WebsiteObservation, g domain.BrandGuideline) []domain.Violation {
	return EvaluateTone(obs, g.Tone)
}

// DefaultEvaluators returns the color, typography, logo and tone evaluators
// in that order.
func DefaultEvaluators() []Evaluator {
	return []Evaluator{colorEvaluator{}, typographyEvaluator{}, logoEvaluator{}, toneEvaluator{}}
}

// Analyzer runs a fixed list of evaluators. It is stateless and safe for
// concurrent use.
type Analyzer struct {
	evaluators []Evaluator
}

// NewAnalyzer returns an Analyzer over the given evaluators, or over
// DefaultEvaluators when none are given.
func NewAnalyzer(evaluators ...Evaluator) *Analyzer {
	if len(evaluators) == 0 {
		evaluators = DefaultEvaluators()
	}
	return &Analyzer{evaluators: evaluators}
}

// Analyze runs every evaluator and assembles the report. The score is the
// share of elements not offset by a violation, rounded to an integer and
// floored at zero. An observation without elements scores 0.
func (a *Analyzer) Analyze(obs domain.WebsiteObservation, g domain.BrandGuideline) domain.ComplianceReport {
	violations := []domain.Violation{}
	for _, e := range a.evaluators {
		violations = append(violations, e.Evaluate(obs, g)...)
	}

	breakdown := domain.BreakdownOf(violations)
	score := Score(len(obs.Elements), len(violations))
	return domain.ComplianceReport{
		Score:             score,
		Violations:        violations,
		SeverityBreakdown: breakdown,
		Summary:           summarize(g.BrandName, score, breakdown),
	}
}

// Score computes max(0, round((elements-violations)/elements*100)).
func Score(elements, violations int) int {
	if elements <= 0 {
		return 0
	}
	s := math.Round(float64(elements-violations) / float64(elements) * 100)
	if s < 0 {
		return 0
	}
	return int(s)
}

func summarize(brand string, score int, b domain.SeverityBreakdown) string {
	if brand == "" {
		brand = "the brand guideline"
	}
	if b.Total() == 0 {
		return fmt.Sprintf("Compliance score %d/100 against %s with no violations.", score, brand)
	}

	var parts []string
	for _, sev := range domain.Severities {
		if n := b.Count(sev); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, sev))
		}
	}
	noun := "violations"
	if b.Total() == 1 {
		noun = "violation"
	}
	return fmt.Sprintf("Compliance score %d/100 against %s: %d %s (%s).",
		score, brand, b.Total(), noun, strings.Join(parts, ", "))
}
