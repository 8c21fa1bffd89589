package compliance

import (
	"fmt"
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// EvaluateTone reports one medium violation for every element and forbidden
// word pair where the element text contains the word, ignoring case.
func EvaluateTone(obs domain.WebsiteObservation, guide *domain.ToneGuide) []domain.Violation {
	if guide == nil || len(guide.Forbidden) == 0 {
		return nil
	}

	expected := "Brand voice"
	if guide.Style != "" {
		expected = guide.Style
	}

	var out []domain.Violation
	for i, el := range obs.Elements {
		if strings.TrimSpace(el.Text) == "" {
			continue
		}
		text := strings.ToLower(el.Text)
		for _, word := range guide.Forbidden {
			w := strings.ToLower(strings.TrimSpace(word))
			if w == "" || !strings.Contains(text, w) {
				continue
			}
			out = append(out, newViolation(domain.SeverityMedium, domain.Violation{
				ElementType: el.Type,
				IssueType:   domain.IssueTone,
				Issue:       fmt.Sprintf("Forbidden word %q used", word),
				Location:    elementLocation(el, i),
				ElementText: excerpt(el.Text),
				Found:       word,
				Expected:    expected,
				Suggestion:  fmt.Sprintf("Rephrase without %q", word),
				Impact:      "Copy conflicts with the brand tone of voice",
			}))
		}
	}
	return out
}
