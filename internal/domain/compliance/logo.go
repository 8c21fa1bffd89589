package compliance

import (
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// EvaluateLogo reports a single high violation when no image has "logo" in
// its alt text.
func EvaluateLogo(obs domain.WebsiteObservation, guide *domain.LogoGuide) []domain.Violation {
	if guide == nil {
		return nil
	}
	for _, img := range obs.Images {
		if strings.Contains(strings.ToLower(img.Alt), "logo") {
			return nil
		}
	}

	var expected []string
	for _, name := range sortedKeys(guide.Variants) {
		expected = append(expected, name+": "+guide.Variants[name])
	}
	expected = append(expected, guide.Rules...)
	exp := "Brand logo present"
	if len(expected) > 0 {
		exp = exp + "; " + strings.Join(expected, "; ")
	}

	return []domain.Violation{newViolation(domain.SeverityHigh, domain.Violation{
		ElementType: "img",
		IssueType:   domain.IssueLogo,
		Issue:       "Logo not found",
		Location:    "page images",
		Found:       "no image with logo alt text",
		Expected:    exp,
		Suggestion:  "Add the brand logo with descriptive alt text containing \"logo\"",
		Impact:      "Visitors cannot identify the brand at a glance",
	})}
}
