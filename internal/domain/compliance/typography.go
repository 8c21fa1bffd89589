package compliance

import (
	"fmt"
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// EvaluateTypography reports one medium violation per element whose
// font-family names none of the approved fonts. With no approved font there
// is nothing to check.
func EvaluateTypography(obs domain.WebsiteObservation, guide *domain.TypographyGuide) []domain.Violation {
	if guide == nil {
		return nil
	}

	var approved []string
	for _, f := range []string{guide.Fonts.Primary, guide.Fonts.Fallback, guide.Fonts.Monospace} {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			approved = append(approved, f)
		}
	}
	// a section that names no font leaves every family unconstrained
	if len(approved) == 0 {
		return nil
	}
	expected := strings.Join(nonEmpty(guide.Fonts.Primary, guide.Fonts.Fallback, guide.Fonts.Monospace), ", ")

	var out []domain.Violation
	for i, el := range obs.Elements {
		family := el.FontFamily()
		if strings.TrimSpace(family) == "" {
			continue
		}
		normalized := strings.ToLower(strings.NewReplacer(`"`, "", `'`, "").Replace(family))
		if containsAny(normalized, approved) {
			continue
		}
		out = append(out, newViolation(domain.SeverityMedium, domain.Violation{
			ElementType: el.Type,
			IssueType:   domain.IssueTypography,
			Issue:       "Unapproved font family",
			Location:    elementLocation(el, i),
			ElementText: excerpt(el.Text),
			Found:       family,
			Expected:    expected,
			Suggestion:  fmt.Sprintf("Set font-family to %s", approved[0]),
			Impact:      "Inconsistent typography weakens brand recognition",
		}))
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
