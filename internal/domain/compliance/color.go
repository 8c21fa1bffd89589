package compliance

import (
	"fmt"
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// EvaluateColors reports forbidden colors at high severity and colors outside
// the approved palettes at medium severity. Each (kind, color) pair is
// reported once no matter how often the color appears.
func EvaluateColors(obs domain.WebsiteObservation, guide *domain.ColorGuide) []domain.Violation {
	if guide == nil {
		return nil
	}

	approved := make(map[string]bool)
	for _, palette := range []map[string]domain.ColorSpec{guide.Semantic, guide.Neutral, guide.Primary} {
		for _, c := range palette {
			if hex := domain.NormalizeColor(c.Hex); hex != "" {
				approved[hex] = true
			}
		}
	}
	forbidden := make(map[string]bool, len(guide.Forbidden))
	for _, c := range guide.Forbidden {
		if hex := domain.NormalizeColor(c); hex != "" {
			forbidden[hex] = true
		}
	}

	expected := approvedList(guide)
	seen := make(map[string]bool)
	var out []domain.Violation
	for _, raw := range obs.Colors {
		color := domain.NormalizeColor(raw)
		if color == "" {
			continue
		}

		switch {
		case forbidden[color]:
			key := "forbidden|" + color
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, newViolation(domain.SeverityHigh, domain.Violation{
				ElementType: "color",
				IssueType:   domain.IssueColor,
				Issue:       "Forbidden color detected",
				Location:    "page styles",
				Found:       color,
				Expected:    expected,
				Suggestion:  fmt.Sprintf("Replace %s with an approved brand color", color),
				Impact:      "Uses a color the brand explicitly prohibits",
			}))
		case !approved[color]:
			key := "unapproved|" + color
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, newViolation(domain.SeverityMedium, domain.Violation{
				ElementType: "color",
				IssueType:   domain.IssueColor,
				Issue:       "Unapproved color detected",
				Location:    "page styles",
				Found:       color,
				Expected:    expected,
				Suggestion:  fmt.Sprintf("Map %s to the closest approved palette color", color),
				Impact:      "Dilutes brand color consistency",
			}))
		}
	}
	return out
}

// approvedList renders the approved palette as "name (#hex)" entries in a
// stable order.
func approvedList(guide *domain.ColorGuide) string {
	var parts []string
	for _, palette := range []map[string]domain.ColorSpec{guide.Primary, guide.Semantic, guide.Neutral} {
		for _, name := range sortedKeys(palette) {
			hex := domain.NormalizeColor(palette[name].Hex)
			if hex == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s (%s)", name, hex))
		}
	}
	if len(parts) == 0 {
		return "approved brand colors"
	}
	return strings.Join(parts, ", ")
}
