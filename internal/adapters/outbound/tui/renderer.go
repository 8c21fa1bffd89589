package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityCritical: lipgloss.NewStyle().Foreground(danger).Bold(true).Underline(true),
		domain.SeverityHigh:     lipgloss.NewStyle().Foreground(danger).Bold(true),
		domain.SeverityMedium:   lipgloss.NewStyle().Foreground(warning).Bold(true),
		domain.SeverityLow:      lipgloss.NewStyle().Foreground(info),
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))

	titleCaser = cases.Title(language.English)
)

// Label turns an identifier such as "company_name_exact" into "Company Name
// Exact".
func Label(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

// RenderReport formats a compliance report for the terminal.
func RenderReport(brand, url string, report domain.ComplianceReport) string {
	var b strings.Builder

	// ── Header ──
	grade := report.Grade()
	title := headerStyle.Render("brandaudit")
	subtitle := dimStyle.Render(fmt.Sprintf("Brand Compliance · %s", brand))
	if url != "" {
		subtitle += "\n" + faintStyle.Render(url)
	}
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", report.Score))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Categories ──
	perCategory := make(map[domain.IssueType]int)
	for _, v := range report.Violations {
		perCategory[v.IssueType]++
	}
	for _, cat := range domain.IssueTypes {
		n := perCategory[cat]
		icon := passStyle.Render("●")
		if n > 0 {
			icon = failStyle.Render("●")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", icon, catNameStyle.Render(padRight(Label(string(cat)), 14)),
			dimStyle.Render(plural(n, "violation")))
	}

	b.WriteString("\n")
	renderBreakdown(&b, report.SeverityBreakdown)

	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Violations ──
	if len(report.Violations) == 0 {
		b.WriteString("  " + passStyle.Render("No violations found.") + "\n")
	} else {
		b.WriteString("  " + titleStyle.Render("Violations") + "\n\n")
		for _, v := range sortByPriority(report.Violations) {
			renderViolation(&b, v)
		}
	}

	if report.Summary != "" {
		b.WriteString("\n  " + dimStyle.Render(report.Summary) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func renderBreakdown(b *strings.Builder, sb domain.SeverityBreakdown) {
	total := sb.Total()
	for _, sev := range domain.Severities {
		n := sb.Count(sev)
		bar := coloredBar(n, total, 20, severityColor(sev))
		fmt.Fprintf(b, "  %s %s %s\n", padRight(string(sev), 10), bar, dimStyle.Render(fmt.Sprintf("%d", n)))
	}
}

func renderViolation(b *strings.Builder, v domain.Violation) {
	fmt.Fprintf(b, "    %s %s  %s\n", severityTag(v.Severity), titleStyle.Render(v.Issue), faintStyle.Render(v.Location))
	if v.Found != "" || v.Expected != "" {
		fmt.Fprintf(b, "           %s %s\n", dimStyle.Render("found:   "), v.Found)
		fmt.Fprintf(b, "           %s %s\n", dimStyle.Render("expected:"), v.Expected)
	}
	if v.ElementText != "" {
		fmt.Fprintf(b, "           %s\n", faintStyle.Render(fmt.Sprintf("%q", v.ElementText)))
	}
	if v.Suggestion != "" {
		fmt.Fprintf(b, "           %s\n", dimStyle.Render("→ "+v.Suggestion))
	}
}

func severityTag(s domain.Severity) string {
	style, ok := severityStyles[s]
	if !ok {
		style = dimStyle
	}
	return style.Render(padRight(string(s), 8))
}

func severityColor(s domain.Severity) lipgloss.Color {
	switch s {
	case domain.SeverityCritical, domain.SeverityHigh:
		return danger
	case domain.SeverityMedium:
		return warning
	default:
		return info
	}
}

// sortByPriority returns a copy ordered by priority, keeping evaluator order
// within a tier.
func sortByPriority(vs []domain.Violation) []domain.Violation {
	out := append([]domain.Violation(nil), vs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// RenderDetection formats a brand detection result.
func RenderDetection(res *domain.DetectionResult) string {
	var b strings.Builder
	b.WriteString("\n")

	host := res.URLInfo.Hostname
	if res.URLInfo.Degraded {
		host += " " + faintStyle.Render("(unparsed)")
	}

	if res.Success && res.Brand != nil {
		conf := int(math.Round(res.Confidence * 100))
		line := titleStyle.Render(res.Brand.BrandName) + "  " +
			lipgloss.NewStyle().Bold(true).Foreground(scoreColor(conf)).Render(fmt.Sprintf("%d%% confidence", conf))
		detail := dimStyle.Render(fmt.Sprintf("%s · %s", host, Label(string(res.DetectionMethod))))
		b.WriteString(boxStyle.Render(line + "\n" + detail))
		b.WriteString("\n")
		if res.Reason != "" {
			b.WriteString("\n  " + dimStyle.Render(res.Reason) + "\n")
		}
		if len(res.Alternatives) > 0 {
			b.WriteString("\n  " + titleStyle.Render("Alternatives") + "\n")
			for _, alt := range res.Alternatives {
				fmt.Fprintf(&b, "    %s %s  %s\n",
					padRight(alt.Brand.BrandName, 20),
					dimStyle.Render(fmt.Sprintf("%.2f", alt.Score)),
					faintStyle.Render(Label(string(alt.Method))))
			}
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("  " + failStyle.Render("Brand not detected") + "  " + dimStyle.Render(host) + "\n")
	if res.Error != "" {
		b.WriteString("  " + dimStyle.Render(res.Error) + "\n")
	}
	if len(res.Suggestions) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Did you mean") + "\n")
		for _, c := range res.Suggestions {
			fmt.Fprintf(&b, "    %s %s  %s\n",
				padRight(c.BrandName, 20),
				dimStyle.Render(fmt.Sprintf("%.2f", c.Score)),
				faintStyle.Render(c.Reason))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderSuggestions formats a brand search result.
func RenderSuggestions(query string, suggestions []domain.BrandSuggestion) string {
	if len(suggestions) == 0 {
		return "  " + dimStyle.Render(fmt.Sprintf("No brands resemble %q.", query)) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(fmt.Sprintf("Brands matching %q", query)) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")
	for _, s := range suggestions {
		score := int(math.Round(s.Score * 100))
		line := fmt.Sprintf("  %s %s  %s",
			coloredBar(score, 100, 10, scoreColor(score)),
			padRight(s.BrandName, 20),
			dimStyle.Render(s.CompanyName))
		if s.Industry != "" {
			line += "  " + faintStyle.Render(s.Industry)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderHistory formats stored audits for one domain, newest first.
func RenderHistory(registrable string, records []domain.AuditRecord) string {
	if len(records) == 0 {
		return "  " + dimStyle.Render("No audit history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Audit History · "+registrable) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, r := range records {
		hash := r.CatalogRevision
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(r.Report.Score)).
			Render(fmt.Sprintf("%d/100", r.Report.Score))

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(r.CreatedAt.Format("2006-01-02")),
			faintStyle.Render(hash),
			scoreStyled,
			r.Report.Grade(),
			r.BrandName,
		)

		// records are newest first; compare with the previous audit
		if i+1 < len(records) {
			diff := r.Report.Score - records[i+1].Report.Score
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func coloredBar(value, total, width int, color lipgloss.Color) string {
	filled := 0
	if total > 0 {
		filled = max(0, min(value*width/total, width))
	}
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}
