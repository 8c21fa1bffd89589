// Package report renders audit records as shareable documents.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// MarkdownWriter outputs audit records in GitHub-flavored Markdown.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs one audit record.
func (w *MarkdownWriter) Write(rec *domain.AuditRecord) error {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, rec)
	w.writeSummary(md, rec.Report)
	w.writeViolations(md, rec.Report.Violations)

	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by brandaudit*")

	return md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, rec *domain.AuditRecord) {
	md.H1(fmt.Sprintf("Brand Compliance Report: %s", rec.BrandName))
	md.PlainText("")
	md.PlainText(scoreBadge(rec.Report.Score))
	md.PlainText("")

	rows := [][]string{
		{"URL", orDash(rec.URL)},
		{"Brand", rec.BrandName},
		{"Score", fmt.Sprintf("%d/100 (%s)", rec.Report.Score, rec.Report.Grade())},
	}
	if rec.Detection != nil && rec.Detection.Success {
		rows = append(rows, []string{"Detection", fmt.Sprintf("%s (%.2f)", rec.Detection.DetectionMethod, rec.Detection.Confidence)})
	}
	if rec.CatalogRevision != "" {
		rows = append(rows, []string{"Catalog Revision", "`" + rec.CatalogRevision + "`"})
	}
	if !rec.CreatedAt.IsZero() {
		rows = append(rows, []string{"Audited", rec.CreatedAt.Format("2006-01-02 15:04:05 MST")})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, r domain.ComplianceReport) {
	md.H2("Severity Summary")
	md.PlainText("")

	b := r.SeverityBreakdown
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 Critical", strconv.Itoa(b.Critical)},
			{"🟠 High", strconv.Itoa(b.High)},
			{"🟡 Medium", strconv.Itoa(b.Medium)},
			{"🔵 Low", strconv.Itoa(b.Low)},
			{"**Total**", "**" + strconv.Itoa(b.Total()) + "**"},
		},
	})
	md.PlainText("")

	switch {
	case b.Critical > 0 || b.High > 0:
		md.Warningf("%d high-priority violation(s) should be fixed before release.", b.Critical+b.High)
	case b.Total() > 0:
		md.Note("Only medium and low severity violations detected.")
	default:
		md.Tip("The page follows the brand guideline.")
	}
	md.PlainText("")

	if r.Summary != "" {
		md.PlainText(r.Summary)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeViolations(md *markdown.Markdown, violations []domain.Violation) {
	md.H2("Violations")
	md.PlainText("")

	if len(violations) == 0 {
		md.PlainText("No violations detected.")
		md.PlainText("")
		return
	}

	for _, cat := range domain.IssueTypes {
		var rows [][]string
		var suggestions []string
		for _, v := range violations {
			if v.IssueType != cat {
				continue
			}
			rows = append(rows, []string{
				string(v.Severity),
				v.Issue,
				orDash(v.Location),
				truncateString(orDash(v.Found), 40),
				truncateString(orDash(v.Expected), 60),
			})
			if v.Suggestion != "" {
				suggestions = append(suggestions, v.Suggestion)
			}
		}
		if len(rows) == 0 {
			continue
		}

		md.H3(categoryTitle(cat))
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Severity", "Issue", "Location", "Found", "Expected"},
			Rows:   rows,
		})
		md.PlainText("")
		if len(suggestions) > 0 {
			md.BulletList(dedupe(suggestions)...)
			md.PlainText("")
		}
	}
}

// scoreBadge renders a shields.io image colored by score band.
func scoreBadge(score int) string {
	return fmt.Sprintf("![brand score](https://img.shields.io/badge/brand_score-%d%%2F100-%s)",
		score, domain.BadgeColor(score))
}

func categoryTitle(cat domain.IssueType) string {
	switch cat {
	case domain.IssueColor:
		return "Color"
	case domain.IssueTypography:
		return "Typography"
	case domain.IssueLogo:
		return "Logo"
	case domain.IssueTone:
		return "Tone"
	default:
		return string(cat)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, s := range items {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
