package domain

import (
	"fmt"
	"time"
)

// ComplianceReport is the result of analyzing one website observation against
// one brand guideline. It is produced fresh on every analysis.
type ComplianceReport struct {
	Score             int               `json:"score"`
	Violations        []Violation       `json:"violations"`
	SeverityBreakdown SeverityBreakdown `json:"severityBreakdown"`
	Summary           string            `json:"summary"`
}

func (r ComplianceReport) Grade() string { return GradeFor(r.Score) }

// SeverityBreakdown counts violations per severity tier. Every tier is always
// present, with zero when no violation falls into it.
type SeverityBreakdown struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

func (b SeverityBreakdown) Total() int {
	return b.Critical + b.High + b.Medium + b.Low
}

// Count returns the number of violations recorded for the given tier.
func (b SeverityBreakdown) Count(s Severity) int {
	switch s {
	case SeverityCritical:
		return b.Critical
	case SeverityHigh:
		return b.High
	case SeverityMedium:
		return b.Medium
	case SeverityLow:
		return b.Low
	default:
		return 0
	}
}

func (b *SeverityBreakdown) add(s Severity) {
	switch s {
	case SeverityCritical:
		b.Critical++
	case SeverityHigh:
		b.High++
	case SeverityMedium:
		b.Medium++
	case SeverityLow:
		b.Low++
	}
}

// BreakdownOf tallies violations by severity.
func BreakdownOf(violations []Violation) SeverityBreakdown {
	var b SeverityBreakdown
	for _, v := range violations {
		b.add(v.Severity)
	}
	return b
}

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// BadgeColor maps a score to a shields.io badge color.
func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}

// AuditRecord is a persisted audit: the report plus what it was computed from.
type AuditRecord struct {
	ID              string           `json:"id"`
	URL             string           `json:"url"`
	Registrable     string           `json:"registrable"`
	BrandID         string           `json:"brandId"`
	BrandName       string           `json:"brandName"`
	Detection       *DetectionResult `json:"detection,omitempty"`
	Report          ComplianceReport `json:"report"`
	CatalogRevision string           `json:"catalogRevision,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// Headline is a one-line description used by history listings.
func (r AuditRecord) Headline() string {
	return fmt.Sprintf("%s vs %s: %d/100 (%d violations)",
		r.URL, r.BrandName, r.Report.Score, len(r.Report.Violations))
}
