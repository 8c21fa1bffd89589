package domain

import (
	"encoding/json"
	"fmt"
)

// Severity ranks remediation priority of a violation.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists every tier from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Priority maps a tier to a remediation order, 1 being the most urgent.
func (s Severity) Priority() int {
	switch s {
	case SeverityCritical:
		return 1
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 3
	default:
		return 4
	}
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Severity(raw)
	if !v.Valid() {
		return fmt.Errorf("unknown severity %q (valid: critical, high, medium, low)", raw)
	}
	*s = v
	return nil
}

// IssueType names the guideline category a violation belongs to.
type IssueType string

const (
	IssueColor      IssueType = "color"
	IssueTypography IssueType = "typography"
	IssueLogo       IssueType = "logo"
	IssueTone       IssueType = "tone"
)

// IssueTypes lists categories in evaluation order.
var IssueTypes = []IssueType{IssueColor, IssueTypography, IssueLogo, IssueTone}

func (t IssueType) Valid() bool {
	switch t {
	case IssueColor, IssueTypography, IssueLogo, IssueTone:
		return true
	}
	return false
}

func (t *IssueType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := IssueType(raw)
	if !v.Valid() {
		return fmt.Errorf("unknown issue type %q", raw)
	}
	*t = v
	return nil
}

// Violation is one detected mismatch between an observation and a guideline
// category.
type Violation struct {
	ElementType string    `json:"elementType"`
	IssueType   IssueType `json:"issueType"`
	Issue       string    `json:"issue"`
	Location    string    `json:"location"`
	ElementText string    `json:"elementText,omitempty"`
	Found       string    `json:"found"`
	Expected    string    `json:"expected"`
	Suggestion  string    `json:"suggestion"`
	Severity    Severity  `json:"severity"`
	Impact      string    `json:"impact"`
	Priority    int       `json:"priority"`
}
