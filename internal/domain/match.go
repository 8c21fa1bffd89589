package domain

import (
	"encoding/json"
	"fmt"
)

// MatchMethod identifies which matching rule produced a brand match.
type MatchMethod string

const (
	MethodDomainMapping       MatchMethod = "domain_mapping"
	MethodCompanyNameExact    MatchMethod = "company_name_exact"
	MethodCompanyNamePartial  MatchMethod = "company_name_partial"
	MethodBrandNamePartial    MatchMethod = "brand_name_partial"
	MethodDomainContainsBrand MatchMethod = "domain_contains_brand"
	MethodBrandContainsDomain MatchMethod = "brand_contains_domain"
	MethodFuzzyMatch          MatchMethod = "fuzzy_match"
	MethodFallback            MatchMethod = "fallback"
)

// MatchMethods lists methods in rule evaluation order.
var MatchMethods = []MatchMethod{
	MethodDomainMapping,
	MethodCompanyNameExact,
	MethodCompanyNamePartial,
	MethodBrandNamePartial,
	MethodDomainContainsBrand,
	MethodBrandContainsDomain,
	MethodFuzzyMatch,
	MethodFallback,
}

func (m MatchMethod) Valid() bool {
	for _, v := range MatchMethods {
		if m == v {
			return true
		}
	}
	return false
}

func (m *MatchMethod) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := MatchMethod(raw)
	if raw != "" && !v.Valid() {
		return fmt.Errorf("unknown match method %q", raw)
	}
	*m = v
	return nil
}

// URLInfo is the parsed form of the URL being matched. Degraded is set when
// the URL could not be parsed and Hostname/Domain fall back to the raw input.
type URLInfo struct {
	Raw         string `json:"raw"`
	Hostname    string `json:"hostname"`
	Domain      string `json:"domain"`
	Subdomain   string `json:"subdomain,omitempty"`
	Registrable string `json:"registrable,omitempty"`
	Degraded    bool   `json:"degraded,omitempty"`
}

// BrandMatch is one ranked catalog entry.
type BrandMatch struct {
	Brand  GuidelineSummary `json:"brand"`
	Score  float64          `json:"score"`
	Method MatchMethod      `json:"method"`
	Reason string           `json:"reason"`
}

// Candidate is a low-confidence match offered for manual selection.
type Candidate struct {
	BrandName string  `json:"brandName"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

// DetectionResult is the outcome of brand detection for a URL. On success
// Brand, Confidence and DetectionMethod are set; on failure Error and,
// when the catalog is not empty, Suggestions are set.
type DetectionResult struct {
	Success         bool              `json:"success"`
	Brand           *GuidelineSummary `json:"brand,omitempty"`
	Confidence      float64           `json:"confidence,omitempty"`
	DetectionMethod MatchMethod       `json:"detectionMethod,omitempty"`
	Reason          string            `json:"reason,omitempty"`
	URLInfo         URLInfo           `json:"urlInfo"`
	Alternatives    []BrandMatch      `json:"alternatives,omitempty"`
	Suggestions     []Candidate       `json:"suggestions,omitempty"`
	Error           string            `json:"error,omitempty"`
}

// BrandSuggestion is one entry of a free-text brand search.
type BrandSuggestion struct {
	ID          string  `json:"id"`
	BrandName   string  `json:"brandName"`
	CompanyName string  `json:"companyName"`
	Industry    string  `json:"industry,omitempty"`
	Score       float64 `json:"score"`
}
