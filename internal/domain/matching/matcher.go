// Package matching ranks catalog brands against a URL and an optional company
// name hint, and decides whether the best match is confident enough to use.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/similarity"
)

const (
	// ConfidenceThreshold is exclusive: a fallback-only score never counts
	// as a detection.
	ConfidenceThreshold = 0.1

	fallbackScore   = 0.1
	maxAlternatives = 2
	maxCandidates   = 3
	fuzzyCutoff     = 0.3
	fuzzyWeight     = 0.2
)

// Matcher scores catalog entries with a fixed sequence of rules. It holds no
// mutable state; one Matcher may serve concurrent callers.
type Matcher struct {
	hosts *HostnameTable
}

func NewMatcher(hosts *HostnameTable) *Matcher {
	if hosts == nil {
		hosts = NewHostnameTable(nil)
	}
	return &Matcher{hosts: hosts}
}

// Rank scores every catalog entry and returns them sorted by score, highest
// first. Entries with equal scores keep catalog order.
//
// Scores accumulate across the rules that fire while method and reason are
// taken from the last rule that fired.
func (m *Matcher) Rank(rawURL, hint string, catalog []domain.GuidelineSummary) []domain.BrandMatch {
	info := ParseURL(rawURL)
	return m.rank(info, hint, catalog)
}

func (m *Matcher) rank(info domain.URLInfo, hint string, catalog []domain.GuidelineSummary) []domain.BrandMatch {
	matches := make([]domain.BrandMatch, 0, len(catalog))
	for _, brand := range catalog {
		matches = append(matches, m.score(info, hint, brand))
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func (m *Matcher) score(info domain.URLInfo, hint string, brand domain.GuidelineSummary) domain.BrandMatch {
	match := domain.BrandMatch{Brand: brand}
	fire := func(points float64, method domain.MatchMethod, reason string) {
		match.Score += points
		match.Method = method
		match.Reason = reason
	}

	hint = strings.ToLower(strings.TrimSpace(hint))
	brandName := strings.ToLower(brand.BrandName)
	companyName := strings.ToLower(brand.CompanyName)
	dom := info.Domain

	// 1. fixed hostname table
	if mapped, ok := m.hosts.Lookup(info.Hostname); ok && strings.EqualFold(mapped, brand.BrandName) {
		fire(0.9, domain.MethodDomainMapping,
			fmt.Sprintf("Hostname %s is mapped to %s", info.Hostname, brand.BrandName))
	}

	// 2-4. company name hint
	if hint != "" {
		if hint == companyName {
			fire(0.8, domain.MethodCompanyNameExact,
				fmt.Sprintf("Company name matches %s exactly", brand.CompanyName))
		}
		if strings.Contains(companyName, hint) {
			fire(0.6, domain.MethodCompanyNamePartial,
				fmt.Sprintf("Company hint %q is part of %s", hint, brand.CompanyName))
		}
		if strings.Contains(brandName, hint) {
			fire(0.5, domain.MethodBrandNamePartial,
				fmt.Sprintf("Company hint %q is part of brand name %s", hint, brand.BrandName))
		}
	}

	// 5-6. domain label against brand name
	if dom != "" && brandName != "" {
		if strings.Contains(brandName, dom) {
			fire(0.4, domain.MethodDomainContainsBrand,
				fmt.Sprintf("Domain %q appears in brand name %s", dom, brand.BrandName))
		}
		if strings.Contains(dom, brandName) {
			fire(0.3, domain.MethodBrandContainsDomain,
				fmt.Sprintf("Brand name %s appears in domain %q", brand.BrandName, dom))
		}
	}

	// 7. fuzzy similarity of the hint, or the domain without one
	probe := hint
	if probe == "" {
		probe = dom
	}
	if sim := similarity.Score(probe, brand.BrandName); sim > fuzzyCutoff {
		fire(fuzzyWeight*sim, domain.MethodFuzzyMatch,
			fmt.Sprintf("%q resembles %s (similarity %.2f)", probe, brand.BrandName, sim))
	}

	if match.Score == 0 {
		match.Score = fallbackScore
		match.Method = domain.MethodFallback
		match.Reason = "No signal matched; ranked as fallback"
	}
	if match.Score > 1 {
		match.Score = 1
	}
	return match
}

// Detect ranks the catalog and reports the top brand when its score clears
// ConfidenceThreshold. Otherwise it reports failure with up to three
// candidates for manual selection.
func (m *Matcher) Detect(rawURL, hint string, catalog []domain.GuidelineSummary) domain.DetectionResult {
	if strings.TrimSpace(rawURL) == "" {
		return domain.DetectionResult{Error: domain.ErrMissingURL.Error()}
	}

	info := ParseURL(rawURL)
	result := domain.DetectionResult{URLInfo: info}
	if len(catalog) == 0 {
		result.Error = "no brand guidelines available"
		return result
	}

	ranked := m.rank(info, hint, catalog)
	top := ranked[0]
	if top.Score > ConfidenceThreshold {
		brand := top.Brand
		result.Success = true
		result.Brand = &brand
		result.Confidence = top.Score
		result.DetectionMethod = top.Method
		result.Reason = top.Reason
		if rest := ranked[1:]; len(rest) > 0 {
			result.Alternatives = append([]domain.BrandMatch(nil), rest[:min(len(rest), maxAlternatives)]...)
		}
		return result
	}

	result.Error = "could not confidently detect brand; choose one of the suggestions"
	for _, match := range ranked[:min(len(ranked), maxCandidates)] {
		result.Suggestions = append(result.Suggestions, domain.Candidate{
			BrandName: match.Brand.BrandName,
			Score:     match.Score,
			Reason:    match.Reason,
		})
	}
	return result
}
