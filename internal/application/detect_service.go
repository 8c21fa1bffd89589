package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/matching"
)

// DetectService resolves which brand guideline applies to a URL.
type DetectService struct {
	catalog domain.GuidelineCatalog
	matcher *matching.Matcher
}

func NewDetectService(catalog domain.GuidelineCatalog, matcher *matching.Matcher) *DetectService {
	if matcher == nil {
		matcher = matching.NewMatcher(nil)
	}
	return &DetectService{catalog: catalog, matcher: matcher}
}

// DetectBrand ranks the catalog against url and hint. Input problems are
// reported in the result's Error field; only catalog failures are returned
// as errors.
func (s *DetectService) DetectBrand(ctx context.Context, url, hint string) (*domain.DetectionResult, error) {
	if strings.TrimSpace(url) == "" {
		res := s.matcher.Detect(url, hint, nil)
		return &res, nil
	}

	summaries, err := s.Guidelines(ctx)
	if err != nil {
		return nil, err
	}
	res := s.matcher.Detect(url, hint, summaries)
	return &res, nil
}

// Suggest returns catalog brands whose names resemble query.
func (s *DetectService) Suggest(ctx context.Context, query string) ([]domain.BrandSuggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	summaries, err := s.Guidelines(ctx)
	if err != nil {
		return nil, err
	}
	return matching.Suggest(query, summaries), nil
}

// Guidelines lists the summaries of every catalog guideline.
func (s *DetectService) Guidelines(ctx context.Context) ([]domain.GuidelineSummary, error) {
	all, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing guidelines: %w", err)
	}
	return domain.Summaries(all), nil
}

// Guideline returns the full guideline for a brand name.
func (s *DetectService) Guideline(ctx context.Context, name string) (*domain.BrandGuideline, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyQuery
	}
	g, err := s.catalog.FindByBrandName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("finding guideline %q: %w", name, err)
	}
	return g, nil
}
