package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/compliance"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/matching"
)

// AuditRequest describes one audit. BrandName selects the guideline
// explicitly; without it the guideline is detected from URL and CompanyHint.
// URL defaults to the observation's URL.
type AuditRequest struct {
	URL         string                     `json:"url"`
	BrandName   string                     `json:"brandName,omitempty"`
	CompanyHint string                     `json:"companyName,omitempty"`
	Observation *domain.WebsiteObservation `json:"observation"`
}

// NotDetectedError is returned by Audit when no guideline was named and
// detection was not confident. It carries the detection so callers can offer
// the suggestions.
type NotDetectedError struct {
	Detection *domain.DetectionResult
}

func (e *NotDetectedError) Error() string {
	if e.Detection != nil && e.Detection.Error != "" {
		return fmt.Sprintf("%s: %s", domain.ErrBrandNotDetected, e.Detection.Error)
	}
	return domain.ErrBrandNotDetected.Error()
}

func (e *NotDetectedError) Unwrap() error { return domain.ErrBrandNotDetected }

// AuditService runs the audit pipeline: resolve guideline, analyze, stamp,
// persist.
type AuditService struct {
	catalog    domain.GuidelineCatalog
	matcher    *matching.Matcher
	analyzer   *compliance.Analyzer
	store      domain.AuditStore
	revisions  domain.RevisionSource
	catalogDir string
	now        func() time.Time
	newID      func() string
}

// AuditOption configures an AuditService.
type AuditOption func(*AuditService)

// WithStore persists every completed audit.
func WithStore(store domain.AuditStore) AuditOption {
	return func(s *AuditService) { s.store = store }
}

// WithCatalogRevision stamps records with the revision of catalogDir.
func WithCatalogRevision(src domain.RevisionSource, catalogDir string) AuditOption {
	return func(s *AuditService) {
		s.revisions = src
		s.catalogDir = catalogDir
	}
}

// WithClock overrides the record timestamp source.
func WithClock(now func() time.Time) AuditOption {
	return func(s *AuditService) { s.now = now }
}

// WithMatcher overrides the matcher used for guideline detection.
func WithMatcher(m *matching.Matcher) AuditOption {
	return func(s *AuditService) {
		if m != nil {
			s.matcher = m
		}
	}
}

func NewAuditService(catalog domain.GuidelineCatalog, analyzer *compliance.Analyzer, opts ...AuditOption) *AuditService {
	if analyzer == nil {
		analyzer = compliance.NewAnalyzer()
	}
	s := &AuditService{
		catalog:  catalog,
		matcher:  matching.NewMatcher(nil),
		analyzer: analyzer,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeWebsite compares one observation with one guideline. It performs no
// I/O.
func (s *AuditService) AnalyzeWebsite(obs domain.WebsiteObservation, g domain.BrandGuideline) domain.ComplianceReport {
	return s.analyzer.Analyze(obs, g)
}

// Audit resolves the guideline for req, analyzes the observation and saves
// the record when a store is configured.
func (s *AuditService) Audit(ctx context.Context, req AuditRequest) (*domain.AuditRecord, error) {
	// 0. Validate input
	if req.Observation == nil {
		return nil, domain.ErrMissingObservation
	}
	url := strings.TrimSpace(req.URL)
	if url == "" {
		url = strings.TrimSpace(req.Observation.URL)
	}

	// 1. Resolve guideline
	guideline, detection, err := s.resolve(ctx, url, req)
	if err != nil {
		return nil, err
	}

	// 2. Analyze
	report := s.analyzer.Analyze(*req.Observation, *guideline)

	// 3. Stamp
	rec := domain.AuditRecord{
		ID:        s.newID(),
		URL:       url,
		BrandID:   guideline.ID,
		BrandName: guideline.BrandName,
		Detection: detection,
		Report:    report,
		CreatedAt: s.now().UTC(),
	}
	if url != "" {
		rec.Registrable = matching.ParseURL(url).Registrable
	}
	if s.revisions != nil && s.catalogDir != "" {
		if hash, err := s.revisions.CommitHash(s.catalogDir); err == nil {
			rec.CatalogRevision = hash
		}
	}

	// 4. Persist
	if s.store != nil {
		if err := s.store.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("saving audit: %w", err)
		}
	}
	return &rec, nil
}

func (s *AuditService) resolve(ctx context.Context, url string, req AuditRequest) (*domain.BrandGuideline, *domain.DetectionResult, error) {
	if name := strings.TrimSpace(req.BrandName); name != "" {
		g, err := s.catalog.FindByBrandName(ctx, name)
		if err != nil {
			return nil, nil, fmt.Errorf("finding guideline %q: %w", name, err)
		}
		return g, nil, nil
	}

	if url == "" {
		return nil, nil, domain.ErrMissingURL
	}
	all, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing guidelines: %w", err)
	}
	detection := s.matcher.Detect(url, req.CompanyHint, domain.Summaries(all))
	if !detection.Success {
		return nil, nil, &NotDetectedError{Detection: &detection}
	}
	for i := range all {
		if all[i].ID == detection.Brand.ID && all[i].BrandName == detection.Brand.BrandName {
			return &all[i], &detection, nil
		}
	}
	return nil, nil, fmt.Errorf("detected brand %q: %w", detection.Brand.BrandName, domain.ErrGuidelineNotFound)
}

// History lists stored audits for the registrable domain of url, newest
// first.
func (s *AuditService) History(ctx context.Context, url string, limit int) ([]domain.AuditRecord, error) {
	if s.store == nil {
		return nil, domain.ErrStoreDisabled
	}
	if strings.TrimSpace(url) == "" {
		return nil, domain.ErrMissingURL
	}
	registrable := matching.ParseURL(url).Registrable
	records, err := s.store.ListByDomain(ctx, registrable, limit)
	if err != nil {
		return nil, fmt.Errorf("listing audits for %s: %w", registrable, err)
	}
	return records, nil
}

// GetAudit loads one stored audit by ID.
func (s *AuditService) GetAudit(ctx context.Context, id string) (*domain.AuditRecord, error) {
	if s.store == nil {
		return nil, domain.ErrStoreDisabled
	}
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAuditNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("loading audit %s: %w", id, err)
	}
	return rec, nil
}
