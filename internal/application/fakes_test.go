package application_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

type fakeCatalog struct {
	guidelines []domain.BrandGuideline
	err        error
	listCalls  int
	mu         sync.Mutex
}

func (c *fakeCatalog) ListAll(context.Context) ([]domain.BrandGuideline, error) {
	c.mu.Lock()
	c.listCalls++
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return append([]domain.BrandGuideline(nil), c.guidelines...), nil
}

func (c *fakeCatalog) FindByBrandName(_ context.Context, name string) (*domain.BrandGuideline, error) {
	if c.err != nil {
		return nil, c.err
	}
	for _, g := range c.guidelines {
		if strings.EqualFold(g.BrandName, name) {
			g := g
			return &g, nil
		}
	}
	return nil, domain.ErrGuidelineNotFound
}

type memStore struct {
	mu      sync.Mutex
	records []domain.AuditRecord
	saveErr error
}

func (s *memStore) Save(_ context.Context, rec domain.AuditRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

func (s *memStore) Get(_ context.Context, id string) (*domain.AuditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, domain.ErrAuditNotFound
}

func (s *memStore) ListByDomain(_ context.Context, registrable string, limit int) ([]domain.AuditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AuditRecord
	for _, r := range s.records {
		if r.Registrable == registrable {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeRevisions struct {
	hash string
	err  error
}

func (f fakeRevisions) CommitHash(string) (string, error) { return f.hash, f.err }

var errBoom = errors.New("boom")

func testCatalog() *fakeCatalog {
	return &fakeCatalog{guidelines: []domain.BrandGuideline{
		{
			ID:          "git-hub",
			BrandName:   "GitHub",
			CompanyName: "GitHub, Inc.",
			Industry:    "software",
			Colors: &domain.ColorGuide{
				Primary:   map[string]domain.ColorSpec{"blue": {Hex: "#0366d6"}},
				Forbidden: []string{"#ff0000"},
			},
			Tone: &domain.ToneGuide{Forbidden: []string{"cheap"}},
		},
		{ID: "stripe", BrandName: "Stripe", CompanyName: "Stripe, Inc.", Industry: "payments"},
	}}
}

func testObservation(url string) *domain.WebsiteObservation {
	return &domain.WebsiteObservation{
		URL: url,
		Elements: []domain.Element{
			{Type: "h1", Text: "Build software"},
			{Type: "p", Text: "Not cheap"},
			{Type: "p", Text: "Collaborate"},
			{Type: "p", Text: "Ship"},
		},
		Colors: []string{"#0366d6", "rgb(255,0,0)"},
		Images: []domain.Image{{Alt: "GitHub logo"}},
	}
}
