package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// PostgresCatalog reads guidelines from the brand_guidelines table written
// by the extraction pipeline. Section columns are jsonb and may hold either
// an object or a string with the serialized object.
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

// Connect opens a pool for databaseURL and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*PostgresCatalog, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	cfg.MaxConns = 4
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &PostgresCatalog{pool: pool}, nil
}

func (c *PostgresCatalog) Close() { c.pool.Close() }

const selectGuidelines = `
	SELECT id, brand_name, company_name, COALESCE(industry, ''),
	       colors, typography, logo, tone
	FROM brand_guidelines`

func (c *PostgresCatalog) ListAll(ctx context.Context) ([]domain.BrandGuideline, error) {
	rows, err := c.pool.Query(ctx, selectGuidelines+` ORDER BY brand_name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying guidelines: %w", err)
	}
	defer rows.Close()

	var out []domain.BrandGuideline
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.BrandName, &r.CompanyName, &r.Industry,
			&r.Colors, &r.Typography, &r.Logo, &r.Tone); err != nil {
			return nil, fmt.Errorf("scanning guideline: %w", err)
		}
		g, err := r.Decode()
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (c *PostgresCatalog) FindByBrandName(ctx context.Context, name string) (*domain.BrandGuideline, error) {
	var r Row
	err := c.pool.QueryRow(ctx, selectGuidelines+` WHERE lower(brand_name) = lower($1) ORDER BY id LIMIT 1`,
		strings.TrimSpace(name)).
		Scan(&r.ID, &r.BrandName, &r.CompanyName, &r.Industry, &r.Colors, &r.Typography, &r.Logo, &r.Tone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrGuidelineNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying guideline %q: %w", name, err)
	}
	g, err := r.Decode()
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Row is one brand_guidelines row with raw jsonb sections.
type Row struct {
	ID          string
	BrandName   string
	CompanyName string
	Industry    string
	Colors      []byte
	Typography  []byte
	Logo        []byte
	Tone        []byte
}

// Decode converts the row into a guideline. NULL or empty sections stay nil.
func (r Row) Decode() (domain.BrandGuideline, error) {
	g := domain.BrandGuideline{
		ID:          r.ID,
		BrandName:   r.BrandName,
		CompanyName: r.CompanyName,
		Industry:    r.Industry,
	}
	if g.ID == "" {
		g.ID = Slug(g.BrandName)
	}

	var err error
	if g.Colors, err = domain.DecodeSection[domain.ColorGuide](r.Colors); err != nil {
		return g, fmt.Errorf("guideline %s colors: %w", g.ID, err)
	}
	if g.Typography, err = domain.DecodeSection[domain.TypographyGuide](r.Typography); err != nil {
		return g, fmt.Errorf("guideline %s typography: %w", g.ID, err)
	}
	if g.Logo, err = domain.DecodeSection[domain.LogoGuide](r.Logo); err != nil {
		return g, fmt.Errorf("guideline %s logo: %w", g.ID, err)
	}
	if g.Tone, err = domain.DecodeSection[domain.ToneGuide](r.Tone); err != nil {
		return g, fmt.Errorf("guideline %s tone: %w", g.ID, err)
	}
	g.Normalize()
	return g, g.Validate()
}
