// Package catalog provides domain.GuidelineCatalog implementations backed by
// a directory of guideline files or by Postgres.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// DirCatalog reads one guideline per .yaml, .yml or .json file in a
// directory. Files are re-read on every call.
type DirCatalog struct {
	dir string
}

func NewDirCatalog(dir string) *DirCatalog {
	return &DirCatalog{dir: dir}
}

func (c *DirCatalog) Dir() string { return c.dir }

// ListAll returns every guideline sorted by file name. A guideline without
// an id gets one derived from its brand name.
func (c *DirCatalog) ListAll(ctx context.Context) ([]domain.BrandGuideline, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isGuidelineFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]domain.BrandGuideline, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := LoadFile(filepath.Join(c.dir, name))
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[g.ID]; ok {
			return nil, fmt.Errorf("guideline id %q defined in both %s and %s", g.ID, prev, name)
		}
		seen[g.ID] = name
		out = append(out, g)
	}
	return out, nil
}

// FindByBrandName returns the guideline whose brand name equals name,
// ignoring case.
func (c *DirCatalog) FindByBrandName(ctx context.Context, name string) (*domain.BrandGuideline, error) {
	all, err := c.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return findByBrandName(all, name)
}

// LoadFile parses one guideline file. JSON files may carry sections as
// serialized strings.
func LoadFile(path string) (domain.BrandGuideline, error) {
	var g domain.BrandGuideline
	data, err := os.ReadFile(path)
	if err != nil {
		return g, fmt.Errorf("reading guideline: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &g)
	default:
		err = yaml.Unmarshal(data, &g)
	}
	if err != nil {
		return g, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if g.ID == "" {
		g.ID = Slug(g.BrandName)
	}
	g.Normalize()
	if err := g.Validate(); err != nil {
		return g, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return g, nil
}

func isGuidelineFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return !strings.HasPrefix(name, ".")
	}
	return false
}

func findByBrandName(all []domain.BrandGuideline, name string) (*domain.BrandGuideline, error) {
	name = strings.TrimSpace(name)
	for i := range all {
		if strings.EqualFold(all[i].BrandName, name) {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, domain.ErrGuidelineNotFound)
}
