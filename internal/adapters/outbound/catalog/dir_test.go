package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/catalog"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../../../testdata/guidelines"

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDirCatalog_Fixtures(t *testing.T) {
	c := catalog.NewDirCatalog(fixtureDir)

	all, err := c.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)

	byID := make(map[string]domain.BrandGuideline)
	for _, g := range all {
		byID[g.ID] = g
	}
	gh, ok := byID["git-hub"]
	require.True(t, ok, "github guideline should get a derived id")
	require.NotNil(t, gh.Colors)
	assert.Equal(t, "#0969da", gh.Colors.Primary["blue"].Hex)
	assert.Equal(t, "#ffffff", gh.Colors.Neutral["white"].Hex)
	require.NotNil(t, gh.Typography)
	assert.Contains(t, gh.Typography.Fonts.Primary, "Mona Sans")

	stripe, ok := byID["stripe"]
	require.True(t, ok)
	require.NotNil(t, stripe.Tone, "serialized tone section should decode")
	assert.Contains(t, stripe.Tone.Forbidden, "cheap")
}

func TestDirCatalog_SkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "acme.yaml", "brand_name: Acme\ncompany_name: Acme Corp\n")
	writeFile(t, dir, "README.md", "# guidelines")
	writeFile(t, dir, ".hidden.yaml", "not: [valid")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts.yaml"), 0755))

	all, err := catalog.NewDirCatalog(dir).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "acme", all[0].ID)
}

func TestDirCatalog_FindByBrandName(t *testing.T) {
	c := catalog.NewDirCatalog(fixtureDir)

	g, err := c.FindByBrandName(context.Background(), "github")
	require.NoError(t, err)
	assert.Equal(t, "GitHub", g.BrandName)

	_, err = c.FindByBrandName(context.Background(), "Initech")
	assert.ErrorIs(t, err, domain.ErrGuidelineNotFound)
}

func TestDirCatalog_MissingDir(t *testing.T) {
	_, err := catalog.NewDirCatalog(filepath.Join(t.TempDir(), "nope")).ListAll(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog dir")
}

func TestDirCatalog_InvalidGuideline(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "brand_name: Acme\n")

	_, err := catalog.NewDirCatalog(dir).ListAll(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid broken.yaml")
}

func TestDirCatalog_DuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "brand_name: Acme\ncompany_name: Acme Corp\n")
	writeFile(t, dir, "b.json", `{"brandName": "acme", "companyName": "Acme Two"}`)

	_, err := catalog.NewDirCatalog(dir).ListAll(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "defined in both")
}

func TestDirCatalog_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.NewDirCatalog(fixtureDir).ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
