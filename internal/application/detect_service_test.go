package application_test

import (
	"context"
	"testing"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/application"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectService_DetectBrand(t *testing.T) {
	svc := application.NewDetectService(testCatalog(), nil)

	res, err := svc.DetectBrand(context.Background(), "https://www.github.com", "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "git-hub", res.Brand.ID)
	assert.Equal(t, "software", res.Brand.Industry)
	assert.GreaterOrEqual(t, res.Confidence, 0.9)
}

func TestDetectService_MissingURLSkipsCatalog(t *testing.T) {
	cat := testCatalog()
	svc := application.NewDetectService(cat, nil)

	res, err := svc.DetectBrand(context.Background(), "", "GitHub")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrMissingURL.Error(), res.Error)
	assert.Zero(t, cat.listCalls)
}

func TestDetectService_CatalogErrorPropagates(t *testing.T) {
	svc := application.NewDetectService(&fakeCatalog{err: errBoom}, nil)

	_, err := svc.DetectBrand(context.Background(), "https://github.com", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "listing guidelines")
}

func TestDetectService_Suggest(t *testing.T) {
	svc := application.NewDetectService(testCatalog(), nil)

	got, err := svc.Suggest(context.Background(), "strip")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "stripe", got[0].ID)
	assert.Equal(t, "payments", got[0].Industry)
}

func TestDetectService_SuggestEmptyQuery(t *testing.T) {
	svc := application.NewDetectService(testCatalog(), nil)

	_, err := svc.Suggest(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestDetectService_Guidelines(t *testing.T) {
	svc := application.NewDetectService(testCatalog(), nil)

	got, err := svc.Guidelines(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "GitHub", got[0].BrandName)
}

func TestDetectService_Guideline(t *testing.T) {
	svc := application.NewDetectService(testCatalog(), nil)

	g, err := svc.Guideline(context.Background(), "github")
	require.NoError(t, err)
	assert.Equal(t, "GitHub", g.BrandName)

	_, err = svc.Guideline(context.Background(), "Nope")
	assert.ErrorIs(t, err, domain.ErrGuidelineNotFound)

	_, err = svc.Guideline(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}
