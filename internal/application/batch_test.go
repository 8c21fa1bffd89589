package application_test

import (
	"context"
	"testing"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/application"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchRunner_KeepsOrderAndRecordsFailures(t *testing.T) {
	store := &memStore{}
	audits := newAuditService(testCatalog(), application.WithStore(store))
	runner := application.NewBatchRunner(audits, application.WithConcurrency(2))

	reqs := []application.AuditRequest{
		{Observation: testObservation("https://github.com")},
		{Observation: testObservation("https://example.org")},
		{BrandName: "Stripe", Observation: testObservation("https://stripe.com")},
		{URL: "https://github.com"},
	}
	items, err := runner.Run(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, items, 4)

	require.NoError(t, items[0].Err)
	assert.Equal(t, "GitHub", items[0].Record.BrandName)
	assert.ErrorIs(t, items[1].Err, domain.ErrBrandNotDetected)
	assert.Nil(t, items[1].Record)
	require.NoError(t, items[2].Err)
	assert.Equal(t, "Stripe", items[2].Record.BrandName)
	assert.ErrorIs(t, items[3].Err, domain.ErrMissingObservation)

	assert.Len(t, store.records, 2)
}

func TestBatchRunner_CancelledContext(t *testing.T) {
	runner := application.NewBatchRunner(newAuditService(testCatalog()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := runner.Run(ctx, []application.AuditRequest{
		{Observation: testObservation("https://github.com")},
	})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, items, 1)
	assert.Error(t, items[0].Err)
}
