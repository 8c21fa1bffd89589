package application

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// BatchItem is the outcome of one audit in a batch. Exactly one of Record
// and Err is set.
type BatchItem struct {
	Request AuditRequest
	Record  *domain.AuditRecord
	Err     error
}

// BatchRunner runs independent audits concurrently.
type BatchRunner struct {
	audits      *AuditService
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchRunner.
type BatchOption func(*BatchRunner)

// WithConcurrency sets the maximum number of audits in flight.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchRunner) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchRunner) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func NewBatchRunner(audits *AuditService, opts ...BatchOption) *BatchRunner {
	b := &BatchRunner{
		audits:      audits,
		concurrency: domain.DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run audits every request. Results keep request order. A failed audit is
// recorded on its item and does not stop the others; the returned error is
// only set when ctx is cancelled.
func (b *BatchRunner) Run(ctx context.Context, reqs []AuditRequest) ([]BatchItem, error) {
	b.logger.Info("starting audit batch", "total", len(reqs), "concurrency", b.concurrency)
	start := time.Now()

	items := make([]BatchItem, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				items[i] = BatchItem{Request: req, Err: err}
				return err
			}
			rec, err := b.audits.Audit(ctx, req)
			items[i] = BatchItem{Request: req, Record: rec, Err: err}
			if err != nil {
				b.logger.Warn("audit failed", "url", req.URL, "error", err)
				return nil
			}
			b.logger.Debug("audit completed", "url", rec.URL, "brand", rec.BrandName, "score", rec.Report.Score)
			return nil
		})
	}

	err := g.Wait()
	b.logger.Info("audit batch complete", "total", len(reqs), "elapsed", time.Since(start))
	return items, err
}
