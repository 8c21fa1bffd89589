package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/catalog"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/config"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/gitinfo"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/history"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/store"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/application"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/compliance"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/matching"
)

// app holds the wired services for one command invocation.
type app struct {
	projectPath string
	cfg         domain.ProjectConfig
	logger      *slog.Logger
	hosts       *matching.HostnameTable
	detect      *application.DetectService
	audits      *application.AuditService
	closers     []func() error
}

type appOptions struct {
	store  bool
	stderr io.Writer
}

// openApp loads the project config and wires catalog, matcher, store and
// services.
func openApp(ctx context.Context, flags *globalFlags, opts appOptions) (*app, error) {
	// 1. Load config
	absPath, err := filepath.Abs(flags.projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.New().Load(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a := &app{projectPath: absPath, cfg: cfg}
	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	a.logger = newLogger(opts.stderr, level)

	// 2. Guideline catalog
	var (
		cat        domain.GuidelineCatalog
		catalogDir string
	)
	switch {
	case flags.catalogDir != "":
		dir, _ := filepath.Abs(flags.catalogDir)
		dc := catalog.NewDirCatalog(dir)
		catalogDir, cat = dc.Dir(), dc
	case cfg.DatabaseURL != "":
		pg, err := catalog.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error { pg.Close(); return nil })
		cat = pg
	default:
		dc := catalog.NewDirCatalog(config.Resolve(absPath, cfg.CatalogDir))
		catalogDir, cat = dc.Dir(), dc
	}

	// 3. Matcher with project domain mappings
	a.hosts = matching.NewHostnameTable(cfg.DomainMappings)
	matcher := matching.NewMatcher(a.hosts)

	// 4. Services
	auditOpts := []application.AuditOption{application.WithMatcher(matcher)}
	if gi := gitinfo.New(); catalogDir != "" && gi.IsGitRepo(catalogDir) {
		auditOpts = append(auditOpts, application.WithCatalogRevision(gi, catalogDir))
	}
	if opts.store {
		st, err := a.openStore()
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		auditOpts = append(auditOpts, application.WithStore(st))
	}

	a.detect = application.NewDetectService(cat, matcher)
	a.audits = application.NewAuditService(cat, compliance.NewAnalyzer(), auditOpts...)
	a.logger.Debug("wired services",
		"project", absPath,
		"catalog", catalogDir,
		"database", cfg.DatabaseURL != "",
		"hostnames", a.hosts.Len(),
	)
	return a, nil
}

func (a *app) openStore() (domain.AuditStore, error) {
	if a.cfg.StoreBackend == domain.StoreFile {
		h := history.New(a.projectPath)
		a.logger.Debug("audit store", "backend", domain.StoreFile, "path", h.Path())
		return h, nil
	}

	dir := store.DefaultDir()
	if a.cfg.StoreDir != "" {
		dir = config.Resolve(a.projectPath, a.cfg.StoreDir)
	}
	st, err := store.Open(dir, store.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("opening audit store: %w", err)
	}
	a.closers = append(a.closers, st.Close)
	a.logger.Debug("audit store", "backend", domain.StoreSQLite, "path", st.Path())
	return st, nil
}

func (a *app) batch() *application.BatchRunner {
	return application.NewBatchRunner(a.audits,
		application.WithConcurrency(a.cfg.EffectiveConcurrency()),
		application.WithBatchLogger(a.logger),
	)
}

// Close releases the store and database pool.
func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func newLogger(w io.Writer, level string) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
