package domain

import "context"

// GuidelineCatalog is the read-only source of brand guidelines.
type GuidelineCatalog interface {
	ListAll(ctx context.Context) ([]BrandGuideline, error)
	// FindByBrandName matches case-insensitively and returns
	// ErrGuidelineNotFound when no guideline carries the name.
	FindByBrandName(ctx context.Context, name string) (*BrandGuideline, error)
}

// AuditStore persists audit records.
type AuditStore interface {
	Save(ctx context.Context, rec AuditRecord) error
	Get(ctx context.Context, id string) (*AuditRecord, error)
	ListByDomain(ctx context.Context, registrable string, limit int) ([]AuditRecord, error)
}

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// RevisionSource reports the version-control revision of a directory.
type RevisionSource interface {
	CommitHash(path string) (string, error)
}

// ObservationSource loads a website observation from a file.
type ObservationSource interface {
	Load(path string) (*WebsiteObservation, error)
}
