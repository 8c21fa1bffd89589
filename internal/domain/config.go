package domain

import (
	"fmt"
	"strings"
)

// Defaults applied when the project config leaves a field unset.
const (
	DefaultCatalogDir  = "guidelines"
	DefaultConcurrency = 4
	DefaultLogLevel    = "info"
)

// Audit store backends.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

// ValidLogLevels enumerates accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ProjectConfig holds configuration loaded from .brandaudit.yaml.
type ProjectConfig struct {
	// CatalogDir is the directory of YAML/JSON guideline files. Relative
	// paths resolve against the project directory.
	CatalogDir string `yaml:"catalog_dir" json:"catalog_dir,omitempty"`
	// DatabaseURL selects the Postgres guideline catalog instead of CatalogDir.
	DatabaseURL string `yaml:"database_url" json:"database_url,omitempty"`
	// StoreDir holds the audit database. Empty means the XDG data directory.
	StoreDir string `yaml:"store_dir" json:"store_dir,omitempty"`
	// StoreBackend is "sqlite" (default) or "file", a JSON history kept in
	// the project directory.
	StoreBackend   string            `yaml:"store_backend"   json:"store_backend,omitempty"`
	DomainMappings map[string]string `yaml:"domain_mappings" json:"domain_mappings,omitempty"`
	MinScore       int               `yaml:"min_score"       json:"min_score,omitempty"`
	Concurrency    int               `yaml:"concurrency"     json:"concurrency,omitempty"`
	LogLevel       string            `yaml:"log_level"       json:"log_level,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		CatalogDir:  DefaultCatalogDir,
		Concurrency: DefaultConcurrency,
		LogLevel:    DefaultLogLevel,
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. min_score is a compliance score
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score = %d (must be between 0 and 100)", c.MinScore)
	}

	// 2. concurrency cannot be negative; zero means default
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be >= 0 (got %d)", c.Concurrency)
	}

	// 3. log_level must be known or empty
	if c.LogLevel != "" && !contains(ValidLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("unknown log_level %q (valid: %s)", c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}

	// 4. domain_mappings need a hostname and a brand name
	for host, brand := range c.DomainMappings {
		if strings.TrimSpace(host) == "" {
			return fmt.Errorf("domain_mappings contains an empty hostname")
		}
		if strings.Contains(host, "/") || strings.Contains(host, ":") {
			return fmt.Errorf("domain_mappings key %q must be a bare hostname", host)
		}
		if strings.TrimSpace(brand) == "" {
			return fmt.Errorf("domain_mappings[%q] must name a brand", host)
		}
	}

	// 5. store_backend must be known or empty
	if c.StoreBackend != "" && c.StoreBackend != StoreSQLite && c.StoreBackend != StoreFile {
		return fmt.Errorf("unknown store_backend %q (valid: %s, %s)", c.StoreBackend, StoreSQLite, StoreFile)
	}

	return nil
}

// EffectiveConcurrency returns Concurrency, or the default when unset.
func (c ProjectConfig) EffectiveConcurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
