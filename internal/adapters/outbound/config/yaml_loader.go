package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// FileName is the project config file looked up in the project directory.
const FileName = ".brandaudit.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .brandaudit.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .brandaudit.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before merging, so typos in the raw input are reported.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return mergeDefaults(domain.DefaultConfig(), cfg), nil
}

// mergeDefaults fills fields the file left unset. Explicit values win.
func mergeDefaults(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := override
	if result.CatalogDir == "" {
		result.CatalogDir = base.CatalogDir
	}
	if result.Concurrency == 0 {
		result.Concurrency = base.Concurrency
	}
	if result.LogLevel == "" {
		result.LogLevel = base.LogLevel
	}
	return result
}

// Resolve returns p joined to projectPath unless p is already absolute.
func Resolve(projectPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectPath, p)
}
