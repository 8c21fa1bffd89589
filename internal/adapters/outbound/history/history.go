// Package history keeps audit records in a JSON file inside the project, for
// teams that want audit history under version control.
package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

const historyFile = ".brandaudit/history/audits.json"

// FileHistory implements domain.AuditStore using JSON file storage.
type FileHistory struct {
	path string
	mu   sync.Mutex
}

// New returns a FileHistory rooted at projectPath.
func New(projectPath string) *FileHistory {
	return &FileHistory{path: filepath.Join(projectPath, historyFile)}
}

func (h *FileHistory) Path() string { return h.path }

// Save appends rec, replacing an existing record with the same ID.
func (h *FileHistory) Save(_ context.Context, rec domain.AuditRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].ID == rec.ID {
			entries[i] = rec
			replaced = true
		}
	}
	if !replaced {
		entries = append(entries, rec)
	}
	return h.write(entries)
}

func (h *FileHistory) Get(_ context.Context, id string) (*domain.AuditRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrAuditNotFound
}

// ListByDomain returns the records for registrable, newest first.
func (h *FileHistory) ListByDomain(_ context.Context, registrable string, limit int) ([]domain.AuditRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return nil, err
	}

	var out []domain.AuditRecord
	for _, e := range entries {
		if e.Registrable == registrable {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Reset removes the history file.
func (h *FileHistory) Reset(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (h *FileHistory) load() ([]domain.AuditRecord, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.AuditRecord
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *FileHistory) write(entries []domain.AuditRecord) error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(h.path, data, 0644)
}
