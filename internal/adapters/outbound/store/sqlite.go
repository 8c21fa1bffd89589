// Package store persists audit records in a single SQLite database file.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// FileName is the database file created inside the store directory.
const FileName = "audits.db"

// SQLiteStore implements domain.AuditStore. Reports are kept as JSON next to
// the columns used for lookups.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// Options configures SQLiteStore behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file when missing.
	CreateIfNotExists bool

	// EnableWAL switches the database to write-ahead logging.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// DefaultDir is the store directory used when none is configured.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, "brandaudit")
}

// Open opens or creates the audit database in dir. An empty dir means
// DefaultDir.
func Open(dir string, opts Options) (*SQLiteStore, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	dbPath := filepath.Join(dir, FileName)

	dsn := dbPath + "?mode=rwc"
	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("audit database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("checking database path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	} else if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLiteStore{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enabling WAL mode: %w", err)
		}
	}

	if err := s.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.dbPath }

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createTables(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS audits (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		registrable TEXT NOT NULL,
		brand_id TEXT NOT NULL,
		brand_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		violations INTEGER NOT NULL,
		catalog_revision TEXT,
		created_at INTEGER NOT NULL,
		detection_json TEXT,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_audits_registrable ON audits(registrable);
	CREATE INDEX IF NOT EXISTS idx_audits_created ON audits(created_at);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Save inserts rec, replacing any record with the same ID.
func (s *SQLiteStore) Save(ctx context.Context, rec domain.AuditRecord) error {
	reportJSON, err := json.Marshal(rec.Report)
	if err != nil {
		return fmt.Errorf("serializing report: %w", err)
	}
	var detectionJSON sql.NullString
	if rec.Detection != nil {
		data, err := json.Marshal(rec.Detection)
		if err != nil {
			return fmt.Errorf("serializing detection: %w", err)
		}
		detectionJSON = sql.NullString{String: string(data), Valid: true}
	}

	query := `
	INSERT OR REPLACE INTO audits
		(id, url, registrable, brand_id, brand_name, score, violations, catalog_revision, created_at, detection_json, report_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		rec.ID, rec.URL, rec.Registrable, rec.BrandID, rec.BrandName,
		rec.Report.Score, len(rec.Report.Violations), rec.CatalogRevision,
		rec.CreatedAt.UTC().UnixNano(), detectionJSON, string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting audit %s: %w", rec.ID, err)
	}
	return nil
}

const selectColumns = `id, url, registrable, brand_id, brand_name, catalog_revision, created_at, detection_json, report_json`

// Get returns the audit with the given ID, or domain.ErrAuditNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*domain.AuditRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM audits WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAuditNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListByDomain returns audits for a registrable domain, newest first. A
// non-positive limit returns every record.
func (s *SQLiteStore) ListByDomain(ctx context.Context, registrable string, limit int) ([]domain.AuditRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM audits WHERE registrable = ? ORDER BY created_at DESC, id`
	args := []any{registrable}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying audits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.AuditRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// Reset deletes every stored audit.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM audits`); err != nil {
		return fmt.Errorf("resetting audits: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.AuditRecord, error) {
	var (
		rec           domain.AuditRecord
		revision      sql.NullString
		createdAt     int64
		detectionJSON sql.NullString
		reportJSON    string
	)
	if err := row.Scan(&rec.ID, &rec.URL, &rec.Registrable, &rec.BrandID, &rec.BrandName,
		&revision, &createdAt, &detectionJSON, &reportJSON); err != nil {
		return nil, err
	}
	rec.CatalogRevision = revision.String
	rec.CreatedAt = time.Unix(0, createdAt).UTC()

	if err := json.Unmarshal([]byte(reportJSON), &rec.Report); err != nil {
		return nil, fmt.Errorf("decoding report of audit %s: %w", rec.ID, err)
	}
	if detectionJSON.Valid && detectionJSON.String != "" {
		var d domain.DetectionResult
		if err := json.Unmarshal([]byte(detectionJSON.String), &d); err != nil {
			return nil, fmt.Errorf("decoding detection of audit %s: %w", rec.ID, err)
		}
		rec.Detection = &d
	}
	return &rec, nil
}
