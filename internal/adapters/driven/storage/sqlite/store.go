package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/placehold/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/placehold/internal/core/domain"
	"github.com/custodia-labs/placehold/internal/core/ports/driven"
)

// dbFileName is the database file inside the data directory.
const dbFileName = "presets.db"

// Store is a SQLite-backed store for placehold data.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.placehold/data/presets.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".placehold", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// WAL lets the MCP server and a CLI invocation share the file.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// PresetStore returns a PresetStore interface backed by this store.
func (s *Store) PresetStore() driven.PresetStore {
	return &presetStore{store: s}
}

// migrate runs all pending migrations and records each applied version.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_presets.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// schemaVersion returns the highest applied migration version.
func (s *Store) schemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	return version, err
}

// ==================== Preset Store ====================

// presetStore implements driven.PresetStore.
type presetStore struct {
	store *Store
}

var _ driven.PresetStore = (*presetStore)(nil)

const presetColumns = `id, name, service, width, height, color, background_color, text, format, created_at, updated_at`

// Save stores or updates a preset.
func (s *presetStore) Save(ctx context.Context, preset domain.Preset) error {
	spec := preset.Spec
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO presets (`+presetColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			service = excluded.service,
			width = excluded.width,
			height = excluded.height,
			color = excluded.color,
			background_color = excluded.background_color,
			text = excluded.text,
			format = excluded.format,
			updated_at = excluded.updated_at
	`, preset.ID, preset.Name, string(spec.Service), spec.Width, spec.Height,
		spec.Color, spec.BackgroundColor, spec.Text, string(spec.Format),
		preset.CreatedAt, preset.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("saving preset %q: %w", preset.Name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("saving preset: %w", err)
	}
	return nil
}

// Get retrieves a preset by ID.
func (s *presetStore) Get(ctx context.Context, id string) (*domain.Preset, error) {
	row := s.store.db.QueryRowContext(ctx, `SELECT `+presetColumns+` FROM presets WHERE id = ?`, id)
	return scanPreset(row)
}

// GetByName retrieves a preset by name.
func (s *presetStore) GetByName(ctx context.Context, name string) (*domain.Preset, error) {
	row := s.store.db.QueryRowContext(ctx, `SELECT `+presetColumns+` FROM presets WHERE name = ?`, name)
	return scanPreset(row)
}

// Delete removes a preset.
func (s *presetStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM presets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	return nil
}

// List returns all presets ordered by name.
func (s *presetStore) List(ctx context.Context) ([]domain.Preset, error) {
	rows, err := s.store.db.QueryContext(ctx, `SELECT `+presetColumns+` FROM presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying presets: %w", err)
	}
	defer rows.Close()

	presets := []domain.Preset{}
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, *preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating presets: %w", err)
	}
	return presets, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*domain.Preset, error) {
	var preset domain.Preset
	var service, format string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&preset.ID, &preset.Name, &service,
		&preset.Spec.Width, &preset.Spec.Height,
		&preset.Spec.Color, &preset.Spec.BackgroundColor, &preset.Spec.Text, &format,
		&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning preset: %w", err)
	}

	preset.Spec.Service = domain.Service(service)
	preset.Spec.Format = domain.ImageFormat(format)
	if createdAt.Valid {
		preset.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		preset.UpdatedAt = updatedAt.Time
	}
	return &preset, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
