// Package themeprefs stores the last-used theme selection per user.
//
// Rows live in the theme_prefs table of the shared hirectl database.
package themeprefs

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nathanbeddoewebdev/hirectl/internal/database"
)

// Repository defines the persistence interface for theme preferences.
type Repository interface {
	// Get returns preferences for a user, or nil if none are stored.
	Get(userID string) (*ThemePrefs, error)

	// Save upserts preferences for a user.
	Save(prefs *ThemePrefs) error

	// Delete removes preferences for a user.
	Delete(userID string) error

	// Close releases database resources.
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("themeprefs: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("themeprefs: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS theme_prefs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id      TEXT NOT NULL UNIQUE,
			variant      TEXT NOT NULL DEFAULT '',
			mode         TEXT NOT NULL DEFAULT '',
			color_scheme TEXT NOT NULL DEFAULT '',
			updated_at   TEXT NOT NULL
		);
	`
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("themeprefs: migration failed: %w", err)
	}
	return nil
}

// Get returns preferences for a user, or nil if none are stored.
func (r *SQLiteRepository) Get(userID string) (*ThemePrefs, error) {
	row := r.db.QueryRow(`
		SELECT id, user_id, variant, mode, color_scheme, updated_at
		FROM theme_prefs WHERE user_id = ?`, userID)

	var p ThemePrefs
	var updated string
	err := row.Scan(&p.ID, &p.UserID, &p.Variant, &p.Mode, &p.ColorScheme, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("themeprefs: query failed: %w", err)
	}
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return &p, nil
}

// Save upserts preferences for a user.
func (r *SQLiteRepository) Save(p *ThemePrefs) error {
	p.UpdatedAt = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO theme_prefs (user_id, variant, mode, color_scheme, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			variant      = excluded.variant,
			mode         = excluded.mode,
			color_scheme = excluded.color_scheme,
			updated_at   = excluded.updated_at`,
		p.UserID, p.Variant, p.Mode, p.ColorScheme, p.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("themeprefs: upsert failed: %w", err)
	}

	return r.db.QueryRow(`SELECT id FROM theme_prefs WHERE user_id = ?`, p.UserID).Scan(&p.ID)
}

// Delete removes preferences for a user.
func (r *SQLiteRepository) Delete(userID string) error {
	if _, err := r.db.Exec(`DELETE FROM theme_prefs WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("themeprefs: delete failed: %w", err)
	}
	return nil
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
