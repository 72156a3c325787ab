package auditlog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"nathanbeddoewebdev/hirectl/internal/database"
)

// Filter narrows List, Prune and CountOlder. Zero fields match
// everything.
type Filter struct {
	Command      string
	UserID       string
	ResourceType string
	ResourceID   string
	Outcome      string
	// Limit caps List results. It is ignored by Prune and CountOlder.
	Limit int
}

func (f Filter) where(extra ...string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(col, val string) {
		if val != "" {
			conds = append(conds, col+" = ?")
			args = append(args, val)
		}
	}
	add("command", f.Command)
	add("user_id", f.UserID)
	add("resource_type", f.ResourceType)
	add("resource_id", f.ResourceID)
	add("outcome", f.Outcome)
	conds = append(conds, extra...)
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Repository defines the persistence interface for audit entries.
type Repository interface {
	Save(entry *AuditEntry) error
	List(f Filter) ([]AuditEntry, error)
	CountOlder(olderThan time.Duration, f Filter) (int64, error)
	Prune(olderThan time.Duration, f Filter) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by the shared hirectl
// SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the audit repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
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
        CREATE TABLE IF NOT EXISTS audit_log (
            id            INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp     TEXT    NOT NULL,
            command       TEXT    NOT NULL,
            args          TEXT    NOT NULL DEFAULT '',
            user_id       TEXT    NOT NULL DEFAULT '',
            user_role     TEXT    NOT NULL DEFAULT '',
            resource_type TEXT    NOT NULL DEFAULT '',
            resource_id   TEXT    NOT NULL DEFAULT '',
            resource_name TEXT    NOT NULL DEFAULT '',
            outcome       TEXT    NOT NULL DEFAULT '',
            detail        TEXT    NOT NULL DEFAULT '',
            duration_ms   INTEGER NOT NULL DEFAULT 0
        );
        CREATE INDEX IF NOT EXISTS idx_audit_log_timestamp ON audit_log(timestamp);
        CREATE INDEX IF NOT EXISTS idx_audit_log_user ON audit_log(user_id, timestamp);
        CREATE INDEX IF NOT EXISTS idx_audit_log_resource ON audit_log(resource_type, resource_id);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("auditlog: migration failed: %w", err)
	}
	return nil
}

// Save inserts a new audit entry.
func (r *SQLiteRepository) Save(entry *AuditEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.Exec(`
        INSERT INTO audit_log (timestamp, command, args, user_id, user_role, resource_type, resource_id, resource_name, outcome, detail, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.UTC().Format(time.RFC3339Nano), entry.Command, entry.Args, entry.UserID, entry.Role,
		entry.ResourceType, entry.ResourceID, entry.ResourceName, entry.Outcome, entry.Detail, entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("auditlog: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("auditlog: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent entries matching f, newest first.
func (r *SQLiteRepository) List(f Filter) ([]AuditEntry, error) {
	where, args := f.where()
	query := `
        SELECT id, timestamp, command, args, user_id, user_role, resource_type, resource_id, resource_name,
               outcome, detail, duration_ms
        FROM audit_log` + where + ` ORDER BY timestamp DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("auditlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// CountOlder reports how many entries matching f Prune would remove.
func (r *SQLiteRepository) CountOlder(olderThan time.Duration, f Filter) (int64, error) {
	where, args := f.where("timestamp < ?")
	args = append(args, cutoff(olderThan))

	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM audit_log`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("auditlog: count failed: %w", err)
	}
	return n, nil
}

// Prune deletes entries matching f that are older than olderThan.
func (r *SQLiteRepository) Prune(olderThan time.Duration, f Filter) (int64, error) {
	where, args := f.where("timestamp < ?")
	args = append(args, cutoff(olderThan))

	result, err := r.db.Exec(`DELETE FROM audit_log`+where, args...)
	if err != nil {
		return 0, fmt.Errorf("auditlog: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func cutoff(olderThan time.Duration) string {
	return time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)
}

func scanRows(rows *sql.Rows) ([]AuditEntry, error) {
	var entries []AuditEntry
	for rows.Next() {
		var (
			entry AuditEntry
			ts    string
		)
		err := rows.Scan(
			&entry.ID, &ts, &entry.Command, &entry.Args, &entry.UserID, &entry.Role,
			&entry.ResourceType, &entry.ResourceID, &entry.ResourceName,
			&entry.Outcome, &entry.Detail, &entry.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("auditlog: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
