package auditlog

import (
	"context"
	"strings"
	"time"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// AuditEntry represents a persisted audit event.
type AuditEntry struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Command      string    `json:"command"`
	Args         string    `json:"args,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	Role         string    `json:"role,omitempty"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	ResourceName string    `json:"resource_name,omitempty"`
	Outcome      string    `json:"outcome"`
	Detail       string    `json:"detail,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
}

// NewEntry builds an entry for a finished command. Args are sanitized
// and metadata is read from ctx.
func NewEntry(ctx context.Context, command string, args []string, start time.Time, err error) *AuditEntry {
	meta := MetadataFromContext(ctx)
	entry := &AuditEntry{
		Timestamp:    start.UTC(),
		Command:      command,
		Args:         strings.Join(SanitizeArgs(args), " "),
		UserID:       meta.UserID,
		Role:         meta.Role,
		ResourceType: meta.ResourceType,
		ResourceID:   meta.ResourceID,
		ResourceName: meta.ResourceName,
		DurationMs:   time.Since(start).Milliseconds(),
		Outcome:      OutcomeSuccess,
	}
	if err != nil {
		entry.Outcome = OutcomeError
		entry.Detail = err.Error()
	}
	return entry
}

// Record writes an entry on a best-effort basis. Failing to open the
// database or save the entry is reported through the returned error but
// never affects the command outcome.
func Record(entry *AuditEntry) error {
	repo, err := Open()
	if err != nil {
		return err
	}
	defer repo.Close()
	return repo.Save(entry)
}
