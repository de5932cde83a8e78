// Package auditlog persists a local history of key management operations
// to a SQLite database, so destructive actions against a provider can be
// reviewed after the fact.
package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// AuditEntry represents a persisted audit event.
type AuditEntry struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Command     string    `json:"command"`
	Args        string    `json:"args,omitempty"`
	Provider    string    `json:"provider,omitempty"`
	KeyID       string    `json:"key_id,omitempty"`
	KeyName     string    `json:"key_name,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Outcome     string    `json:"outcome"`
	Detail      string    `json:"detail,omitempty"`
	DurationMs  int64     `json:"duration_ms"`
}
