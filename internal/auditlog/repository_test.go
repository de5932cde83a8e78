package auditlog

import (
	"path/filepath"
	"testing"
	"time"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skm.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Command:    "skm ssh-key add",
		Provider:   "digitalocean",
		KeyID:      "512190",
		Outcome:    OutcomeSuccess,
		DurationMs: 12,
	}

	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &AuditEntry{
			Command:   "skm ssh-key add",
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListByCommand(t *testing.T) {
	r := tempRepo(t)

	entries := []*AuditEntry{
		{Command: "skm ssh-key add", Outcome: OutcomeSuccess},
		{Command: "skm ssh-key delete", Outcome: OutcomeSuccess},
		{Command: "skm ssh-key add", Outcome: OutcomeError},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	addEntries, err := r.ListByCommand("skm ssh-key add", 10)
	if err != nil {
		t.Fatalf("ListByCommand failed: %v", err)
	}
	if len(addEntries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(addEntries))
	}
	for _, entry := range addEntries {
		if entry.Command != "skm ssh-key add" {
			t.Errorf("expected command 'skm ssh-key add', got %q", entry.Command)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	oldEntry := &AuditEntry{
		Command:   "skm ssh-key delete",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recentEntry := &AuditEntry{
		Command:   "skm ssh-key delete",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-1 * time.Hour),
	}

	if err := r.Save(oldEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(recentEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}

func TestRoundTrip_KeyFields(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Command:     "skm ssh-key delete",
		Args:        "--yes 3b:16:bf:e4:8b:00:8b:b8:59:8c:a9:d3:f0:19:45:fa",
		Provider:    "digitalocean",
		Fingerprint: "3b:16:bf:e4:8b:00:8b:b8:59:8c:a9:d3:f0:19:45:fa",
		Outcome:     OutcomeSuccess,
	}
	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := r.List(1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Fingerprint != entry.Fingerprint {
		t.Errorf("expected fingerprint %q, got %q", entry.Fingerprint, got[0].Fingerprint)
	}
	if got[0].Provider != "digitalocean" {
		t.Errorf("expected provider 'digitalocean', got %q", got[0].Provider)
	}
}
