package sshkey

import (
	"strings"
	"testing"

	"skm/internal/domain"
)

func TestDeleteCommand_ByID(t *testing.T) {
	mock := &mockProvider{displayName: "Mock"}
	registerMockProvider(t, "mock", mock)

	stdout, _ := execSubcommand(t, "delete", "mock", "512190", "--yes")

	if mock.deletedID != "512190" {
		t.Errorf("expected DeleteSSHKeyByID called with '512190', got %q", mock.deletedID)
	}
	if mock.deletedFP != "" {
		t.Errorf("expected fingerprint path not taken, got %q", mock.deletedFP)
	}
	if !strings.Contains(stdout, "deleted successfully") {
		t.Errorf("expected success message on stdout, got:\n%s", stdout)
	}
}

func TestDeleteCommand_ByFingerprint(t *testing.T) {
	mock := &mockProvider{displayName: "Mock"}
	registerMockProvider(t, "mock", mock)

	fingerprint := "3b:16:bf:e4:8b:00:8b:b8:59:8c:a9:d3:f0:19:45:fa"
	stdout, _ := execSubcommand(t, "delete", "mock", fingerprint, "--yes")

	if mock.deletedFP != fingerprint {
		t.Errorf("expected DeleteSSHKeyByFingerprint called with %q, got %q", fingerprint, mock.deletedFP)
	}
	if mock.deletedID != "" {
		t.Errorf("expected ID path not taken, got %q", mock.deletedID)
	}
	if !strings.Contains(stdout, "deleted successfully") {
		t.Errorf("expected success message on stdout, got:\n%s", stdout)
	}
}

func TestDeleteCommand_DeleteError(t *testing.T) {
	mock := &mockProvider{
		displayName: "Mock",
		deleteErr: &domain.OperationError{
			Message:    "Error on server deleting key '512190'. Expected status code = '204', got '500'.",
			StatusCode: 500,
		},
	}
	registerMockProvider(t, "mock", mock)

	stdout, stderr := execSubcommand(t, "delete", "mock", "512190", "--yes")

	if !strings.Contains(stderr, "Expected status code = '204'") {
		t.Errorf("expected delete error on stderr, got:\n%s", stderr)
	}
	if strings.Contains(stdout, "deleted successfully") {
		t.Errorf("expected no success message on stdout, got:\n%s", stdout)
	}
}

func TestDeleteCommand_RequiresConfirmationWithoutTerminal(t *testing.T) {
	mock := &mockProvider{displayName: "Mock"}
	registerMockProvider(t, "mock", mock)

	_, stderr := execSubcommand(t, "delete", "mock", "512190")

	if !strings.Contains(stderr, "--yes") {
		t.Errorf("expected hint about --yes on stderr, got:\n%s", stderr)
	}
	if mock.deletedID != "" {
		t.Errorf("expected no delete call, got ID %q", mock.deletedID)
	}
}
