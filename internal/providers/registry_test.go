package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"skm/internal/domain"
	"skm/internal/services/auth"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) GetDisplayName() string { return s.name }

func (s *stubProvider) CreateSSHKey(_ context.Context, name, publicKey string) (*domain.SSHKeySpec, error) {
	return &domain.SSHKeySpec{ID: "1", Name: name}, nil
}

func (s *stubProvider) DeleteSSHKeyByID(_ context.Context, id string) error          { return nil }
func (s *stubProvider) DeleteSSHKeyByFingerprint(_ context.Context, fp string) error { return nil }
func (s *stubProvider) ListSSHKeys(_ context.Context) ([]domain.SSHKeySpec, error)   { return nil, nil }

func resetRegistry(t *testing.T) {
	t.Helper()
	Reset()
	t.Cleanup(Reset)
}

func TestRegisterAndGet(t *testing.T) {
	resetRegistry(t)

	stub := &stubProvider{name: "Stub"}
	Register("Stub", func(store auth.Store) (domain.Provider, error) {
		return stub, nil
	})

	// Lookup is case-insensitive.
	provider, err := Get("  STUB ", auth.NewMockStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.GetDisplayName() != "Stub" {
		t.Errorf("expected the registered provider, got %q", provider.GetDisplayName())
	}
}

func TestGet_Unknown(t *testing.T) {
	resetRegistry(t)

	_, err := Get("nope", auth.NewMockStore())
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown provider") {
		t.Errorf("expected 'unknown provider' error, got %v", err)
	}
}

func TestList_Sorted(t *testing.T) {
	resetRegistry(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		Register(name, func(store auth.Store) (domain.Provider, error) {
			return &stubProvider{name: name}, nil
		})
	}

	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, List()); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	resetRegistry(t)

	factory := func(store auth.Store) (domain.Provider, error) {
		return &stubProvider{}, nil
	}
	Register("dup", factory)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup", factory)
}

func TestRegisterDigitalOcean_MissingToken(t *testing.T) {
	resetRegistry(t)
	RegisterDigitalOcean()

	_, err := Get("digitalocean", auth.NewMockStore())
	if err == nil {
		t.Fatal("expected error when no token is stored")
	}
	if !strings.Contains(err.Error(), "digitalocean auth") {
		t.Errorf("expected auth error, got %v", err)
	}
}

func TestRegisterDigitalOcean_TokenFromStore(t *testing.T) {
	resetRegistry(t)
	RegisterDigitalOcean()

	store := auth.NewMockStore()
	store.SetToken("digitalocean", "tok")

	provider, err := Get("digitalocean", store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.GetDisplayName() != "DigitalOcean" {
		t.Errorf("expected DigitalOcean provider, got %q", provider.GetDisplayName())
	}
}
