package providers

import (
	"context"
	"fmt"
	"strconv"

	"skm/internal/domain"
	"skm/internal/services/auth"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// Compile-time check that HetznerProvider satisfies domain.Provider.
var _ domain.Provider = (*HetznerProvider)(nil)

// HetznerProvider implements domain.Provider using the Hetzner Cloud API.
type HetznerProvider struct {
	client *hcloud.Client
}

// NewHetznerProvider creates a HetznerProvider with the given hcloud
// client options. Default options (application name) are applied first;
// callers can override them.
func NewHetznerProvider(opts ...hcloud.ClientOption) *HetznerProvider {
	defaults := []hcloud.ClientOption{
		hcloud.WithApplication("skm", "0.1.0"),
	}
	allOpts := append(defaults, opts...)
	return &HetznerProvider{
		client: hcloud.NewClient(allOpts...),
	}
}

// RegisterHetzner registers the Hetzner provider factory.
func RegisterHetzner() {
	Register("hetzner", func(store auth.Store) (domain.Provider, error) {
		token, err := store.GetToken("hetzner")
		if err != nil {
			return nil, fmt.Errorf("hetzner auth: %w", err)
		}
		return NewHetznerProvider(hcloud.WithToken(token)), nil
	})
}

func (h *HetznerProvider) GetDisplayName() string {
	return "Hetzner"
}

// CreateSSHKey uploads a public key to the Hetzner Cloud project.
func (h *HetznerProvider) CreateSSHKey(ctx context.Context, name, publicKey string) (*domain.SSHKeySpec, error) {
	key, _, err := h.client.SSHKey.Create(ctx, hcloud.SSHKeyCreateOpts{
		Name:      name,
		PublicKey: publicKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH key: %w", err)
	}
	return hetznerToSpec(key), nil
}

// DeleteSSHKeyByID removes a key by its ID. The ID must be a numeric
// string matching the Hetzner SSH key ID.
func (h *HetznerProvider) DeleteSSHKeyByID(ctx context.Context, id string) error {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid SSH key ID %q: %w", id, err)
	}

	if _, err := h.client.SSHKey.Delete(ctx, &hcloud.SSHKey{ID: numericID}); err != nil {
		return fmt.Errorf("failed to delete SSH key: %w", err)
	}
	return nil
}

// DeleteSSHKeyByFingerprint resolves a key by fingerprint, then
// removes it.
func (h *HetznerProvider) DeleteSSHKeyByFingerprint(ctx context.Context, fingerprint string) error {
	key, _, err := h.client.SSHKey.GetByFingerprint(ctx, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to look up SSH key: %w", err)
	}
	if key == nil {
		return fmt.Errorf("ssh key %s: %w", fingerprint, domain.ErrNotFound)
	}

	if _, err := h.client.SSHKey.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete SSH key: %w", err)
	}
	return nil
}

// ListSSHKeys retrieves all SSH keys in the project.
func (h *HetznerProvider) ListSSHKeys(ctx context.Context) ([]domain.SSHKeySpec, error) {
	hzKeys, err := h.client.SSHKey.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list SSH keys: %w", err)
	}

	keys := make([]domain.SSHKeySpec, 0, len(hzKeys))
	for _, k := range hzKeys {
		keys = append(keys, *hetznerToSpec(k))
	}
	return keys, nil
}

func hetznerToSpec(k *hcloud.SSHKey) *domain.SSHKeySpec {
	return &domain.SSHKeySpec{
		ID:          strconv.FormatInt(k.ID, 10),
		Name:        k.Name,
		Fingerprint: k.Fingerprint,
		PublicKey:   k.PublicKey,
	}
}
