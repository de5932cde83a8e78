package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"skm/internal/domain"
	"skm/internal/services/auth"
)

const (
	digitalOceanBaseURL = "https://api.digitalocean.com/v2/"
	digitalOceanTimeout = 30 * time.Second
)

// Compile-time check that DigitalOceanProvider satisfies domain.Provider.
var _ domain.Provider = (*DigitalOceanProvider)(nil)

// DigitalOceanProvider manages account SSH keys through the
// DigitalOcean v2 REST API. The bearer token is read once at
// construction and never changes for the provider's lifetime.
type DigitalOceanProvider struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewDigitalOceanProvider creates a DigitalOceanProvider with the given
// API token.
func NewDigitalOceanProvider(token string) *DigitalOceanProvider {
	return &DigitalOceanProvider{
		token:   token,
		baseURL: digitalOceanBaseURL,
		client:  &http.Client{Timeout: digitalOceanTimeout},
	}
}

// RegisterDigitalOcean registers the DigitalOcean provider factory.
// The token comes from the auth store chain (DIGITALOCEAN_TOKEN or the
// keychain entry stored by 'skm auth login digitalocean').
func RegisterDigitalOcean() {
	Register("digitalocean", func(store auth.Store) (domain.Provider, error) {
		token, err := store.GetToken("digitalocean")
		if err != nil {
			return nil, fmt.Errorf("digitalocean auth: %w", err)
		}
		return NewDigitalOceanProvider(token), nil
	})
}

// GetDisplayName returns the human-readable provider name.
func (p *DigitalOceanProvider) GetDisplayName() string {
	return "DigitalOcean"
}

// --- API request/response types ---

type doCreateKeyRequest struct {
	Name      string `json:"name"`
	PublicKey string `json:"public_key"`
}

// doSSHKey maps to the API's ssh_key object. IDs are numeric on the
// wire; the rest of the program deals in strings.
type doSSHKey struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
	PublicKey   string `json:"public_key"`
}

type doKeyEnvelope struct {
	SSHKey doSSHKey `json:"ssh_key"`
}

type doKeyListEnvelope struct {
	SSHKeys []doSSHKey `json:"ssh_keys"`
}

// --- HTTP helpers ---

// buildURL joins a path fragment onto the API base. All leading
// slashes on the fragment are stripped; a trailing slash is preserved
// exactly as given.
func (p *DigitalOceanProvider) buildURL(fragment string) string {
	return p.baseURL + strings.TrimLeft(fragment, "/")
}

// commonHeaders returns the headers sent on every request.
func (p *DigitalOceanProvider) commonHeaders() map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + p.token,
	}
}

func (p *DigitalOceanProvider) newRequest(ctx context.Context, method, fragment string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.buildURL(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("digitalocean: failed to build request: %w", err)
	}
	for name, value := range p.commonHeaders() {
		req.Header.Set(name, value)
	}
	return req, nil
}

// --- Operations ---

// CreateSSHKey uploads a public key to the account. Any response
// outside the 2xx range is a non-recoverable server error.
func (p *DigitalOceanProvider) CreateSSHKey(ctx context.Context, name, publicKey string) (*domain.SSHKeySpec, error) {
	payload, err := json.Marshal(doCreateKeyRequest{Name: name, PublicKey: publicKey})
	if err != nil {
		return nil, fmt.Errorf("digitalocean: failed to encode request: %w", err)
	}

	req, err := p.newRequest(ctx, http.MethodPost, "account/keys", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("digitalocean: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.OperationError{
			Message:    fmt.Sprintf("Error on server for %d response to create key %q.", resp.StatusCode, name),
			StatusCode: resp.StatusCode,
		}
	}

	var envelope doKeyEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("digitalocean: failed to decode response: %w", err)
	}

	return toSpec(envelope.SSHKey), nil
}

// DeleteSSHKeyByID removes a key by its numeric ID.
func (p *DigitalOceanProvider) DeleteSSHKeyByID(ctx context.Context, id string) error {
	return p.deleteKey(ctx, id)
}

// DeleteSSHKeyByFingerprint removes a key by its fingerprint.
func (p *DigitalOceanProvider) DeleteSSHKeyByFingerprint(ctx context.Context, fingerprint string) error {
	return p.deleteKey(ctx, fingerprint)
}

// deleteKey removes a key addressed by numeric ID or fingerprint.
// The API signals success with 204 and nothing else; a 200 here is
// just as much a failure as a 500.
func (p *DigitalOceanProvider) deleteKey(ctx context.Context, ref string) error {
	req, err := p.newRequest(ctx, http.MethodDelete, "account/keys/"+ref, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("digitalocean: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return &domain.OperationError{
			Message: fmt.Sprintf("Error on server deleting key '%s'. Expected status code = '204', got '%d'.",
				ref, resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}
	return nil
}

// ListSSHKeys retrieves all SSH keys on the account.
func (p *DigitalOceanProvider) ListSSHKeys(ctx context.Context) ([]domain.SSHKeySpec, error) {
	req, err := p.newRequest(ctx, http.MethodGet, "account/keys", nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("digitalocean: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("digitalocean: %w", domain.ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.OperationError{
			Message:    fmt.Sprintf("Error on server for %d response to list keys.", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	var envelope doKeyListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("digitalocean: failed to decode response: %w", err)
	}

	keys := make([]domain.SSHKeySpec, 0, len(envelope.SSHKeys))
	for _, k := range envelope.SSHKeys {
		keys = append(keys, *toSpec(k))
	}
	return keys, nil
}

func toSpec(k doSSHKey) *domain.SSHKeySpec {
	return &domain.SSHKeySpec{
		ID:          strconv.FormatInt(k.ID, 10),
		Name:        k.Name,
		Fingerprint: k.Fingerprint,
		PublicKey:   k.PublicKey,
	}
}
