// Package keys implements the key manager: it turns a local public key
// file and an optional name into provider API calls.
package keys

import (
	"context"
	"fmt"
	"os"
	"strings"

	"skm/internal/domain"
	"skm/internal/keyfile"
	"skm/internal/namegen"
)

// Service composes a provider with local file handling and name
// generation.
type Service struct {
	provider domain.Provider
	nameFn   namegen.Func
}

// NewService returns a Service for the given provider. nameFn may be
// nil, in which case the default random generator is used.
func NewService(provider domain.Provider, nameFn namegen.Func) *Service {
	if nameFn == nil {
		nameFn = namegen.Default()
	}
	return &Service{provider: provider, nameFn: nameFn}
}

// KeyName returns the effective name for an upload: the trimmed
// caller-supplied name, or a generated one when trimming leaves
// nothing.
func (s *Service) KeyName(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return s.nameFn()
}

// AddFromFile reads the public key at path and uploads it under the
// effective name. The file is checked before any network traffic; a
// missing file is a non-recoverable error naming the path.
func (s *Service) AddFromFile(ctx context.Context, path, name string) (*domain.SSHKeySpec, error) {
	expanded, err := keyfile.ExpandHomePath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(expanded)
	if err != nil || info.IsDir() {
		return nil, &domain.OperationError{
			Message: fmt.Sprintf("Unknown public key file: '%s'.", path),
		}
	}

	publicKey, err := keyfile.ReadAndValidatePublicKey(expanded)
	if err != nil {
		return nil, err
	}

	return s.provider.CreateSSHKey(ctx, s.KeyName(name), publicKey)
}

// Add validates pasted public key material and uploads it under the
// effective name.
func (s *Service) Add(ctx context.Context, publicKey, name string) (*domain.SSHKeySpec, error) {
	validated, err := keyfile.ValidatePublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	return s.provider.CreateSSHKey(ctx, s.KeyName(name), validated)
}

// DeleteByID removes a key by its numeric provider ID.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	return s.provider.DeleteSSHKeyByID(ctx, id)
}

// DeleteByFingerprint removes a key by its fingerprint.
func (s *Service) DeleteByFingerprint(ctx context.Context, fingerprint string) error {
	return s.provider.DeleteSSHKeyByFingerprint(ctx, fingerprint)
}
