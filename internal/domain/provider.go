package domain

import "context"

// Provider defines SSH key management operations for a cloud provider
// account. Every operation takes the caller's context explicitly;
// providers hold nothing mutable beyond their credential.
type Provider interface {
	GetDisplayName() string
	CreateSSHKey(ctx context.Context, name, publicKey string) (*SSHKeySpec, error)
	DeleteSSHKeyByID(ctx context.Context, id string) error
	DeleteSSHKeyByFingerprint(ctx context.Context, fingerprint string) error
	ListSSHKeys(ctx context.Context) ([]SSHKeySpec, error)
}
