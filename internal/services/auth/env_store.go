package auth

import (
	"fmt"
	"os"
	"strings"
)

// EnvStore resolves tokens from environment variables of the form
// <PROVIDER>_TOKEN, e.g. DIGITALOCEAN_TOKEN or HETZNER_TOKEN. It is
// read-only: writes report an error so a chained store can take over.
type EnvStore struct{}

func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// EnvVarName returns the environment variable consulted for a provider.
func EnvVarName(provider string) string {
	normalized := NormalizeProvider(provider)
	return strings.ToUpper(strings.ReplaceAll(normalized, "-", "_")) + "_TOKEN"
}

func (e *EnvStore) GetToken(provider string) (string, error) {
	token := strings.TrimSpace(os.Getenv(EnvVarName(provider)))
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (e *EnvStore) SetToken(provider string, token string) error {
	return fmt.Errorf("auth: environment store is read-only (export %s instead)", EnvVarName(provider))
}

func (e *EnvStore) DeleteToken(provider string) error {
	return ErrTokenNotFound
}
