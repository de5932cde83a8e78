package auth

import "errors"

// ChainStore consults stores in order. Reads return the first token
// found; writes go to the first store that accepts them.
type ChainStore struct {
	stores []Store
}

func NewChainStore(stores ...Store) *ChainStore {
	return &ChainStore{stores: stores}
}

func (c *ChainStore) GetToken(provider string) (string, error) {
	for _, store := range c.stores {
		token, err := store.GetToken(provider)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, ErrTokenNotFound) {
			return "", err
		}
	}
	return "", ErrTokenNotFound
}

func (c *ChainStore) SetToken(provider string, token string) error {
	var lastErr error = ErrTokenNotFound
	for _, store := range c.stores {
		err := store.SetToken(provider, token)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (c *ChainStore) DeleteToken(provider string) error {
	deleted := false
	for _, store := range c.stores {
		err := store.DeleteToken(provider)
		if err == nil {
			deleted = true
			continue
		}
		if !errors.Is(err, ErrTokenNotFound) {
			return err
		}
	}
	if !deleted {
		return ErrTokenNotFound
	}
	return nil
}
