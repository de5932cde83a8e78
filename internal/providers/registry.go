package providers

import (
	"fmt"
	"sort"
	"sync"

	"skm/internal/domain"
	"skm/internal/services/auth"
	"skm/internal/util"
)

// Factory creates a provider implementation from an auth store.
type Factory func(store auth.Store) (domain.Provider, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register registers a provider factory by name.
func Register(name string, factory Factory) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		panic("providers: empty provider name")
	}
	if factory == nil {
		panic("providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[normalizedName]; exists {
		panic(fmt.Sprintf("providers: provider %q already registered", name))
	}

	registry[normalizedName] = factory
}

// Get resolves and constructs a provider by name.
func Get(name string, store auth.Store) (domain.Provider, error) {
	normalizedName := util.NormalizeKey(name)

	mu.RLock()
	factory, ok := registry[normalizedName]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("providers: unknown provider %q", name)
	}

	provider, err := factory(store)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// Reset clears the provider registry. Intended for tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}

// List returns all registered provider names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterAll registers every built-in provider factory.
func RegisterAll() {
	RegisterDigitalOcean()
	RegisterHetzner()
}
