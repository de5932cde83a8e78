// Package namegen produces names for uploaded SSH keys when the caller
// does not supply one.
package namegen

import (
	"strings"

	"github.com/google/uuid"
)

// Func returns a fresh key name on every call. Implementations must
// return a non-empty string; two consecutive calls are expected to
// differ. Tests can substitute a deterministic Func.
type Func func() string

// Default returns the production generator: a short token derived from
// a random UUID.
func Default() Func {
	return func() string {
		token := strings.ReplaceAll(uuid.NewString(), "-", "")
		return "skm-" + token[:12]
	}
}
