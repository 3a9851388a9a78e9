// Generic type aliases need the go1.24 language version; the build tag
// keeps this re-export available on go1.24+ toolchains while the rest of
// the module builds with go1.21.
//go:build go1.24

package builder

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// Option is the functional option shape every constructor accepts.
type Option[T any] = types.Option[T]
