package util

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// DetectKey returns a deterministic, fixed-size cache key for a detection
// input. Hashing keeps arbitrary (possibly huge or binary-ish) inputs out
// of store keyspaces.
func DetectKey(input string) string {
	return fmt.Sprintf("detect:%016x", xxhash.Sum64String(input))
}
