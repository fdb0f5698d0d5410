//go:build (!amd64 && !arm64) || blake2b_forceportable

package blake2b

// resolveCompress falls back to the portable scalar backend on any
// architecture without a vectorized implementation, and also whenever the
// blake2b_forceportable build tag is set, regardless of architecture.
func resolveCompress() compressFunc {
	return compressPortable
}
