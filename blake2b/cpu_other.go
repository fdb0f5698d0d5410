//go:build (!amd64 && !arm64) || blake2b_forceportable

package blake2b

// probeFeatures reports no vectorized backends on architectures this module
// has no backend for, and also when the blake2b_forceportable build tag asks
// every architecture to behave that way (useful for testing the portable
// backend on hardware that would otherwise pick a vectorized one).
func probeFeatures() features {
	return features{}
}
