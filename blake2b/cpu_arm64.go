//go:build arm64 && !blake2b_forceportable

package blake2b

import "golang.org/x/sys/cpu"

func probeFeatures() features {
	return features{
		neon: cpu.ARM64.HasASIMD,
	}
}
