//go:build amd64 && !blake2b_forceportable

package blake2b

import "golang.org/x/sys/cpu"

func probeFeatures() features {
	return features{
		avx2:        cpu.X86.HasAVX2,
		avx512f:     cpu.X86.HasAVX512F,
		avx512vl:    cpu.X86.HasAVX512VL,
		avx512vbmi2: cpu.X86.HasAVX512VBMI2,
	}
}
