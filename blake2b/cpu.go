package blake2b

import "sync"

// features records which vectorized compression backends this process may
// use. It is detected once, lazily, on first use. AVX-512 is recorded as
// three independent bits, matching the tri-state gating the original CPUID
// probe performs: all three (F, VL, VBMI2) must hold before the AVX-512
// backend is eligible.
type features struct {
	avx2        bool
	avx512f     bool
	avx512vl    bool
	avx512vbmi2 bool
	neon        bool
}

var (
	featuresOnce sync.Once
	cachedFeatures features
)

func detectFeatures() features {
	featuresOnce.Do(func() {
		cachedFeatures = probeFeatures()
	})
	return cachedFeatures
}
