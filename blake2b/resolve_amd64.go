//go:build amd64 && !blake2b_forceportable

package blake2b

// resolveCompress picks the fastest backend this process's CPU supports, in
// the priority order AVX-512 > AVX2 > scalar, mirroring the original
// library's resolve_compress().
func resolveCompress() compressFunc {
	f := detectFeatures()
	switch {
	case f.avx512f && f.avx512vl && f.avx512vbmi2:
		return compressAVX512
	case f.avx2:
		return compressAVX2
	default:
		return compressX64
	}
}
