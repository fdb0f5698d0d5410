//go:build arm64 && !blake2b_forceportable

package blake2b

func resolveCompress() compressFunc {
	if detectFeatures().neon {
		return compressNEON
	}
	return compressPortable
}
