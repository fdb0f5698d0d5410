package blake2b

import "sync/atomic"

type compressFunc func(h *[8]uint64, block *[BlockSize]byte, t0, t1 uint64, last bool)

// compressCache holds the resolved backend once chosen. Resolution is
// idempotent (every caller computes the same answer from the same CPU), so
// races during the first few calls are harmless: at worst two goroutines
// both call resolveCompress and store the same function pointer.
var compressCache atomic.Pointer[compressFunc]

// compress dispatches to the fastest compression backend this process can
// use, resolving it once and caching the choice.
func compress(h *[8]uint64, block *[BlockSize]byte, t0, t1 uint64, last bool) {
	f := compressCache.Load()
	if f == nil {
		resolved := resolveCompress()
		compressCache.Store(&resolved)
		f = &resolved
	}
	(*f)(h, block, t0, t1, last)
}
