//go:build amd64

package blake2b

import (
	"encoding/binary"
	"math/bits"
)

func gScalar(v *[16]uint64, a, b, c, d int, x, y uint64) {
	v[a] = v[a] + v[b] + x
	v[d] = bits.RotateLeft64(v[d]^v[a], -32)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -24)
	v[a] = v[a] + v[b] + y
	v[d] = bits.RotateLeft64(v[d]^v[a], -16)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -63)
}

// compressX64 is the x86-64 scalar backend: identical algorithm to
// compressPortable, but expressed with math/bits.RotateLeft64 so the
// compiler emits a single ROL/ROR per rotate instead of a shift-or pair.
func compressX64(h *[8]uint64, block *[BlockSize]byte, t0, t1 uint64, last bool) {
	var m [16]uint64
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(block[i*8 : i*8+8])
	}

	v := [16]uint64{
		h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7],
		iv[0], iv[1], iv[2], iv[3],
		iv[4] ^ t0, iv[5] ^ t1, iv[6], iv[7],
	}
	if last {
		v[14] = ^v[14]
	}

	for round := 0; round < rounds; round++ {
		s := &sigma[round%10]
		gScalar(&v, 0, 4, 8, 12, m[s[0]], m[s[1]])
		gScalar(&v, 1, 5, 9, 13, m[s[2]], m[s[3]])
		gScalar(&v, 2, 6, 10, 14, m[s[4]], m[s[5]])
		gScalar(&v, 3, 7, 11, 15, m[s[6]], m[s[7]])
		gScalar(&v, 0, 5, 10, 15, m[s[8]], m[s[9]])
		gScalar(&v, 1, 6, 11, 12, m[s[10]], m[s[11]])
		gScalar(&v, 2, 7, 8, 13, m[s[12]], m[s[13]])
		gScalar(&v, 3, 4, 9, 14, m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}
