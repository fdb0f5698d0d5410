// Package pbkdf2 implements PBKDF2 (RFC 2898) with HMAC-BLAKE2b-512 as the
// pseudorandom function.
package pbkdf2

import (
	"encoding/binary"
	"errors"

	"github.com/gibme-c/tinyblake/hmac"
	"github.com/gibme-c/tinyblake/internal/errs"
)

// hLen is the output size of the underlying PRF, HMAC-BLAKE2b-512.
const hLen = hmac.Size

// maxBlocks is the RFC 2898 ceiling on how many hLen-sized blocks a single
// derivation may produce: the block index is a 32-bit big-endian counter
// starting at 1, so it can reach at most 2^32-1 before wrapping.
const maxBlocks = int64(1)<<32 - 1

// Derive computes outlen bytes of key material from password and salt using
// the given number of rounds. rounds and outlen must both be positive;
// outlen must not exceed hLen * (2^32 - 1).
func Derive(password, salt []byte, rounds, outlen int) ([]byte, error) {
	if rounds < 1 {
		return nil, errs.New(errs.InvalidArgument, "rounds must be at least 1")
	}
	if outlen < 1 {
		return nil, errs.New(errs.InvalidArgument, "outlen must be at least 1")
	}
	numBlocks := (int64(outlen) + hLen - 1) / hLen
	if numBlocks > maxBlocks {
		return nil, errs.New(errs.InvalidArgument, "outlen exceeds the maximum PBKDF2 can produce")
	}

	prf, err := hmac.New(password)
	if err != nil {
		// hmac.New only fails on an empty password (its InvalidKey), which
		// from PBKDF2's side is just a bad argument to Derive.
		var e *errs.Error
		if errors.As(err, &e) {
			return nil, errs.New(errs.InvalidArgument, e.Msg)
		}
		return nil, errs.New(errs.InvalidArgument, err.Error())
	}

	out := make([]byte, 0, int(numBlocks)*hLen)
	var blockIndex [4]byte
	u := make([]byte, 0, hLen)
	t := make([]byte, hLen)

	wipe := func() {
		for i := range t {
			t[i] = 0
		}
		for i := range u {
			u[i] = 0
		}
	}

	for block := int64(1); block <= numBlocks; block++ {
		binary.BigEndian.PutUint32(blockIndex[:], uint32(block))

		prf.Reset()
		if _, err := prf.Write(salt); err != nil {
			wipe()
			return nil, err
		}
		if _, err := prf.Write(blockIndex[:]); err != nil {
			wipe()
			return nil, err
		}
		u = prf.Sum(u[:0])
		copy(t, u)

		for iter := 2; iter <= rounds; iter++ {
			prf.Reset()
			if _, err := prf.Write(u); err != nil {
				wipe()
				return nil, err
			}
			u = prf.Sum(u[:0])
			for i := range t {
				t[i] ^= u[i]
			}
		}

		out = append(out, t...)
		wipe()
	}

	return out[:outlen], nil
}
