// Package hmac implements HMAC-BLAKE2b-512: the standard HMAC construction
// (RFC 2104) instantiated with BLAKE2b-512 as the underlying hash.
//
// Unlike RFC 2104, an empty key is rejected rather than silently padded
// with zeroes — a zero-length MAC key is almost always a programming error,
// and BLAKE2b already has a native keyed mode for callers who actually want
// hashing with no secret.
package hmac

import (
	"github.com/gibme-c/tinyblake/blake2b"
	"github.com/gibme-c/tinyblake/internal/errs"
)

const (
	ipadByte = 0x36
	opadByte = 0x5c
	// Size is the HMAC-BLAKE2b-512 tag length in bytes.
	Size = blake2b.MaxSize
)

// MAC computes HMAC-BLAKE2b-512 incrementally. The expensive part of HMAC
// key setup — absorbing the 128-byte ipad/opad-derived blocks — happens
// once in New. Reset restores the post-key-schedule snapshot instead of
// re-deriving the pads, so a MAC can be reused across many messages under
// the same key cheaply.
type MAC struct {
	inner     blake2b.State
	outer     blake2b.State
	innerInit blake2b.State
}

// New builds a MAC keyed with key. Keys longer than blake2b.BlockSize are
// first hashed down with BLAKE2b-512, per the standard HMAC key-shortening
// rule.
func New(key []byte) (*MAC, error) {
	if len(key) == 0 {
		return nil, errs.New(errs.InvalidKey, "key must not be empty")
	}

	var effective []byte
	if len(key) > blake2b.BlockSize {
		sum := blake2b.Sum512(key)
		effective = sum[:]
	} else {
		effective = key
	}

	var padded [blake2b.BlockSize]byte
	copy(padded[:], effective)

	var innerBlock, outerBlock [blake2b.BlockSize]byte
	for i := 0; i < blake2b.BlockSize; i++ {
		innerBlock[i] = padded[i] ^ ipadByte
		outerBlock[i] = padded[i] ^ opadByte
	}
	blake2b.SecureZero(padded[:])

	m := &MAC{}
	if err := m.inner.Init(Size); err != nil {
		return nil, err
	}
	if err := m.inner.Update(innerBlock[:]); err != nil {
		return nil, err
	}
	if err := m.outer.Init(Size); err != nil {
		return nil, err
	}
	if err := m.outer.Update(outerBlock[:]); err != nil {
		return nil, err
	}
	blake2b.SecureZero(innerBlock[:])
	blake2b.SecureZero(outerBlock[:])

	m.innerInit = m.inner
	return m, nil
}

// Write absorbs more of the message.
func (m *MAC) Write(p []byte) (int, error) {
	if err := m.inner.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends the current tag to b, without consuming the MAC: both inner
// and outer states are cloned before finalizing, so further Write calls and
// further Sum calls both remain valid afterward.
func (m *MAC) Sum(b []byte) []byte {
	innerClone := m.inner
	var innerDigest [Size]byte
	_ = innerClone.Final(innerDigest[:])

	outerClone := m.outer
	_ = outerClone.Update(innerDigest[:])
	var tag [Size]byte
	_ = outerClone.Final(tag[:])
	blake2b.SecureZero(innerDigest[:])

	return append(b, tag[:]...)
}

// Reset restores the MAC to the state right after key setup, discarding any
// message bytes written so far but keeping the derived key schedule.
func (m *MAC) Reset() {
	m.inner = m.innerInit
}

// Size returns the HMAC-BLAKE2b-512 tag length.
func (m *MAC) Size() int { return Size }

// BlockSize returns BLAKE2b's block size.
func (m *MAC) BlockSize() int { return blake2b.BlockSize }

// Sum computes the HMAC-BLAKE2b-512 tag of data under key in one call.
func Sum(key, data []byte) ([]byte, error) {
	m, err := New(key)
	if err != nil {
		return nil, err
	}
	if _, err := m.Write(data); err != nil {
		return nil, err
	}
	return m.Sum(nil), nil
}

// Equal reports whether mac is a valid HMAC-BLAKE2b-512 tag for data under
// key, comparing in constant time.
func Equal(key, data, mac []byte) (bool, error) {
	want, err := Sum(key, data)
	if err != nil {
		return false, err
	}
	return blake2b.ConstantTimeEqual(want, mac), nil
}
