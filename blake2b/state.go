package blake2b

import (
	"encoding/binary"

	"github.com/gibme-c/tinyblake/internal/errs"
)

const (
	// BlockSize is the BLAKE2b block size in bytes.
	BlockSize = 128
	// MaxSize is the largest digest BLAKE2b can produce, in bytes.
	MaxSize = 64
	// MaxKeySize is the largest key BLAKE2b accepts, in bytes.
	MaxKeySize = 64
	// SaltSize is the fixed size of the salt field in a parameter block.
	SaltSize = 16
	// PersonSize is the fixed size of the personalization field.
	PersonSize = 16
)

var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// State is the raw BLAKE2b streaming primitive described by the parameter
// block, chaining value, counter, and residual buffer. It has no notion of
// "reset" or retained key material — that lives one level up, in Hash. Its
// zero value is inert: outlen is 0, so Update and Final both report
// InvalidState until Init, InitKey, or InitParam is called.
type State struct {
	h      [8]uint64
	t0, t1 uint64
	buf    [BlockSize]byte
	buflen int
	outlen uint8
}

// Init prepares an unkeyed BLAKE2b state producing an outlen-byte digest. A
// failed call leaves the receiver zeroed, discarding whatever it held.
func (s *State) Init(outlen int) error {
	if outlen < 1 || outlen > MaxSize {
		*s = State{}
		return errs.New(errs.InvalidLength, "outlen must be 1..64")
	}
	var param [64]byte
	param[0] = byte(outlen)
	param[2] = 1
	param[3] = 1
	return s.InitParam(&param)
}

// InitKey prepares a keyed BLAKE2b state. The key is absorbed as a single
// zero-padded 128-byte block immediately, per RFC 7693. A failed call leaves
// the receiver zeroed, discarding whatever it held.
func (s *State) InitKey(outlen int, key []byte) error {
	if outlen < 1 || outlen > MaxSize {
		*s = State{}
		return errs.New(errs.InvalidLength, "outlen must be 1..64")
	}
	if len(key) < 1 || len(key) > MaxKeySize {
		*s = State{}
		return errs.New(errs.InvalidLength, "keylen must be 1..64")
	}
	var param [64]byte
	param[0] = byte(outlen)
	param[1] = byte(len(key))
	param[2] = 1
	param[3] = 1
	if err := s.InitParam(&param); err != nil {
		return err
	}
	var block [BlockSize]byte
	copy(block[:], key)
	err := s.Update(block[:])
	SecureZero(block[:])
	if err != nil {
		*s = State{}
	}
	return err
}

// InitParam interprets the caller-supplied 64-byte parameter block directly,
// following the RFC 7693 layout: digest length, key length, fanout, depth,
// tree fields, salt, and personalization. A failed call leaves the receiver
// zeroed, discarding whatever it held.
func (s *State) InitParam(param *[64]byte) error {
	if param[0] == 0 || param[0] > MaxSize {
		*s = State{}
		return errs.New(errs.InvalidParam, "param[0] (digest length) must be 1..64")
	}
	*s = State{outlen: param[0]}
	for i := 0; i < 8; i++ {
		s.h[i] = iv[i] ^ binary.LittleEndian.Uint64(param[i*8:i*8+8])
	}
	return nil
}

// ready reports whether the state has been initialized and not yet
// finalized or dropped. A zero-value State (never initialized) and a
// finalized/dropped State are indistinguishable by design: both must be
// re-initialized before any other operation succeeds.
func (s *State) ready() bool {
	return s.outlen != 0
}

// Update absorbs more input into the running hash. It follows the streaming
// contract precisely: fill the residual buffer first, compress full blocks
// as they arrive but always hold back the last 1..128 bytes for Final, and
// advance the 128-bit byte counter with carry before every compression.
func (s *State) Update(in []byte) error {
	if !s.ready() {
		return errs.New(errs.InvalidState, "state not initialized")
	}
	if len(in) == 0 {
		return nil
	}

	if s.buflen > 0 {
		free := BlockSize - s.buflen
		if len(in) <= free {
			copy(s.buf[s.buflen:], in)
			s.buflen += len(in)
			return nil
		}
		copy(s.buf[s.buflen:], in[:free])
		s.advanceCounter(BlockSize)
		compress(&s.h, &s.buf, s.t0, s.t1, false)
		s.buflen = 0
		in = in[free:]
	}

	for len(in) > BlockSize {
		s.advanceCounter(BlockSize)
		block := (*[BlockSize]byte)(in[:BlockSize])
		compress(&s.h, block, s.t0, s.t1, false)
		in = in[BlockSize:]
	}

	s.buflen = copy(s.buf[:], in)
	return nil
}

func (s *State) advanceCounter(n uint64) {
	s.t0 += n
	if s.t0 < n {
		s.t1++
	}
}

// Final emits the digest into out and destroys the state: every field is
// wiped, and the state must be re-initialized before any further use. out
// must be at least as long as the digest length the state was configured
// for; only the first outlen bytes are written.
func (s *State) Final(out []byte) error {
	if !s.ready() {
		return errs.New(errs.InvalidState, "state not initialized")
	}
	if len(out) < int(s.outlen) {
		return errs.New(errs.InvalidLength, "out shorter than configured digest length")
	}

	s.advanceCounter(uint64(s.buflen))
	for i := s.buflen; i < BlockSize; i++ {
		s.buf[i] = 0
	}
	compress(&s.h, &s.buf, s.t0, s.t1, true)

	var staging [MaxSize]byte
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint64(staging[i*8:], s.h[i])
	}
	copy(out, staging[:s.outlen])
	SecureZero(staging[:])

	SecureZero(s.buf[:])
	*s = State{}
	return nil
}
