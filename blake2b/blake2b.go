// Package blake2b implements the BLAKE2b hash function (RFC 7693), with
// support for keyed hashing (MAC mode), salt, and personalization.
//
// Most callers want New512, New256, Sum512, or Sum256. Config and New cover
// keyed hashing, salting, and personalization; State is the low-level
// streaming primitive for callers building their own wrapper (HMAC does).
package blake2b

import "github.com/gibme-c/tinyblake/internal/errs"

// Config customizes a Hash beyond the plain unkeyed default. A zero Config
// produces a 64-byte unkeyed digest.
type Config struct {
	// Size is the digest length in bytes, 1..64. Zero means 64.
	Size int
	// Key, if non-empty, puts the hash in keyed mode (BLAKE2b's native MAC).
	Key []byte
	// Salt, if non-empty, must be exactly SaltSize bytes.
	Salt []byte
	// Person, if non-empty, must be exactly PersonSize bytes.
	Person []byte
}

// Hash is a BLAKE2b instance satisfying hash.Hash. Unlike State, it retains
// enough of its configuration (the parameter block and, if keyed, the
// padded key block) to support Reset.
type Hash struct {
	s        State
	param    [64]byte
	keyBlock [128]byte
	keyed    bool
	size     int
}

// New builds a Hash from config. A nil config is equivalent to &Config{}.
func New(config *Config) (*Hash, error) {
	if config == nil {
		config = &Config{}
	}
	size := config.Size
	if size == 0 {
		size = MaxSize
	}
	if size < 1 || size > MaxSize {
		return nil, errs.New(errs.InvalidLength, "Size must be 1..64")
	}
	if len(config.Salt) != 0 && len(config.Salt) != SaltSize {
		return nil, errs.New(errs.InvalidParam, "Salt must be exactly SaltSize bytes")
	}
	if len(config.Person) != 0 && len(config.Person) != PersonSize {
		return nil, errs.New(errs.InvalidParam, "Person must be exactly PersonSize bytes")
	}
	if len(config.Key) > MaxKeySize {
		return nil, errs.New(errs.InvalidLength, "Key must be at most MaxKeySize bytes")
	}

	h := &Hash{size: size, keyed: len(config.Key) > 0}
	h.param[0] = byte(size)
	h.param[1] = byte(len(config.Key))
	h.param[2] = 1
	h.param[3] = 1
	copy(h.param[32:48], config.Salt)
	copy(h.param[48:64], config.Person)
	if h.keyed {
		copy(h.keyBlock[:], config.Key)
	}

	if err := h.reinit(); err != nil {
		return nil, err
	}
	return h, nil
}

// New512 returns an unkeyed Hash producing a 64-byte digest.
func New512() (*Hash, error) {
	return New(&Config{Size: MaxSize})
}

// New256 returns an unkeyed Hash producing a 32-byte digest.
func New256() (*Hash, error) {
	return New(&Config{Size: 32})
}

// NewMAC returns a Hash keyed for MAC use, producing an outlen-byte tag.
func NewMAC(outlen int, key []byte) (*Hash, error) {
	if len(key) == 0 {
		return nil, errs.New(errs.InvalidKey, "key must not be empty")
	}
	return New(&Config{Size: outlen, Key: key})
}

func (h *Hash) reinit() error {
	if err := h.s.InitParam(&h.param); err != nil {
		return err
	}
	if h.keyed {
		return h.s.Update(h.keyBlock[:])
	}
	return nil
}

// Write absorbs more input. It returns an InvalidState error, and absorbs
// nothing, once the Hash has been dropped.
func (h *Hash) Write(p []byte) (int, error) {
	if err := h.s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends the current digest to b and returns the result, without
// modifying the receiver's state: the underlying State is cloned before
// finalizing, exactly as repeated Sum calls on the same hash.Hash are
// expected to behave.
func (h *Hash) Sum(b []byte) []byte {
	clone := h.s
	out := make([]byte, h.size)
	// Final on a zero-valued outlen State would fail; clone carries the
	// real outlen/h/t/buf, so this only hits InvalidState after Drop, in
	// which case the appended digest is all zero bytes.
	_ = clone.Final(out)
	return append(b, out...)
}

// Reset restores the Hash to its freshly-constructed state, re-absorbing
// the retained key block if the hash is keyed.
func (h *Hash) Reset() {
	_ = h.reinit()
}

// Size returns the digest length this Hash was configured for.
func (h *Hash) Size() int { return h.size }

// BlockSize returns BLAKE2b's block size.
func (h *Hash) BlockSize() int { return BlockSize }

// Drop wipes the Hash's retained key material. Call it when a keyed Hash
// will not be reused, instead of waiting for the garbage collector.
func (h *Hash) Drop() {
	SecureZero(h.keyBlock[:])
	SecureZero(h.param[:])
	h.s = State{}
}

// Sum512 returns the unkeyed 64-byte BLAKE2b digest of data.
func Sum512(data []byte) [MaxSize]byte {
	var s State
	_ = s.Init(MaxSize)
	_ = s.Update(data)
	var out [MaxSize]byte
	_ = s.Final(out[:])
	return out
}

// Sum256 returns the unkeyed 32-byte BLAKE2b digest of data.
func Sum256(data []byte) [32]byte {
	var s State
	_ = s.Init(32)
	_ = s.Update(data)
	var out [32]byte
	_ = s.Final(out[:])
	return out
}

// SumKeyed returns the outlen-byte keyed BLAKE2b digest of data under key.
func SumKeyed(key, data []byte, outlen int) ([]byte, error) {
	var s State
	if err := s.InitKey(outlen, key); err != nil {
		return nil, err
	}
	if err := s.Update(data); err != nil {
		return nil, err
	}
	out := make([]byte, outlen)
	if err := s.Final(out); err != nil {
		return nil, err
	}
	return out, nil
}
