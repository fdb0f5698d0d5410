package blake2b

import "runtime"

// SecureZero overwrites b with zeroes and then tells the runtime that b must
// stay live up to this point, so the store cannot be recognized as dead and
// dropped even though the backing array is about to go out of scope.
func SecureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ConstantTimeEqual reports whether a and b hold the same bytes, taking time
// that depends only on len(a) and len(b), never on where they first differ.
// Mismatched lengths are rejected up front and are themselves not secret, so
// that comparison does not need to run in constant time.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
