// Package tinyblake is a compact cryptographic primitives library providing
// the BLAKE2b hash family, HMAC-BLAKE2b-512, and PBKDF2-HMAC-BLAKE2b-512,
// with no dependency on a larger cryptographic toolkit.
//
// See the blake2b, hmac, and pbkdf2 subpackages.
package tinyblake
