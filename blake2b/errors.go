package blake2b

import "github.com/gibme-c/tinyblake/internal/errs"

// Kind classifies why an operation in this module failed.
type Kind = errs.Kind

// Error is the concrete error type every operation in this module returns.
// Callers can errors.As into it to recover Kind instead of matching on
// message text.
type Error = errs.Error

// Error kinds shared across blake2b, hmac, and pbkdf2.
const (
	InvalidLength   = errs.InvalidLength
	InvalidParam    = errs.InvalidParam
	InvalidKey      = errs.InvalidKey
	InvalidArgument = errs.InvalidArgument
	InvalidState    = errs.InvalidState
)
