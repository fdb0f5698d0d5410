// Package errs defines the small error taxonomy shared by blake2b, hmac,
// and pbkdf2. It exists only so the three packages agree on the same Kind
// values and formatting; it is not part of the public API surface.
package errs

// Kind classifies why an operation failed.
type Kind int

const (
	// InvalidLength covers an output length or key length outside its
	// legal range.
	InvalidLength Kind = iota + 1
	// InvalidParam covers a parameter block whose digest-length byte is
	// outside 1..64.
	InvalidParam
	// InvalidKey covers a null or empty key where one is required.
	InvalidKey
	// InvalidArgument covers PBKDF2 rounds=0, outlen=0, an outlen past the
	// RFC 2898 ceiling, or a null buffer paired with a non-zero length.
	InvalidArgument
	// InvalidState covers use of a state that has already been finalized,
	// dropped, or never initialized.
	InvalidState
)

func (k Kind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case InvalidParam:
		return "invalid parameter block"
	case InvalidKey:
		return "invalid key"
	case InvalidArgument:
		return "invalid argument"
	case InvalidState:
		return "invalid state"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by every operation in this
// module. Kind lets callers errors.As into the taxonomy instead of matching
// on message text.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// New constructs an *Error with the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}
