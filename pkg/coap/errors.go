package coap

import "errors"

// ErrorKind classifies a codec error so callers can branch without string
// matching. It has no wire representation.
type ErrorKind int

const (
	// KindInvalidArgument means an argument was out of range or nil where
	// a non-nil value was required.
	KindInvalidArgument ErrorKind = iota
	// KindBufferFull means a mutation needed more bytes than a borrowed
	// buffer's capacity, or an owned buffer's allocation failed.
	KindBufferFull
	// KindMalformed means validate found a structural defect in received
	// bytes. Sub-kinds are distinguished by the wrapped sentinel error.
	KindMalformed
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindBufferFull:
		return "BufferFull"
	case KindMalformed:
		return "Malformed"
	default:
		return "Unknown"
	}
}

// CodecError is the concrete error type returned by every fallible
// operation in this package. It carries a Kind for coarse branching and
// wraps a specific sentinel (via errors.Unwrap) for fine-grained checks
// with errors.Is.
type CodecError struct {
	Kind ErrorKind
	Err  error
}

func (e *CodecError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

// Unwrap exposes the wrapped sentinel to errors.Is / errors.As.
func (e *CodecError) Unwrap() error {
	return e.Err
}

func newErr(kind ErrorKind, sentinel error) *CodecError {
	return &CodecError{Kind: kind, Err: sentinel}
}

// Sentinel errors. Use errors.Is against these, or inspect a *CodecError's
// Kind field for coarse classification.
var (
	// ErrInvalidArgument-family sentinels.
	ErrNilArgument     = errors.New("coap: required argument is nil")
	ErrOutOfRange      = errors.New("coap: argument out of range")
	ErrZeroLength      = errors.New("coap: length must be at least 1")

	// ErrBufferFull is returned when a mutation would exceed a borrowed
	// buffer's capacity, or when an owned buffer's growth allocation fails.
	ErrBufferFull = errors.New("coap: buffer full")

	// Malformed-PDU sub-kinds, returned by Validate.
	ErrShortHeader       = errors.New("coap: pdu shorter than fixed header")
	ErrBadVersion        = errors.New("coap: unsupported version")
	ErrBadTokenLength    = errors.New("coap: invalid token length")
	ErrBadCode           = errors.New("coap: code not in registry")
	ErrBadOptionHeader   = errors.New("coap: option delta/length nibble is 15")
	ErrTruncatedOption   = errors.New("coap: option runs past end of pdu")
	ErrEmptyPayloadMarker = errors.New("coap: payload marker with no payload bytes")

	// Accessor-misuse sentinels: the PDU has not been validated, or a
	// mutator was called after Validate/Wrap invalidated cached state.
	ErrNotValidated = errors.New("coap: pdu accessors used before a successful validate")
)

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgument
// classified CodecError.
func IsInvalidArgument(err error) bool { return kindIs(err, KindInvalidArgument) }

// IsBufferFull reports whether err is (or wraps) a BufferFull classified
// CodecError.
func IsBufferFull(err error) bool { return kindIs(err, KindBufferFull) }

// IsMalformed reports whether err is (or wraps) a Malformed classified
// CodecError.
func IsMalformed(err error) bool { return kindIs(err, KindMalformed) }

func kindIs(err error, kind ErrorKind) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}
