package coap

import (
	"encoding/binary"

	"github.com/pion/logging"
)

// Wire layout constants (RFC 7252 §3).
const (
	// HeaderSize is the fixed 4-byte header size.
	HeaderSize = 4
	// MaxTokenLength is the largest token length CoAP allows.
	MaxTokenLength = 8
	// PayloadMarker separates the option list from the payload.
	PayloadMarker byte = 0xFF
)

const (
	verTypeTKLOffset = 0
	codeOffset       = 1
	messageIDOffset  = 2

	versionShift = 6
	versionMask  = 0x03
	typeShift    = 4
	typeMask     = 0x03
	tklMask      = 0x0F
)

// Codec builds, mutates, serializes, and parses a single CoAP PDU in
// place within a contiguous byte buffer. It borrows the buffer directly:
// there is no parsed intermediate form. See the package doc for the
// owned/borrowed distinction.
//
// A Codec is not safe for concurrent mutation. Concurrent read-only
// accessor calls on a Codec that is not being mutated are safe, since
// accessors only read already-cached state.
type Codec struct {
	kind   storageKind
	buf    []byte
	growth int
	log    logging.LeveledLogger

	numOptions           int
	maxAddedOptionNumber uint16
	payloadOffset        int // -1 if there is no payload
	payloadLength        int
	validated            bool
}

// New creates an empty, owned Codec: a 4-byte header with version 1, type
// Confirmable, code Empty, message ID 0, and no token, options, or
// payload. The buffer may grow as options, a token, and a payload are
// added.
func New(opts ...CodecOption) *Codec {
	cfg := buildConfig(opts)

	c := &Codec{
		kind:          ownedStorage,
		buf:           make([]byte, HeaderSize, cfg.InitialCapacity),
		growth:        cfg.GrowthIncrement,
		log:           cfg.LoggerFactory.NewLogger("coap"),
		payloadOffset: -1,
	}
	c.buf[verTypeTKLOffset] = 1 << versionShift
	c.validated = true // an empty, freshly-built PDU is trivially valid
	return c
}

// Wrap constructs a borrowed Codec around buf, treating the first
// pduLength bytes as the (as yet unvalidated) PDU and cap(buf) as the
// hard ceiling no mutation may exceed. The codec never reallocates or
// frees buf. Call Validate before using any accessor; until Validate
// succeeds, accessor results are undefined per the state machine in
// spec §4.6.
func Wrap(buf []byte, pduLength int, opts ...CodecOption) *Codec {
	cfg := buildConfig(opts)
	return &Codec{
		kind:          borrowedStorage,
		buf:           buf[:pduLength],
		log:           cfg.LoggerFactory.NewLogger("coap"),
		payloadOffset: -1,
	}
}

// Reset returns an owned Codec to the empty state described in New,
// without reallocating its buffer. Calling Reset on a borrowed Codec is
// still valid: it just re-truncates the view back to a 4-byte header
// inside the caller's buffer.
func (c *Codec) Reset() {
	c.buf = c.buf[:HeaderSize]
	for i := range c.buf {
		c.buf[i] = 0
	}
	c.buf[verTypeTKLOffset] = 1 << versionShift
	c.numOptions = 0
	c.maxAddedOptionNumber = 0
	c.payloadOffset = -1
	c.payloadLength = 0
	c.validated = true
}

// Build returns the codec's current bytes, ready to hand to a transport.
// The returned slice aliases the Codec's internal buffer and is
// invalidated by any subsequent mutator.
func (c *Codec) Build() []byte {
	return c.buf
}

// Len returns the current PDU length in bytes.
func (c *Codec) Len() int {
	return len(c.buf)
}

// Capacity returns the backing buffer's capacity: for a borrowed Codec
// this is the fixed ceiling supplied to Wrap; for an owned Codec it is
// the current allocation, which may grow.
func (c *Codec) Capacity() int {
	return cap(c.buf)
}

// Version returns the CoAP version field (bits 7..6 of byte 0).
func (c *Codec) Version() uint8 {
	return (c.buf[verTypeTKLOffset] >> versionShift) & versionMask
}

// SetVersion sets the CoAP version field. Fails with InvalidArgument if
// v exceeds the 2-bit field's range.
func (c *Codec) SetVersion(v uint8) error {
	if v > versionMask {
		return newErr(KindInvalidArgument, ErrOutOfRange)
	}
	b := c.buf[verTypeTKLOffset]
	b &^= versionMask << versionShift
	b |= v << versionShift
	c.buf[verTypeTKLOffset] = b
	return nil
}

// Type returns the message type field (bits 5..4 of byte 0).
func (c *Codec) Type() Type {
	return Type((c.buf[verTypeTKLOffset] >> typeShift) & typeMask)
}

// SetType sets the message type field.
func (c *Codec) SetType(t Type) error {
	if !t.IsValid() {
		return newErr(KindInvalidArgument, ErrOutOfRange)
	}
	b := c.buf[verTypeTKLOffset]
	b &^= typeMask << typeShift
	b |= uint8(t) << typeShift
	c.buf[verTypeTKLOffset] = b
	return nil
}

// TokenLength returns the token_length field (bits 3..0 of byte 0).
func (c *Codec) TokenLength() int {
	return int(c.buf[verTypeTKLOffset] & tklMask)
}

// SetTokenLength writes the token_length field directly, without moving
// any option or payload bytes. It exists only for callers about to
// overwrite the token bytes by hand; SetToken is the safe path for
// changing a token's length. Fails with InvalidArgument if n>8.
func (c *Codec) SetTokenLength(n int) error {
	if n < 0 || n > MaxTokenLength {
		return newErr(KindInvalidArgument, ErrOutOfRange)
	}
	b := c.buf[verTypeTKLOffset]
	b &^= tklMask
	b |= uint8(n) & tklMask
	c.buf[verTypeTKLOffset] = b
	return nil
}

// Code returns the CoAP code byte.
func (c *Codec) Code() Code {
	return Code(c.buf[codeOffset])
}

// SetCode sets the CoAP code byte. It does not validate that code is a
// registered code; Validate performs that check on received bytes, and
// a codec being built is trusted to only ever be given registered codes.
func (c *Codec) SetCode(code Code) {
	c.buf[codeOffset] = uint8(code)
}

// MessageID returns the 16-bit big-endian message ID field.
func (c *Codec) MessageID() uint16 {
	return binary.BigEndian.Uint16(c.buf[messageIDOffset:])
}

// SetMessageID sets the message ID field.
func (c *Codec) SetMessageID(id uint16) {
	binary.BigEndian.PutUint16(c.buf[messageIDOffset:], id)
}

// tokenEnd returns the offset just past the token region.
func (c *Codec) tokenEnd() int {
	return HeaderSize + c.TokenLength()
}

// Token returns the token bytes. The returned slice aliases the Codec's
// buffer and is invalidated by any subsequent mutator.
func (c *Codec) Token() []byte {
	return c.buf[HeaderSize:c.tokenEnd()]
}
