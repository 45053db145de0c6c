// Package coap implements an allocation-frugal codec for the Constrained
// Application Protocol message format (RFC 7252).
//
// A Codec owns or borrows a single contiguous byte buffer and mutates it
// in place: header fields, the client token, and the delta-encoded,
// order-sensitive option list are all built, inserted, and re-encoded
// directly on the wire bytes without an intermediate parsed form. Inserting
// an option anywhere but at the tail of the option list requires shifting
// later bytes and rewriting the successor option's delta header, whose
// width may itself change; the package handles that in Codec.AddOption.
//
// Two ownership modes are supported. An owned Codec (New) allocates its
// own buffer and may grow it as needed. A borrowed Codec (Wrap) never
// allocates and fails with ErrBufferFull once a mutation would exceed the
// caller-supplied capacity.
//
// The package does not do transport I/O, retransmission, congestion
// control, or resource observation; it only builds and parses one PDU at
// a time. Framing (one PDU per datagram) is the transport's job.
package coap
