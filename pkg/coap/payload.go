package coap

// SetPayload replaces the PDU's payload with the given bytes, inserting
// the 0xFF marker if no payload was attached yet. It never removes the
// marker.
//
// Fails with InvalidArgument if payload is nil or zero-length — RFC 7252
// §3.1 forbids an empty payload immediately after the marker, so there is
// no way to represent a present-but-empty payload, and this is not a
// spelling of "remove the payload". Fails with BufferFull if a borrowed
// buffer lacks room; the Codec is left unchanged in either case.
func (c *Codec) SetPayload(payload []byte) error {
	if len(payload) == 0 {
		return newErr(KindInvalidArgument, ErrZeroLength)
	}

	oldPDULength := len(c.buf)
	var oldTotal int
	if c.payloadOffset >= 0 {
		oldTotal = 1 + c.payloadLength // marker + old payload
	}
	insertOffset := oldPDULength - oldTotal
	newTotal := 1 + len(payload)
	newPDULength := insertOffset + newTotal

	if newPDULength > oldPDULength {
		if err := c.reserve(newPDULength); err != nil {
			return err
		}
	} else if newPDULength < oldPDULength {
		c.shrink(newPDULength)
	}

	c.buf[insertOffset] = PayloadMarker
	copy(c.buf[insertOffset+1:newPDULength], payload)

	c.payloadOffset = insertOffset + 1
	c.payloadLength = len(payload)

	c.log.Tracef("set_payload: length=%d pdu_len=%d", len(payload), len(c.buf))
	return nil
}

// MallocPayload reserves n zeroed payload bytes without copying caller
// data in, returning a slice over them for the caller to fill directly.
// The returned slice aliases the Codec's buffer and is invalidated by any
// subsequent mutator.
//
// Fails with InvalidArgument if n is zero or negative — see SetPayload.
// Fails with BufferFull if a borrowed buffer lacks room; the Codec is
// left unchanged in either case.
func (c *Codec) MallocPayload(n int) ([]byte, error) {
	if n == 0 {
		return nil, newErr(KindInvalidArgument, ErrZeroLength)
	}
	if n < 0 {
		return nil, newErr(KindInvalidArgument, ErrOutOfRange)
	}

	oldPDULength := len(c.buf)
	var oldTotal int
	if c.payloadOffset >= 0 {
		oldTotal = 1 + c.payloadLength
	}
	insertOffset := oldPDULength - oldTotal
	newPDULength := insertOffset + 1 + n

	if newPDULength > oldPDULength {
		if err := c.reserve(newPDULength); err != nil {
			return nil, err
		}
	} else if newPDULength < oldPDULength {
		c.shrink(newPDULength)
	}

	c.buf[insertOffset] = PayloadMarker
	c.payloadOffset = insertOffset + 1
	c.payloadLength = n

	payload := c.buf[c.payloadOffset : c.payloadOffset+n]
	for i := range payload {
		payload[i] = 0
	}

	c.log.Tracef("malloc_payload: length=%d pdu_len=%d", n, len(c.buf))
	return payload, nil
}

// Payload returns the payload bytes, or nil if no payload is attached.
// The returned slice aliases the Codec's buffer and is invalidated by any
// subsequent mutator.
func (c *Codec) Payload() []byte {
	if c.payloadOffset < 0 {
		return nil
	}
	return c.buf[c.payloadOffset : c.payloadOffset+c.payloadLength]
}

// HasPayload reports whether the PDU currently carries a payload.
func (c *Codec) HasPayload() bool {
	return c.payloadOffset >= 0
}

// PayloadLength returns the payload's length in bytes, or 0 if none.
func (c *Codec) PayloadLength() int {
	if c.payloadOffset < 0 {
		return 0
	}
	return c.payloadLength
}
