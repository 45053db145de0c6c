package coap

// SetToken replaces the token with the given bytes, moving every option
// and payload byte that follows if the length changes. Option and
// payload encoding is entirely relative to the end of the token, so no
// bytes within those regions are rewritten — only shifted.
//
// Fails with InvalidArgument if len(token) is not in [0,8], or if token
// is nil while a non-zero length was requested. Fails with BufferFull if
// growing a borrowed buffer would exceed its capacity; in that case the
// Codec is left completely unchanged.
func (c *Codec) SetToken(token []byte) error {
	newLen := len(token)
	if newLen > MaxTokenLength {
		return newErr(KindInvalidArgument, ErrOutOfRange)
	}
	if token == nil && newLen > 0 {
		return newErr(KindInvalidArgument, ErrNilArgument)
	}

	oldLen := c.TokenLength()
	if newLen == oldLen {
		copy(c.buf[HeaderSize:c.tokenEnd()], token)
		return nil
	}

	oldPDULength := len(c.buf)
	delta := newLen - oldLen
	newPDULength := oldPDULength + delta

	if delta > 0 {
		if err := c.reserve(newPDULength); err != nil {
			return err
		}
		// Shift the tail (everything after the old token) up to make
		// room, highest offset first — copy() is memmove-safe for
		// overlapping slices in Go, so a single call suffices.
		copy(c.buf[HeaderSize+newLen:newPDULength], c.buf[HeaderSize+oldLen:oldPDULength])
	} else {
		copy(c.buf[HeaderSize+newLen:oldPDULength+delta], c.buf[HeaderSize+oldLen:oldPDULength])
		c.shrink(newPDULength)
	}

	copy(c.buf[HeaderSize:HeaderSize+newLen], token)
	// SetTokenLength cannot fail here: newLen was already range-checked.
	_ = c.SetTokenLength(newLen)

	if c.payloadOffset >= 0 {
		c.payloadOffset += delta
	}

	c.log.Tracef("set_token: old_len=%d new_len=%d delta=%d pdu_len=%d", oldLen, newLen, delta, len(c.buf))
	return nil
}
