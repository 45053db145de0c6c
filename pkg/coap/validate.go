package coap

// Validate checks a borrowed PDU's structural integrity and, on success,
// establishes the cached derived state (num_options, payload_offset,
// payload_length) that every other accessor and mutator relies on.
// Accessor results are undefined before Validate has succeeded — Wrap
// leaves the Codec in exactly that state.
//
// Validate never needs to run on an owned Codec built up through the
// mutators: New starts in an already-valid empty state and every
// mutator maintains the cached state incrementally, so a freshly built
// Codec is always ready to Build.
//
// It fails with a MalformedPDU sub-kind (see ErrorKind) on any
// structural defect: a truncated header or token, an unregistered code,
// a corrupt option header, an option or its value running past the
// declared length, or an empty payload immediately after the marker.
func (c *Codec) Validate() error {
	c.validated = false

	if len(c.buf) < HeaderSize {
		return newErr(KindMalformed, ErrShortHeader)
	}
	if c.Version() != 1 {
		return newErr(KindMalformed, ErrBadVersion)
	}

	tkl := c.TokenLength()
	if tkl > MaxTokenLength || HeaderSize+tkl > len(c.buf) {
		return newErr(KindMalformed, ErrBadTokenLength)
	}

	if !c.Code().IsRegistered() {
		return newErr(KindMalformed, ErrBadCode)
	}

	pos := c.tokenEnd()
	pduLength := len(c.buf)
	var numOptions int
	var current uint16

	for pos < pduLength {
		ctrl := c.buf[pos]
		if ctrl == PayloadMarker {
			if pos+1 >= pduLength {
				return newErr(KindMalformed, ErrEmptyPayloadMarker)
			}
			c.numOptions = numOptions
			c.payloadOffset = pos + 1
			c.payloadLength = pduLength - c.payloadOffset
			c.maxAddedOptionNumber = current
			c.validated = true
			return nil
		}

		upper, lower := ctrl>>4, ctrl&0x0F
		if upper == 15 || lower == 15 {
			return newErr(KindMalformed, ErrBadOptionHeader)
		}

		headerEnd := pos + 1
		switch upper {
		case 13:
			headerEnd++
		case 14:
			headerEnd += 2
		}
		switch lower {
		case 13:
			headerEnd++
		case 14:
			headerEnd += 2
		}
		if headerEnd > pduLength {
			return newErr(KindMalformed, ErrTruncatedOption)
		}

		delta, valueLength, headerLen := decodeOptionHeader(c.buf[pos:])
		total := headerLen + valueLength
		if pos+total > pduLength {
			return newErr(KindMalformed, ErrTruncatedOption)
		}

		current += uint16(delta)
		numOptions++
		pos += total
	}

	c.numOptions = numOptions
	c.payloadOffset = -1
	c.payloadLength = 0
	c.maxAddedOptionNumber = current
	c.validated = true
	return nil
}

// Validated reports whether the Codec's cached derived state currently
// reflects a successful Validate call (or was established by the
// mutators directly, for an owned Codec).
func (c *Codec) Validated() bool {
	return c.validated
}
