package coap

import "encoding/binary"

// Option describes one decoded entry from the option list. Value and
// OptionSlice alias the Codec's buffer; both are invalidated by any
// subsequent mutator, matching the "borrowed view" contract in spec §4.3.
type Option struct {
	// Number is the option's absolute option number (previous number
	// plus this option's delta).
	Number OptionNumber
	// Delta is the wire-encoded delta from the previous option's number.
	Delta int
	// ValueLength is the length of Value in bytes.
	ValueLength int
	// Value is the option's value bytes.
	Value []byte
	// OptionSlice is the option's complete encoded bytes: header, any
	// extended delta/length bytes, and the value.
	OptionSlice []byte
}

// TotalLength returns the option's complete encoded size in bytes.
func (o Option) TotalLength() int {
	return len(o.OptionSlice)
}

// extraBytes returns the number of extended bytes CoAP's delta/length
// nibble encoding needs to represent n: 0 for n<13, 1 for n<269, 2
// otherwise (RFC 7252 §3.1).
func extraBytes(n int) int {
	switch {
	case n < 13:
		return 0
	case n < 269:
		return 1
	default:
		return 2
	}
}

// decodeOptionHeader parses the option header (control byte plus any
// extended delta/length bytes) at the start of data. It returns the
// decoded delta, value length, and the number of header bytes consumed
// — not including the value itself.
func decodeOptionHeader(data []byte) (delta, valueLength, headerLen int) {
	ctrl := data[0]
	upper := int(ctrl >> 4)
	lower := int(ctrl & 0x0F)
	pos := 1

	switch {
	case upper < 13:
		delta = upper
	case upper == 13:
		delta = int(data[pos]) + 13
		pos++
	default:
		delta = int(binary.BigEndian.Uint16(data[pos:pos+2])) + 269
		pos += 2
	}

	switch {
	case lower < 13:
		valueLength = lower
	case lower == 13:
		valueLength = int(data[pos]) + 13
		pos++
	default:
		valueLength = int(binary.BigEndian.Uint16(data[pos:pos+2])) + 269
		pos += 2
	}

	return delta, valueLength, pos
}

// writeOptionHeader writes a complete new option header (control byte
// plus any extended delta/length bytes, using the minimum width for
// each) to the start of dst. It returns the number of header bytes
// written.
func writeOptionHeader(dst []byte, delta, valueLength int) int {
	upperNibble, lowerNibble := nibbleFor(delta), nibbleFor(valueLength)
	dst[0] = upperNibble<<4 | lowerNibble
	pos := 1
	pos += writeExtended(dst[pos:], upperNibble, delta)
	pos += writeExtended(dst[pos:], lowerNibble, valueLength)
	return pos
}

// writeOptionDeltaHeader rewrites only the delta portion of an existing
// option's header, at the position that header must now occupy after a
// shift, while preserving the raw low nibble (length encoding) bits
// already established for that option. It returns the number of bytes
// written (the header up to, but not including, the length
// extension/value bytes, which are left untouched by the caller).
func writeOptionDeltaHeader(dst []byte, delta int, lowNibble byte) int {
	upperNibble := nibbleFor(delta)
	dst[0] = upperNibble<<4 | lowNibble
	pos := 1
	pos += writeExtended(dst[pos:], upperNibble, delta)
	return pos
}

// nibbleFor returns the 4-bit nibble encoding for a delta or length
// value: the value itself if <13, else the 13 or 14 sentinel indicating
// 1 or 2 extended bytes follow.
func nibbleFor(v int) byte {
	switch {
	case v < 13:
		return byte(v)
	case v < 269:
		return 13
	default:
		return 14
	}
}

// writeExtended writes the extended bytes implied by nibble (0, 1, or 2
// bytes) and returns how many it wrote.
func writeExtended(dst []byte, nibble byte, v int) int {
	switch nibble {
	case 13:
		dst[0] = byte(v - 13)
		return 1
	case 14:
		binary.BigEndian.PutUint16(dst, uint16(v-269))
		return 2
	default:
		return 0
	}
}

// optionsEnd returns the offset just past the last option: the position
// of the payload marker if a payload is attached, or the end of the PDU
// otherwise.
func (c *Codec) optionsEnd() int {
	if c.payloadOffset >= 0 {
		return c.payloadOffset - 1
	}
	return len(c.buf)
}

// findInsertionPosition scans the option list for the byte offset at
// which optionNumber should be inserted to keep the list in
// non-decreasing order, per the tie-break rule: when optionNumber
// matches an existing option's number, insertion happens after the last
// such option, because the scan only stops on a strictly greater number.
// It returns that offset and the option number of the option
// immediately preceding it (0 if inserting at the very start).
func (c *Codec) findInsertionPosition(optionNumber uint16) (offset int, prevNumber uint16) {
	end := c.optionsEnd()

	// Fast path: nothing added yet, or the new option sorts at or after
	// everything already present.
	if c.numOptions == 0 || optionNumber >= c.maxAddedOptionNumber {
		return end, c.maxAddedOptionNumber
	}

	pos := c.tokenEnd()
	var current uint16
	for pos < end {
		delta, valueLength, headerLen := decodeOptionHeader(c.buf[pos:])
		next := current + uint16(delta)
		if next > optionNumber {
			return pos, current
		}
		current = next
		pos += headerLen + valueLength
	}
	return pos, current
}

// AddOption inserts an option with the given number and value while
// preserving sort order and each option's minimal-width encoding. It
// never requires the caller to insert in ascending order: inserting a
// number smaller than the previous maximum shifts the following bytes
// and, if necessary, narrows the successor option's own delta header
// (inserting a smaller-numbered predecessor can only shrink, never grow,
// the successor's delta — so its header width can only stay the same or
// shrink).
//
// Multiple options with the same number are permitted (e.g. repeated
// Uri-Path segments); inserting one appends it after the last existing
// option with that number, preserving the caller's insertion order among
// equals.
//
// Fails with InvalidArgument if len(value) exceeds the 16-bit value
// length field's range. Fails with BufferFull if a borrowed buffer lacks
// room; the Codec is left unchanged in that case.
func (c *Codec) AddOption(number OptionNumber, value []byte) error {
	if len(value) > 0xFFFF {
		return newErr(KindInvalidArgument, ErrOutOfRange)
	}
	optionNumber := uint16(number)
	valueLength := len(value)

	insertOffset, prevNumber := c.findInsertionPosition(optionNumber)
	newDelta := int(optionNumber) - int(prevNumber)
	newOptionBytes := 1 + extraBytes(newDelta) + extraBytes(valueLength) + valueLength

	tail := insertOffset == c.optionsEnd()

	var shift, succDeltaNew int
	if !tail {
		succDeltaOld, _, _ := decodeOptionHeader(c.buf[insertOffset:])
		succNumber := prevNumber + uint16(succDeltaOld)
		succDeltaNew = int(succNumber) - int(optionNumber)
		widthDelta := extraBytes(succDeltaNew) - extraBytes(succDeltaOld)
		shift = newOptionBytes + widthDelta
	} else {
		shift = newOptionBytes
	}

	oldPDULength := len(c.buf)
	newPDULength := oldPDULength + shift
	if err := c.reserve(newPDULength); err != nil {
		return err
	}

	// Move the successor option (or the payload marker/payload, or
	// nothing at all) up to make room. copy() is memmove-safe for
	// overlapping slices, handling the highest-index-first requirement
	// implicitly regardless of shift's sign.
	copy(c.buf[insertOffset+shift:newPDULength], c.buf[insertOffset:oldPDULength])

	if !tail {
		// The successor's untouched length/value tail is already at its
		// final position after the block move; only its ctrl byte and
		// extended-delta bytes, which sit immediately before that tail,
		// need to be rewritten at their (possibly narrower) new width.
		succCtrlPos := insertOffset + shift
		succLowNibble := c.buf[succCtrlPos] & 0x0F
		writeOptionDeltaHeader(c.buf[insertOffset+newOptionBytes:], succDeltaNew, succLowNibble)
	}

	headerLen := writeOptionHeader(c.buf[insertOffset:], newDelta, valueLength)
	copy(c.buf[insertOffset+headerLen:insertOffset+newOptionBytes], value)

	if tail {
		c.maxAddedOptionNumber = optionNumber
	}
	c.numOptions++
	if c.payloadOffset >= 0 {
		c.payloadOffset += shift
	}

	c.log.Tracef("add_option: number=%d insert_offset=%d tail=%v shift=%d pdu_len=%d",
		optionNumber, insertOffset, tail, shift, len(c.buf))
	return nil
}

// Options walks the option region once and returns every option in wire
// order. The returned slices alias the Codec's buffer and are
// invalidated by any subsequent mutator.
func (c *Codec) Options() []Option {
	end := c.optionsEnd()
	pos := c.tokenEnd()

	opts := make([]Option, 0, c.numOptions)
	var current uint16
	for pos < end {
		delta, valueLength, headerLen := decodeOptionHeader(c.buf[pos:])
		current += uint16(delta)
		total := headerLen + valueLength
		opts = append(opts, Option{
			Number:      OptionNumber(current),
			Delta:       delta,
			ValueLength: valueLength,
			Value:       c.buf[pos+headerLen : pos+total],
			OptionSlice: c.buf[pos : pos+total],
		})
		pos += total
	}
	return opts
}

// NumOptions returns the number of options currently in the PDU.
func (c *Codec) NumOptions() int {
	return c.numOptions
}
