package coap

import (
	"bytes"
	"testing"
)

func TestSetPayloadAddsMarker(t *testing.T) {
	c := New()
	must(t, c.SetPayload([]byte("hello")))

	if !c.HasPayload() {
		t.Fatalf("HasPayload() = false, want true")
	}
	built := c.Build()
	if built[len(built)-6] != PayloadMarker {
		t.Fatalf("expected payload marker before payload, got % x", built)
	}
	if !bytes.Equal(c.Payload(), []byte("hello")) {
		t.Fatalf("Payload() = %q, want %q", c.Payload(), "hello")
	}
}

func TestSetPayloadReplacesExisting(t *testing.T) {
	c := New()
	must(t, c.SetPayload([]byte("hello")))
	must(t, c.SetPayload([]byte("hi")))

	if !bytes.Equal(c.Payload(), []byte("hi")) {
		t.Fatalf("Payload() = %q, want %q", c.Payload(), "hi")
	}
	if got, want := c.Len(), HeaderSize+1+2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestSetPayloadRejectsEmpty(t *testing.T) {
	c := New()
	must(t, c.SetPayload([]byte("hello")))

	err := c.SetPayload(nil)
	if !IsInvalidArgument(err) {
		t.Fatalf("SetPayload(nil) = %v, want InvalidArgument", err)
	}
	if !bytes.Equal(c.Payload(), []byte("hello")) {
		t.Fatalf("Payload() after rejected SetPayload = %q, want unchanged %q", c.Payload(), "hello")
	}

	err = c.SetPayload([]byte{})
	if !IsInvalidArgument(err) {
		t.Fatalf("SetPayload([]byte{}) = %v, want InvalidArgument", err)
	}
}

func TestMallocPayloadReturnsWritableSlice(t *testing.T) {
	c := New()
	buf, err := c.MallocPayload(4)
	if err != nil {
		t.Fatalf("MallocPayload(4) = %v", err)
	}
	copy(buf, []byte{1, 2, 3, 4})

	if !bytes.Equal(c.Payload(), []byte{1, 2, 3, 4}) {
		t.Fatalf("Payload() = % x, want 01 02 03 04", c.Payload())
	}
}

func TestMallocPayloadRejectsZero(t *testing.T) {
	c := New()
	must(t, c.SetPayload([]byte("x")))

	_, err := c.MallocPayload(0)
	if !IsInvalidArgument(err) {
		t.Fatalf("MallocPayload(0) = %v, want InvalidArgument", err)
	}
	if !bytes.Equal(c.Payload(), []byte("x")) {
		t.Fatalf("Payload() after rejected MallocPayload = %q, want unchanged %q", c.Payload(), "x")
	}
}

func TestMallocPayloadRejectsNegative(t *testing.T) {
	c := New()
	if _, err := c.MallocPayload(-1); !IsInvalidArgument(err) {
		t.Fatalf("MallocPayload(-1) = %v, want InvalidArgument", err)
	}
}

func TestPayloadRegionAfterOptions(t *testing.T) {
	c := New()
	must(t, c.AddOption(OptionURIPath, []byte("a")))
	must(t, c.SetPayload([]byte{1, 2, 3}))
	must(t, c.AddOption(OptionURIPath, []byte("b")))

	if got, want := c.PayloadLength(), 3; got != want {
		t.Fatalf("PayloadLength() = %d, want %d", got, want)
	}
	if !bytes.Equal(c.Payload(), []byte{1, 2, 3}) {
		t.Fatalf("Payload() = % x, want 01 02 03", c.Payload())
	}
}
