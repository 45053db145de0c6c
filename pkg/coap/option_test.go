package coap

import (
	"bytes"
	"testing"
)

func TestAddOptionAscendingOrder(t *testing.T) {
	c := New()
	must(t, c.AddOption(OptionURIPath, []byte("a")))
	must(t, c.AddOption(OptionURIPath, []byte("b")))
	must(t, c.AddOption(OptionContentFormat, []byte{0}))

	opts := c.Options()
	if len(opts) != 3 {
		t.Fatalf("Options() len = %d, want 3", len(opts))
	}
	wantNumbers := []OptionNumber{OptionURIPath, OptionURIPath, OptionContentFormat}
	for i, want := range wantNumbers {
		if opts[i].Number != want {
			t.Fatalf("Options()[%d].Number = %v, want %v", i, opts[i].Number, want)
		}
	}
}

func TestAddOptionDuplicateNumbersPreserveInsertionOrder(t *testing.T) {
	c := New()
	must(t, c.AddOption(OptionURIPath, []byte("first")))
	must(t, c.AddOption(OptionURIPath, []byte("second")))
	must(t, c.AddOption(OptionURIPath, []byte("third")))

	opts := c.Options()
	if len(opts) != 3 {
		t.Fatalf("Options() len = %d, want 3", len(opts))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if string(opts[i].Value) != w {
			t.Fatalf("Options()[%d].Value = %q, want %q", i, opts[i].Value, w)
		}
	}
}

func TestAddOptionOutOfOrderInsertsBeforeLarger(t *testing.T) {
	c := New()
	must(t, c.AddOption(60, []byte("big")))
	must(t, c.AddOption(20, []byte("small")))

	opts := c.Options()
	if len(opts) != 2 {
		t.Fatalf("Options() len = %d, want 2", len(opts))
	}
	if opts[0].Number != 20 || string(opts[0].Value) != "small" {
		t.Fatalf("Options()[0] = %+v, want number 20 value small", opts[0])
	}
	if opts[1].Number != 60 || string(opts[1].Value) != "big" {
		t.Fatalf("Options()[1] = %+v, want number 60 value big", opts[1])
	}
}

func TestAddOptionWidthBoundaries(t *testing.T) {
	// Deltas and value lengths that straddle the 13/269 nibble thresholds.
	tests := []struct {
		name   string
		number OptionNumber
		value  []byte
	}{
		{"delta 12", 12, []byte("x")},
		{"delta 13", 25, []byte("x")},            // delta 13 from 12
		{"delta 268 from 25", 293, []byte("x")}, // delta 268
		{"delta 269 from 293", 562, []byte("x")}, // delta 269
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.AddOption(tt.number, tt.value); err != nil {
				t.Fatalf("AddOption(%d, ...) = %v", tt.number, err)
			}
		})
	}

	opts := c.Options()
	if len(opts) != len(tests) {
		t.Fatalf("Options() len = %d, want %d", len(opts), len(tests))
	}
	for i, tt := range tests {
		if opts[i].Number != tt.number {
			t.Fatalf("Options()[%d].Number = %v, want %v", i, opts[i].Number, tt.number)
		}
	}
}

func TestAddOptionValueLengthWidthBoundaries(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"value length 12", 12},
		{"value length 13", 13},
		{"value length 268", 268},
		{"value length 269", 269},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			value := bytes.Repeat([]byte{0x42}, tt.n)
			must(t, c.AddOption(OptionURIPath, value))

			opts := c.Options()
			if len(opts) != 1 || opts[0].ValueLength != tt.n {
				t.Fatalf("Options() = %+v, want a single option of length %d", opts, tt.n)
			}
			if !bytes.Equal(opts[0].Value, value) {
				t.Fatalf("Options()[0].Value mismatch")
			}
		})
	}
}

func TestAddOptionRejectsOversizedValue(t *testing.T) {
	c := New()
	err := c.AddOption(OptionURIPath, make([]byte, 0x10000))
	if !IsInvalidArgument(err) {
		t.Fatalf("AddOption with 65536-byte value = %v, want InvalidArgument", err)
	}
}

func TestAddOptionInsertsBeforeExistingPayload(t *testing.T) {
	c := New()
	must(t, c.AddOption(OptionURIPath, []byte("a")))
	must(t, c.SetPayload([]byte("body")))

	must(t, c.AddOption(OptionContentFormat, []byte{0}))

	opts := c.Options()
	if len(opts) != 2 {
		t.Fatalf("Options() len = %d, want 2", len(opts))
	}
	if !bytes.Equal(c.Payload(), []byte("body")) {
		t.Fatalf("Payload() = %q, want %q", c.Payload(), "body")
	}
}

func TestOptionNumberZeroAndMax(t *testing.T) {
	c := New()
	must(t, c.AddOption(0, nil))
	must(t, c.AddOption(65535, []byte("v")))

	opts := c.Options()
	if len(opts) != 2 {
		t.Fatalf("Options() len = %d, want 2", len(opts))
	}
	if opts[0].Number != 0 {
		t.Fatalf("Options()[0].Number = %v, want 0", opts[0].Number)
	}
	if opts[1].Number != 65535 {
		t.Fatalf("Options()[1].Number = %v, want 65535", opts[1].Number)
	}
}
