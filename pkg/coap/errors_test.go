package coap

import (
	"errors"
	"testing"
)

func TestCodecErrorIsSentinel(t *testing.T) {
	err := newErr(KindBufferFull, ErrBufferFull)
	if !errors.Is(err, ErrBufferFull) {
		t.Fatalf("errors.Is(err, ErrBufferFull) = false")
	}
	if errors.Is(err, ErrOutOfRange) {
		t.Fatalf("errors.Is(err, ErrOutOfRange) = true, want false")
	}
}

func TestCodecErrorKindHelpers(t *testing.T) {
	tests := []struct {
		err     error
		wantInv bool
		wantBuf bool
		wantMal bool
	}{
		{newErr(KindInvalidArgument, ErrOutOfRange), true, false, false},
		{newErr(KindBufferFull, ErrBufferFull), false, true, false},
		{newErr(KindMalformed, ErrBadVersion), false, false, true},
		{errors.New("plain error"), false, false, false},
	}
	for _, tt := range tests {
		if got := IsInvalidArgument(tt.err); got != tt.wantInv {
			t.Fatalf("IsInvalidArgument(%v) = %v, want %v", tt.err, got, tt.wantInv)
		}
		if got := IsBufferFull(tt.err); got != tt.wantBuf {
			t.Fatalf("IsBufferFull(%v) = %v, want %v", tt.err, got, tt.wantBuf)
		}
		if got := IsMalformed(tt.err); got != tt.wantMal {
			t.Fatalf("IsMalformed(%v) = %v, want %v", tt.err, got, tt.wantMal)
		}
	}
}

func TestCodecErrorMessageNonEmpty(t *testing.T) {
	err := newErr(KindMalformed, ErrBadVersion)
	if got := err.Error(); got == "" {
		t.Fatalf("Error() = empty string")
	}
}
