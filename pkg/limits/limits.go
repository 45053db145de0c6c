// Package limits holds the transport-boundary safety limits a CoAP
// endpoint enforces before handing bytes to the codec: how large an
// incoming datagram it is willing to allocate a PDU for, and how large a
// single option value it is willing to accept. The codec package itself
// enforces none of this — it trusts the caller to bound pdu_length before
// calling Wrap and Validate.
package limits

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Limits bounds the sizes a transport should accept before handing a
// datagram to the codec.
type Limits struct {
	// MaxPDUSize is the largest datagram, in bytes, a receiver should
	// accept for decoding.
	MaxPDUSize int
	// MaxOptionValueSize is the largest single option value, in bytes, a
	// receiver should accept while walking a validated PDU's options.
	MaxOptionValueSize int
}

// DefaultMaxPDUSize matches RFC 7252's recommendation that an
// implementation be prepared to handle a message of up to 1152 bytes,
// covering the default UDP path MTU minus headers.
const DefaultMaxPDUSize = 1152

// DefaultMaxOptionValueSize covers the largest single-option values
// named in the RFC 7252 option registry (e.g. Uri-Path up to 255 bytes)
// with headroom for larger site-local option values.
const DefaultMaxOptionValueSize = 1024

// DefaultLimits returns the RFC 7252-recommended defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxPDUSize:         DefaultMaxPDUSize,
		MaxOptionValueSize: DefaultMaxOptionValueSize,
	}
}

type fileLimits struct {
	MaxPDUSize         int `toml:"max_pdu_size"`
	MaxOptionValueSize int `toml:"max_option_value_size"`
}

// LoadLimits reads Limits from a TOML file at path, starting from
// DefaultLimits and overlaying only the keys the file actually sets, the
// same "defaults plus explicit overlay" shape edgectl's per-service
// config loaders use.
func LoadLimits(path string) (Limits, error) {
	cfg := DefaultLimits()

	var raw fileLimits
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Limits{}, fmt.Errorf("load limits: %w", err)
	}

	if meta.IsDefined("max_pdu_size") {
		if raw.MaxPDUSize <= 0 {
			return Limits{}, fmt.Errorf("load limits: max_pdu_size must be positive")
		}
		cfg.MaxPDUSize = raw.MaxPDUSize
	}
	if meta.IsDefined("max_option_value_size") {
		if raw.MaxOptionValueSize <= 0 {
			return Limits{}, fmt.Errorf("load limits: max_option_value_size must be positive")
		}
		cfg.MaxOptionValueSize = raw.MaxOptionValueSize
	}

	for _, key := range meta.Undecoded() {
		return Limits{}, fmt.Errorf("load limits: unknown key %q", strings.Join(key, "."))
	}

	return cfg, nil
}
