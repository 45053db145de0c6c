package coap

// Type identifies the CoAP message type, encoded in bits 5..4 of the
// first header byte (RFC 7252 §3).
type Type uint8

const (
	// Confirmable requests an acknowledgement from the recipient.
	Confirmable Type = 0
	// NonConfirmable does not request an acknowledgement.
	NonConfirmable Type = 1
	// Acknowledgement confirms receipt of a Confirmable message.
	Acknowledgement Type = 2
	// Reset indicates the recipient could not process a message.
	Reset Type = 3
)

// String returns a human-readable name for the message type.
func (t Type) String() string {
	switch t {
	case Confirmable:
		return "Confirmable"
	case NonConfirmable:
		return "NonConfirmable"
	case Acknowledgement:
		return "Acknowledgement"
	case Reset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t is one of the four defined message types.
// All 2-bit values are defined, so this always holds for values in range.
func (t Type) IsValid() bool {
	return t <= Reset
}

// OptionNumber identifies a CoAP option in the registry (RFC 7252 §12.2,
// plus the block-wise transfer extensions from RFC 7959).
type OptionNumber uint16

// Registered option numbers used by this codec's convenience helpers and
// by OptionNumber.Name. Applications may use any option number;
// these are simply the ones the CoAP core spec names.
const (
	OptionIfMatch       OptionNumber = 1
	OptionURIHost       OptionNumber = 3
	OptionETag          OptionNumber = 4
	OptionIfNoneMatch   OptionNumber = 5
	OptionObserve       OptionNumber = 6
	OptionURIPort       OptionNumber = 7
	OptionLocationPath  OptionNumber = 8
	OptionURIPath       OptionNumber = 11
	OptionContentFormat OptionNumber = 12
	OptionMaxAge        OptionNumber = 14
	OptionURIQuery      OptionNumber = 15
	OptionAccept        OptionNumber = 17
	OptionLocationQuery OptionNumber = 20
	OptionBlock2        OptionNumber = 23
	OptionBlock1        OptionNumber = 27
	OptionSize2         OptionNumber = 28
	OptionProxyURI      OptionNumber = 35
	OptionProxyScheme   OptionNumber = 39
	OptionSize1         OptionNumber = 60
)

var optionNames = map[OptionNumber]string{
	OptionIfMatch:       "If-Match",
	OptionURIHost:       "Uri-Host",
	OptionETag:          "ETag",
	OptionIfNoneMatch:   "If-None-Match",
	OptionObserve:       "Observe",
	OptionURIPort:       "Uri-Port",
	OptionLocationPath:  "Location-Path",
	OptionURIPath:       "Uri-Path",
	OptionContentFormat: "Content-Format",
	OptionMaxAge:        "Max-Age",
	OptionURIQuery:      "Uri-Query",
	OptionAccept:        "Accept",
	OptionLocationQuery: "Location-Query",
	OptionBlock2:        "Block2",
	OptionBlock1:        "Block1",
	OptionSize2:         "Size2",
	OptionProxyURI:      "Proxy-Uri",
	OptionProxyScheme:   "Proxy-Scheme",
	OptionSize1:         "Size1",
}

// Name returns the RFC 7252 registry name for n, or "Unknown" if n is not
// one of the option numbers this package names.
func (n OptionNumber) Name() string {
	if name, ok := optionNames[n]; ok {
		return name
	}
	return "Unknown"
}
