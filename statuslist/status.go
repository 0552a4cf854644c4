package statuslist

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is a single status code carried in a status list. Codes 0x00-0x02
// have registered meanings, 0x03 and 0x0B-0x0F are reserved for
// application-specific use, and 0x04-0x0A are reserved for future
// registration. Lists built with EightBits may additionally carry any value
// up to 0xFF as an opaque application code.
type Status uint8

const (
	// StatusValid means the referenced token is valid.
	StatusValid Status = 0x00
	// StatusInvalid means the referenced token is revoked.
	StatusInvalid Status = 0x01
	// StatusSuspended means the referenced token is temporarily invalid.
	StatusSuspended Status = 0x02

	// StatusApplicationSpecific3 through StatusApplicationSpecific15 carry
	// meanings defined by the application profile in use.
	StatusApplicationSpecific3  Status = 0x03
	StatusApplicationSpecific11 Status = 0x0B
	StatusApplicationSpecific12 Status = 0x0C
	StatusApplicationSpecific13 Status = 0x0D
	StatusApplicationSpecific14 Status = 0x0E
	StatusApplicationSpecific15 Status = 0x0F
)

// ParseStatus maps a raw code to the registry of named status types. Values
// 0x04-0x0A and anything above 0x0F are not registered and return
// ErrUndefinedStatus. Decoding does not apply this mapping; it is for
// callers that only accept registered types.
func ParseStatus(v uint8) (Status, error) {
	s := Status(v)
	switch s {
	case StatusValid, StatusInvalid, StatusSuspended,
		StatusApplicationSpecific3,
		StatusApplicationSpecific11, StatusApplicationSpecific12,
		StatusApplicationSpecific13, StatusApplicationSpecific14,
		StatusApplicationSpecific15:
		return s, nil
	default:
		return 0, errors.Wrapf(ErrUndefinedStatus, "got 0x%02x", v)
	}
}

// String returns the registry name of the status, or a numeric form for
// unregistered codes.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusSuspended:
		return "suspended"
	case StatusApplicationSpecific3,
		StatusApplicationSpecific11, StatusApplicationSpecific12,
		StatusApplicationSpecific13, StatusApplicationSpecific14,
		StatusApplicationSpecific15:
		return fmt.Sprintf("application_specific(%d)", uint8(s))
	default:
		return fmt.Sprintf("unregistered(%d)", uint8(s))
	}
}
