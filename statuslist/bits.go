package statuslist

import "github.com/pkg/errors"

// BitsPerStatus is the number of bits a single status entry occupies in a
// packed status list. The wire format defines exactly four widths.
type BitsPerStatus uint8

const (
	// OneBit holds binary valid/invalid statuses, eight per byte.
	OneBit BitsPerStatus = 1
	// TwoBits holds statuses 0-3, four per byte.
	TwoBits BitsPerStatus = 2
	// FourBits holds statuses 0-15, two per byte.
	FourBits BitsPerStatus = 4
	// EightBits holds statuses 0-255, one per byte.
	EightBits BitsPerStatus = 8
)

// ParseBitsPerStatus validates a raw width value, typically read from the
// "bits" member of a wire document.
func ParseBitsPerStatus(v uint8) (BitsPerStatus, error) {
	b := BitsPerStatus(v)
	if !b.valid() {
		return 0, errors.Wrapf(ErrInvalidBitsPerStatus, "got %d", v)
	}
	return b, nil
}

func (b BitsPerStatus) valid() bool {
	switch b {
	case OneBit, TwoBits, FourBits, EightBits:
		return true
	default:
		return false
	}
}

// StatusesPerByte returns how many statuses of this width fit in one byte.
func (b BitsPerStatus) StatusesPerByte() int {
	return 8 / int(b)
}

// MaxStatus returns the largest status value representable at this width.
func (b BitsPerStatus) MaxStatus() Status {
	return Status(uint16(1)<<b - 1)
}
