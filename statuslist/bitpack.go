package statuslist

import "github.com/pkg/errors"

// packedLength returns the number of bytes needed to hold count statuses at
// the given width. Widths divide 8, so no status straddles a byte boundary.
func packedLength(count int, bits BitsPerStatus) int {
	return (count*int(bits) + 7) / 8
}

// capacity returns how many statuses a packed byte slice of the given length
// can address.
func capacity(byteLen int, bits BitsPerStatus) uint64 {
	return uint64(byteLen) * uint64(bits.StatusesPerByte())
}

// Pack packs statuses into bytes, least significant bits first: the status at
// index 0 occupies the lowest-order bits of byte 0, and each subsequent
// status the next bits-per-status positions up. Unused high bits of a
// trailing partial byte are zero. Returns ErrStatusOutOfRange if any value
// needs more bits than the width allows; no partial output is produced.
func Pack(statuses []Status, bits BitsPerStatus) ([]byte, error) {
	if !bits.valid() {
		return nil, errors.Wrapf(ErrInvalidBitsPerStatus, "got %d", bits)
	}
	max := bits.MaxStatus()
	packed := make([]byte, packedLength(len(statuses), bits))
	for i, s := range statuses {
		if s > max {
			return nil, errors.Wrapf(ErrStatusOutOfRange, "status 0x%02x at index %d exceeds %d-bit width", uint8(s), i, bits)
		}
		bitPos := i * int(bits)
		packed[bitPos/8] |= byte(s) << uint(bitPos%8)
	}
	return packed, nil
}

// StatusAt extracts the status at index from packed bytes. The offset
// arithmetic is index times width, so it holds uniformly for every legal
// width. Returns ErrIndexOutOfBounds when the index is at or past the
// capacity of the packed slice.
func StatusAt(packed []byte, bits BitsPerStatus, index uint64) (Status, error) {
	if !bits.valid() {
		return 0, errors.Wrapf(ErrInvalidBitsPerStatus, "got %d", bits)
	}
	if c := capacity(len(packed), bits); index >= c {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "index %d, capacity %d", index, c)
	}
	bitPos := index * uint64(bits)
	return Status(packed[bitPos/8] >> uint(bitPos%8) & byte(bits.MaxStatus())), nil
}
