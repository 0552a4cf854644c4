package statuslist

import "github.com/pkg/errors"

// StatusList is the wire-level status list document: the width of each
// status and the zlib-compressed packed statuses, plus an optional URI
// pointing at an aggregation of related lists. Values are immutable once
// constructed; lists are produced by a Builder or parsed from a wire form,
// and read through a Decoder.
type StatusList struct {
	bits           BitsPerStatus
	lst            []byte
	aggregationURI string
}

// NewStatusList wraps an already-compressed status payload. The payload is
// copied but not inspected; corruption surfaces when a Decoder is
// constructed from the list.
func NewStatusList(bits BitsPerStatus, compressed []byte) (*StatusList, error) {
	if !bits.valid() {
		return nil, errors.Wrapf(ErrInvalidBitsPerStatus, "got %d", bits)
	}
	return &StatusList{bits: bits, lst: append([]byte{}, compressed...)}, nil
}

// BitsPerStatus returns the width of each status in the list.
func (sl *StatusList) BitsPerStatus() BitsPerStatus {
	return sl.bits
}

// Compressed returns a copy of the zlib-compressed packed statuses.
func (sl *StatusList) Compressed() []byte {
	return append([]byte{}, sl.lst...)
}

// AggregationURI returns the URI where related status lists are aggregated,
// or the empty string when unset.
func (sl *StatusList) AggregationURI() string {
	return sl.aggregationURI
}
