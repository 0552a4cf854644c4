package statuslist

import "github.com/pkg/errors"

// Builder accumulates statuses in index order and produces an immutable
// StatusList. A builder is single-use: after Build succeeds it refuses
// further mutation and further builds. Not safe for concurrent use.
type Builder struct {
	bits           BitsPerStatus
	statuses       []Status
	aggregationURI string
	finalized      bool
}

// NewBuilder returns an empty builder for statuses of the given width.
func NewBuilder(bits BitsPerStatus) (*Builder, error) {
	if !bits.valid() {
		return nil, errors.Wrapf(ErrInvalidBitsPerStatus, "got %d", bits)
	}
	return &Builder{bits: bits}, nil
}

// NewBuilderFromStatuses returns a builder seeded with the given statuses,
// validating every value against the width. The slice is copied.
func NewBuilderFromStatuses(statuses []Status, bits BitsPerStatus) (*Builder, error) {
	b, err := NewBuilder(bits)
	if err != nil {
		return nil, err
	}
	max := bits.MaxStatus()
	for i, s := range statuses {
		if s > max {
			return nil, errors.Wrapf(ErrStatusOutOfRange, "status 0x%02x at index %d exceeds %d-bit width", uint8(s), i, bits)
		}
	}
	b.statuses = append(b.statuses, statuses...)
	return b, nil
}

// AddStatus appends one status at the next index. Returns
// ErrStatusOutOfRange if the value does not fit the width and
// ErrBuilderFinalized after Build; the sequence is unchanged on error.
func (b *Builder) AddStatus(s Status) error {
	if b.finalized {
		return ErrBuilderFinalized
	}
	if s > b.bits.MaxStatus() {
		return errors.Wrapf(ErrStatusOutOfRange, "status 0x%02x exceeds %d-bit width", uint8(s), b.bits)
	}
	b.statuses = append(b.statuses, s)
	return nil
}

// SetAggregationURI records the URI under which this list is aggregated with
// related lists. Empty clears it.
func (b *Builder) SetAggregationURI(uri string) error {
	if b.finalized {
		return ErrBuilderFinalized
	}
	b.aggregationURI = uri
	return nil
}

// Len returns the number of statuses appended so far.
func (b *Builder) Len() int {
	return len(b.statuses)
}

// LastIndex returns the index of the most recently appended status. The
// second return is false while the builder is empty.
func (b *Builder) LastIndex() (uint64, bool) {
	if len(b.statuses) == 0 {
		return 0, false
	}
	return uint64(len(b.statuses) - 1), true
}

// BitsPerStatus returns the width the builder validates against.
func (b *Builder) BitsPerStatus() BitsPerStatus {
	return b.bits
}

// Build packs and compresses the accumulated statuses into a StatusList and
// finalizes the builder. An empty builder yields a list with an empty packed
// buffer, which is still a valid compressed document. Any call after a
// successful Build returns ErrBuilderFinalized; the first list stays valid.
func (b *Builder) Build() (*StatusList, error) {
	if b.finalized {
		return nil, ErrBuilderFinalized
	}
	packed, err := Pack(b.statuses, b.bits)
	if err != nil {
		return nil, err
	}
	compressed, err := compressStatuses(packed)
	if err != nil {
		return nil, err
	}
	b.finalized = true
	return &StatusList{
		bits:           b.bits,
		lst:            compressed,
		aggregationURI: b.aggregationURI,
	}, nil
}
