package statuslist

import (
	"encoding/base64"

	"github.com/pkg/errors"
)

// Decoder gives random access into a status list. The compressed payload is
// inflated once at construction; afterwards the decoder is immutable and
// safe for concurrent readers.
type Decoder struct {
	bits                 BitsPerStatus
	packed               []byte
	maxDecompressedBytes int64
}

// DecoderOption is a functional option for the Decoder type.
type DecoderOption func(*Decoder)

// WithMaxDecompressedBytes overrides DefaultMaxDecompressedBytes as the
// guard against decompression bombs. Values below one are ignored.
func WithMaxDecompressedBytes(n int64) DecoderOption {
	return func(d *Decoder) {
		if n > 0 {
			d.maxDecompressedBytes = n
		}
	}
}

// NewDecoder decompresses the list's payload and returns a decoder over it.
func NewDecoder(list *StatusList, opts ...DecoderOption) (*Decoder, error) {
	if list == nil {
		return nil, errors.New("nil status list")
	}
	return NewDecoderFromCompressed(list.bits, list.lst, opts...)
}

// NewDecoderFromCompressed builds a decoder straight from a zlib-compressed
// payload, for callers that carry the width separately from the bytes.
func NewDecoderFromCompressed(bits BitsPerStatus, compressed []byte, opts ...DecoderOption) (*Decoder, error) {
	if !bits.valid() {
		return nil, errors.Wrapf(ErrInvalidBitsPerStatus, "got %d", bits)
	}
	d := &Decoder{bits: bits, maxDecompressedBytes: DefaultMaxDecompressedBytes}
	for _, opt := range opts {
		opt(d)
	}
	packed, err := decompressStatuses(compressed, d.maxDecompressedBytes)
	if err != nil {
		return nil, err
	}
	d.packed = packed
	return d, nil
}

// NewDecoderFromBase64 builds a decoder from the textual form of the
// payload, unpadded URL-safe base64 as carried in the JSON wire document.
func NewDecoderFromBase64(bits BitsPerStatus, encoded string, opts ...DecoderOption) (*Decoder, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedEncoding, "payload is not unpadded url-safe base64: %v", err)
	}
	return NewDecoderFromCompressed(bits, compressed, opts...)
}

// StatusAt returns the status code at the given index. Codes are returned
// as stored, without mapping against the registered status types; use
// ParseStatus when only registered types are acceptable.
func (d *Decoder) StatusAt(index uint64) (Status, error) {
	return StatusAt(d.packed, d.bits, index)
}

// Len returns the number of statuses addressable in the list. Zero padding
// in a trailing partial byte is indistinguishable from appended zero-valued
// statuses, so this is the capacity of the decompressed buffer, which may
// exceed the count the producer appended.
func (d *Decoder) Len() uint64 {
	return capacity(len(d.packed), d.bits)
}

// IsEmpty reports whether the list holds no statuses at all.
func (d *Decoder) IsEmpty() bool {
	return len(d.packed) == 0
}

// Bytes returns a copy of the decompressed packed statuses.
func (d *Decoder) Bytes() []byte {
	return append([]byte{}, d.packed...)
}

// BitsPerStatus returns the width of each status in the list.
func (d *Decoder) BitsPerStatus() BitsPerStatus {
	return d.bits
}
