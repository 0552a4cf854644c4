package statuslist

import "github.com/pkg/errors"

var (
	// ErrInvalidBitsPerStatus means a status list declared a bit width the
	// format does not define.
	ErrInvalidBitsPerStatus = errors.New("bits per status must be 1, 2, 4, or 8")

	// ErrStatusOutOfRange means a status value does not fit in the list's
	// bit width.
	ErrStatusOutOfRange = errors.New("status value does not fit in bits per status")

	// ErrIndexOutOfBounds means a lookup index is past the last addressable
	// status in a packed buffer.
	ErrIndexOutOfBounds = errors.New("status index out of bounds")

	// ErrBuilderFinalized means Build was already called on the builder.
	ErrBuilderFinalized = errors.New("status list builder already finalized")

	// ErrCorruptData means the compressed payload is not a valid zlib stream.
	ErrCorruptData = errors.New("corrupt compressed status list")

	// ErrDecompressionLimit means the compressed payload would expand past
	// the decoder's maximum decompressed size.
	ErrDecompressionLimit = errors.New("decompressed status list exceeds size limit")

	// ErrMalformedEncoding means a wire document is structurally invalid.
	ErrMalformedEncoding = errors.New("malformed status list encoding")

	// ErrUndefinedStatus means a status value is outside the registry of
	// named status types.
	ErrUndefinedStatus = errors.New("status value is not a registered status type")
)
