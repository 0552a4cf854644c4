package statuslist

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/pkg/errors"
)

// DefaultMaxDecompressedBytes caps how many bytes a compressed status list
// may inflate to before decoding aborts. At the 1-bit width this covers
// lists of over a billion statuses.
const DefaultMaxDecompressedBytes int64 = 128 << 20

// compressStatuses deflates packed status bytes with zlib at the highest
// compression level.
func compressStatuses(packed []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, errors.Wrap(err, "could not create zlib writer")
	}
	if _, err := zw.Write(packed); err != nil {
		return nil, errors.Wrap(err, "could not compress status list")
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "could not finish compressing status list")
	}
	return buf.Bytes(), nil
}

// decompressStatuses inflates a zlib-compressed status list, refusing to
// produce more than limit bytes.
func decompressStatuses(compressed []byte, limit int64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptData, "%v", err)
	}
	defer func() {
		_ = zr.Close()
	}()
	packed, err := io.ReadAll(io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptData, "%v", err)
	}
	if int64(len(packed)) > limit {
		return nil, errors.Wrapf(ErrDecompressionLimit, "limit %d bytes", limit)
	}
	return packed, nil
}
