package statuslist

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// statusListCBOR is the binary wire form: a map with text keys, the width as
// an unsigned integer and the compressed payload as a byte string. Field
// order is the wire order, so the struct must not be reordered.
type statusListCBOR struct {
	Bits           uint8  `cbor:"bits"`
	Lst            []byte `cbor:"lst"`
	AggregationURI string `cbor:"aggregation_uri,omitempty"`
}

// statusListRawCBOR defers interpretation of the fields so that absent and
// malformed values can be told apart.
type statusListRawCBOR struct {
	Bits           cbor.RawMessage `cbor:"bits"`
	Lst            cbor.RawMessage `cbor:"lst"`
	AggregationURI cbor.RawMessage `cbor:"aggregation_uri"`
}

// MarshalCBOR implements cbor.Marshaler.
func (sl *StatusList) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(&statusListCBOR{
		Bits:           uint8(sl.bits),
		Lst:            sl.lst,
		AggregationURI: sl.aggregationURI,
	})
}

// UnmarshalCBOR implements cbor.Unmarshaler. Structural problems return
// ErrMalformedEncoding, a width outside {1,2,4,8} returns
// ErrInvalidBitsPerStatus. The compressed payload is not inflated here.
func (sl *StatusList) UnmarshalCBOR(data []byte) error {
	var raw statusListRawCBOR
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(ErrMalformedEncoding, "%v", err)
	}
	if len(raw.Bits) == 0 {
		return errors.Wrap(ErrMalformedEncoding, "missing bits field")
	}
	if len(raw.Lst) == 0 {
		return errors.Wrap(ErrMalformedEncoding, "missing lst field")
	}
	var width uint64
	if err := cbor.Unmarshal(raw.Bits, &width); err != nil {
		return errors.Wrapf(ErrMalformedEncoding, "bits field: %v", err)
	}
	if width > 255 {
		return errors.Wrapf(ErrInvalidBitsPerStatus, "got %d", width)
	}
	bits, err := ParseBitsPerStatus(uint8(width))
	if err != nil {
		return err
	}
	var compressed []byte
	if err := cbor.Unmarshal(raw.Lst, &compressed); err != nil {
		return errors.Wrapf(ErrMalformedEncoding, "lst field: %v", err)
	}
	parsed, err := NewStatusList(bits, compressed)
	if err != nil {
		return err
	}
	if len(raw.AggregationURI) != 0 {
		var uri string
		if err := cbor.Unmarshal(raw.AggregationURI, &uri); err != nil {
			return errors.Wrapf(ErrMalformedEncoding, "aggregation_uri field: %v", err)
		}
		parsed.aggregationURI = uri
	}
	*sl = *parsed
	return nil
}
