package statuslist

import (
	"encoding/base64"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// statusListJSON is the textual wire form. Field order is the wire order.
type statusListJSON struct {
	Bits           uint8  `json:"bits"`
	Lst            string `json:"lst"`
	AggregationURI string `json:"aggregation_uri,omitempty"`
}

// statusListRawJSON defers interpretation of the fields so that absent and
// malformed values can be told apart.
type statusListRawJSON struct {
	Bits           jsoniter.RawMessage `json:"bits"`
	Lst            *string             `json:"lst"`
	AggregationURI string              `json:"aggregation_uri"`
}

// MarshalJSON implements json.Marshaler. The width is written as a JSON
// number and the compressed payload as unpadded URL-safe base64.
func (sl *StatusList) MarshalJSON() ([]byte, error) {
	return json.Marshal(&statusListJSON{
		Bits:           uint8(sl.bits),
		Lst:            base64.RawURLEncoding.EncodeToString(sl.lst),
		AggregationURI: sl.aggregationURI,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The width is accepted as a JSON
// number or a decimal string; unknown keys are ignored. Structural problems
// return ErrMalformedEncoding, a width outside {1,2,4,8} returns
// ErrInvalidBitsPerStatus. The compressed payload is not inflated here.
func (sl *StatusList) UnmarshalJSON(data []byte) error {
	var raw statusListRawJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(ErrMalformedEncoding, "%v", err)
	}
	if len(raw.Bits) == 0 {
		return errors.Wrap(ErrMalformedEncoding, "missing bits field")
	}
	if raw.Lst == nil {
		return errors.Wrap(ErrMalformedEncoding, "missing lst field")
	}
	bits, err := parseBitsValue(raw.Bits)
	if err != nil {
		return err
	}
	compressed, err := base64.RawURLEncoding.DecodeString(*raw.Lst)
	if err != nil {
		return errors.Wrapf(ErrMalformedEncoding, "lst is not unpadded url-safe base64: %v", err)
	}
	parsed, err := NewStatusList(bits, compressed)
	if err != nil {
		return err
	}
	parsed.aggregationURI = raw.AggregationURI
	*sl = *parsed
	return nil
}

// parseBitsValue reads the width from its raw JSON token, tolerating both a
// JSON number and a quoted decimal string.
func parseBitsValue(raw jsoniter.RawMessage) (BitsPerStatus, error) {
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, errors.Wrapf(ErrMalformedEncoding, "%v", err)
		}
		text = s
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedEncoding, "bits field %q is not a whole number", text)
	}
	if v > 255 {
		return 0, errors.Wrapf(ErrInvalidBitsPerStatus, "got %d", v)
	}
	return ParseBitsPerStatus(uint8(v))
}
