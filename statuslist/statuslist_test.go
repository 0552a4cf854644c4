package statuslist_test

import (
	"testing"

	"github.com/shaileshp0110/token-status-list/statuslist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusList(t *testing.T) {
	compressed := []byte{0x78, 0xDA, 0x01, 0x02}
	sl, err := statuslist.NewStatusList(statuslist.TwoBits, compressed)
	require.NoError(t, err)
	assert.Equal(t, statuslist.TwoBits, sl.BitsPerStatus())
	assert.Equal(t, compressed, sl.Compressed())
	assert.Equal(t, "", sl.AggregationURI())

	_, err = statuslist.NewStatusList(statuslist.BitsPerStatus(5), compressed)
	require.ErrorIs(t, err, statuslist.ErrInvalidBitsPerStatus)
}

func TestStatusList_CompressedIsACopy(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	sl, err := statuslist.NewStatusList(statuslist.OneBit, payload)
	require.NoError(t, err)

	// Neither mutating the input nor the returned slice may reach the list.
	payload[0] = 0xFF
	first := sl.Compressed()
	first[1] = 0xFF
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, sl.Compressed())
}
