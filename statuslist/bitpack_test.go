package statuslist

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestPack_KnownBytes(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		bits     BitsPerStatus
		want     []byte
	}{
		{
			name:     "one bit sixteen statuses",
			statuses: []Status{1, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1},
			bits:     OneBit,
			want:     []byte{0xB9, 0xA3},
		},
		{
			name:     "two bits full byte",
			statuses: []Status{0, 1, 2, 3},
			bits:     TwoBits,
			want:     []byte{0xE4}, // 11 10 01 00
		},
		{
			name:     "two bits partial byte",
			statuses: []Status{3, 0, 1},
			bits:     TwoBits,
			want:     []byte{0x13}, // 00 01 00 11, high bits zero
		},
		{
			name:     "four bits low nibble first",
			statuses: []Status{1, 2},
			bits:     FourBits,
			want:     []byte{0x21},
		},
		{
			name:     "four bits twelve statuses",
			statuses: []Status{1, 2, 0, 3, 0, 1, 0, 1, 1, 2, 3, 3},
			bits:     FourBits,
			want:     []byte{0x21, 0x30, 0x10, 0x10, 0x21, 0x33},
		},
		{
			name:     "four bits odd count",
			statuses: []Status{15, 1, 9},
			bits:     FourBits,
			want:     []byte{0x1F, 0x09},
		},
		{
			name:     "eight bits identity",
			statuses: []Status{0x00, 0x01, 0xAB, 0xFF},
			bits:     EightBits,
			want:     []byte{0x00, 0x01, 0xAB, 0xFF},
		},
		{
			name:     "empty",
			statuses: nil,
			bits:     OneBit,
			want:     []byte{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pack(tt.statuses, tt.bits)
			if err != nil {
				t.Fatalf("Pack() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Pack() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestPack_StatusOutOfRange(t *testing.T) {
	tests := []struct {
		statuses []Status
		bits     BitsPerStatus
	}{
		{statuses: []Status{0, 2}, bits: OneBit},
		{statuses: []Status{4}, bits: TwoBits},
		{statuses: []Status{16}, bits: FourBits},
		{statuses: []Status{0, 0, 0, 255}, bits: FourBits},
	}
	for _, tt := range tests {
		got, err := Pack(tt.statuses, tt.bits)
		if !errors.Is(err, ErrStatusOutOfRange) {
			t.Errorf("Pack(%v, %d) error = %v, want ErrStatusOutOfRange", tt.statuses, tt.bits, err)
		}
		if got != nil {
			t.Errorf("Pack(%v, %d) = %x, want no partial output", tt.statuses, tt.bits, got)
		}
	}
}

func TestPack_InvalidWidth(t *testing.T) {
	for _, bits := range []BitsPerStatus{0, 3, 5, 6, 7, 9, 16, 255} {
		if _, err := Pack([]Status{0}, bits); !errors.Is(err, ErrInvalidBitsPerStatus) {
			t.Errorf("Pack(width %d) error = %v, want ErrInvalidBitsPerStatus", bits, err)
		}
	}
}

func TestStatusAt_ReadsBack(t *testing.T) {
	tests := []struct {
		statuses []Status
		bits     BitsPerStatus
	}{
		{statuses: []Status{1, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1}, bits: OneBit},
		{statuses: []Status{0, 1, 2, 3, 3, 2, 1, 0}, bits: TwoBits},
		{statuses: []Status{1, 2, 0, 3, 0, 1, 0, 1, 1, 2, 3, 3}, bits: FourBits},
		{statuses: []Status{0x00, 0x01, 0x7F, 0x80, 0xFF}, bits: EightBits},
	}
	for _, tt := range tests {
		packed, err := Pack(tt.statuses, tt.bits)
		if err != nil {
			t.Fatalf("Pack() error = %v", err)
		}
		for i, want := range tt.statuses {
			got, err := StatusAt(packed, tt.bits, uint64(i))
			if err != nil {
				t.Fatalf("StatusAt(%d) error = %v", i, err)
			}
			if got != want {
				t.Errorf("StatusAt(%d) at width %d = %d, want %d", i, tt.bits, got, want)
			}
		}
	}
}

func TestStatusAt_OutOfBounds(t *testing.T) {
	packed := []byte{0xB9, 0xA3}
	if _, err := StatusAt(packed, OneBit, 15); err != nil {
		t.Errorf("StatusAt(15) error = %v, want nil at last index", err)
	}
	if _, err := StatusAt(packed, OneBit, 16); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("StatusAt(16) error = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := StatusAt(packed, EightBits, 2); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("StatusAt(2) at width 8 error = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := StatusAt(nil, OneBit, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("StatusAt on empty error = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := StatusAt(packed, BitsPerStatus(3), 0); !errors.Is(err, ErrInvalidBitsPerStatus) {
		t.Errorf("StatusAt(width 3) error = %v, want ErrInvalidBitsPerStatus", err)
	}
}

func TestStatusAt_PaddingReadsZero(t *testing.T) {
	// Three 2-bit statuses fill one byte with a zero-padded high position.
	packed, err := Pack([]Status{3, 3, 3}, TwoBits)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	got, err := StatusAt(packed, TwoBits, 3)
	if err != nil {
		t.Fatalf("StatusAt(3) error = %v", err)
	}
	if got != 0 {
		t.Errorf("padding position = %d, want 0", got)
	}
}

func TestPackedLength(t *testing.T) {
	tests := []struct {
		count int
		bits  BitsPerStatus
		want  int
	}{
		{count: 0, bits: OneBit, want: 0},
		{count: 1, bits: OneBit, want: 1},
		{count: 8, bits: OneBit, want: 1},
		{count: 9, bits: OneBit, want: 2},
		{count: 16, bits: OneBit, want: 2},
		{count: 3, bits: TwoBits, want: 1},
		{count: 5, bits: TwoBits, want: 2},
		{count: 12, bits: FourBits, want: 6},
		{count: 3, bits: FourBits, want: 2},
		{count: 7, bits: EightBits, want: 7},
	}
	for _, tt := range tests {
		if got := packedLength(tt.count, tt.bits); got != tt.want {
			t.Errorf("packedLength(%d, %d) = %d, want %d", tt.count, tt.bits, got, tt.want)
		}
	}
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		byteLen int
		bits    BitsPerStatus
		want    uint64
	}{
		{byteLen: 0, bits: OneBit, want: 0},
		{byteLen: 2, bits: OneBit, want: 16},
		{byteLen: 1, bits: TwoBits, want: 4},
		{byteLen: 6, bits: FourBits, want: 12},
		{byteLen: 5, bits: EightBits, want: 5},
	}
	for _, tt := range tests {
		if got := capacity(tt.byteLen, tt.bits); got != tt.want {
			t.Errorf("capacity(%d, %d) = %d, want %d", tt.byteLen, tt.bits, got, tt.want)
		}
	}
}
