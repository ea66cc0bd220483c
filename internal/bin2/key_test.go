package bin2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurrenm3/BTD-Battles-2-Decryptor/internal/bin2"
)

// Fixed vectors computed once from the derivation formula. Any drift in
// the wraparound or shift semantics shows up here before it silently
// corrupts files.
func TestDeriveKeyFixtures(t *testing.T) {
	tests := []struct {
		name   string
		length uint32
		want   [4]uint32
	}{
		{
			name:   "zero length",
			length: 0,
			want:   [4]uint32{0, 0, 0, 0},
		},
		{
			name:   "length 1",
			length: 1,
			want:   [4]uint32{0x00042021, 0x04080601, 0x9dcca8c5, 0x1255994f},
		},
		{
			name:   "length 10",
			length: 10,
			want:   [4]uint32{0x0029414a, 0x2802bc0a, 0x8ffbbaab, 0xed7a797c},
		},
		{
			name:   "length 16",
			length: 16,
			want:   [4]uint32{0x00420231, 0x40844453, 0xc9c64ad4, 0x130599da},
		},
		{
			name:   "length 4096",
			length: 4096,
			want:   [4]uint32{0x42023100, 0x80645131, 0x420cf610, 0x451d9697},
		},
		{
			name:   "high bit lengths wrap",
			length: 0xDEADBEEF,
			want:   [4]uint32{0x477d20b7, 0x8e1d9142, 0xba8c2458, 0xfee0503b},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bin2.DeriveKey(tt.length))
		})
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	for _, length := range []uint32{0, 1, 7, 8, 255, 1 << 20, 0xFFFFFFFF} {
		first := bin2.DeriveKey(length)

		for i := 0; i < 3; i++ {
			require.Equal(t, first, bin2.DeriveKey(length), "length %d", length)
		}
	}
}

func TestKeystreamSerialization(t *testing.T) {
	// Little-endian serialization of DeriveKey(10).
	want := [bin2.KeySize]byte{
		0x4a, 0x41, 0x29, 0x00,
		0x0a, 0xbc, 0x02, 0x28,
		0xab, 0xba, 0xfb, 0x8f,
		0x7c, 0x79, 0x7a, 0xed,
	}

	assert.Equal(t, want, bin2.Keystream(10))

	assert.Equal(t, [bin2.KeySize]byte{}, bin2.Keystream(0), "zero length derives an all-zero block")
}
