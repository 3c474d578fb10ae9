package oled

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackBitOrder(t *testing.T) {
	b := NewBitmap(8, 1)
	// pattern 10110001
	for _, x := range []int{0, 2, 3, 7} {
		b.Set(x, 0, true)
	}
	assert.Equal(t, []byte{0xB1}, b.Pack())
}

func TestPackRowMajorOrder(t *testing.T) {
	b := NewBitmap(4, 2)
	// Second row entirely lit: pixels 4..7, the low nibble of the byte.
	for x := 0; x < 4; x++ {
		b.Set(x, 1, true)
	}
	assert.Equal(t, []byte{0x0F}, b.Pack())
}

func TestPackPartialBytePadding(t *testing.T) {
	b := NewBitmap(12, 1)
	for x := 0; x < 12; x++ {
		b.Set(x, 0, true)
	}
	// 12 lit pixels: one full byte, then four bits padded with zeros.
	assert.Equal(t, []byte{0xFF, 0xF0}, b.Pack())
}

func TestPackedLength(t *testing.T) {
	tests := []struct {
		width, height int
		want          int
	}{
		{128, 32, 512},
		{8, 1, 1},
		{9, 1, 2},
		{7, 3, 3},
		{0, 0, 0},
	}
	for _, tt := range tests {
		b := NewBitmap(tt.width, tt.height)
		assert.Len(t, b.Pack(), tt.want, "%dx%d", tt.width, tt.height)
		assert.Equal(t, tt.want, Geometry{Width: tt.width, Height: tt.height}.PackedLen())
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, geom := range []Geometry{{128, 32}, {31, 7}, {1, 1}} {
		b := NewBitmap(geom.Width, geom.Height)
		for i := range b.Pix {
			if rng.Intn(2) == 1 {
				b.Pix[i] = 1
			}
		}

		out, err := Unpack(b.Pack(), geom.Width, geom.Height)
		require.NoError(t, err)
		assert.Equal(t, b.Pix, out.Pix, "round trip for %s", geom)
	}
}

func TestUnpackLengthMismatch(t *testing.T) {
	_, err := Unpack(make([]byte, 10), 128, 32)
	assert.Error(t, err)
}

func TestParsePanel(t *testing.T) {
	left, err := ParsePanel("Left")
	require.NoError(t, err)
	assert.Equal(t, PanelLeft, left)

	right, err := ParsePanel("right")
	require.NoError(t, err)
	assert.Equal(t, PanelRight, right)

	_, err = ParsePanel("middle")
	assert.Error(t, err)
}
