package oled

import "fmt"

// Bitmap is a 1-bit-per-pixel image stored row-major, one byte per pixel.
// Any nonzero byte is a lit pixel. Producing a Bitmap from text or an
// arbitrary image (rotation, resampling, rasterization) is the caller's
// business; this package only packs and ships it.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBitmap returns an all-dark bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}
}

// Set lights or clears the pixel at (x, y).
func (b *Bitmap) Set(x, y int, on bool) {
	if on {
		b.Pix[y*b.Width+x] = 1
	} else {
		b.Pix[y*b.Width+x] = 0
	}
}

// At reports whether the pixel at (x, y) is lit.
func (b *Bitmap) At(x, y int) bool {
	return b.Pix[y*b.Width+x] != 0
}

// Pack groups pixels into bytes of eight in row-major order, first pixel in
// the most significant bit. A final partial group is padded with zero bits.
// The result is the wire representation the firmware expects.
func (b *Bitmap) Pack() []byte {
	packed := make([]byte, (len(b.Pix)+7)/8)
	for i, p := range b.Pix {
		if p != 0 {
			packed[i/8] |= 1 << (7 - i%8)
		}
	}
	return packed
}

// Unpack reverses Pack for a width x height bitmap.
func Unpack(packed []byte, width, height int) (*Bitmap, error) {
	want := (width*height + 7) / 8
	if len(packed) != want {
		return nil, fmt.Errorf("oled: packed length is %d, want %d for %dx%d", len(packed), want, width, height)
	}
	b := NewBitmap(width, height)
	for i := range b.Pix {
		if packed[i/8]&(1<<(7-i%8)) != 0 {
			b.Pix[i] = 1
		}
	}
	return b, nil
}
