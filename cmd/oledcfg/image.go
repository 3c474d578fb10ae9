package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/seagrayinc/oledcfg/pkg/oled"
)

// loadBitmap reads an image file and thresholds it to a 1bpp bitmap sized
// for the panel. The image must already match the geometry exactly.
func loadBitmap(path string, geom oled.Geometry) (*oled.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != geom.Width || bounds.Dy() != geom.Height {
		return nil, fmt.Errorf("image is %dx%d, panel is %s", bounds.Dx(), bounds.Dy(), geom)
	}

	bmp := oled.NewBitmap(geom.Width, geom.Height)
	for y := 0; y < geom.Height; y++ {
		for x := 0; x < geom.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// Rec. 601 luma, lit above half scale.
			luma := (299*r + 587*g + 114*b) / 1000
			bmp.Set(x, y, luma >= 0x8000)
		}
	}
	return bmp, nil
}
