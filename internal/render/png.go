package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// MaxScale is the largest supported image scale factor.
const MaxScale = 64

var (
	colorOn  = color.Gray{Y: 0xFF}
	colorOff = color.Gray{Y: 0x00}
)

// Image returns the display as grayscale image, every pixel enlarged to a
// scale x scale square.
func Image(d Display, scale int) (*image.Gray, error) {
	if scale < 1 || scale > MaxScale {
		return nil, fmt.Errorf("invalid scale %d, expected 1-%d", scale, MaxScale)
	}

	src := image.NewGray(image.Rect(0, 0, d.Width(), d.Height()))
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			if d.Pixel(x, y) {
				src.SetGray(x, y, colorOn)
			} else {
				src.SetGray(x, y, colorOff)
			}
		}
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewGray(image.Rect(0, 0, d.Width()*scale, d.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// PNG writes the display as PNG image, see Image for the scale handling.
func PNG(w io.Writer, d Display, scale int) error {
	img, err := Image(d, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
