package machine

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// framebuffer is the monochrome pixel grid, stored row-major.
type framebuffer struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

func (f *framebuffer) clear() {
	f.pixels = [DisplayWidth * DisplayHeight]bool{}
}

// draw XORs the 8 pixel wide sprite rows onto the framebuffer at the given
// coordinates and returns 1 if any set pixel was turned off.
func (f *framebuffer) draw(x, y int, sprite []byte, edge EdgeMode) uint8 {
	x %= DisplayWidth
	y %= DisplayHeight

	var collision uint8
	for row, bits := range sprite {
		py := y + row
		if py >= DisplayHeight {
			if edge == EdgeClip {
				break
			}
			py %= DisplayHeight
		}

		for bit := 0; bit < 8; bit++ {
			if bits&(0x80>>bit) == 0 {
				continue
			}
			px := x + bit
			if px >= DisplayWidth {
				if edge == EdgeClip {
					break
				}
				px %= DisplayWidth
			}

			i := py*DisplayWidth + px
			if f.pixels[i] {
				collision = 1
			}
			f.pixels[i] = !f.pixels[i]
		}
	}
	return collision
}

// Screen is a read-only view of the framebuffer of a machine.
type Screen struct {
	fb *framebuffer
}

// Width returns the screen width in pixels.
func (s Screen) Width() int {
	return DisplayWidth
}

// Height returns the screen height in pixels.
func (s Screen) Height() int {
	return DisplayHeight
}

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates outside of the screen return false.
func (s Screen) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= DisplayWidth || y >= DisplayHeight {
		return false
	}
	return s.fb.pixels[y*DisplayWidth+x]
}

// Snapshot returns a row-major copy of the current pixels.
func (s Screen) Snapshot() []bool {
	pixels := make([]bool, len(s.fb.pixels))
	copy(pixels, s.fb.pixels[:])
	return pixels
}

// Lit returns the number of pixels that are set.
func (s Screen) Lit() int {
	var n int
	for _, p := range s.fb.pixels {
		if p {
			n++
		}
	}
	return n
}
