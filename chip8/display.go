package chip8

import "strings"

// The original implementation of the Chip-8 language used a 64x32-pixel
// monochrome display.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome frame buffer. (0, 0) is the top-left pixel,
// x grows to the right and y grows downward. Row y is stored at pixels[y].
type Display struct {
	pixels [DisplayHeight][DisplayWidth]bool
}

// Width returns the number of pixel columns, DisplayWidth.
func (d *Display) Width() int { return DisplayWidth }

// Height returns the number of pixel rows, DisplayHeight.
func (d *Display) Height() int { return DisplayHeight }

// Pixel reports whether the pixel at (x, y) is on. Coordinates outside the
// display are off.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d.pixels[y][x]
}

func (d *Display) String() string {
	var b strings.Builder
	b.Grow((DisplayWidth + 1) * DisplayHeight)
	for y := range d.pixels {
		for _, on := range d.pixels[y] {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (d *Display) clear() {
	d.pixels = [DisplayHeight][DisplayWidth]bool{}
}

// drawRow XORs the 8 bits of row onto the display, most significant bit at
// (x, y). Pixels falling past the right or bottom edge are clipped.
// It reports whether a lit pixel was turned off.
func (d *Display) drawRow(x, y int, row byte) (collision bool) {
	if y >= DisplayHeight {
		return false
	}
	for col := 0; col < 8; col++ {
		if row&(0x80>>uint(col)) == 0 {
			continue
		}
		px := x + col
		if px >= DisplayWidth {
			break
		}
		if d.pixels[y][px] {
			collision = true
		}
		d.pixels[y][px] = !d.pixels[y][px]
	}
	return collision
}
