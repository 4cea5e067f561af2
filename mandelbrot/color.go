package mandelbrot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Mode selects how escaped points are colored.
type Mode string

const (
	Binary  Mode = "binary"
	Colored Mode = "colored"
)

var ErrUnknownMode = errors.New("unknown render mode")

func (m Mode) String() string {
	return string(m)
}

func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case Binary, Colored:
		return Mode(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
}

var (
	Interior = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Exterior = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ColorFor returns the color of a point that took iterations steps to escape.
func ColorFor(mode Mode, iterations uint, maxIterations uint, frequency uint, offset uint) color.RGBA {
	return Colorer(mode, maxIterations, frequency, offset)(iterations)
}

// Colorer picks the coloring function for mode once so the coloring pass does not branch on it per pixel.
func Colorer(mode Mode, maxIterations uint, frequency uint, offset uint) func(uint) color.RGBA {
	if mode == Colored {
		return func(iterations uint) color.RGBA {
			if iterations == maxIterations {
				return Interior
			}
			hue := (iterations*frequency + offset) % 360
			return HSV{H: float64(hue), S: 1, V: 1}.ToRGB()
		}
	}
	return func(iterations uint) color.RGBA {
		if iterations == maxIterations {
			return Interior
		}
		return Exterior
	}
}

// HSV is a color with hue in [0, 360) and saturation and value in [0, 1].
type HSV struct {
	H float64
	S float64
	V float64
}

// ToRGB converts with the hexagonal projection. Channels are truncated, not rounded.
// https://en.wikipedia.org/wiki/HSL_and_HSV#HSV_to_RGB
func (hsv HSV) ToRGB() color.RGBA {
	sector := math.Floor(hsv.H / 60)
	f := hsv.H/60 - sector
	p := hsv.V * (1 - hsv.S)
	q := hsv.V * (1 - hsv.S*f)
	t := hsv.V * (1 - hsv.S*(1-f))

	var r, g, b float64
	switch sector {
	case 0, 6:
		r, g, b = hsv.V, t, p
	case 1:
		r, g, b = q, hsv.V, p
	case 2:
		r, g, b = p, hsv.V, t
	case 3:
		r, g, b = p, q, hsv.V
	case 4:
		r, g, b = t, p, hsv.V
	case 5:
		r, g, b = hsv.V, p, q
	default:
		r, g, b = 1, 1, 1
	}
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}
