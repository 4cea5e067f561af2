package mandelbrot

import (
	"image/color"
)

// Mandelbrot binds the settings of one render to an image size. It is a value type and safe for concurrent use.
type Mandelbrot struct {
	kernel   Kernel
	mapping  Mapping
	settings Settings
}

func NewMandelbrot(settings Settings, width int, height int) Mandelbrot {
	return Mandelbrot{
		kernel:   EscapeTime,
		mapping:  settings.View().Mapping(width, height),
		settings: settings,
	}
}

// WithKernel returns a copy that classifies points with kernel instead of EscapeTime.
func (m Mandelbrot) WithKernel(kernel Kernel) Mandelbrot {
	m.kernel = kernel
	return m
}

func (m Mandelbrot) Mapping() Mapping {
	return m.mapping
}

func (m Mandelbrot) MaxIterations() uint {
	return m.settings.MaxIterations
}

// EscapeTime classifies the point covered by the pixel.
func (m Mandelbrot) EscapeTime(pixel Pixel) uint {
	point := m.mapping.ToPlane(pixel)
	return m.kernel(point.Real, point.Imag, m.settings.MaxIterations)
}

// Colorer returns the coloring function for this render's mode.
func (m Mandelbrot) Colorer() func(uint) color.RGBA {
	return Colorer(m.settings.Mode, m.settings.MaxIterations, m.settings.ColorFrequency, m.settings.ColorOffset)
}
