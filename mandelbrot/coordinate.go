package mandelbrot

import "fmt"

// Pixel is a position on the image, indexed from the top left corner.
type Pixel struct {
	X int
	Y int
}

func (p Pixel) String() string {
	return fmt.Sprintf("{Pixel X: %d Y: %d}", p.X, p.Y)
}

// Point is a position on the complex plane.
type Point struct {
	Real float64
	Imag float64
}

func (p Point) String() string {
	return fmt.Sprintf("{Point Real: %f Imag: %f}", p.Real, p.Imag)
}

// Mapping converts pixels to points on the complex plane. It is a value type and is never mutated after
// construction so every worker can share one copy without locking.
type Mapping struct {
	center Pixel
	origin Point
	xPerPx float64
	yPerPx float64
}

// NewMapping builds a mapping where xExtent and yExtent are the plane units visible from the center pixel to the
// right and top edge of an image that is width pixels wide.
//
// The center pixel must not sit on the boundary it divides by: center.Y != 0 and center.X != width.
func NewMapping(center Pixel, xExtent float64, yExtent float64, width int) Mapping {
	return Mapping{
		center: center,
		xPerPx: xExtent / float64(width-center.X),
		yPerPx: yExtent / float64(center.Y),
	}
}

// WithOrigin returns a copy of the mapping whose center pixel lands on origin instead of 0+0i.
func (m Mapping) WithOrigin(origin Point) Mapping {
	m.origin = origin
	return m
}

// ToPlane converts the pixel to the cartesian point it covers.
func (m Mapping) ToPlane(p Pixel) Point {
	/*
	 * Pixels grow to the right and down while the plane grows to the right and up, so the y axis is
	 * inverted after moving the center pixel to (0, 0).
	 */
	cartesianX := p.X - m.center.X
	cartesianY := -(p.Y - m.center.Y)
	return Point{
		Real: float64(cartesianX)*m.xPerPx + m.origin.Real,
		Imag: float64(cartesianY)*m.yPerPx + m.origin.Imag,
	}
}

// Scale returns the plane units covered by one pixel along each axis.
func (m Mapping) Scale() (float64, float64) {
	return m.xPerPx, m.yPerPx
}

// View describes which part of the plane ends up on the image.
type View struct {
	CenterX float64
	CenterY float64
	Zoom    float64
}

// DefaultView frames the whole set.
var DefaultView = View{CenterX: -0.75, CenterY: 0, Zoom: 1}

// baseExtent is the distance from the center to the image edge at zoom 1.
const baseExtent = 1.5

// Mapping builds the mapping for an image of the given size looking at this view.
func (v View) Mapping(width int, height int) Mapping {
	extent := baseExtent / v.Zoom
	center := Pixel{X: width / 2, Y: height / 2}
	return NewMapping(center, extent, extent, width).WithOrigin(Point{Real: v.CenterX, Imag: v.CenterY})
}
