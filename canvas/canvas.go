package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"ParallelMandelbrot/misc"
)

//go:generate mockgen -source=canvas.go -destination=mock_encoder_test.go -package=canvas

// Encoder writes an image in some file format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// PNGEncoder writes lossless PNG files.
type PNGEncoder struct {
	CompressionLevel png.CompressionLevel
}

func (e PNGEncoder) Encode(w io.Writer, img image.Image) error {
	encoder := png.Encoder{CompressionLevel: e.CompressionLevel}
	return encoder.Encode(w, img)
}

// Canvas owns an opaque RGB pixel buffer. Writes outside of the buffer are dropped.
type Canvas struct {
	encoder Encoder
	height  int
	image   *image.RGBA
	width   int

	Stroke color.RGBA
}

// New returns a black canvas with a white stroke.
func New(width int, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)

	return &Canvas{
		encoder: PNGEncoder{CompressionLevel: png.DefaultCompression},
		height:  height,
		image:   img,
		width:   width,
		Stroke:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// SetEncoder changes the file format written by Save.
func (c *Canvas) SetEncoder(encoder Encoder) {
	c.encoder = encoder
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) Image() *image.RGBA {
	return c.image
}

func (c *Canvas) InBounds(x int, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) PutPixel(x int, y int, pixel color.RGBA) {
	if !c.InBounds(x, y) {
		return
	}
	c.image.SetRGBA(x, y, pixel)
}

func (c *Canvas) Pixel(x int, y int) color.RGBA {
	return c.image.RGBAAt(x, y)
}

// Save encodes the canvas to path. The file only appears once it has been fully written.
func (c *Canvas) Save(path string) error {
	err := misc.WriteFileWith(path, func(w io.Writer) error {
		return c.encoder.Encode(w, c.image)
	})
	if err != nil {
		return fmt.Errorf("saving canvas: %w", err)
	}
	return nil
}
