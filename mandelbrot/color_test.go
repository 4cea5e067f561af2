package mandelbrot

import (
	"errors"
	"image/color"
	"testing"
)

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		hue  float64
		want color.RGBA
	}{
		{0, color.RGBA{255, 0, 0, 255}},
		{30, color.RGBA{255, 127, 0, 255}},
		{60, color.RGBA{255, 255, 0, 255}},
		{90, color.RGBA{127, 255, 0, 255}},
		{120, color.RGBA{0, 255, 0, 255}},
		{180, color.RGBA{0, 255, 255, 255}},
		{240, color.RGBA{0, 0, 255, 255}},
		{300, color.RGBA{255, 0, 255, 255}},
		{360, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := (HSV{H: tt.hue, S: 1, V: 1}).ToRGB(); got != tt.want {
			t.Errorf("HSV{%f, 1, 1}.ToRGB() = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestHSVToRGBTruncates(t *testing.T) {
	// 0.5 * 255 = 127.5 must truncate to 127
	got := HSV{H: 0, S: 0.5, V: 1}.ToRGB()
	want := color.RGBA{255, 127, 127, 255}
	if got != want {
		t.Errorf("ToRGB() = %v, want %v", got, want)
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		iterations uint
		frequency  uint
		offset     uint
		want       color.RGBA
	}{
		{"binary interior", Binary, 100, 1, 0, Interior},
		{"binary escaped", Binary, 1, 1, 0, Exterior},
		{"binary ignores frequency", Binary, 42, 7, 3, Exterior},
		{"colored interior", Colored, 100, 1, 0, Interior},
		{"colored red", Colored, 360, 1, 0, color.RGBA{255, 0, 0, 255}},
		{"colored frequency and offset", Colored, 5, 10, 40, color.RGBA{127, 255, 0, 255}},
		{"colored wraps", Colored, 3, 100, 0, color.RGBA{255, 0, 255, 255}},
		{"colored blue", Colored, 60, 4, 0, color.RGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFor(tt.mode, tt.iterations, 100, tt.frequency, tt.offset); got != tt.want {
				t.Errorf("ColorFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorForIsPure(t *testing.T) {
	for _, mode := range []Mode{Binary, Colored} {
		for iterations := uint(1); iterations <= 500; iterations++ {
			first := ColorFor(mode, iterations, 500, 3, 17)
			second := ColorFor(mode, iterations, 500, 3, 17)
			if first != second {
				t.Fatalf("%s: ColorFor(%d) differs between calls: %v vs %v", mode, iterations, first, second)
			}
		}
	}
}

func TestColorerOpaque(t *testing.T) {
	colorer := Colorer(Colored, 1000, 1, 0)
	for iterations := uint(1); iterations <= 1000; iterations++ {
		if got := colorer(iterations); got.A != 255 {
			t.Fatalf("colorer(%d) alpha = %d", iterations, got.A)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, value := range []string{"binary", "colored"} {
		mode, err := ParseMode(value)
		if err != nil || string(mode) != value {
			t.Errorf("ParseMode(%q) = %q, %v", value, mode, err)
		}
	}
	if _, err := ParseMode("sepia"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(sepia) error = %v, want ErrUnknownMode", err)
	}
}
