package mandelbrot

import (
	"errors"
	"testing"
)

func TestSettingsVerify(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *Settings)
		wantErr error
	}{
		{"defaults", func(s *Settings) {}, nil},
		{"empty mode falls back to binary", func(s *Settings) { s.Mode = "" }, nil},
		{"colored", func(s *Settings) { s.Mode = Colored }, nil},
		{"unknown mode", func(s *Settings) { s.Mode = "sepia" }, ErrUnknownMode},
		{"no iterations", func(s *Settings) { s.MaxIterations = 0 }, ErrInvalidIterations},
		{"zero zoom", func(s *Settings) { s.Zoom = 0 }, ErrInvalidZoom},
		{"negative zoom", func(s *Settings) { s.Zoom = -2 }, ErrInvalidZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.modify(&settings)
			err := settings.Verify()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Verify() = %v, want %v", err, tt.wantErr)
			}
			if err == nil && settings.Mode == "" {
				t.Error("Verify() left mode empty")
			}
		})
	}
}

func TestMandelbrot(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxIterations = 10
	m := NewMandelbrot(settings, 4, 4)

	if got := m.EscapeTime(Pixel{X: 3, Y: 2}); got != 10 {
		t.Errorf("EscapeTime at plane origin = %d, want 10", got)
	}
	if got := m.EscapeTime(Pixel{X: 0, Y: 0}); got != 1 {
		t.Errorf("EscapeTime at corner = %d, want 1", got)
	}
	colorFor := m.Colorer()
	if got := colorFor(10); got != Interior {
		t.Errorf("colorFor(max) = %v, want interior", got)
	}
	if got := colorFor(3); got != Exterior {
		t.Errorf("colorFor(3) = %v, want exterior", got)
	}
}

func TestMandelbrotWithKernel(t *testing.T) {
	var calls int
	m := NewMandelbrot(DefaultSettings(), 8, 8).WithKernel(func(real float64, imag float64, maxIterations uint) uint {
		calls++
		return 7
	})
	if got := m.EscapeTime(Pixel{X: 1, Y: 1}); got != 7 || calls != 1 {
		t.Errorf("EscapeTime = %d after %d calls, want 7 after 1", got, calls)
	}
}
