package mandelbrot

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIterations = errors.New("max iterations must be at least 1")
	ErrInvalidZoom       = errors.New("zoom must be positive")
)

// Settings are the fractal parameters shared by every worker of a render.
type Settings struct {
	CenterX        float64 `json:"centerX,default=-0.75"`
	CenterY        float64 `json:"centerY,default=0"`
	ColorFrequency uint    `json:"colorFrequency,default=1"`
	ColorOffset    uint    `json:"colorOffset,default=0"`
	MaxIterations  uint    `json:"maxIterations,default=100"`
	Mode           Mode    `json:"mode,default=binary,options=binary|colored"`
	Zoom           float64 `json:"zoom,default=1"`
}

func DefaultSettings() Settings {
	return Settings{
		CenterX:        DefaultView.CenterX,
		CenterY:        DefaultView.CenterY,
		ColorFrequency: 1,
		MaxIterations:  100,
		Mode:           Binary,
		Zoom:           DefaultView.Zoom,
	}
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Center: (%f, %f)\n", s.CenterX, s.CenterY)
	output += fmt.Sprintf("Color Frequency: %d\n", s.ColorFrequency)
	output += fmt.Sprintf("Color Offset: %d\n", s.ColorOffset)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Mode: %s\n", s.Mode)
	output += fmt.Sprintf("Zoom: %f\n", s.Zoom)
	return output
}

func (s *Settings) View() View {
	return View{CenterX: s.CenterX, CenterY: s.CenterY, Zoom: s.Zoom}
}

func (s *Settings) Verify() error {
	if s.Mode == "" {
		s.Mode = Binary
	}
	mode, err := ParseMode(string(s.Mode))
	if err != nil {
		return err
	}
	s.Mode = mode
	if s.MaxIterations < 1 {
		return ErrInvalidIterations
	}
	if s.Zoom <= 0 {
		return fmt.Errorf("%w: %f", ErrInvalidZoom, s.Zoom)
	}
	return nil
}
