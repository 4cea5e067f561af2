package coordinator

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/task"

	"github.com/zeromicro/go-zero/core/conf"
)

var (
	ErrInvalidResolution = errors.New("resolution must be at least 2")
	ErrInvalidThreads    = errors.New("thread count must be auto, 0 or a positive integer")
)

// Settings describe one render. The embedded mandelbrot settings keep settings files flat.
type Settings struct {
	mandelbrot.Settings

	Manifest   bool          `json:"manifest,optional"`
	Partition  task.Strategy `json:"partition,default=striped,options=striped|block"`
	Path       string        `json:"path,default=out.png"`
	Resolution int           `json:"resolution,default=2048"`
	Threads    int           `json:"threads,default=0"`
}

func DefaultSettings() Settings {
	return Settings{
		Settings:   mandelbrot.DefaultSettings(),
		Partition:  task.Striped,
		Path:       "out.png",
		Resolution: 2048,
	}
}

// NewSettings loads settings from a json, yaml or toml file. Missing keys take their defaults.
func NewSettings(settingsFile string) (Settings, error) {
	var s Settings
	if err := conf.Load(settingsFile, &s); err != nil {
		return Settings{}, fmt.Errorf("loading %s: %w", settingsFile, err)
	}
	if err := s.Verify(); err != nil {
		return Settings{}, fmt.Errorf("verifying %s: %w", settingsFile, err)
	}
	return s, nil
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Manifest: %t\n", s.Manifest)
	output += fmt.Sprintf("Partition: %s\n", s.Partition)
	output += fmt.Sprintf("Path: %s\n", s.Path)
	output += fmt.Sprintf("Resolution: %d\n", s.Resolution)
	output += fmt.Sprintf("Threads: %d\n", s.Threads)
	output += s.Settings.String()
	return output
}

func (s *Settings) Verify() error {
	if err := s.Settings.Verify(); err != nil {
		return err
	}
	if s.Partition == "" {
		s.Partition = task.Striped
	}
	strategy, err := task.ParseStrategy(string(s.Partition))
	if err != nil {
		return err
	}
	s.Partition = strategy
	if s.Path == "" {
		s.Path = "out.png"
	}
	// The center pixel must not land on row 0, which a 1 pixel image would do
	if s.Resolution < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidResolution, s.Resolution)
	}
	if s.Threads < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThreads, s.Threads)
	}
	return nil
}

// ParseThreads reads a thread count from the command line. "auto" and "0" both request one thread per CPU.
func ParseThreads(value string) (int, error) {
	if value == "auto" || value == "" {
		return 0, nil
	}
	threads, err := strconv.Atoi(value)
	if err != nil || threads < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidThreads, value)
	}
	return threads, nil
}

// ResolveThreads turns a requested thread count into the number of workers to start.
func ResolveThreads(requested int) int {
	if requested > 0 {
		return requested
	}
	if cpus := runtime.NumCPU(); cpus > 0 {
		return cpus
	}
	return 1
}
