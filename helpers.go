package main

import (
	"flag"
	"fmt"
	"time"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/task"

	"github.com/bytedance/sonic"
)

// Manifest records what was rendered next to the image so a run can be reproduced.
type Manifest struct {
	Elapsed  string               `json:"elapsed"`
	Image    string               `json:"image"`
	Settings coordinator.Settings `json:"settings"`
	Threads  int                  `json:"threads"`
}

// parseArguments reads the command line into render settings. A settings file replaces every other render flag.
func parseArguments() (coordinator.Settings, error) {
	defaults := coordinator.DefaultSettings()

	flag.StringVar(&settingsFile, "settings", "", "Json, yaml or toml file with render settings")
	flag.StringVar(&mode, "mode", string(defaults.Mode), "Coloring mode: binary or colored")
	flag.StringVar(&path, "path", defaults.Path, "Output png file")
	flag.IntVar(&resolution, "resolution", defaults.Resolution, "Width and height of the square image")
	flag.UintVar(&iterations, "iterations", defaults.MaxIterations, "Iterations to run to verify each point")
	flag.UintVar(&frequency, "frequency", defaults.ColorFrequency, "Hue degrees per iteration in colored mode")
	flag.UintVar(&offset, "offset", defaults.ColorOffset, "Hue offset in degrees in colored mode")
	flag.StringVar(&threads, "threads", "auto", "Worker threads: auto, 0 or a positive count")
	flag.StringVar(&partition, "partition", string(defaults.Partition), "Column partitioning: striped or block")
	flag.Float64Var(&centerX, "centerX", defaults.CenterX, "Real part of the image center")
	flag.Float64Var(&centerY, "centerY", defaults.CenterY, "Imaginary part of the image center")
	flag.Float64Var(&zoom, "zoom", defaults.Zoom, "Magnification of the default view")
	flag.BoolVar(&writeManifest, "manifest", false, "Write a json manifest next to the image")
	flag.BoolVar(&enableGops, "gops", false, "Start a gops diagnostics agent")

	flag.Parse()

	if settingsFile != "" {
		return coordinator.NewSettings(settingsFile)
	}
	return settingsFromFlags()
}

func settingsFromFlags() (coordinator.Settings, error) {
	settings := coordinator.DefaultSettings()

	parsedMode, err := mandelbrot.ParseMode(mode)
	if err != nil {
		return settings, err
	}
	parsedPartition, err := task.ParseStrategy(partition)
	if err != nil {
		return settings, err
	}
	parsedThreads, err := coordinator.ParseThreads(threads)
	if err != nil {
		return settings, err
	}

	settings.CenterX = centerX
	settings.CenterY = centerY
	settings.ColorFrequency = frequency
	settings.ColorOffset = offset
	settings.Manifest = writeManifest
	settings.MaxIterations = iterations
	settings.Mode = parsedMode
	settings.Partition = parsedPartition
	settings.Path = path
	settings.Resolution = resolution
	settings.Threads = parsedThreads
	settings.Zoom = zoom

	return settings, settings.Verify()
}

// writeRunManifest stores the manifest at <image>.json and returns its file name.
func writeRunManifest(settings coordinator.Settings, threads int, elapsed time.Duration) (string, error) {
	manifest := Manifest{
		Elapsed:  elapsed.String(),
		Image:    settings.Path,
		Settings: settings,
		Threads:  threads,
	}
	contents, err := sonic.ConfigStd.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}

	manifestFile := settings.Path + ".json"
	if _, err := misc.WriteFile(manifestFile, contents); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}
	return manifestFile, nil
}
