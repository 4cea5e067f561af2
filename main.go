package main

import (
	"time"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/misc"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/google/gops/agent"
)

var (
	centerX, centerY, zoom                       float64
	frequency, iterations, offset                uint
	resolution                                   int
	mode, partition, path, settingsFile, threads string
	enableGops, writeManifest                    bool
)

func main() {
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	settings, err := parseArguments()
	misc.CheckError(err, logger, misc.Fatal)

	if enableGops {
		misc.CheckError(agent.Listen(agent.Options{}), logger, misc.Fatal)
		defer agent.Close()
		logger.Info("Started gops agent")
	}

	logger.Info(settings.String())

	startTime := time.Now()
	c, err := coordinator.NewCoordinator(settings)
	misc.CheckError(err, logger, misc.Fatal)

	img, err := c.Render()
	misc.CheckError(err, logger, misc.Fatal)
	elapsed := time.Since(startTime)

	misc.CheckError(img.Save(settings.Path), logger, misc.Fatal)
	logger.Infof("Saved %s", settings.Path)

	if settings.Manifest {
		manifestFile, err := writeRunManifest(settings, c.Threads(), elapsed)
		if !misc.CheckError(err, logger, misc.Error) {
			logger.Infof("Saved %s", manifestFile)
		}
	}

	logger.Infof("Done in %s", elapsed)
}
