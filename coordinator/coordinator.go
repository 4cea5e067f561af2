package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ParallelMandelbrot/canvas"
	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/progress"
	"ParallelMandelbrot/task"
	"ParallelMandelbrot/worker"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRenderFailed     = errors.New("render failed")
	ErrProgressMismatch = errors.New("progress count does not match the image width")
)

// Coordinator partitions one render across a fixed pool of workers, joins them and colors the result.
type Coordinator struct {
	height     int
	logger     bslogger.Logger
	mandelbrot mandelbrot.Mandelbrot
	settings   Settings
	tasks      []task.Task
	threads    int
	width      int
}

func NewCoordinator(settings Settings) (*Coordinator, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	coordinator := &Coordinator{
		height:   settings.Resolution,
		logger:   bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		settings: settings,
		width:    settings.Resolution,
	}
	coordinator.mandelbrot = mandelbrot.NewMandelbrot(settings.Settings, coordinator.width, coordinator.height)

	coordinator.threads = ResolveThreads(settings.Threads)
	if coordinator.threads > coordinator.width {
		coordinator.logger.Warningf("Requested %d threads for %d columns, using %d", coordinator.threads, coordinator.width, coordinator.width)
		coordinator.threads = coordinator.width
	}

	tasks, err := task.Partition(coordinator.width, coordinator.threads, settings.Partition)
	if err != nil {
		return nil, err
	}
	coordinator.tasks = tasks

	return coordinator, nil
}

func (c *Coordinator) Threads() int {
	return c.threads
}

func (c *Coordinator) Tasks() []task.Task {
	return c.tasks
}

func (c *Coordinator) Settings() Settings {
	return c.settings
}

// Render computes every column in parallel, waits for all workers and then colors the image on the calling
// goroutine. Any worker failure aborts the render and no canvas is returned.
func (c *Coordinator) Render() (*canvas.Canvas, error) {
	startTime := time.Now()
	c.logger.Infof("Rendering %dx%d with %d threads (%s)", c.width, c.height, c.threads, c.settings.Partition)

	signals := make(chan struct{}, c.width)
	received := make(chan int, 1)
	reporter := progress.NewReporter("Progress", c.width)
	go func() {
		received <- reporter.Run(signals)
	}()

	results, err := c.Compute(signals)
	close(signals)
	count := <-received
	if err != nil {
		return nil, err
	}
	if count != c.width {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrProgressMismatch, count, c.width)
	}

	img := c.Colorize(results)
	c.logger.Infof("Done rendering %d columns in %s", c.width, time.Since(startTime))
	return img, nil
}

// Compute runs one worker per task and returns once all of them have finished. The first failure cancels the
// remaining workers. Progress signals are sent on the given channel, which may be nil.
func (c *Coordinator) Compute(signals chan<- struct{}) (*ResultBuffer, error) {
	results := NewResultBuffer(c.width, c.height)
	group, ctx := errgroup.WithContext(context.Background())

	for _, t := range c.tasks {
		t := t
		w :=worker.NewWorker(t.Worker, c.mandelbrot, c.height, results, signals)
		group.Go(func() error {
			return w.Process(ctx, t)
		})
	}

	if err := group.Wait(); err != nil {
		c.logger.Errorf("Aborting render: %s", err)
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	if missing := results.Missing(); missing > 0 {
		return nil, fmt.Errorf("%w: %d columns missing", ErrRenderFailed, missing)
	}
	return results, nil
}

// Colorize maps every escape time in results to a pixel. The coloring mode is chosen once for the whole image.
func (c *Coordinator) Colorize(results *ResultBuffer) *canvas.Canvas {
	colorFor := c.mandelbrot.Colorer()
	img := canvas.New(results.Width(), results.Height())

	for x := 0; x < results.Width(); x++ {
		for y := 0; y < results.Height(); y++ {
			img.PutPixel(x, y, colorFor(results.At(x, y)))
		}
	}
	return img
}

func (c *Coordinator) withKernel(kernel mandelbrot.Kernel) {
	c.mandelbrot = c.mandelbrot.WithKernel(kernel)
}
