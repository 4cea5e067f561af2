package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/task"

	"github.com/BrugadaSyndrome/bslogger"
)

var ErrWorkerPanic = errors.New("worker panicked")

// Submitter receives finished columns. Implementations must be safe for concurrent use.
type Submitter interface {
	SubmitColumn(column task.Column) error
}

type Worker struct {
	columnsCompleted int
	height           int
	id               int
	logger           bslogger.Logger
	mandelbrot       mandelbrot.Mandelbrot
	progress         chan<- struct{}
	results          Submitter
}

func NewWorker(id int, m mandelbrot.Mandelbrot, height int, results Submitter, progress chan<- struct{}) *Worker {
	return &Worker{
		height:     height,
		id:         id,
		logger:     bslogger.NewLogger(fmt.Sprintf("Worker %d", id), bslogger.Normal, nil),
		mandelbrot: m,
		progress:   progress,
		results:    results,
	}
}

func (w *Worker) ColumnsCompleted() int {
	return w.columnsCompleted
}

// Process computes every column of t. Each column is filled in private storage and only then handed to the
// submitter, followed by one progress signal. Processing stops early when ctx is cancelled. A panic while
// computing is returned as an error wrapping ErrWorkerPanic.
func (w *Worker) Process(ctx context.Context, t task.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, w.id, r)
		}
	}()

	startTime := time.Now()
	w.logger.Debugf("Processing %s", t.String())

	for _, index := range t.Columns {
		if ctxErr := ctx.Err(); ctxErr != nil {
			w.logger.Warningf("Stopping after %d columns: %s", w.columnsCompleted, ctxErr)
			return ctxErr
		}

		column := w.computeColumn(index)
		if submitErr := w.results.SubmitColumn(column); submitErr != nil {
			return fmt.Errorf("worker %d: %w", w.id, submitErr)
		}
		w.columnsCompleted++

		if w.progress != nil {
			w.progress <- struct{}{}
		}
	}

	w.logger.Debugf("Processed %d columns in %s", w.columnsCompleted, time.Since(startTime))
	return nil
}

func (w *Worker) computeColumn(index int) task.Column {
	column := task.NewColumn(index, w.height)
	for row := 0; row < w.height; row++ {
		column.Iterations[row] = w.mandelbrot.EscapeTime(mandelbrot.Pixel{X: index, Y: row})
	}
	return column
}
