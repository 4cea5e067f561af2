package coordinator

import (
	"errors"
	"fmt"
	"sync"

	"ParallelMandelbrot/task"
)

var (
	ErrColumnOutOfRange = errors.New("column index out of range")
	ErrColumnHeight     = errors.New("column height does not match the image")
	ErrColumnSubmitted  = errors.New("column already submitted")
)

// ResultBuffer is the width x height grid of escape times for one render, stored column-major at x*height + y.
// Workers write disjoint columns through SubmitColumn. Reads through At are only valid once every worker has been
// joined.
type ResultBuffer struct {
	mutex      sync.Mutex
	height     int
	iterations []uint
	submitted  []bool
	width      int
}

func NewResultBuffer(width int, height int) *ResultBuffer {
	return &ResultBuffer{
		height:     height,
		iterations: make([]uint, width*height),
		submitted:  make([]bool, width),
		width:      width,
	}
}

// SubmitColumn copies a finished column into the buffer. The lock is held only for the copy.
func (b *ResultBuffer) SubmitColumn(column task.Column) error {
	if column.Index < 0 || column.Index >= b.width {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrColumnOutOfRange, column.Index, b.width)
	}
	if len(column.Iterations) != b.height {
		return fmt.Errorf("%w: got %d, want %d", ErrColumnHeight, len(column.Iterations), b.height)
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.submitted[column.Index] {
		return fmt.Errorf("%w: %d", ErrColumnSubmitted, column.Index)
	}
	start := column.Index * b.height
	copy(b.iterations[start:start+b.height], column.Iterations)
	b.submitted[column.Index] = true
	return nil
}

// Missing returns how many columns have not been submitted yet.
func (b *ResultBuffer) Missing() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	missing := 0
	for _, submitted := range b.submitted {
		if !submitted {
			missing++
		}
	}
	return missing
}

func (b *ResultBuffer) At(x int, y int) uint {
	return b.iterations[x*b.height+y]
}

func (b *ResultBuffer) Width() int {
	return b.width
}

func (b *ResultBuffer) Height() int {
	return b.height
}
