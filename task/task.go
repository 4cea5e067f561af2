package task

import (
	"errors"
	"fmt"
)

// Strategy decides which columns of the image each worker computes.
type Strategy string

const (
	// Striped interleaves columns: worker i takes i, i+T, i+2T, ...
	Striped Strategy = "striped"
	// Block hands each worker one contiguous range of columns.
	Block Strategy = "block"
)

var (
	ErrInvalidWidth    = errors.New("image width must be at least 1")
	ErrInvalidWorkers  = errors.New("worker count must be at least 1")
	ErrUnknownStrategy = errors.New("unknown partition strategy")
)

func (s Strategy) String() string {
	return string(s)
}

func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(value) {
	case Striped, Block:
		return Strategy(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, value)
}

// Task is the set of columns assigned to one worker.
type Task struct {
	Columns []int
	Worker  int
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("Worker: %d ", t.Worker)
	output += fmt.Sprintf("Column Count: %d}", len(t.Columns))
	return output
}

// Partition splits [0, width) into one task per worker. Every column belongs to exactly one task. When there are
// more workers than columns the worker count is reduced to width so no task is empty.
func Partition(width int, workers int, strategy Strategy) ([]Task, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}
	if workers > width {
		workers = width
	}

	tasks := make([]Task, workers)
	for i := range tasks {
		tasks[i].Worker = i
	}

	switch strategy {
	case Striped:
		for i := range tasks {
			tasks[i].AddStripedColumns(width, workers)
		}
	case Block:
		// The first width%workers blocks take one extra column
		size, remainder := width/workers, width%workers
		start := 0
		for i := range tasks {
			count := size
			if i < remainder {
				count++
			}
			tasks[i].AddColumnRange(start, start+count)
			start += count
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	return tasks, nil
}

// AddStripedColumns adds every stride-th column starting at the task's worker index.
func (t *Task) AddStripedColumns(width int, stride int) {
	for column := t.Worker; column < width; column += stride {
		t.Columns = append(t.Columns, column)
	}
}

// AddColumnRange adds the columns in [start, end).
func (t *Task) AddColumnRange(start int, end int) {
	for column := start; column < end; column++ {
		t.Columns = append(t.Columns, column)
	}
}
