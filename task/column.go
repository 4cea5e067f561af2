package task

import (
	"fmt"
)

// Column holds the escape times of one finished image column, top to bottom.
type Column struct {
	Index      int
	Iterations []uint
}

func NewColumn(index int, height int) Column {
	return Column{
		Index:      index,
		Iterations: make([]uint, height),
	}
}

func (c *Column) String() string {
	output := "{Column "
	output += fmt.Sprintf("Index: %d ", c.Index)
	output += fmt.Sprintf("Height: %d}", len(c.Iterations))
	return output
}
