package canvas

// Line draws a segment from (x1, y1) to (x2, y2) in the stroke color using Bresenham's algorithm.
// https://en.wikipedia.org/wiki/Bresenham%27s_line_algorithm#All_cases
func (c *Canvas) Line(x1 int, y1 int, x2 int, y2 int) {
	if abs(y2-y1) < abs(x2-x1) {
		if x1 > x2 {
			c.lineLow(x2, y2, x1, y1)
		} else {
			c.lineLow(x1, y1, x2, y2)
		}
		return
	}
	if y1 > y2 {
		c.lineHigh(x2, y2, x1, y1)
	} else {
		c.lineHigh(x1, y1, x2, y2)
	}
}

// lineLow steps along x for slopes in [-1, 1]. Requires x1 <= x2.
func (c *Canvas) lineLow(x1 int, y1 int, x2 int, y2 int) {
	dx := x2 - x1
	dy := y2 - y1
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}

	d := 2*dy - dx
	y := y1
	for x := x1; x <= x2; x++ {
		c.PutPixel(x, y, c.Stroke)
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

// lineHigh steps along y for steep slopes. Requires y1 <= y2.
func (c *Canvas) lineHigh(x1 int, y1 int, x2 int, y2 int) {
	dx := x2 - x1
	dy := y2 - y1
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}

	d := 2*dx - dy
	x := x1
	for y := y1; y <= y2; y++ {
		c.PutPixel(x, y, c.Stroke)
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
