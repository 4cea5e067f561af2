package mandelbrot

// Kernel classifies a point on the plane by its escape time.
type Kernel func(real float64, imag float64, maxIterations uint) uint

// escapeRadiusSquared avoids a square root when checking |z| > 2.
const escapeRadiusSquared = 4.0

// EscapeTime iterates z = z^2 + c from z = 0 and returns the 1-based step at which |z| first exceeds 2. Points
// that never escape return maxIterations.
func EscapeTime(real float64, imag float64, maxIterations uint) uint {
	var x, y float64
	for step := uint(0); step < maxIterations; step++ {
		x, y = x*x-y*y+real, 2*x*y+imag
		if x*x+y*y > escapeRadiusSquared {
			return step + 1
		}
	}
	return maxIterations
}
