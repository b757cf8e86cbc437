package nca

// Filter is a 3x3 convolution kernel in row-major order: Filter[i+1][j+1]
// weights the neighbor sampled at offset (i, j) from the cell.
type Filter [3][3]float64

// IdentityFilter passes the center cell through untouched.
func IdentityFilter() Filter {
	return Filter{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}
}

// LaplacianFilter is the classic 8-neighbor edge kernel, a useful starting
// point for pattern-forming rules.
func LaplacianFilter() Filter {
	return Filter{{1, 1, 1}, {1, -8, 1}, {1, 1, 1}}
}

// FilterFromCoeffs builds a Filter from 9 row-major coefficients, the layout
// used by the settings and preset files.
func FilterFromCoeffs(c [9]float64) Filter {
	return Filter{
		{c[0], c[1], c[2]},
		{c[3], c[4], c[5]},
		{c[6], c[7], c[8]},
	}
}

// Coeffs returns the kernel as 9 row-major coefficients.
func (f Filter) Coeffs() [9]float64 {
	return [9]float64{
		f[0][0], f[0][1], f[0][2],
		f[1][0], f[1][1], f[1][2],
		f[2][0], f[2][1], f[2][2],
	}
}
