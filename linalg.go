package nsga3

import (
	"fmt"
	"math"
)

// epsilonPivot is the minimum acceptable pivot magnitude; below this
// the matrix is treated as singular (spec requires epsilon <= 1e-12).
const epsilonPivot = 1e-12

// luDecompose performs Doolittle LU decomposition of the square matrix
// a (given row-major, n rows of length n) with partial pivoting.
// Returns L, U (both n×n, row-major) and the row permutation applied
// to a (perm[i] is the original row now in position i). Fails with
// ErrSingular if any pivot's magnitude falls below epsilonPivot.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure a is square.
//	Stage 2 (Copy): work on a mutable copy of a.
//	Stage 3 (Eliminate): for each pivot column, swap in the
//	  largest-magnitude candidate row, then eliminate below it.
//	Stage 4 (Finalize): split the in-place result into L and U.
func luDecompose(a [][]float64) (l, u [][]float64, perm []int, err error) {
	n := len(a)
	for _, row := range a {
		if len(row) != n {
			return nil, nil, nil, fmt.Errorf("nsga3: non-square matrix: %w", ErrInvalidParam)
		}
	}

	work := make([][]float64, n)
	for i := range a {
		work[i] = append([]float64(nil), a[i]...)
	}

	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	l = make([][]float64, n)
	u = make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
		u[i] = make([]float64, n)
	}

	for col := 0; col < n; col++ {
		pivotRow := col
		best := math.Abs(work[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(work[r][col]); v > best {
				best = v
				pivotRow = r
			}
		}
		if best < epsilonPivot {
			return nil, nil, nil, fmt.Errorf("nsga3: pivot at column %d has magnitude %g: %w",
				col, best, ErrSingular)
		}
		if pivotRow != col {
			work[col], work[pivotRow] = work[pivotRow], work[col]
			perm[col], perm[pivotRow] = perm[pivotRow], perm[col]
			l[col], l[pivotRow] = l[pivotRow], l[col]
		}

		l[col][col] = 1.0
		for r := col + 1; r < n; r++ {
			factor := work[r][col] / work[col][col]
			l[r][col] = factor
			for c := col; c < n; c++ {
				work[r][c] -= factor * work[col][c]
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			u[i][j] = work[i][j]
		}
	}

	return l, u, perm, nil
}

// invert computes the inverse of the square matrix a (row-major) via
// LU decomposition followed by forward/backward substitution against
// each permuted identity column.
//
// Blueprint:
//
//	Stage 1 (Decompose): a = P·L·U via luDecompose.
//	Stage 2 (Prepare): allocate the result and substitution scratch.
//	Stage 3 (Execute): for each identity column e_col, solve
//	  L·y = P·e_col then U·x = y.
//	Stage 4 (Finalize): assemble columns into the inverse.
func invert(a [][]float64) ([][]float64, error) {
	n := len(a)
	l, u, perm, err := luDecompose(a)
	if err != nil {
		return nil, fmt.Errorf("nsga3: invert: %w", err)
	}

	inv := make([][]float64, n)
	for i := range inv {
		inv[i] = make([]float64, n)
	}

	y := make([]float64, n)
	x := make([]float64, n)

	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l[i][k] * y[k]
			}
			rhs := 0.0
			if perm[i] == col {
				rhs = 1.0
			}
			y[i] = rhs - sum
		}

		for i := n - 1; i >= 0; i-- {
			sum := 0.0
			for k := i + 1; k < n; k++ {
				sum += u[i][k] * x[k]
			}
			pivot := u[i][i]
			if math.Abs(pivot) < epsilonPivot {
				return nil, fmt.Errorf("nsga3: invert: zero pivot at row %d: %w", i, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}

		for i := 0; i < n; i++ {
			inv[i][col] = x[i]
		}
	}

	return inv, nil
}

// transpose returns the transpose of the square matrix a.
func transpose(a [][]float64) [][]float64 {
	n := len(a)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = a[j][i]
		}
	}
	return out
}
