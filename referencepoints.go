package nsga3

import "fmt"

// ReferenceSet is an immutable M×K lattice of reference directions on
// the unit simplex: each column sums to 1 and has M non-negative
// entries. Built once via GenerateReferencePoints (or
// ConcatReferenceSets) and never mutated afterward.
type ReferenceSet struct {
	m       int
	columns [][]float64 // columns[j] has length m; columns[j] sums to 1
}

// ObjectiveCount returns M, the number of rows.
func (r *ReferenceSet) ObjectiveCount() int { return r.m }

// Count returns K, the number of reference directions.
func (r *ReferenceSet) Count() int { return len(r.columns) }

// Column returns the j-th reference direction. The returned slice must
// not be mutated by the caller.
func (r *ReferenceSet) Column(j int) []float64 { return r.columns[j] }

// Columns returns every reference direction. The returned slice and
// its elements must not be mutated by the caller.
func (r *ReferenceSet) Columns() [][]float64 { return r.columns }

// binomialCoeff computes C(n,k) via a multiplicative loop rather than
// factorials, to avoid overflow for larger M/P.
func binomialCoeff(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// GenerateReferencePoints enumerates every integer composition of
// precision P into M non-negative parts, scaled by 1/P, yielding one
// reference direction per composition (Component A). Emission order
// is lexicographic on compositions and is not semantically observable
// downstream, since references are addressed by column index.
//
// Fails with ErrInvalidParam if m<1 or p<1.
func GenerateReferencePoints(m, p int) (*ReferenceSet, error) {
	if m < 1 {
		return nil, fmt.Errorf("nsga3: objective count %d: %w", m, ErrInvalidParam)
	}
	if p < 1 {
		return nil, fmt.Errorf("nsga3: reference precision %d: %w", p, ErrInvalidParam)
	}

	expected := binomialCoeff(m+p-1, p)
	columns := make([][]float64, 0, expected)

	rec := make([]float64, m)
	generateComposition(m, p, 0, 0, rec, &columns)

	return &ReferenceSet{m: m, columns: columns}, nil
}

// generateComposition recursively fixes curDim's share p of the
// remaining precision budget, then recurses into the next dimension;
// the last dimension absorbs whatever precision remains so every
// composition sums exactly to p (scaled to 1 across the M entries).
func generateComposition(m, precision, curDim, accum int, rec []float64, dst *[][]float64) {
	if curDim+1 >= m {
		point := make([]float64, m)
		copy(point, rec)
		point[m-1] = 1.0 - float64(accum)/float64(precision)
		*dst = append(*dst, point)
		return
	}

	for part := 0; part+accum <= precision; part++ {
		rec[curDim] = float64(part) / float64(precision)
		generateComposition(m, precision, curDim+1, accum+part, rec, dst)
	}
}

// ConcatReferenceSets concatenates the columns of several reference
// sets of equal objective count into one lattice, letting a caller
// build a multi-layer reference-point lattice by supplying one
// single-layer ReferenceSet per layer (Design Notes §9: multi-layer
// lattices slot in by concatenating reference matrices before
// association; generation itself remains single-layer).
func ConcatReferenceSets(sets ...*ReferenceSet) (*ReferenceSet, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("nsga3: no reference sets to concatenate: %w", ErrInvalidParam)
	}
	m := sets[0].m
	var columns [][]float64
	for _, s := range sets {
		if s.m != m {
			return nil, fmt.Errorf("nsga3: reference set objective count mismatch %d vs %d: %w",
				s.m, m, ErrInvalidParam)
		}
		columns = append(columns, s.columns...)
	}
	return &ReferenceSet{m: m, columns: columns}, nil
}
