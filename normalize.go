package nsga3

import "fmt"

// normalizer computes the ideal point and intercepts over a candidate
// set (selected ∪ splitting front) and translates every candidate's
// fitness accordingly (Component E). Ported from NSGA3Abstract's
// normalize(): ideal point, extreme points by per-objective argmax,
// singularity check, then either the hyperplane-intercept solve or
// the per-axis fallback.
type normalizer struct {
	m int // objective count
}

// normalize mutates pop's translated fitness for every handle in
// candidates (selected and splittingFront combined). candidates must
// be non-empty. Fails with ErrDegenerateFront if any intercept is
// non-positive after the singularity fallback.
func (n *normalizer) normalize(pop *Population, selected, splittingFront []Handle) error {
	m := n.m
	candidates := make([]Handle, 0, len(selected)+len(splittingFront))
	candidates = append(candidates, selected...)
	candidates = append(candidates, splittingFront...)

	ideal := make([]float64, m)
	for r := range ideal {
		ideal[r] = pop.Fitness(candidates[0])[r]
	}

	// extremePtr[c] is the handle with the largest c-th fitness value
	// seen so far, initialized from the first element of the
	// splitting front per spec §4.E step 2.
	var initHandle Handle
	if len(splittingFront) > 0 {
		initHandle = splittingFront[0]
	} else {
		initHandle = candidates[0]
	}
	extremePtr := make([]Handle, m)
	for c := range extremePtr {
		extremePtr[c] = initHandle
	}

	for _, h := range candidates {
		f := pop.Fitness(h)
		vecMin(ideal, f)
		for c := 0; c < m; c++ {
			if f[c] > pop.Fitness(extremePtr[c])[c] {
				extremePtr[c] = h
			}
		}
	}

	// extremePoints[r][c] = f_{extremePtr[c]}[r] - ideal[r]
	extremePoints := make([][]float64, m)
	for r := 0; r < m; r++ {
		extremePoints[r] = make([]float64, m)
	}
	for c := 0; c < m; c++ {
		f := pop.Fitness(extremePtr[c])
		for r := 0; r < m; r++ {
			extremePoints[r][c] = f[r] - ideal[r]
		}
	}

	distinct := make(map[Handle]bool, m)
	for _, h := range extremePtr {
		distinct[h] = true
	}
	singular := len(distinct) < m

	var intercepts []float64
	if singular {
		intercepts = make([]float64, m)
		for r := 0; r < m; r++ {
			intercepts[r] = extremePoints[r][r]
		}
	} else {
		var err error
		intercepts, err = extremePointsToIntercepts(extremePoints)
		if err != nil {
			// Singular despite the distinctness check (near-collinear
			// extremes): fall back the same way.
			intercepts = make([]float64, m)
			for r := 0; r < m; r++ {
				intercepts[r] = extremePoints[r][r]
			}
		}
	}

	for r, v := range intercepts {
		if v <= 0 {
			return fmt.Errorf("nsga3: intercept %d is non-positive (%g): %w", r, v, ErrDegenerateFront)
		}
	}

	for _, h := range candidates {
		f := pop.Fitness(h)
		translated := make([]float64, m)
		for r := 0; r < m; r++ {
			translated[r] = (f[r] - ideal[r]) / intercepts[r]
		}
		pop.individuals[h].translated = translated
	}

	return nil
}

// extremePointsToIntercepts solves for the hyperplane through the
// translated extreme points and returns its axis intercepts:
// a = (P^T)^-1 * 1, elementwise inverted (spec §4.E step 4, ported
// from NSGA3Abstract's extremePoints2Intercept).
func extremePointsToIntercepts(p [][]float64) ([]float64, error) {
	pt := transpose(p)
	inv, err := invert(pt)
	if err != nil {
		return nil, err
	}

	m := len(p)
	ones := make([]float64, m)
	for i := range ones {
		ones[i] = 1
	}

	invColumns := make([][]float64, m)
	for c := 0; c < m; c++ {
		col := make([]float64, m)
		for r := 0; r < m; r++ {
			col[r] = inv[r][c]
		}
		invColumns[c] = col
	}
	oneDivIntercept := matVec(invColumns, ones)

	intercepts := make([]float64, m)
	for i, v := range oneDivIntercept {
		intercepts[i] = 1.0 / v
	}
	return intercepts, nil
}
