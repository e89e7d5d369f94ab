package nsga3

import (
	"runtime"
	"sync"
)

// defaultWorkerCount picks a goroutine count for ConcurrentProvider
// based on the host's available CPUs.
func defaultWorkerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// Provider is the capability interface for the Associator (Design
// Notes §9, item 2): the Selection Driver depends only on this
// interface, letting a scalar (portable) or concurrent (data-parallel)
// implementation be swapped in without changing driver logic.
//
// AssociateOne returns the index of the reference column closest to s
// under perpendicular distance, and that distance. Ties are always
// broken by the smallest index, even across concurrent
// implementations (spec §4.F: "requires deterministic tie-breaking").
type Provider interface {
	AssociateOne(s []float64, refs *ReferenceSet) (closest int, distance float64)
}

// ScalarProvider is the portable, sequential Provider implementation,
// ported from NSGA3Abstract's findNearest() non-threaded branch.
type ScalarProvider struct{}

// AssociateOne implements Provider.
func (ScalarProvider) AssociateOne(s []float64, refs *ReferenceSet) (int, float64) {
	return nearestColumn(s, refs, 0, refs.Count())
}

// ConcurrentProvider is the data-parallel Provider implementation,
// ported from NSGA3Abstract's findNearest() #ifdef Heu_NSGA_USE_THREADS
// branch (there expressed as an OpenMP parallel-for over reference
// columns; here as a worker pool). Splits the per-reference-column
// distance computation across Workers goroutines; the final argmin
// pass is sequential so tie-breaking stays deterministic.
type ConcurrentProvider struct {
	Workers int // goroutine count; <=1 behaves like ScalarProvider
}

// AssociateOne implements Provider.
func (c ConcurrentProvider) AssociateOne(s []float64, refs *ReferenceSet) (int, float64) {
	k := refs.Count()
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	if workers == 1 || k < workers*2 {
		return nearestColumn(s, refs, 0, k)
	}

	distances := make([]float64, k)
	var wg sync.WaitGroup
	chunk := (k + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= k {
			break
		}
		if end > k {
			end = k
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for c := start; c < end; c++ {
				distances[c] = perpendicularDistanceSquared(s, refs.Column(c))
			}
		}(start, end)
	}
	wg.Wait()

	minIdx := 0
	for i := 1; i < k; i++ {
		if distances[i] < distances[minIdx] {
			minIdx = i
		}
	}
	return minIdx, distances[minIdx]
}

// nearestColumn scans reference columns [lo,hi) sequentially and
// returns the closest one by perpendicular distance.
func nearestColumn(s []float64, refs *ReferenceSet, lo, hi int) (int, float64) {
	minIdx := lo
	minDist := perpendicularDistanceSquared(s, refs.Column(lo))
	for c := lo + 1; c < hi; c++ {
		d := perpendicularDistanceSquared(s, refs.Column(c))
		if d < minDist {
			minDist = d
			minIdx = c
		}
	}
	return minIdx, minDist
}

// perpendicularDistanceSquared computes the squared perpendicular
// distance from s to the line through the origin with direction w
// (spec §4.F): ||s - ((s.w)/||w||^2) * w||^2. Scale-invariant in w by
// construction: scaling w by k scales the coefficient (s.w)/||w||^2 by
// 1/k, so the projection coefficient times w is unchanged.
func perpendicularDistanceSquared(s, w []float64) float64 {
	normW := squaredNorm(w)
	proj := dot(s, w) / normW

	sum := 0.0
	for r := range s {
		diff := s[r] - proj*w[r]
		sum += diff * diff
	}
	return sum
}

// associator runs Component F over a candidate set using a Provider.
type associator struct {
	provider Provider
	refs     *ReferenceSet
}

// associateSelected associates every already-selected individual with
// its nearest reference direction, writing closestRef/distance onto
// the Population in place.
func (a *associator) associateSelected(pop *Population, selected []Handle) {
	for _, h := range selected {
		closest, dist := a.provider.AssociateOne(pop.individuals[h].translated, a.refs)
		pop.individuals[h].closestRef = closest
		pop.individuals[h].distance = dist
	}
}

// associateSplittingFront associates every splitting-front candidate
// and returns the ref-index -> handles multimap used by the niche
// preserver.
func (a *associator) associateSplittingFront(pop *Population, front []Handle) map[int][]Handle {
	byRef := make(map[int][]Handle, a.refs.Count())
	for _, h := range front {
		closest, dist := a.provider.AssociateOne(pop.individuals[h].translated, a.refs)
		pop.individuals[h].closestRef = closest
		pop.individuals[h].distance = dist
		byRef[closest] = append(byRef[closest], h)
	}
	return byRef
}
