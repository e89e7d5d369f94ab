package nsga3

import (
	"fmt"
	"math/rand"
)

// Engine is the Selection Driver (Component H): it owns a Population
// arena and a ReferenceSet, and composes Components A-G into one
// selection pass per spec §4.H's state machine
//
//	COUNT -> SORT -> PUBLISH_PF -> FILL -> {DONE | NORMALIZE -> ASSOCIATE -> NICHE -> DONE}
//
// Engine is not safe for concurrent use; a pass, once entered, must
// run to completion (spec §5: cancellation is the caller's job
// between passes, not within one).
type Engine struct {
	config   Config
	refs     *ReferenceSet
	pop      *Population
	provider Provider
	observer Observer
	rng      *rand.Rand

	lastFrontSnapshot [][]float64
}

// NewEngine constructs an Engine from a Config. Fails with
// ErrInvalidParam if the config is invalid.
func NewEngine(config Config) (*Engine, error) {
	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	refs, err := GenerateReferencePoints(config.ObjectiveCount, config.ReferencePrecision)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		config: config,
		refs:   refs,
		pop:    NewPopulation(),
		rng:    config.Rand,
	}
	e.provider = e.selectProvider()
	return e, nil
}

// selectProvider picks Scalar vs Concurrent. An explicit
// UseConcurrentAssoc always wins; otherwise it defers to
// ProviderSelector using the reference-point count (the per-candidate
// work the Associator repeats every generation) as the scale signal.
func (e *Engine) selectProvider() Provider {
	if e.config.UseConcurrentAssoc {
		return ConcurrentProvider{Workers: defaultWorkerCount()}
	}
	rec := NewProviderSelector().Recommend(
		ProblemShape{ObjectiveCount: e.config.ObjectiveCount, CandidatesPerGeneration: e.refs.Count()},
		e.config.ConcurrentThreshold,
	)
	return rec.Provider
}

// SetObserver registers the Pareto-front observer (spec §6 inbound:
// observer(front_fitness_snapshot)).
func (e *Engine) SetObserver(o Observer) { e.observer = o }

// ReferencePoints returns W (spec §6 outbound: reference_points()).
func (e *Engine) ReferencePoints() *ReferenceSet { return e.refs }

// SetPopulation replaces the merged parent+offspring population (spec
// §6 inbound: set_population). Each fitness vector must have
// config.ObjectiveCount entries.
func (e *Engine) SetPopulation(fitness [][]float64) error {
	_, err := e.pop.SetPopulation(fitness, e.config.ObjectiveCount)
	return err
}

// ParetoFront returns a deep-copied snapshot of the current Pareto
// front (spec §6 outbound: pareto_front()), recorded by the most recent
// Select call made with RecordParetoFront set; it is empty if no such
// call has been made. The snapshot is independent of subsequent
// population mutation (spec §5's deep-copy-on-publication contract).
func (e *Engine) ParetoFront() [][]float64 {
	out := make([][]float64, len(e.lastFrontSnapshot))
	for i, f := range e.lastFrontSnapshot {
		out[i] = append([]float64(nil), f...)
	}
	return out
}

// BestFitness returns the elementwise minimum fitness across the
// current Pareto front (spec §6 outbound: best_fitness(), and the
// bestFitness() feature recovered from NSGA3.hpp).
func (e *Engine) BestFitness() ([]float64, error) {
	if len(e.lastFrontSnapshot) == 0 {
		return nil, ErrEmptyFront
	}
	best := append([]float64(nil), e.lastFrontSnapshot[0]...)
	for _, f := range e.lastFrontSnapshot[1:] {
		vecMin(best, f)
	}
	return best, nil
}

// Select runs one selection pass against target size N, per spec
// §4.H. On any error the population is left untouched (select is
// transactional on failure, spec §7).
func (e *Engine) Select(n int) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("nsga3: target size %d: %w", n, ErrInvalidParam)
	}

	all := e.pop.Handles()
	if len(all) == 0 {
		return nil, ErrEmptyFront
	}

	// COUNT -> SORT
	layers, err := fastNonDominatedSort(e.pop.individuals, all)
	if err != nil {
		return nil, err
	}

	// PUBLISH_PF
	front := layers[0]
	if e.config.RecordParetoFront {
		e.lastFrontSnapshot = snapshotFront(e.pop, front)
		if e.observer != nil {
			e.observer.UpdateParetoFront(e.ParetoFront())
		}
	}

	// FILL
	var selected []Handle
	layerIdx := 0
	for layerIdx < len(layers) && len(selected)+len(layers[layerIdx]) <= n {
		selected = append(selected, layers[layerIdx]...)
		layerIdx++
	}

	splitRequired := len(selected) != n
	if splitRequired {
		if layerIdx >= len(layers) {
			return nil, fmt.Errorf("nsga3: fronts exhausted before reaching target size %d: %w", n, ErrInvalidParam)
		}
		splittingFront := layers[layerIdx]

		norm := &normalizer{m: e.config.ObjectiveCount}
		if err := norm.normalize(e.pop, selected, splittingFront); err != nil {
			return nil, err
		}

		assoc := &associator{provider: e.provider, refs: e.refs}
		assoc.associateSelected(e.pop, selected)
		byRef := assoc.associateSplittingFront(e.pop, splittingFront)

		refCount := make(map[int]int, e.refs.Count())
		for j := 0; j < e.refs.Count(); j++ {
			refCount[j] = 0
		}
		for _, h := range selected {
			refCount[e.pop.individuals[h].closestRef]++
		}

		selected = nichePreserve(selected, byRef, refCount, n, func(h Handle) float64 {
			return e.pop.individuals[h].distance
		}, e.rng)
	}

	keep := make(map[Handle]bool, len(selected))
	for _, h := range selected {
		keep[h] = true
	}
	e.pop.Retain(keep)

	return &Result{
		SurvivorCount: len(selected),
		ParetoFront:   e.ParetoFront(),
		BestFitness:   mustBestFitness(e),
		SplitRequired: splitRequired,
	}, nil
}

func mustBestFitness(e *Engine) []float64 {
	best, err := e.BestFitness()
	if err != nil {
		return nil
	}
	return best
}
