// Package nsga3 implements the selection engine of NSGA-III, a
// reference-point-based many-objective evolutionary algorithm.
//
// Deb, K., & Jain, H. (2014). An Evolutionary Many-Objective
// Optimization Algorithm Using Reference-Point-Based Nondominated
// Sorting Approach, Part I: Solving Problems With Box Constraints.
// IEEE Transactions on Evolutionary Computation, 18(4), 577-601.
// https://doi.org/10.1109/TEVC.2013.2281535
//
// The package owns non-dominated sorting, normalization, reference-
// direction association, and niche-preserving survivor selection. It
// does not evaluate fitness, mutate, crossover, or initialize a
// population — those remain the caller's responsibility.
package nsga3

import "math/rand"

// Handle identifies an Individual by a stable slot index. Handles are
// never reused within a single selection pass; they remain valid
// until the next call to SetPopulation or Retain (Engine.Select calls
// Retain when it removes the unselected individuals).
type Handle int

// Individual is one candidate solution. Fitness is supplied by the
// caller and never mutated by the engine; the remaining fields are
// ephemeral scratch space recomputed on every Engine.Select pass.
type Individual struct {
	Fitness []float64 // f ∈ ℝ^M, lower is better on every objective

	translated       []float64 // f', set by the Normalizer
	closestRef       int       // index into the reference set, set by the Associator
	distance         float64   // perpendicular distance to closestRef, set by the Associator
	dominatedByCount int       // domination counter used by Component D; zero once layers are peeled
}

// Config holds the tunable parameters of a selection pass.
type Config struct {
	ObjectiveCount       int        `json:"objective_count"`
	ReferencePrecision   int        `json:"reference_precision"`
	PopulationSize       int        `json:"population_size"`
	RecordParetoFront    bool       `json:"record_pareto_front"`
	ParetoFrontFrozen    bool       `json:"pareto_front_frozen"`
	UseConcurrentAssoc   bool       `json:"use_concurrent_associate"`
	ConcurrentThreshold  int        `json:"concurrent_threshold"`
	Rand                 *rand.Rand `json:"-"`
}

// Result summarizes the outcome of a single Select call.
type Result struct {
	SurvivorCount  int
	ParetoFront    [][]float64
	BestFitness    []float64
	SplitRequired  bool // true if the niche preserver had to run
}
