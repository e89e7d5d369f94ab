package nsga3

import "fmt"

// ProblemShape describes the characteristics of a selection workload
// that matter for choosing a Provider: how many objectives, and how
// many candidates pass through the Associator per generation.
type ProblemShape struct {
	ObjectiveCount        int
	CandidatesPerGeneration int
}

// ProviderRecommendation names a Provider choice and the reasoning
// behind it, mirroring the teacher's AlgorithmRecommendation shape.
type ProviderRecommendation struct {
	Provider  Provider
	Reasoning string
}

// ProviderSelector recommends a Provider for a given problem shape
// (Design Notes §9 item 2: the Selection Driver depends only on the
// Provider interface; this type is how a caller picks a concrete one
// without hardcoding the choice at every call site).
type ProviderSelector struct {
	workers int
}

// NewProviderSelector creates a selector using defaultWorkerCount()
// goroutines for any concurrent recommendation it makes.
func NewProviderSelector() *ProviderSelector {
	return &ProviderSelector{workers: defaultWorkerCount()}
}

// Recommend returns the Provider best suited to shape, plus the
// reasoning for that choice. The concurrent provider is recommended
// once CandidatesPerGeneration reaches threshold and more than one
// worker is available; below that, goroutine dispatch overhead
// dominates the per-reference-column work it would parallelize.
func (s *ProviderSelector) Recommend(shape ProblemShape, threshold int) ProviderRecommendation {
	if s.workers <= 1 {
		return ProviderRecommendation{
			Provider:  ScalarProvider{},
			Reasoning: "single logical CPU available: scalar provider avoids goroutine overhead",
		}
	}

	if shape.CandidatesPerGeneration >= threshold {
		return ProviderRecommendation{
			Provider: ConcurrentProvider{Workers: s.workers},
			Reasoning: fmt.Sprintf(
				"%d candidates/generation >= threshold %d: concurrent provider amortizes goroutine overhead across %d workers",
				shape.CandidatesPerGeneration, threshold, s.workers),
		}
	}

	return ProviderRecommendation{
		Provider: ScalarProvider{},
		Reasoning: fmt.Sprintf(
			"%d candidates/generation below threshold %d: scalar provider is cheaper at this scale",
			shape.CandidatesPerGeneration, threshold),
	}
}
