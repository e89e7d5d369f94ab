package nsga3

import "fmt"

// Population is the slot-stable arena owned by the Selection Driver
// during a pass. Individuals never hold iterators or pointers into
// this container; they are addressed by Handle, a stable index that
// remains valid until the next SetPopulation or Retain call (Design
// Notes §9).
type Population struct {
	individuals []Individual
}

// NewPopulation creates an empty arena.
func NewPopulation() *Population {
	return &Population{}
}

// SetPopulation replaces the arena wholesale with one individual per
// fitness vector, in order; the i-th vector is addressable via
// Handle(i). Every fitness vector must have the given objective count.
// Fails with ErrInvalidParam on a dimension mismatch, or
// ErrEmptyFront if fitness is empty.
func (p *Population) SetPopulation(fitness [][]float64, objectiveCount int) ([]Handle, error) {
	if len(fitness) == 0 {
		return nil, ErrEmptyFront
	}
	individuals := make([]Individual, len(fitness))
	handles := make([]Handle, len(fitness))
	for i, f := range fitness {
		if len(f) != objectiveCount {
			return nil, fmt.Errorf("nsga3: fitness vector %d has %d objectives, want %d: %w",
				i, len(f), objectiveCount, ErrInvalidParam)
		}
		cp := append([]float64(nil), f...)
		individuals[i] = Individual{Fitness: cp}
		handles[i] = Handle(i)
	}
	p.individuals = individuals
	return handles, nil
}

// Len returns the number of individuals currently in the arena.
func (p *Population) Len() int { return len(p.individuals) }

// Handles returns every handle currently valid in the arena.
func (p *Population) Handles() []Handle {
	out := make([]Handle, len(p.individuals))
	for i := range p.individuals {
		out[i] = Handle(i)
	}
	return out
}

// Fitness returns the fitness vector for h. The returned slice must
// not be mutated by the caller.
func (p *Population) Fitness(h Handle) []float64 { return p.individuals[h].Fitness }

// Retain drops every individual not in keep, compacting the arena and
// returning the handles that survive in their new positions. Handles
// issued before Retain are invalidated.
func (p *Population) Retain(keep map[Handle]bool) []Handle {
	survivors := make([]Individual, 0, len(keep))
	for h, ind := range p.individuals {
		if keep[Handle(h)] {
			survivors = append(survivors, ind)
		}
	}
	p.individuals = survivors
	return p.Handles()
}
