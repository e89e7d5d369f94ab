package nsga3

// dominates reports whether individual a dominates individual b: a is
// no worse than b on every objective and strictly better on at least
// one (both minimized). len(a) must equal len(b).
func dominates(a, b []float64) bool {
	strictlyBetter := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// fastNonDominatedSort partitions a population into Pareto layers
// (Component D). individuals[sortSpace[i]] is the i-th individual
// under consideration; dominatedByCount of each of those individuals
// is used as a counter and is zero for every layered individual on
// return. Returns layers of handles, layer 0 first (the current
// Pareto front).
//
// Complexity: O(P^2 * M), P = len(sortSpace). Fails with
// ErrEmptyFront if sortSpace is empty.
func fastNonDominatedSort(individuals []Individual, sortSpace []Handle) ([][]Handle, error) {
	n := len(sortSpace)
	if n == 0 {
		return nil, ErrEmptyFront
	}

	dominatedSolutions := make([][]Handle, n)
	for idx, h := range sortSpace {
		individuals[h].dominatedByCount = 0
		dominatedSolutions[idx] = nil
	}

	firstFront := make([]Handle, 0)
	for i := 0; i < n; i++ {
		hi := sortSpace[i]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			hj := sortSpace[j]
			if dominates(individuals[hi].Fitness, individuals[hj].Fitness) {
				dominatedSolutions[i] = append(dominatedSolutions[i], hj)
			} else if dominates(individuals[hj].Fitness, individuals[hi].Fitness) {
				individuals[hi].dominatedByCount++
			}
		}
		if individuals[hi].dominatedByCount == 0 {
			firstFront = append(firstFront, hi)
		}
	}

	layers := [][]Handle{firstFront}
	byHandleIdx := make(map[Handle]int, n)
	for idx, h := range sortSpace {
		byHandleIdx[h] = idx
	}

	for rank := 0; len(layers[rank]) > 0; {
		var next []Handle
		for _, h := range layers[rank] {
			for _, dominated := range dominatedSolutions[byHandleIdx[h]] {
				individuals[dominated].dominatedByCount--
				if individuals[dominated].dominatedByCount == 0 {
					next = append(next, dominated)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		layers = append(layers, next)
		rank++
	}

	return layers, nil
}
