package nsga3

import "testing"

func TestObserverFuncAdaptsPlainFunction(t *testing.T) {
	var got [][]float64
	observer := ObserverFunc(func(front [][]float64) { got = front })

	observer.UpdateParetoFront([][]float64{{1, 2}})

	if len(got) != 1 || got[0][0] != 1 {
		t.Errorf("ObserverFunc did not forward the front, got %v", got)
	}
}

func TestSnapshotFrontDeepCopies(t *testing.T) {
	pop, handles := newTestPopulationForObserver(t, [][]float64{{1, 2}, {3, 4}})

	snap := snapshotFront(pop, handles)
	snap[0][0] = 999

	if pop.Fitness(handles[0])[0] == 999 {
		t.Error("snapshotFront() did not deep-copy fitness vectors")
	}
}

func newTestPopulationForObserver(t *testing.T, fitness [][]float64) (*Population, []Handle) {
	t.Helper()
	pop := NewPopulation()
	handles, err := pop.SetPopulation(fitness, len(fitness[0]))
	if err != nil {
		t.Fatalf("SetPopulation() error = %v", err)
	}
	return pop, handles
}
