package nsga3

import (
	"math/rand"
	"testing"
)

func TestNichePreserveFillsToTarget(t *testing.T) {
	front := map[int][]Handle{
		0: {Handle(10), Handle(11)},
		1: {Handle(20)},
	}
	refCount := map[int]int{0: 0, 1: 0}
	distances := map[Handle]float64{
		Handle(10): 0.5,
		Handle(11): 0.1,
		Handle(20): 0.3,
	}
	distanceOf := func(h Handle) float64 { return distances[h] }

	rng := rand.New(rand.NewSource(7))
	selected := nichePreserve(nil, front, refCount, 2, distanceOf, rng)

	if len(selected) != 2 {
		t.Fatalf("nichePreserve() returned %d survivors, want 2", len(selected))
	}
}

func TestNichePreserveFirstPickPerNicheIsClosest(t *testing.T) {
	// A single niche with two candidates: the first pick (niche count 0)
	// must always be the closer one, regardless of RNG.
	front := map[int][]Handle{
		0: {Handle(1), Handle(2)},
	}
	refCount := map[int]int{0: 0}
	distances := map[Handle]float64{Handle(1): 9.0, Handle(2): 0.01}
	distanceOf := func(h Handle) float64 { return distances[h] }

	rng := rand.New(rand.NewSource(1))
	selected := nichePreserve(nil, front, refCount, 1, distanceOf, rng)

	if len(selected) != 1 || selected[0] != Handle(2) {
		t.Errorf("nichePreserve() first pick = %v, want [Handle(2)] (the closer candidate)", selected)
	}
}

func TestNichePreserveDoesNotExceedAvailableCandidates(t *testing.T) {
	front := map[int][]Handle{
		0: {Handle(1)},
		1: {Handle(2)},
	}
	refCount := map[int]int{0: 0, 1: 0}
	distanceOf := func(h Handle) float64 { return 0 }

	rng := rand.New(rand.NewSource(3))
	selected := nichePreserve(nil, front, refCount, 2, distanceOf, rng)

	if len(selected) != 2 {
		t.Fatalf("nichePreserve() = %v, want exactly 2 survivors", selected)
	}
	seen := map[Handle]bool{}
	for _, h := range selected {
		if seen[h] {
			t.Errorf("nichePreserve() selected %v twice", h)
		}
		seen[h] = true
	}
}

func TestNichePreserveDeterministicUnderFixedSeed(t *testing.T) {
	buildFront := func() map[int][]Handle {
		return map[int][]Handle{
			0: {Handle(1), Handle(2), Handle(3)},
			1: {Handle(4), Handle(5)},
			2: {Handle(6)},
		}
	}
	distanceOf := func(h Handle) float64 { return float64(h) * 0.1 }

	seed := int64(123)
	front1 := buildFront()
	refCount1 := map[int]int{0: 0, 1: 0, 2: 0}
	selected1 := nichePreserve(nil, front1, refCount1, 4, distanceOf, rand.New(rand.NewSource(seed)))

	front2 := buildFront()
	refCount2 := map[int]int{0: 0, 1: 0, 2: 0}
	selected2 := nichePreserve(nil, front2, refCount2, 4, distanceOf, rand.New(rand.NewSource(seed)))

	if len(selected1) != len(selected2) {
		t.Fatalf("nichePreserve() produced different lengths across runs: %d vs %d", len(selected1), len(selected2))
	}
	for i := range selected1 {
		if selected1[i] != selected2[i] {
			t.Errorf("nichePreserve()[%d] = %v, want %v (same seed must reproduce)", i, selected1[i], selected2[i])
		}
	}
}

func TestNichePreserveSeedsExistingSelectedCounts(t *testing.T) {
	// A pre-seeded refCount (from whole layers already admitted) must
	// steer new picks toward the under-represented niche.
	front := map[int][]Handle{
		0: {Handle(1)},
		1: {Handle(2)},
	}
	refCount := map[int]int{0: 5, 1: 0}
	distanceOf := func(h Handle) float64 { return 0 }

	rng := rand.New(rand.NewSource(9))
	selected := nichePreserve(nil, front, refCount, 1, distanceOf, rng)

	if len(selected) != 1 || selected[0] != Handle(2) {
		t.Errorf("nichePreserve() = %v, want [Handle(2)] (niche 1 is under-represented)", selected)
	}
}
