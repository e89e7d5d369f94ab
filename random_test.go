package nsga3

import (
	"math/rand"
	"testing"
)

func TestUniformFloatRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := uniformFloat(rng)
		if v < 0 || v >= 1 {
			t.Fatalf("uniformFloat() = %v, want value in [0,1)", v)
		}
	}
}

func TestUniformFloatNilFallsBackToGlobal(t *testing.T) {
	// Must not panic when rng is nil.
	v := uniformFloat(nil)
	if v < 0 || v >= 1 {
		t.Fatalf("uniformFloat(nil) = %v, want value in [0,1)", v)
	}
}

func TestUniformIntRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		v := uniformInt(7, rng)
		if v < 0 || v >= 7 {
			t.Fatalf("uniformInt(7) = %v, want value in [0,7)", v)
		}
	}
}

func TestUniformIntDeterministic(t *testing.T) {
	seed := int64(42)
	rng1 := rand.New(rand.NewSource(seed))
	rng2 := rand.New(rand.NewSource(seed))

	for i := 0; i < 100; i++ {
		v1 := uniformInt(50, rng1)
		v2 := uniformInt(50, rng2)
		if v1 != v2 {
			t.Errorf("uniformInt() with same seed produced different values: %v vs %v", v1, v2)
		}
	}
}

func TestPickUniformEmpty(t *testing.T) {
	if got := pickUniform(nil, rand.New(rand.NewSource(1))); got != -1 {
		t.Errorf("pickUniform(nil) = %v, want -1", got)
	}
}

func TestPickUniformReturnsAMember(t *testing.T) {
	indices := []int{3, 7, 11, 42}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		got := pickUniform(indices, rng)
		found := false
		for _, idx := range indices {
			if idx == got {
				found = true
			}
		}
		if !found {
			t.Errorf("pickUniform() = %v, not a member of %v", got, indices)
		}
	}
}

func TestPickUniformCoversAllMembers(t *testing.T) {
	indices := []int{0, 1, 2}
	rng := rand.New(rand.NewSource(4))
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		seen[pickUniform(indices, rng)] = true
	}
	if len(seen) != len(indices) {
		t.Errorf("pickUniform() saw %d distinct values over 500 draws, want %d", len(seen), len(indices))
	}
}
