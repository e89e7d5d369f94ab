package nsga3

import (
	"math/rand"
	"sort"
)

// nichePreserve fills selected from the front-map front until it has
// exactly target members (Component G). refCount is ref-index ->
// number of already-selected individuals associated with it, seeded
// by the caller from the already-admitted whole layers before the
// splitting front. distanceOf returns a handle's stored perpendicular
// distance to its associated reference direction.
//
// Ported from NSGA3Abstract's nichePreservation()/findMinSet(), with
// the niche pick drawn by pickUniform and the candidate pick by
// uniformInt (both proper uniform [0,n) draws) rather than the
// source's biased streaming sampler.
func nichePreserve(selected []Handle, front map[int][]Handle, refCount map[int]int, target int, distanceOf func(Handle) float64, rng *rand.Rand) []Handle {
	for len(selected) < target {
		minNiche := -1
		for _, count := range refCount {
			if minNiche == -1 || count < minNiche {
				minNiche = count
			}
		}

		var candidates []int
		for ref, count := range refCount {
			if count == minNiche {
				candidates = append(candidates, ref)
			}
		}
		// refCount is a map, so iteration order is randomized; sort by
		// reference index to keep the subsequent uniform draw (and
		// hence the whole pass) reproducible under a fixed seed.
		sort.Ints(candidates)

		chosenRef := pickUniform(candidates, rng)
		pool := front[chosenRef]

		if len(pool) == 0 {
			delete(refCount, chosenRef)
			continue
		}

		var pickIdx int
		if refCount[chosenRef] == 0 {
			pickIdx = 0
			for i := 1; i < len(pool); i++ {
				if distanceOf(pool[i]) < distanceOf(pool[pickIdx]) {
					pickIdx = i
				}
			}
		} else {
			pickIdx = uniformInt(len(pool), rng)
		}

		picked := pool[pickIdx]
		pool[pickIdx] = pool[len(pool)-1]
		front[chosenRef] = pool[:len(pool)-1]

		selected = append(selected, picked)
		refCount[chosenRef]++
	}
	return selected
}
