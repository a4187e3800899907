// SPDX-License-Identifier: MIT

package postman

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/graphsketch/core"
)

// MaxExactMatching bounds ExactMatcher: its table has 2^k entries.
const MaxExactMatching = 20

// Pair is one matched couple of unbalanced nodes. The deadhead added for it
// runs From→To with the given Weight.
type Pair struct {
	From, To core.NodeID
	Weight   float64
}

// DistanceFunc returns the shortest-path distance u→v, +Inf when unreachable.
type DistanceFunc func(u, v core.NodeID) float64

// Matcher pairs up the nodes of pool. len(pool) is even.
//
// Implementations must be deterministic in pool order. A pair with +Inf
// weight is returned as such; Solve turns it into ErrGraphNotSolvable.
type Matcher interface {
	Match(pool []core.NodeID, dist DistanceFunc) ([]Pair, error)
}

// ParseMatcher maps a configuration name to a Matcher.
func ParseMatcher(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "greedy":
		return GreedyMatcher{}, nil
	case "exact":
		return ExactMatcher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatching, name)
	}
}

// GreedyMatcher repeatedly takes the first remaining node and pairs it with
// its nearest remaining node; ties go to the earlier node in pool order.
// It approximates a minimum-weight perfect matching and may overpay.
//
// Complexity: O(k²), where k = len(pool).
type GreedyMatcher struct{}

// Match implements Matcher.
func (GreedyMatcher) Match(pool []core.NodeID, dist DistanceFunc) ([]Pair, error) {
	// work on a local copy of the pool
	remaining := append([]core.NodeID(nil), pool...)
	pairs := make([]Pair, 0, len(pool)/2)
	for len(remaining) > 1 {
		// pick the first node
		u := remaining[0]
		remaining = remaining[1:]
		// find its closest partner; strict < keeps the earliest on ties
		bestIdx, bestD := 0, dist(u, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := dist(u, remaining[i]); d < bestD {
				bestD, bestIdx = d, i
			}
		}
		v := remaining[bestIdx]
		pairs = append(pairs, Pair{From: u, To: v, Weight: bestD})
		// remove v from remaining
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return pairs, nil
}

// ExactMatcher computes a minimum-weight perfect matching by dynamic
// programming over subsets of the pool.
//
// Complexity: Time O(k·2^k), Space O(2^k); k ≤ MaxExactMatching.
type ExactMatcher struct{}

// Match implements Matcher.
func (ExactMatcher) Match(pool []core.NodeID, dist DistanceFunc) ([]Pair, error) {
	k := len(pool)
	if k > MaxExactMatching {
		return nil, fmt.Errorf("%w: %d > %d", ErrMatchingTooLarge, k, MaxExactMatching)
	}
	if k%2 != 0 {
		return nil, fmt.Errorf("postman: cannot perfectly match %d nodes", k)
	}
	if k == 0 {
		return nil, nil
	}

	// 1) Pairwise weights, symmetric by taking the pool-order direction.
	w := make([][]float64, k)
	for i := range w {
		w[i] = make([]float64, k)
		for j := i + 1; j < k; j++ {
			w[i][j] = dist(pool[i], pool[j])
		}
	}

	// 2) best[mask] = cheapest perfect matching of the nodes in mask.
	//    The lowest node of mask is paired with some j; masks grow upward so
	//    every sub-mask is ready when read.
	full := 1<<k - 1
	best := make([]float64, full+1)
	choice := make([]int8, full+1)
	for mask := 1; mask <= full; mask++ {
		if bits.OnesCount(uint(mask))%2 != 0 {
			continue
		}
		i := bits.TrailingZeros(uint(mask))
		rest := mask &^ (1 << i)
		found := false
		for j := i + 1; j < k; j++ {
			if rest&(1<<j) == 0 {
				continue
			}
			cand := w[i][j] + best[rest&^(1<<j)]
			if !found || cand < best[mask] {
				best[mask], choice[mask], found = cand, int8(j), true
			}
		}
	}

	// 3) Walk the choices back from the full set, lowest node first.
	pairs := make([]Pair, 0, k/2)
	for mask := full; mask != 0; {
		i := bits.TrailingZeros(uint(mask))
		j := int(choice[mask])
		pairs = append(pairs, Pair{From: pool[i], To: pool[j], Weight: w[i][j]})
		mask &^= 1<<i | 1<<j
	}
	return pairs, nil
}
