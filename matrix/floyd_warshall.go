// SPDX-License-Identifier: MIT
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Used as the `matrix --closure` view and as an independent oracle for
//     the shortest-path engine.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall returns the all-pairs shortest-path closure of m. The input
// is left untouched.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal.
//
// Determinism:
//   - Loop order is fixed (k → i → j) and only strict improvements are kept.
//
// Complexity: Time O(n³), Space O(n²) for the copy.
func FloydWarshall(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, m.r, m.c, ErrNonSquare)
	}
	for i := 0; i < m.r; i++ {
		if v := m.data[i*m.c+i]; v != 0 {
			return nil, fmt.Errorf("%s: (%d,%d)=%g: %w", opFloydWarshall, i, i, v, ErrNonZeroDiagonal)
		}
	}

	d := m.Clone()
	floydWarshallInPlace(d)

	return d, nil
}

// floydWarshallInPlace runs the closure on a square *Dense in-place.
// Time: O(n^3); Extra space: O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, kj, cand float64 // d[i,k], d[k,j] and the candidate via k
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // no path via k can improve i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
