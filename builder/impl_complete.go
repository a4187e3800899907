// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n with nodes on a circle.
//
// Pairs {i,j}, i<j, are emitted in lexicographic order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(d *draft) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := circle(d, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addLink(ids[i], ids[j])
			}
		}
		return nil
	}
}
