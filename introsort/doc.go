// SPDX-License-Identifier: MIT

// Package introsort implements an in-place, unstable hybrid sort over
// random-access cursors.
//
// 🚀 Strategy
//
//	The engine starts as a randomized quicksort and tracks a recursion
//	budget, initially the range length. Every partition shrinks the budget
//	to (b>>1)+(b>>2), roughly three quarters, so it reaches zero after
//	O(log n) levels however unbalanced the pivots are. Then:
//	  - n > threshold, budget > 0  → random-pivot partition, recurse.
//	  - n > threshold, budget == 0 → heap.Make + heap.Sort on the subrange.
//	  - 2 ≤ n ≤ threshold          → insertion sort.
//	  - n < 2                      → nothing to do.
//	The smaller side of each partition is recursed into and the larger one
//	is handled by the loop, so the goroutine stack stays O(log n).
//
// ✨ Randomness
//
//	Pivots come from a Source supplied per call (WithSource) or created
//	per call from a seed (WithSeed). With no option the default seed is
//	used, so sorting the same input twice produces the same comparisons.
//	Nothing is shared between calls, so concurrent Sorts on distinct ranges
//	are safe.
//
// ⚙️ Options
//   - WithSeed, WithSource           - pivot stream.
//   - WithInsertionThreshold         - small-range cutoff (default 32).
//   - WithOnPartition, WithOnFallback, WithOnInsertion - observation hooks.
//
// Complexity: O(n log n) average and worst case, O(log n) stack, in place.
// Not stable.
//
// Failure safety: a panicking less propagates unchanged; the range is left a
// permutation of its input.
package introsort
