// SPDX-License-Identifier: MIT

// Package search answers ordered queries on sorted random-access ranges.
//
// Every function requires [first, last) to be sorted by the same less it is
// given. The result on unsorted input is unspecified; building with the
// lvlseqdebug tag turns that precondition into a panic wrapping ErrUnsorted,
// raised before any probe is made.
//
//   - LowerBound  - first position whose element does not precede value.
//   - UpperBound  - first position whose element value precedes.
//   - EqualRange  - both bounds, i.e. the run of elements equivalent to value.
//   - BinarySearch - whether such a run is non-empty.
//
// Each query costs O(log n) comparisons and cursor moves.
package search
