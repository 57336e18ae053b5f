// SPDX-License-Identifier: MIT

// Package algo provides the single-pass sequence algorithms of lvlseq:
// extrema scans, lexicographic comparison, sortedness checks, and the small
// find/count/fill/copy/reverse/rotate building blocks the sort and search
// engines are tested and composed with.
//
// Everything here needs only a forward cursor (Reverse needs a bidirectional
// one), so the same calls work on slices and on linked lists:
//
//	first, last := cursor.Range(data)
//	lo, hi := algo.MinMaxElement(first, last, order.Natural[int])
//
// Tie rules are fixed and deterministic:
//   - MinElement and MaxElement keep the earliest of equal candidates.
//   - MinMaxElement returns the earliest smallest and the LATEST largest,
//     using about 1.5·n comparisons by scanning elements in pairs.
//   - LexicographicalCompare treats a proper prefix as less.
//
// Functions whose arguments carry no value of T (Reverse, Rotate, Copy,
// SwapRanges) need the element type spelled out: algo.Reverse[int](first, last).
package algo
