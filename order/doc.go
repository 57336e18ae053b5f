// SPDX-License-Identifier: MIT

// Package order defines the ordering contract consumed by every
// comparison-based lvlseq algorithm.
//
// A Less[T] answers "does a strictly precede b?". It MUST be a strict weak
// ordering:
//   - irreflexive:  !less(a, a)
//   - asymmetric:   less(a, b) ⇒ !less(b, a)
//   - transitive:   less(a, b) && less(b, c) ⇒ less(a, c)
//   - incomparability is transitive: a~b && b~c ⇒ a~c, where
//     x~y means !less(x, y) && !less(y, x)
//
// Algorithms are undefined on predicates that break these rules. The classic
// trap is float NaN under Natural: NaN is incomparable with everything, which
// breaks the last rule. Use Float for float data that may hold NaN.
//
// Natural is the default less-than for ordered types. Combinators build new
// orderings without allocating per comparison:
//
//	byAge := order.By(func(p Person) int { return p.Age })
//	byAgeThenName := byAge.Then(order.By(func(p Person) string { return p.Name }))
//	oldestFirst := byAge.Reverse()
package order
