// SPDX-License-Identifier: MIT

// Package check holds the debug-checked precondition assertions. They are
// compiled to no-ops unless the build tag lvlseqdebug is set:
//
//	go test -tags lvlseqdebug ./...
package check

import "fmt"

// Assert panics with err (wrapped with msg) when cond is false and debug
// checks are enabled. cond is a func so the O(n) verification is skipped
// entirely in optimized builds.
func Assert(cond func() bool, err error, msg string) {
	if !Enabled {
		return
	}
	if !cond() {
		panic(fmt.Errorf("%w: %s", err, msg))
	}
}
