// SPDX-License-Identifier: MIT

// Command seqbench times and verifies the lvlseq algorithms.
//
//	seqbench run --plan plan.yaml [--seed N] [--workers N] [--log-level L]
//	seqbench sort [--desc] [--heap] [numbers...]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
