// SPDX-License-Identifier: MIT

// Command undigraph-demo exercises the graph: the matched-halves scenario
// with idempotent vertex removal, and the builder topologies.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
