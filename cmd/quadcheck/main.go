// SPDX-License-Identifier: MIT

// Command quadcheck verifies the declared exactness degree of cubature
// schemes and draws them.
//
//	quadcheck check [--config catalog.yaml] [--concurrency n] [--verbose]
//	quadcheck show <family> [index] [--domain name] [--no-color]
//	quadcheck list
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
