// kirchhoff checks student answers for the PHY 132 two-loop circuit sets.
//
// Usage:
//
//	kirchhoff serve [--listen=:8501]
//	kirchhoff check --set=<id> <I1> <I2> <I3>
//	kirchhoff equations --set=<id> --eq=A,B,C,D [--eq=...]
//	kirchhoff key [--set=<id>] [--print]
//	kirchhoff sets
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
