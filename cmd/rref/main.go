// SPDX-License-Identifier: MIT

// Command rref is a terminal puzzle game about reduced row echelon form.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rref/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
