// Package main implements the entry point for the garden API server, which
// lets users create, share and maintain gardens and their planting beds.
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
