// Package main is the entry point of the seqjoin CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/seqjoin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
