// Package main provides the CLI for the vocabclean dataset cleaner.
package main

import (
	"os"

	"github.com/leapstack-labs/vocabclean/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
