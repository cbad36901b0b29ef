// Package main provides the augment CLI.
package main

import (
	"os"

	"github.com/born-ml/augment/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
