// Package main is the entry point for the ccmigrate CLI tool.
package main

import (
	"os"

	"github.com/crowvale/ccmigrate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
