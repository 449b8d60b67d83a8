// Package main provides the entry point for the pointgo CLI.
package main

import (
	"os"

	"github.com/hupe1980/pointgo/cmd/pointgo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
