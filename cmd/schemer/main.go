package main

import (
	"os"

	"github.com/gophersource/schemer/cmd/schemer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
