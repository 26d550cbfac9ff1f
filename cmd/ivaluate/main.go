// Package main is the entry point for the iValuate server.
package main

import (
	"os"

	"github.com/ryhoangf/iValuate/cmd/ivaluate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
