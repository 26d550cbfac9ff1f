// Package main is the entry point for the ival CLI client.
package main

import (
	"github.com/ryhoangf/iValuate/cmd/ival/cmd"
)

func main() {
	cmd.Execute()
}
