package main

import (
	"os"

	"github.com/murphyqm/derelict/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
