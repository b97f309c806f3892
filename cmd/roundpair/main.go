package main

import (
	"os"

	"github.com/katalvlaran/roundpair/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
