package main

import (
	"os"

	"github.com/scribedocs/scribe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
