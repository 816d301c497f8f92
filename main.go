package main

import (
	"os"

	"github.com/hilt-lab/hiltnlp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
