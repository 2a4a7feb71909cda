package main

import (
	"os"

	"github.com/seankmartin/SKMNeuralConnections/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
