package main

import (
	"os"

	"github.com/flicksy/flicksy-cli/cmd/flicksy/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
