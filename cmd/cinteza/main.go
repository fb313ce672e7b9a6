package main

import (
	"os"

	"github.com/cinteza-dev/cinteza/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
