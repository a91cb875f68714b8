package main

import (
	"os"

	"github.com/kasku-dev/kasku/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
