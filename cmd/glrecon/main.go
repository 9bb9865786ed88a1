package main

import (
	"os"

	"github.com/glrecon-dev/glrecon/internal/commands"
	"github.com/glrecon-dev/glrecon/internal/logger"
)

func main() {
	logger.Init()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
