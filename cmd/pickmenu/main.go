package main

import (
	"os"

	"github.com/moasq/pickmenu/internal/commands"
	"github.com/moasq/pickmenu/internal/terminal"
)

func main() {
	if err := commands.Execute(); err != nil {
		terminal.Error(err.Error())
		os.Exit(1)
	}
}
