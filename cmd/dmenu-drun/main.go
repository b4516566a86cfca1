package main

import (
	"os"

	"github.com/dtomvan/dmenu-drun/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
