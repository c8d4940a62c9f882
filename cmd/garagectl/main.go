package main

import (
	"os"

	"github.com/garagehub/garagectl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
