package main

import (
	"os"

	"github.com/legacylift/legacylift/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
