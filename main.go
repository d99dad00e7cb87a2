package main

import (
	"os"

	"github.com/earthlight/colorquiver/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
