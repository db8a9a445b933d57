package main

import (
	"os"

	"github.com/voxlab/hostbox/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
