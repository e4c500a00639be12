package main

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/cli"
)

func main() {
	cli.Start()
}
