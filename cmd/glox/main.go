package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/tinylox/glox/internal/maincmd"
)

var (
	// placeholder values, replaced on build
	version   = "0.1.0"
	buildDate = "unreleased"
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
