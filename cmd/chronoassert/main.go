package main

import (
	"os"

	"digital.vasic.chronoassert/cmd/chronoassert/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
