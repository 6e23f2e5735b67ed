// Package main is the entry point for the sharectl binary.
package main

import (
	"os"

	cli "deltashare/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
