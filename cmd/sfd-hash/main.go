// Package main is the sfd-hash CLI entrypoint.
package main

import (
	"os"

	"github.com/sfdlabs/sfd-hash/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, os.Stdout, os.Stderr))
}
