// Package main provides the CLI entrypoint for the Zest dashboard.
package main

import (
	"os"

	"github.com/zest-labs/zest/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
