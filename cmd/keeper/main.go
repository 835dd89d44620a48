// Command keeper is the fantasy football keeper analysis CLI.
package main

import (
	"os"

	"github.com/gridironlabs/keeper/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
