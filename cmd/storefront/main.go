// Package main boots the HEM storefront CLI.
package main

import (
	"os"

	"github.com/hemshop/storefront/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
