// Package main provides the entry point for the catalog CLI.
package main

import (
	"os"

	"movie-catalog/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
