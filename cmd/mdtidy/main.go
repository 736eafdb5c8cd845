// Package main provides the CLI entry point for mdtidy.
package main

import "github.com/mdtidy/mdtidy/internal/cli"

func main() {
	cli.Execute()
}
