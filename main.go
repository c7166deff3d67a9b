// Package main is the entry point for the viewstrap CLI.
package main

import "viewstrap.dev/pkg/viewstrap/cmd"

func main() {
	cmd.Execute()
}
