// Package main is the entry point for the preach CLI.
package main

import "preach.dev/pkg/preach/cmd"

func main() {
	cmd.Execute()
}
