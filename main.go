// Package main is the entry point for the sabot CLI.
package main

import "sabot.dev/pkg/sabot/cmd"

func main() {
	cmd.Execute()
}
