// Package main provides the entry point for the solidata CLI tool.
package main

import (
	"github.com/solidata/solidata/cmd/solidata/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
