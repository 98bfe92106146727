// Package seekr provides the command-line interface for the Seekr tool.
// It configures subcommands (search, ignore, seq, reach, vault, etc.),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import seekr "github.com/seekr/seekr/cmd/seekr"
//	func main() { seekr.Execute() }
package seekr
