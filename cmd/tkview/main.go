// Package main provides the tkview CLI, a static preview generator for
// Tkinter programs.
//
// Usage:
//
//	tkview render [path...]   Render .py files to HTML previews
//	tkview check [path...]    Scan .py files and report diagnostics
//	tkview help               Show help
//
// Examples:
//
//	tkview render ./...       Recursively render every Tkinter file
//	tkview render app.py      Render a specific file
//	tkview check app.py       Report diagnostics without writing output
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `tkview - static HTML previews for Tkinter source files

Usage:
  tkview <command> [options] [path...]

Commands:
  render      Render Tkinter files to standalone HTML previews
  check       Scan files and report diagnostics without writing output
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output
  -o DIR      Output directory for render (default: next to the source)

Examples:
  tkview render ./...             Recursively render all Tkinter files
  tkview render ./examples        Render files in a directory
  tkview render app.py            Render a specific file
  tkview render -v -o out ./...   Verbose render into ./out
  tkview check app.py             Report scan and behavior diagnostics

Files without a tkinter import are skipped. An optional tkview.yaml next to
the working directory overrides the output directory and preview theme.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		if err := runRender(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("tkview version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
