// Package main provides uipreview, a headless driver for the paint
// application chrome. It builds the demo element tree, runs scripted
// frames and writes the result as a PNG or as a draw list dump.
//
// Usage:
//
//	uipreview render [options]   Rasterize the chrome to a PNG
//	uipreview dump [options]     Print the draw list
//	uipreview theme [-o path]    Write the default theme as TOML
//	uipreview help               Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `uipreview - headless preview of the paint application chrome

Usage:
  uipreview <command> [options]

Commands:
  render      Rasterize the chrome to a PNG
  dump        Print the draw list, one item per line
  theme       Write the default theme as TOML
  version     Print version information
  help        Show this help message

Options (render, dump):
  -theme path     Load a TOML theme
  -w, -h          Display size in pixels (default 960x640)
  -open title     Open the named menu of the menu bar
  -tool name      Choose a toolbar tool
  -dialog         Show the unsaved changes dialog
  -debug path     Write frame debug logs to path
  -o path         Output file (render: preview.png, theme: stdout)

Examples:
  uipreview render -o chrome.png
  uipreview render -open File -w 640 -h 480
  uipreview dump -dialog
  uipreview theme -o light.toml
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
	case "dump":
		if err := runDump(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "theme":
		if err := runTheme(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("uipreview version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
