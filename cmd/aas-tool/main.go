// aas-tool is a CLI tool for AAS shell document validation, inspection,
// and conversion.
package main

import (
	"fmt"
	"os"

	"github.com/aas-twin/twin-go/cmd/aas-tool/commands"
	"github.com/aas-twin/twin-go/pkg/version"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "new":
		exitCode = commands.RunNew(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("aas-tool version " + version.Current)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`aas-tool - AAS shell document validation and conversion tool

Usage:
  aas-tool <command> [options] [files...]

Commands:
  validate   Validate shell documents against the structural decoding rules
  show       Display a shell document in various formats
  convert    Convert between shell formats (JSON <-> YAML)
  new        Scaffold a new shell document

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  aas-tool validate motor.json
  aas-tool show --format yaml motor.json
  aas-tool convert motor.yaml -o motor.json
  aas-tool new --type "Siemens 1LE1" -o motor.json

For command-specific help, run:
  aas-tool <command> --help`)
}
