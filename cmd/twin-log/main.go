// Command twin-log is a tool for viewing and analyzing twin simulation
// trace files.
//
// Trace files are created by twin-sim with the -trace flag or the record
// command.
//
// Usage:
//
//	twin-log <command> [flags] <file.tlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	twin-log view motor.tlog
//
//	# View only reset events
//	twin-log view --kind reset motor.tlog
//
//	# Export to JSONL
//	twin-log export --format jsonl motor.tlog
//
//	# Show statistics
//	twin-log stats motor.tlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aas-twin/twin-go/cmd/twin-log/commands"
)

const usage = `twin-log - Twin Simulation Trace Analyzer

Usage:
  twin-log <command> [flags] <file.tlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  stats    Show statistics about the trace file

Use "twin-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `twin-log view - View trace file in human-readable format

Usage:
  twin-log view [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	assetID := fs.String("asset-id", "", "Filter by asset ID")
	kind := fs.String("kind", "", "Filter by event kind (tick, reset)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	filter, err := commands.BuildFilter(*assetID, *kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `twin-log export - Export trace file to JSON or CSV format

Usage:
  twin-log export [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `twin-log stats - Show statistics about the trace file

Usage:
  twin-log stats <file.tlog>
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
