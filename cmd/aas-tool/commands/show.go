package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/aas-twin/twin-go/pkg/aas"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Format   string // text, json, yaml
	Property string // filter by property id_short
	File     string
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.File == "" {
		fmt.Fprintln(stderr, "Error: no file specified")
		printShowUsage(stderr)
		return exitCommandError
	}

	shell, err := aas.ParseFile(opts.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Property != "" {
		filtered := shell.Nameplate[:0:0]
		for _, e := range shell.Nameplate {
			if e.IDShort == opts.Property {
				filtered = append(filtered, e)
			}
		}
		shell.Nameplate = filtered
	}

	switch opts.Format {
	case "json":
		fmt.Fprintln(stdout, aas.EncodeString(shell))
	case "yaml":
		data, err := aas.EncodeYAML(shell)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fmt.Fprint(stdout, string(data))
	default:
		printShowText(stdout, opts.File, shell)
	}

	return exitSuccess
}

func printShowText(w io.Writer, file string, shell *aas.Shell) {
	fmt.Fprintf(w, "File: %s\n", file)
	fmt.Fprintf(w, "Asset: %s\n", shell.ID)
	fmt.Fprintf(w, "Type: %s\n", shell.AssetType)

	fmt.Fprintln(w, "\nNameplate:")
	for _, e := range shell.Nameplate {
		line := fmt.Sprintf("  %s = %s", e.IDShort, e.Value)
		if unit := e.UnitString(); unit != "" {
			line += " " + unit
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\nTotal: %d properties\n", len(shell.Nameplate))
}

func parseShowArgs(args []string) (ShowOptions, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	opts := ShowOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")
	fs.StringVar(&opts.Property, "property", "", "Filter by property id_short")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	remaining := fs.Args()
	if len(remaining) > 0 {
		opts.File = remaining[0]
	}

	return opts, nil
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: aas-tool show [options] <file>

Options:
  -f, --format    Output format (text, json, yaml) [default: text]
  --property      Filter by property id_short

Examples:
  aas-tool show motor.json
  aas-tool show --format yaml motor.json
  aas-tool show --property Voltage motor.json`)
}
