package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aas-twin/twin-go/pkg/aas"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	Input  string
	Output string // Empty means stdout
	To     string // json or yaml; inferred from output extension when empty
}

// RunConvert runs the convert command.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	opts, err := parseConvertArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printConvertUsage(stderr)
		return exitCommandError
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return exitCommandError
	}

	from := aas.DetectFormat(data)
	shell, err := aas.ParseBytesWithFormat(data, from)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing input: %v\n", err)
		return exitCommandError
	}

	to, err := targetFormat(opts, from)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	var output []byte
	if to == aas.FormatYAML {
		output, err = aas.EncodeYAML(shell)
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding output: %v\n", err)
			return exitCommandError
		}
	} else {
		output = append(aas.Encode(shell), '\n')
	}

	if opts.Output == "" || opts.Output == "-" {
		fmt.Fprint(stdout, string(output))
	} else {
		if err := os.WriteFile(opts.Output, output, 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "Converted %s -> %s\n", opts.Input, opts.Output)
	}

	return exitSuccess
}

// targetFormat resolves the output format from the --to flag, the output
// file extension, or by flipping the input format, in that order.
func targetFormat(opts ConvertOptions, from aas.Format) (aas.Format, error) {
	switch strings.ToLower(opts.To) {
	case "json":
		return aas.FormatJSON, nil
	case "yaml", "yml":
		return aas.FormatYAML, nil
	case "":
	default:
		return aas.FormatAuto, fmt.Errorf("unknown format %q (expected json or yaml)", opts.To)
	}

	switch {
	case strings.HasSuffix(opts.Output, ".json"):
		return aas.FormatJSON, nil
	case strings.HasSuffix(opts.Output, ".yaml"), strings.HasSuffix(opts.Output, ".yml"):
		return aas.FormatYAML, nil
	}

	if from == aas.FormatJSON {
		return aas.FormatYAML, nil
	}
	return aas.FormatJSON, nil
}

func parseConvertArgs(args []string) (ConvertOptions, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	opts := ConvertOptions{}

	fs.StringVar(&opts.Output, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.Output, "output", "", "Output file")
	fs.StringVar(&opts.To, "to", "", "Output format (json, yaml)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	remaining := fs.Args()
	if len(remaining) > 0 {
		opts.Input = remaining[0]
	}

	return opts, nil
}

func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: aas-tool convert [options] <input-file>

Options:
  -o, --output   Output file (default: stdout)
  --to           Output format (json, yaml); inferred from the output
                 extension, or the opposite of the input format

Examples:
  aas-tool convert motor.yaml -o motor.json
  aas-tool convert motor.json --to yaml
  aas-tool convert motor.json > motor.yaml`)
}
