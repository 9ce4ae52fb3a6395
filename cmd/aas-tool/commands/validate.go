package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aas-twin/twin-go/pkg/aas"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	JSON  bool
	Files []string
}

// ValidationOutput represents the validation result for a file.
type ValidationOutput struct {
	Valid  bool   `json:"valid"`
	Format string `json:"format,omitempty"`
	Error  string `json:"error,omitempty"`

	// Shell metadata, populated on success.
	ID         string `json:"id,omitempty"`
	AssetType  string `json:"asset_type,omitempty"`
	Properties int    `json:"properties"`
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	hasErrors := false
	results := make(map[string]*ValidationOutput)

	for _, file := range opts.Files {
		result := validateFile(file)
		results[file] = result

		if !result.Valid {
			hasErrors = true
		}

		if !opts.JSON {
			printValidationResult(stdout, file, result)
		}
	}

	if opts.JSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Fprintln(stdout, string(output))
	}

	if hasErrors {
		return exitValidation
	}
	return exitSuccess
}

func validateFile(path string) *ValidationOutput {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ValidationOutput{Error: err.Error()}
	}

	format := aas.DetectFormat(data)
	output := &ValidationOutput{Format: format.String()}

	shell, err := aas.ParseBytesWithFormat(data, format)
	if err != nil {
		output.Error = err.Error()
		return output
	}

	output.Valid = true
	output.ID = shell.ID
	output.AssetType = shell.AssetType
	output.Properties = len(shell.Nameplate)
	return output
}

func printValidationResult(w io.Writer, file string, result *ValidationOutput) {
	if result.Valid {
		fmt.Fprintf(w, "%s: OK (%s, %d properties)\n", file, result.Format, result.Properties)
		return
	}
	fmt.Fprintf(w, "%s: FAILED\n", file)
	fmt.Fprintf(w, "  ERROR %s\n", result.Error)
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	opts := ValidateOptions{}

	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: aas-tool validate [options] <files...>

Options:
  --json       Output results as JSON

Examples:
  aas-tool validate motor.json
  aas-tool validate --json *.yaml`)
}
