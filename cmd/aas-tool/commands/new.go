package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aas-twin/twin-go/pkg/aas"
	"github.com/google/uuid"
)

// NewOptions configures the new command.
type NewOptions struct {
	ID        string
	AssetType string
	Output    string // Empty means stdout
	Props     propList
}

// propList collects repeated --prop flags of the form NAME=VALUE[:UNIT].
type propList []aas.SubmodelElement

func (p *propList) String() string {
	names := make([]string, 0, len(*p))
	for _, e := range *p {
		names = append(names, e.IDShort)
	}
	return strings.Join(names, ",")
}

func (p *propList) Set(s string) error {
	name, rest, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("invalid property %q (expected NAME=VALUE[:UNIT])", s)
	}

	elem := aas.SubmodelElement{IDShort: name}
	if value, unit, ok := strings.Cut(rest, ":"); ok {
		elem.Value = value
		elem.Unit = &unit
	} else {
		elem.Value = rest
	}

	*p = append(*p, elem)
	return nil
}

// RunNew runs the new command, scaffolding a shell document.
func RunNew(args []string, stdout, stderr io.Writer) int {
	opts, err := parseNewArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	id := opts.ID
	if id == "" {
		// Generated ids follow ASSET-<uuid> so scaffolded documents are
		// unique without requiring the caller to pick a scheme.
		id = "ASSET-" + uuid.NewString()
	}

	shell := &aas.Shell{
		ID:        id,
		AssetType: opts.AssetType,
		Nameplate: append([]aas.SubmodelElement{}, opts.Props...),
	}

	output := append(aas.Encode(shell), '\n')

	if opts.Output == "" || opts.Output == "-" {
		fmt.Fprint(stdout, string(output))
	} else {
		if err := os.WriteFile(opts.Output, output, 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "Created %s\n", opts.Output)
	}

	return exitSuccess
}

func parseNewArgs(args []string) (NewOptions, error) {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	opts := NewOptions{}

	fs.StringVar(&opts.ID, "id", "", "Asset identifier (default: generated)")
	fs.StringVar(&opts.AssetType, "type", "", "Asset type (manufacturer + model)")
	fs.StringVar(&opts.Output, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.Output, "output", "", "Output file")
	fs.Var(&opts.Props, "prop", "Nameplate property NAME=VALUE[:UNIT] (repeatable)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	return opts, nil
}
