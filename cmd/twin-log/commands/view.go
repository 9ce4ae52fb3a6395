// Package commands implements the twin-log CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/aas-twin/twin-go/pkg/ticklog"
)

// BuildFilter translates the view command's flag values into a ticklog
// filter.
func BuildFilter(assetID, kind string) (ticklog.Filter, error) {
	filter := ticklog.Filter{AssetID: assetID}

	if kind != "" {
		k, err := parseKindFlag(kind)
		if err != nil {
			return ticklog.Filter{}, err
		}
		filter.Kind = &k
	}

	return filter, nil
}

func parseKindFlag(s string) (ticklog.Kind, error) {
	switch s {
	case "tick":
		return ticklog.KindTick, nil
	case "reset":
		return ticklog.KindReset, nil
	default:
		return 0, fmt.Errorf("unknown kind: %s (supported: tick, reset)", s)
	}
}

// RunView prints the trace file in human-readable form.
func RunView(path string, filter ticklog.Filter, w io.Writer) error {
	reader, err := ticklog.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(w, event)
		count++
	}

	fmt.Fprintf(w, "Total: %d events\n", count)
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event ticklog.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	switch event.Kind {
	case ticklog.KindTick:
		fmt.Fprintf(w, "%s [%s] TICK  tick=%d rpm=%.2f\n", ts, event.AssetID, event.Tick, event.RPM)
	case ticklog.KindReset:
		fmt.Fprintf(w, "%s [%s] RESET\n", ts, event.AssetID)
	default:
		fmt.Fprintf(w, "%s [%s] %s\n", ts, event.AssetID, event.Kind)
	}
}
