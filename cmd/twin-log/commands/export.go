package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/aas-twin/twin-go/pkg/ticklog"
)

// exportEvent is the JSON representation of a trace event.
type exportEvent struct {
	Timestamp time.Time `json:"timestamp"`
	AssetID   string    `json:"asset_id"`
	Kind      string    `json:"kind"`
	Tick      uint32    `json:"tick"`
	RPM       float64   `json:"rpm"`
}

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := ticklog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *ticklog.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		out := exportEvent{
			Timestamp: event.Timestamp,
			AssetID:   event.AssetID,
			Kind:      event.Kind.String(),
			Tick:      event.Tick,
			RPM:       event.RPM,
		}
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *ticklog.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "asset_id", "kind", "tick", "rpm"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format(time.RFC3339Nano),
			event.AssetID,
			event.Kind.String(),
			strconv.FormatUint(uint64(event.Tick), 10),
			strconv.FormatFloat(event.RPM, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}
