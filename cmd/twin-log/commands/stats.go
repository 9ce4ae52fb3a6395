package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/aas-twin/twin-go/pkg/ticklog"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents  int
	EventsByKind map[ticklog.Kind]int
	Assets       map[string]*AssetStats
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// AssetStats holds statistics for a single asset.
type AssetStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Resets    int
	MaxTick   uint32
	LastRPM   float64
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := ticklog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[ticklog.Kind]int),
		Assets:       make(map[string]*AssetStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track per-asset stats
		asset, ok := stats.Assets[event.AssetID]
		if !ok {
			asset = &AssetStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Assets[event.AssetID] = asset
		}
		asset.Events++
		if event.Timestamp.After(asset.LastSeen) {
			asset.LastSeen = event.Timestamp
		}
		switch event.Kind {
		case ticklog.KindReset:
			asset.Resets++
		case ticklog.KindTick:
			if event.Tick > asset.MaxTick {
				asset.MaxTick = event.Tick
			}
			asset.LastRPM = event.RPM
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Total events: %d\n", stats.TotalEvents)

	if stats.TotalEvents == 0 {
		return
	}

	fmt.Fprintf(w, "Time range: %s - %s (%s)\n",
		stats.TimeRange.Start.UTC().Format(time.RFC3339),
		stats.TimeRange.End.UTC().Format(time.RFC3339),
		stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))

	fmt.Fprintln(w, "\nEvents by kind:")
	kinds := []ticklog.Kind{ticklog.KindTick, ticklog.KindReset}
	for _, k := range kinds {
		if n := stats.EventsByKind[k]; n > 0 {
			fmt.Fprintf(w, "  %-6s %d\n", k.String(), n)
		}
	}

	// Sort asset IDs for stable output
	ids := make([]string, 0, len(stats.Assets))
	for id := range stats.Assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintln(w, "\nAssets:")
	for _, id := range ids {
		a := stats.Assets[id]
		fmt.Fprintf(w, "  %s: %d events, %d resets, max tick %d, last rpm %.2f\n",
			id, a.Events, a.Resets, a.MaxTick, a.LastRPM)
	}
}
