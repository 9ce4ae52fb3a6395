// Command twin-sim is an interactive host for an AAS digital twin.
//
// It loads a shell document, constructs a twin, and opens a small REPL
// for querying the asset and driving the simulation:
//
//	twin-sim -f motor.json
//	twin> tick 3
//	twin> get Voltage
//	twin> summary
//
// Simulation activity can be recorded to a CBOR trace file with the
// record command and inspected afterwards with twin-log.
//
// Flags:
//
//	-f string           Shell document (JSON or YAML, required)
//	-trace string       Record simulation events to this trace file
//	-log-level string   Log level: debug, info, warn, error (default "info")
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/aas-twin/twin-go/pkg/aas"
	"github.com/aas-twin/twin-go/pkg/ticklog"
	"github.com/aas-twin/twin-go/pkg/twin"
	"github.com/aas-twin/twin-go/pkg/version"
)

// Config holds the twin-sim configuration.
type Config struct {
	File      string
	TraceFile string
	LogLevel  string
}

var config Config

func init() {
	flag.StringVar(&config.File, "f", "", "Shell document (JSON or YAML)")
	flag.StringVar(&config.TraceFile, "trace", "", "Record simulation events to this trace file")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()
	cfg := config

	if *showVersion {
		fmt.Println("twin-sim version " + version.Current)
		return
	}

	setupLogging(cfg.LogLevel)

	if cfg.File == "" {
		fmt.Fprintln(os.Stderr, "Error: no shell document specified (-f)")
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		slog.Error("failed to read shell document", "file", cfg.File, "err", err)
		os.Exit(1)
	}

	// The twin constructor takes canonical JSON; YAML documents are
	// converted through the codec first.
	if aas.DetectFormat(data) == aas.FormatYAML {
		shell, err := aas.DecodeYAML(data)
		if err != nil {
			slog.Error("invalid shell document", "file", cfg.File, "err", err)
			os.Exit(1)
		}
		data = aas.Encode(shell)
	}

	t, err := twin.New(string(data))
	if err != nil {
		slog.Error("failed to construct twin", "file", cfg.File, "err", err)
		os.Exit(1)
	}

	var recorder ticklog.Logger = ticklog.NoopLogger{}
	if cfg.TraceFile != "" {
		fl, err := ticklog.NewFileLogger(cfg.TraceFile)
		if err != nil {
			slog.Error("failed to open trace file", "file", cfg.TraceFile, "err", err)
			os.Exit(1)
		}
		defer fl.Close()
		recorder = ticklog.NewMultiLogger(fl, ticklog.NewSlogAdapter(slog.Default()))
	}

	slog.Info("twin constructed", "asset", t.ID(), "type", t.AssetType())

	repl, err := newREPL(t, recorder)
	if err != nil {
		slog.Error("failed to start REPL", "err", err)
		os.Exit(1)
	}
	repl.Run()
}

func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(handler))
}
