// Package ticklog provides structured simulation trace logging.
//
// The twin's simulation engine itself is pure; hosts that want a durable
// record of simulation activity capture one Event per advance or reset.
// This is host-side tooling: the twin package never depends on it.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	var logger ticklog.Logger = ticklog.NewSlogAdapter(slog.Default())
//
//	// For analysis: write to binary file
//	logger, _ = ticklog.NewFileLogger("motor.tlog")
//
//	// Both: use MultiLogger
//	logger = ticklog.NewMultiLogger(
//	    ticklog.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
//	logger.Log(ticklog.NewTickEvent(t.ID(), t.TickCount(), t.RPM()))
//
// # File Format
//
// Trace files use CBOR encoding with .tlog extension. The twin-log CLI
// tool provides viewing, statistics, and export capabilities.
package ticklog
