// Package log provides structured event capture for the relay timer.
//
// This package defines the Logger interface and Event types for recording
// what the controller did on each loop iteration: accepted button edges,
// run state transitions, countdown ticks, sequencer phase changes and
// pulses on the motor lines. It is separate from operational logging
// (slog). The event trace is machine-readable and meant for replaying a
// session after the fact.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For long runs: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/relaytimer/session.tlog")
//
//	// Both: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .tlog extension.
// The relaytimer-log CLI tool provides viewing, filtering, statistics and
// export.
package log
