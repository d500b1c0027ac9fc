// Package log provides the logging abstraction used by qrship.
//
// The library never writes to stderr on its own: the default logger is
// [NoopLogger]. Applications inject a [Logger] through qrship.WithLogger; the
// qrship CLI uses the zerolog adapter:
//
//	logger, err := log.NewConsole(os.Stderr, "info")
//	enc, err := qrship.New(cfg, qrship.WithLogger(logger))
//
// Implement [Logger] to route pipeline events into another logging stack.
package log
