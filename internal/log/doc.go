// Package log builds the slog logger used by assetext.
//
// Report output goes to standard output and is parsed by other tools, so
// logs always go to a separate writer (standard error in the CLI). The
// default level is Warn, which keeps a normal run silent. Verbose mode
// lowers it to Debug.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose, log.FormatText)
//	slog.SetDefault(logger)
package log
