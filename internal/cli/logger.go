// Package cli provides the argument-parsing, prompting, and reporting
// plumbing around the doby package's Encrypt/Decrypt/Run entry points.
// None of it touches the container format or the cryptographic
// pipeline directly.
package cli

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide logger, writing to stderr so
// stdout stays reserved for container bytes when the tool is used in
// a pipeline. verbose raises the level from Info to Debug.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
}
