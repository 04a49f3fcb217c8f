package observability

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. Verbose mode enables debug level
// and human-readable console output; otherwise logs are JSON at info
// level, suitable for piping.
func NewLogger(verbose bool) zerolog.Logger {
	var output io.Writer = os.Stderr
	level := zerolog.InfoLevel

	if verbose {
		level = zerolog.DebugLevel
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	zerolog.SetGlobalLevel(level)
	return zerolog.New(output).With().Timestamp().Logger()
}
