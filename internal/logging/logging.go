// internal/logging/logging.go
//
// Global zerolog setup shared by every subcommand.
//
// The web server logs JSON to stderr. The terminal UI owns the screen, so it
// logs to a file when one is configured and discards logs otherwise. The
// one-shot `get` command uses a human-readable console writer.

package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Mode selects the log sink.
type Mode int

const (
	JSON Mode = iota
	Console
	Screen // a full-screen UI is running
)

// Setup configures the global logger. The returned closer releases the log
// file, if any.
func Setup(level, file string, mode Mode) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	} else if mode == Screen {
		out = io.Discard
	}

	if mode == Console && file == "" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
