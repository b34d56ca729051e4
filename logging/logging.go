package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a timestamped logger writing to w.
func New(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
	})
	logger.SetLevel(level)
	return logger
}

// NewDefault creates a logger on stderr at the named level ("debug", "info",
// "warn", "error").
func NewDefault(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return New(os.Stderr, lvl), nil
}
