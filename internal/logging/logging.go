package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// New returns a leveled logger writing to w. An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "merchant",
	}), nil
}

func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
