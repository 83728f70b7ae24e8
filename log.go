package warp

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger that writes records at or above the
// configured level to w.
func NewLogger(w io.Writer, c Config) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
