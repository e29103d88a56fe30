package geojson

import (
	"context"
	"log/slog"
)

// WithLogger sets a custom logger. The default logger discards all
// records; the codec only logs at Debug level.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *Codec) {
		c.logger = l
	})
}

type discardHandler struct{}

func (n *discardHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *discardHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *discardHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *discardHandler) WithGroup(_ string) slog.Handler {
	return n
}
