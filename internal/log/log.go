// Package log provides logging utilities.
package log

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/siphdr/header"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(hdr header.Header) slog.Value {
		if hdr == nil {
			return slog.StringValue("<nil>")
		}
		return slog.GroupValue(
			slog.String("name", string(header.KindOf(hdr).CanonicName())),
			slog.String("value", header.RenderValue(hdr)),
		)
	}),
	slogformatter.FormatByType(func(k header.Kind) slog.Value {
		return slog.StringValue(k.String())
	}),
)

// Options configures a logger built by [New].
type Options struct {
	Level slog.Leveler
	// Dev switches to the colorful developer handler.
	Dev bool
}

// New creates a logger writing to w.
func New(w io.Writer, opts *Options) *slog.Logger {
	if opts == nil {
		opts = &Options{}
	}
	lvl := opts.Level
	if lvl == nil {
		lvl = slog.LevelInfo
	}

	if opts.Dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     lvl,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
