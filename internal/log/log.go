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

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/uri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(h uri.Host) slog.Value {
		return slog.GroupValue(
			slog.String("kind", h.Kind().String()),
			slog.String("name", h.Name()),
		)
	}),
	slogformatter.FormatByType(func(q uri.Query) slog.Value {
		attrs := make([]slog.Attr, 0, len(q))
		for _, k := range q.Keys() {
			attrs = append(attrs, slog.Any(k, q.Get(k)))
		}
		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(u uri.URI) slog.Value {
		return slog.StringValue(u.String())
	}),
)

// New returns a logger writing to w.
// A dev logger pretty prints records with devslog, otherwise console-slog is used.
func New(w io.Writer, dev bool, level slog.Leveler) *slog.Logger {
	if dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
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

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
