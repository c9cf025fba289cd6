package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the slog handler New builds.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures New.
type Option func(*options)

type options struct {
	level      slog.Level
	format     Format
	out        io.Writer
	static     []slog.Attr
	extractors []ContextExtractor
}

// WithVerbosity sets the minimum level from its name, see ParseLevel.
func WithVerbosity(name string) Option {
	return func(o *options) { o.level = ParseLevel(name) }
}

// WithFormat sets the output format.
// Panics for anything but FormatJSON and FormatText: a misconfigured logger
// must stop startup.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(o *options) { o.format = f }
}

// WithOutput redirects records to w. A nil writer keeps stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithService stamps every record with service=name.
func WithService(name string) Option {
	return func(o *options) {
		if name != "" {
			o.static = append(o.static, slog.String("service", name))
		}
	}
}

// WithContextExtractors adds attributes pulled from the context of each
// record. Nil extractors are ignored.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// New builds a logger writing JSON at info level to stdout unless told
// otherwise.
func New(opts ...Option) *slog.Logger {
	o := &options{level: slog.LevelInfo, format: FormatJSON, out: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level, ReplaceAttr: levelName}

	var h slog.Handler = slog.NewJSONHandler(o.out, handlerOpts)
	if o.format == FormatText {
		h = slog.NewTextHandler(o.out, handlerOpts)
	}
	if len(o.static) > 0 {
		h = h.WithAttrs(o.static)
	}

	return slog.New(newContextHandler(h, o.extractors))
}
