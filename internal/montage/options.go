package montage

import "log/slog"

// Option configures ReadMontage.
type Option func(*options)

type options struct {
	names    []string
	hasNames bool
	path     string
	scale    bool
	logger   *slog.Logger
}

func defaultOptions() *options {
	return &options{
		scale:  true,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithNames keeps only the sensors whose label is one of names. The result
// follows the order of names, not the order of the file.
func WithNames(names ...string) Option {
	return func(o *options) {
		o.names = append([]string(nil), names...)
		o.hasNames = true
	}
}

// WithPath sets the directory searched for the layout file when kind does
// not name an existing file itself. Without it, the bundled reference
// layouts are searched.
func WithPath(dir string) Option {
	return func(o *options) {
		o.path = dir
	}
}

// WithScale records whether positions are meant to be rescaled for plotting.
// Parsing does not depend on it. Default is true.
func WithScale(scale bool) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithLogger sets the logger used for debug output. Nil restores the default,
// which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}
