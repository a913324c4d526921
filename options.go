// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import "log/slog"

// Option configures a Map at construction time.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for diagnostic events: rolled back inserts
// at warn level, rebinding of default keys at debug level.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
