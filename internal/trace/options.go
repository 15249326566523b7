// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package trace

import "log/slog"

// Option defines the interface required to provide an option to New.
type Option interface {
	applyOption(*Tracer)
}

// LoggerOption defines the logger records are written to.
type LoggerOption struct {
	logger *slog.Logger
}

// WithLogger returns an option that defines the logger used by the Tracer.
func WithLogger(l *slog.Logger) LoggerOption {
	return LoggerOption{l}
}

func (o LoggerOption) applyOption(t *Tracer) {
	t.logger = o.logger
}

// LevelOption defines the level calls are logged at.
type LevelOption slog.Level

// WithLevel returns an option that defines the level calls are logged at.
func WithLevel(level slog.Level) LevelOption {
	return LevelOption(level)
}

func (o LevelOption) applyOption(t *Tracer) {
	t.level = slog.Level(o)
}

// PrefixOption defines the name prepended to each function name.
type PrefixOption string

// WithPrefix returns an option that defines the name prepended to each
// function name, typically the name of the simulated library.
//
// e.g. "gpib" results in messages like "gpib.ibdev(0, 5, 0, 0, 1, 0) -> 3".
func WithPrefix(prefix string) PrefixOption {
	return PrefixOption(prefix)
}

func (o PrefixOption) applyOption(t *Tracer) {
	t.prefix = string(o)
}
