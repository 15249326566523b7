// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package trace logs calls made into a simulated library.
//
// It backs the verbose wrappers of the d2xx and gpib packages.
package trace

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Tracer records each call, its arguments and its result.
type Tracer struct {
	logger *slog.Logger
	level  slog.Level
	prefix string
}

// New constructs a Tracer based on the provided options.
//
// The available options are [WithLogger], [WithLevel] and [WithPrefix].
//
// Without a WithLogger option the tracer logs to slog.Default at debug level.
func New(options ...Option) *Tracer {
	t := &Tracer{level: slog.LevelDebug}
	for _, o := range options {
		o.applyOption(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

// Call logs a call to fn.
//
// The message has the form "prefix.fn(arg0, arg1) -> result".
// Values written to output parameters are provided as alternating key/value
// pairs in outputs and become attributes of the record.
func (t *Tracer) Call(fn string, args []any, result any, outputs ...any) {
	if !t.logger.Enabled(context.Background(), t.level) {
		return
	}
	t.logger.Log(context.Background(), t.level, Format(t.prefix, fn, args, result), outputs...)
}

// Format renders a call in the form used by Call.
func Format(prefix, fn string, args []any, result any) string {
	var sb strings.Builder
	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte('.')
	}
	sb.WriteString(fn)
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", a)
	}
	sb.WriteString(") -> ")
	fmt.Fprintf(&sb, "%v", result)
	return sb.String()
}
