// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

//go:build verbose

package main

import (
	"log/slog"
	"os"

	"github.com/warthog618/go-instrsim/gpib"
	"github.com/warthog618/go-instrsim/internal/trace"
)

func init() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	lib = gpib.NewVerbose(lib, trace.WithLogger(slog.New(h)))
}
