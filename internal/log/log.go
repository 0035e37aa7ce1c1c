// seehuhn.de/go/preview - a headless line preview rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package log sets up slog logging for the command line tools.
//
// The configuration is read from the environment:
//   - PREVIEW_LOG_LEVEL=debug|info|warn|error (default info)
//   - PREVIEW_LOG_FORMAT=text|json (default text)
//   - PREVIEW_LOG_FILE=<path> additionally writes JSON records to a
//     rotated log file
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables read by [FromEnv].
const (
	EnvLevel  = "PREVIEW_LOG_LEVEL"
	EnvFormat = "PREVIEW_LOG_FORMAT"
	EnvFile   = "PREVIEW_LOG_FILE"
)

// Options controls the logger built by [New].
type Options struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	File   string // optional path of a rotated JSON log file
}

// FromEnv reads logger options from the environment.
func FromEnv() Options {
	return Options{
		Level:  getenv(EnvLevel, "info"),
		Format: getenv(EnvFormat, "text"),
		File:   os.Getenv(EnvFile),
	}
}

// New builds a logger which writes to w and, if opts.File is set, to a
// rotated log file.  The returned function closes the log file.
func New(w io.Writer, opts Options) (*slog.Logger, func() error) {
	hOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		h = slog.NewJSONHandler(w, hOpts)
	} else {
		h = slog.NewTextHandler(w, hOpts)
	}

	closeFn := func() error { return nil }
	if file := strings.TrimSpace(opts.File); file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		h = fanOut{h, slog.NewJSONHandler(lj, hOpts)}
		closeFn = lj.Close
	}
	return slog.New(h), closeFn
}

// ParseLevel converts a level name to a [slog.Level].
// Unknown names give [slog.LevelInfo].
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// fanOut sends every record to all of its handlers.
type fanOut []slog.Handler

func (f fanOut) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanOut) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanOut) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make(fanOut, len(f))
	for i, h := range f {
		res[i] = h.WithAttrs(attrs)
	}
	return res
}

func (f fanOut) WithGroup(name string) slog.Handler {
	res := make(fanOut, len(f))
	for i, h := range f {
		res[i] = h.WithGroup(name)
	}
	return res
}
