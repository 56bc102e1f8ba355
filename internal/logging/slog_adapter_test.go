// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf).Level(zerolog.DebugLevel))
	logger := slog.New(handler)

	logger.Warn("service restarted", "service", "http-server", "attempt", 2)

	output := buf.String()
	for _, want := range []string{`"level":"warn"`, `"service":"http-server"`, `"attempt":2`, "service restarted"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	handler := NewSlogHandlerWithLogger(NewTestLogger(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	ctx := context.Background()

	if handler.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected info disabled for warn-level logger")
	}
	if !handler.Enabled(ctx, slog.LevelError) {
		t.Error("expected error enabled for warn-level logger")
	}
}

func TestSlogHandler_WithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	var h slog.Handler = NewSlogHandlerWithLogger(NewTestLogger(&buf))

	h = h.WithAttrs([]slog.Attr{slog.String("tree", "cinegraph")})
	h = h.WithGroup("outer").WithGroup("inner")

	slog.New(h).Info("grouped", "key", "value")

	output := buf.String()
	if !strings.Contains(output, `"outer.inner.tree":"cinegraph"`) {
		t.Errorf("expected grouped pre-configured attr, got: %s", output)
	}
	if !strings.Contains(output, `"outer.inner.key":"value"`) {
		t.Errorf("expected outer-to-inner group prefix, got: %s", output)
	}
}

func TestSlogHandler_WithEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(NewTestLogger(&bytes.Buffer{}))
	if h.WithGroup("") != h {
		t.Error("expected WithGroup(\"\") to return the same handler")
	}
	if h.WithAttrs(nil) != h {
		t.Error("expected WithAttrs(nil) to return the same handler")
	}
}

func TestAddAttr_Kinds(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	event := logger.Info()
	attrs := []slog.Attr{
		slog.String("s", "x"),
		slog.Int64("i", -3),
		slog.Uint64("u", 7),
		slog.Float64("f", 1.5),
		slog.Bool("b", true),
		slog.Duration("d", time.Second),
		slog.Any("err", errors.New("boom")),
		slog.Group("g", slog.String("nested", "y")),
	}
	for _, a := range attrs {
		event = addAttr(event, a, nil)
	}
	event.Msg("")

	output := buf.String()
	for _, want := range []string{`"s":"x"`, `"i":-3`, `"u":7`, `"f":1.5`, `"b":true`, `"err":"boom"`, `"g.nested":"y"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
