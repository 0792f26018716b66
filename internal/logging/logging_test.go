package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestSlogLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestSlogLogger(t)
	ctx := context.Background()

	log.Info(ctx, "inf", "a", 1)
	log.Warn(ctx, "wrn", "b", 2)
	log.Error(ctx, "err", "c", 3)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
	}{
		{"INFO", "inf"},
		{"WARN", "wrn"},
		{"ERROR", "err"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
	}
}

func TestSlogLogger_With_AddsFieldToEveryLine(t *testing.T) {
	log, buf := newTestSlogLogger(t)
	child := log.With("component", "api")

	child.Info(context.Background(), "hello")

	if !strings.Contains(buf.String(), "component=api") {
		t.Fatalf("expected component=api in output:\n%s", buf.String())
	}
}

func TestZerologLogger_Levels_WriteExpectedOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))
	ctx := context.Background()

	log.Info(ctx, "inf", "a", 1)
	log.Warn(ctx, "wrn", "b", 2)
	log.Error(ctx, "err", "c", 3)

	out := buf.String()

	for _, want := range []string{
		`"level":"info"`, `"message":"inf"`, `"a":1`,
		`"level":"warn"`, `"message":"wrn"`, `"b":2`,
		`"level":"error"`, `"message":"err"`, `"c":3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestZerologLogger_With_AddsFieldToEveryLine(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	child := log.With("component", "session")
	child.Info(context.Background(), "hello")

	if !strings.Contains(buf.String(), `"component":"session"`) {
		t.Fatalf("expected component field in output:\n%s", buf.String())
	}
}

func TestZerologLogger_OddArgs_IgnoresDanglingKey(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Info(context.Background(), "odd", "a", 1, "dangling")

	out := buf.String()
	if !strings.Contains(out, `"a":1`) {
		t.Fatalf("expected a=1 in output:\n%s", out)
	}
	if strings.Contains(out, "dangling") {
		t.Fatalf("dangling key must be dropped:\n%s", out)
	}
}
