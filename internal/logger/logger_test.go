package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatAuto},
		{in: "JSON", want: FormatJSON},
		{in: "pretty", want: FormatPretty},
		{in: "text", want: FormatText},
		{in: "xml", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseFormat(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseFormat(%q)=%q,%v want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestJSONLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := New(&buf, Options{Format: FormatJSON, Level: slog.LevelWarn})
	log.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %s", buf.String())
	}
	log.Warn("kept", "tier", "avx")
	out := buf.String()
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"tier":"avx"`) {
		t.Fatalf("unexpected json output: %s", out)
	}
}

func TestAutoFormat(t *testing.T) {
	t.Parallel()
	var plain bytes.Buffer
	New(&plain, Options{Format: FormatAuto, Level: slog.LevelInfo}).Info("hello", "width", 4)
	if !strings.Contains(plain.String(), "level=INFO") {
		t.Fatalf("auto without terminal should be text: %s", plain.String())
	}

	var tty bytes.Buffer
	New(&tty, Options{Format: FormatAuto, Level: slog.LevelInfo, Terminal: true}).Info("hello", "width", 4)
	if !strings.Contains(tty.String(), ansiReset) || !strings.Contains(tty.String(), "width=4") {
		t.Fatalf("auto on terminal should be colored pretty output: %q", tty.String())
	}
}

func TestPrettyWithoutColor(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := New(&buf, Options{Format: FormatPretty, Level: slog.LevelDebug})
	log.With("type", "float").Debug("dispatch", "op", "+", "note", "two words")

	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Fatalf("colors emitted without a terminal: %q", out)
	}
	for _, want := range []string{"DEBUG", "dispatch", "type=float", "op=+", `note="two words"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestPrettyGroups(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil, false)
	slog.New(h.WithGroup("http")).Info("request", "status", 200, slog.Group("route", "id", "x"))

	out := buf.String()
	if !strings.Contains(out, "http.status=200") || !strings.Contains(out, "http.route.id=x") {
		t.Fatalf("group prefixes missing: %q", out)
	}
}

func TestPrettyEnabled(t *testing.T) {
	t.Parallel()
	h := NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}, false)
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled at warn level")
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := New(&buf, Options{Format: FormatJSON, Level: slog.LevelInfo})
	FromContext(WithContext(context.Background(), log)).Info("roundtrip")
	if !strings.Contains(buf.String(), "roundtrip") {
		t.Fatalf("context logger not used: %s", buf.String())
	}
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext without logger returned nil")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.input); got != tc.expected {
			t.Errorf("ParseLevel(%q)=%v want %v", tc.input, got, tc.expected)
		}
	}
}
