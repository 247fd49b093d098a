package plotlayout

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	cfg.Debug = true
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, err := NewChart(twoSeries(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Draw(800, 600); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, msg := range []string{"chart updated", "ranges resolved", "axis=xaxis", "layout pass"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log lacks %q:\n%s", msg, out)
		}
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	if _, err := NewChart(twoSeries(), testConfig()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "chart updated") {
		t.Errorf("package logger not used: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is not silent")
	}
}
