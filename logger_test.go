package raster

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() = nil")
	}
	// Must not panic and must not require any setup.
	Logger().Debug("discarded")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Logger().Debug("hello", "k", "v")
	if buf.Len() == 0 {
		t.Error("configured logger produced no output")
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Debug("silent again")
	if buf.Len() != 0 {
		t.Error("nil reset still writes to the old logger")
	}
}

func TestSingularShaderDrawLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	cv, _ := newTestCanvas(t, 10, 10)
	paint := NewPaint()
	paint.Shader = NewLinearGradient(Pt(0, 0), Pt(10, 0), []Color{Red, Blue}, TileClamp)
	paint.Blend = BlendSrc
	cv.Scale(0, 0)
	cv.DrawRect(RectLTRB(0, 0, 10, 10), paint)

	if buf.Len() == 0 {
		t.Error("skipped draw left no debug trace")
	}
}
