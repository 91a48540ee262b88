package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(context.Background(), &buf, "Rendering svg")
	s.Start()
	time.Sleep(250 * time.Millisecond)
	s.Stop()

	if s.Cancelled() {
		t.Error("Stop should not mark the spinner as cancelled")
	}
	out := buf.String()
	if !strings.Contains(out, "Rendering svg") {
		t.Errorf("spinner output = %q, want message", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("Stop should clear the line, output ends with %q", out[len(out)-min(len(out), 10):])
	}
}

func TestSpinnerCancelled(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) }},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 20*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			s := newSpinnerWithContext(ctx, &bytes.Buffer{}, "Scheduling")
			s.Start()
			if tt.name == "cancel" {
				cancel()
			} else {
				defer cancel()
				time.Sleep(50 * time.Millisecond)
			}
			s.Stop()

			if !s.Cancelled() {
				t.Error("spinner should report the caller's cancellation")
			}
		})
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), &bytes.Buffer{}, "Scheduling")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(context.Background(), &buf, "Rendering pdf")
	s.Start()
	s.StopWithError("Render failed")

	if !strings.Contains(buf.String(), "Render failed") {
		t.Errorf("output = %q, want error message", buf.String())
	}
}
