package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("scheduled") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("loaded project") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("loaded project") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("redundant dependency") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProjectLogger(t *testing.T) {
	var buf bytes.Buffer
	projectLogger(newLogger(&buf, log.InfoLevel), "plans/release.yaml").Warn("redundant dependency")

	if !strings.Contains(buf.String(), "project=release") {
		t.Errorf("log line missing project field: %q", buf.String())
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("scheduled projects", "count", 3)

	out := buf.String()
	for _, want := range []string{"scheduled projects", "count=3", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output %q missing %q", out, want)
		}
	}
}
