package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pont-us/sedlog-ffq/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at warn level", log.WarnLevel, func(l *log.Logger) { l.Warn("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	time.Sleep(10 * time.Millisecond)
	prog.done("wrote 3 files")

	if !strings.Contains(buf.String(), "wrote 3 files") {
		t.Errorf("progress output %q lacks message", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("no default logger")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("loggerFromContext returned a different logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	var statuses []string
	h := &logHooks{
		logger: newLogger(&buf, log.DebugLevel),
		status: func(s string) { statuses = append(statuses, s) },
	}
	var _ observability.PipelineHooks = h
	var _ observability.CacheHooks = h

	ctx := context.Background()
	h.OnLoadStart(ctx, "beds.csv")
	h.OnLoadComplete(ctx, "beds.csv", 12, time.Millisecond, nil)
	h.OnPageStart(ctx, "detail", 2000, 2100)
	h.OnPageComplete(ctx, "detail", 2000, true, time.Millisecond, nil)
	h.OnPageComplete(ctx, "detail", 2100, false, 0, errors.New("boom"))
	h.OnCacheMiss(ctx, "page")

	out := buf.String()
	for _, want := range []string{"loading inputs", "inputs loaded", "page done", "page failed", "cache miss"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
	if len(statuses) != 1 || !strings.Contains(statuses[0], "detail 2000") {
		t.Errorf("statuses = %q", statuses)
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.InfoLevel)}
	h.OnCacheHit(context.Background(), "page")
	h.OnPageStart(context.Background(), "detail", 2000, 2100)
	if buf.Len() != 0 {
		t.Errorf("unexpected output at info level: %q", buf.String())
	}
}
