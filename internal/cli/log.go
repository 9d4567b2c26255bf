package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 12 pages (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports pipeline and cache events at debug level. When status
// is set it also receives a short description of the page being drawn.
type logHooks struct {
	logger *log.Logger
	status func(string)
}

func (h *logHooks) OnLoadStart(_ context.Context, beds string) {
	h.logger.Debug("loading inputs", "beds", beds)
}

func (h *logHooks) OnLoadComplete(_ context.Context, beds string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "beds", beds, "err", err)
		return
	}
	h.logger.Debug("inputs loaded", "beds", records, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnPageStart(_ context.Context, sheet string, bottom, top float64) {
	h.logger.Debug("page", "sheet", sheet, "bottom", bottom, "top", top)
	if h.status != nil {
		h.status(fmt.Sprintf("Rendering %s %g–%g...", sheet, bottom, top))
	}
}

func (h *logHooks) OnPageComplete(_ context.Context, sheet string, bottom float64, cached bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("page failed", "sheet", sheet, "bottom", bottom, "err", err)
		return
	}
	h.logger.Debug("page done", "sheet", sheet, "bottom", bottom, "cached", cached, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
