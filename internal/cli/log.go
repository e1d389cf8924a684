package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of an operation when it finishes.
// It is not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond, for
// example "Stored 3 roots (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports codec and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnDecodeStart(context.Context, string) {}

func (h logHooks) OnDecodeComplete(_ context.Context, format string, roots int, d time.Duration, err error) {
	h.logger.Debug("decode", "format", format, "roots", roots, "duration", d, "err", err)
}

func (h logHooks) OnEncodeStart(context.Context, string) {}

func (h logHooks) OnEncodeComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.logger.Debug("encode", "format", format, "bytes", size, "duration", d, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache", "type", keyType, "result", "hit")
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache", "type", keyType, "result", "miss")
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache", "type", keyType, "result", "set", "bytes", size)
}
