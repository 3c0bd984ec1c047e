package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes pipeline events to a logger at debug level and served
// responses at info level. Failed stages are logged at error level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("load start", "source", source)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, points, nets int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("load failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("load done", "source", source, "points", points, "nets", nets, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnDetectComplete(_ context.Context, nets, vias int, d time.Duration) {
	h.logger.Debug("vias detected", "nets", nets, "vias", vias, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnRenderStart(_ context.Context, view string, formats []string) {
	h.logger.Debug("render start", "view", view, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, view string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "view", view, "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render done", "view", view, "formats", formats, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status, bytes int, d time.Duration) {
	h.logger.Info("served", "method", method, "path", path, "status", status, "bytes", bytes, "took", d.Round(time.Microsecond))
}
