package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnCarveStart(_ context.Context, width, height int) {
	h.logger.Debug("carve start", "width", width, "height", height)
}

func (h *logHooks) OnCarveComplete(_ context.Context, width, height, junctions int, d time.Duration) {
	h.logger.Debug("carve complete", "width", width, "height", height, "junctions", junctions, "duration", d)
}

func (h *logHooks) OnEncodeStart(_ context.Context, format string) {
	h.logger.Debug("encode start", "format", format)
}

func (h *logHooks) OnEncodeComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("encode failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("encode complete", "format", format, "bytes", size, "duration", d)
}
