package notify

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/reportcal/internal/domain"
)

// CallEvent records the outcome of one notification attempt.
type CallEvent struct {
	Action    domain.EventAction
	Date      domain.DateKey
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives notification outcomes. Nothing else sees failures.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver logs each outcome as a structured line.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"action", string(event.Action),
		"date", string(event.Date),
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("report_notify", append(attrs, "status", "err:"+event.ErrorCode)...)
		return
	}
	o.logger.Info("report_notify", append(attrs, "status", "ok")...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
