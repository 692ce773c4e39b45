// Package notify delivers escalations to moderators.
package notify

import (
	"context"
	"log/slog"

	"github.com/bigsister-lab/bigsister/internal/platform"
)

// Log writes escalations to the structured log. It never fails.
type Log struct {
	log *slog.Logger
}

// NewLog returns a Log notifier writing to logger, or the default logger.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{log: logger}
}

func (l *Log) NotifyEscalation(ctx context.Context, esc platform.Escalation) error {
	l.log.WarnContext(ctx, "[Escalation] Subject reached modlog threshold",
		"escalation_id", esc.ID,
		"subject", esc.Subject,
		"count", esc.Count,
		"modlog_id", esc.ModlogID,
		"type", esc.Type,
		"triggered_at", esc.TriggeredAt)
	return nil
}

var _ platform.Notifier = (*Log)(nil)
