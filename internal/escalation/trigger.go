// Package escalation fires a notification on every Nth modlog of a subject.
package escalation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/metrics"
	"github.com/bigsister-lab/bigsister/internal/platform"
	"github.com/google/uuid"
)

const (
	DefaultEvery          = 5
	DefaultLookbackMonths = 6
	DefaultNotifyTimeout  = 10 * time.Second
)

// Trigger decides whether a freshly appended modlog escalates its subject.
// It keeps no state of its own: the count comes from the store, computed
// atomically with the append, so each count is seen by exactly one append.
type Trigger struct {
	notifier       platform.Notifier
	every          int64
	lookbackMonths int
	notifyTimeout  time.Duration
	nowFn          func() time.Time
}

// NewTrigger returns a trigger firing every `every` modlogs counted over the
// trailing lookbackMonths. notifyTimeout bounds each delivery. Non-positive
// values take the defaults.
func NewTrigger(notifier platform.Notifier, every, lookbackMonths int, notifyTimeout time.Duration) *Trigger {
	if every <= 0 {
		every = DefaultEvery
	}
	if lookbackMonths <= 0 {
		lookbackMonths = DefaultLookbackMonths
	}
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &Trigger{
		notifier:       notifier,
		every:          int64(every),
		lookbackMonths: lookbackMonths,
		notifyTimeout:  notifyTimeout,
		nowFn:          func() time.Time { return time.Now().UTC() },
	}
}

// Now is the trigger's clock.
func (t *Trigger) Now() time.Time {
	return t.nowFn()
}

// Since is the lower bound of the counting window at now.
func (t *Trigger) Since(now time.Time) time.Time {
	return now.AddDate(0, -t.lookbackMonths, 0)
}

// Fires reports whether count is a positive multiple of the cadence.
func (t *Trigger) Fires(count int64) bool {
	return count > 0 && count%t.every == 0
}

// Evaluate notifies once when count fires. It returns the escalation that was
// emitted (nil if none) and the delivery error, if any.
//
// The modlog is committed before Evaluate runs and its redelivery never
// re-evaluates, so delivery ignores the caller's cancellation. It is bounded
// by the notify timeout instead.
func (t *Trigger) Evaluate(ctx context.Context, ev *v1.ModlogEvent, count int64) (*platform.Escalation, error) {
	if !t.Fires(count) {
		return nil, nil
	}

	esc := platform.Escalation{
		ID:          uuid.New(),
		Subject:     ev.Subject,
		Count:       count,
		ModlogID:    ev.ID,
		Type:        ev.Type,
		TriggeredAt: t.nowFn(),
	}

	slog.Info("[Escalation] Threshold reached",
		"escalation_id", esc.ID,
		"subject", esc.Subject,
		"count", esc.Count,
		"modlog_id", esc.ModlogID)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.notifyTimeout)
	defer cancel()

	if err := t.notifier.NotifyEscalation(ctx, esc); err != nil {
		metrics.RecordEscalation(metrics.EscalationFailed)
		slog.Error("[Escalation] Notification failed",
			"escalation_id", esc.ID,
			"subject", esc.Subject,
			"error", err)
		return &esc, fmt.Errorf("notify escalation for subject %d: %w", esc.Subject, err)
	}

	metrics.RecordEscalation(metrics.EscalationDelivered)
	return &esc, nil
}
