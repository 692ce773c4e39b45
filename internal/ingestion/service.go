package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/core/storage"
	"github.com/bigsister-lab/bigsister/internal/escalation"
	"github.com/bigsister-lab/bigsister/internal/metrics"
	"github.com/bigsister-lab/bigsister/internal/platform"
	"github.com/gin-gonic/gin"
)

var (
	// ErrInvalidEvent wraps envelope validation failures.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrForeignGuild rejects events from a guild other than the configured one.
	ErrForeignGuild = errors.New("event belongs to a foreign guild")
)

// Options tune the pipeline.
type Options struct {
	// GuildID restricts ingestion to one guild; zero accepts every guild.
	GuildID int64

	// DeriveModlogs records "!warn <user>" style moderator messages as modlogs.
	DeriveModlogs bool

	MaxBodySizeMB int
}

// Result reports what an append did.
type Result struct {
	Kind      string `json:"kind"`
	ID        int64  `json:"id,string"`
	Duplicate bool   `json:"duplicate"`

	// SubjectCount is the subject's modlog count in the escalation window,
	// this modlog included when it falls inside the window. Modlogs only.
	SubjectCount int64                `json:"subject_count,omitempty"`
	Escalation   *platform.Escalation `json:"escalation,omitempty"`
	NotifyError  string               `json:"notify_error,omitempty"`

	// Derived is the modlog recorded from a moderator command message.
	Derived      *Result `json:"derived_modlog,omitempty"`
	DerivedError string  `json:"derived_error,omitempty"`
}

// Service is the single entry point for new events. Every append runs
// synchronously: a modlog's escalation is evaluated after the store has
// committed it and before the call returns.
type Service struct {
	store            storage.EventStore
	trigger          *escalation.Trigger
	identity         platform.Identity
	opts             Options
	maxBodySizeBytes int
}

func NewService(store storage.EventStore, trigger *escalation.Trigger, identity platform.Identity, opts Options) *Service {
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	if trigger == nil {
		panic("ingestion: escalation trigger must not be nil")
	}
	if opts.DeriveModlogs && identity == nil {
		panic("ingestion: identity is required to derive modlogs")
	}
	if opts.MaxBodySizeMB <= 0 {
		opts.MaxBodySizeMB = 1
	}
	return &Service{
		store:            store,
		trigger:          trigger,
		identity:         identity,
		opts:             opts,
		maxBodySizeBytes: opts.MaxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/messages", s.AppendMessageHandler)
	r.POST("/v1/modlogs", s.AppendModlogHandler)
	r.GET("/v1/messages/:id", s.GetMessageHandler)
	r.GET("/v1/modlogs/:id", s.GetModlogHandler)
}

func (s *Service) checkGuild(guildID int64) error {
	if s.opts.GuildID != 0 && guildID != s.opts.GuildID {
		return fmt.Errorf("%w: %d", ErrForeignGuild, guildID)
	}
	return nil
}

// normalizeTime keeps timestamps at the precision every backend stores, so a
// point lookup returns exactly what was appended.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// AppendMessage stores one message. A duplicate id is not an error.
func (s *Service) AppendMessage(ctx context.Context, ev *v1.MessageEvent) (Result, error) {
	res := Result{Kind: metrics.KindMessage, ID: ev.ID}

	if err := ev.Validate(); err != nil {
		metrics.RecordAppend(metrics.KindMessage, metrics.OutcomeRejected)
		return res, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	if err := s.checkGuild(ev.GuildID); err != nil {
		metrics.RecordAppend(metrics.KindMessage, metrics.OutcomeRejected)
		return res, err
	}
	ev.CreatedAt = normalizeTime(ev.CreatedAt)

	if err := s.store.AppendMessage(ctx, ev); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			metrics.RecordAppend(metrics.KindMessage, metrics.OutcomeDuplicate)
			slog.Warn("[Ingestion] Duplicate message ignored", "event_id", ev.ID)
			res.Duplicate = true
			return res, nil
		}
		metrics.RecordAppend(metrics.KindMessage, metrics.OutcomeFailed)
		return res, err
	}
	metrics.RecordAppend(metrics.KindMessage, metrics.OutcomeStored)

	if s.opts.DeriveModlogs {
		s.appendDerived(ctx, ev, &res)
	}
	return res, nil
}

func (s *Service) appendDerived(ctx context.Context, ev *v1.MessageEvent, res *Result) {
	modlog, err := s.deriveModlog(ctx, ev)
	if err != nil {
		slog.Error("[Ingestion] Failed to derive modlog", "event_id", ev.ID, "error", err)
		res.DerivedError = err.Error()
		return
	}
	if modlog == nil {
		return
	}

	derived, err := s.AppendModlog(ctx, modlog)
	if err != nil {
		slog.Error("[Ingestion] Failed to append derived modlog",
			"event_id", ev.ID,
			"subject", modlog.Subject,
			"error", err)
		res.DerivedError = err.Error()
		return
	}
	res.Derived = &derived
}

// AppendModlog stores one modlog and evaluates the escalation trigger with
// the subject count the store returned for it. A duplicate id is not an
// error and does not escalate. A failed notification is reported on the
// Result; the modlog stays recorded.
func (s *Service) AppendModlog(ctx context.Context, ev *v1.ModlogEvent) (Result, error) {
	res := Result{Kind: metrics.KindModlog, ID: ev.ID}

	if err := ev.Validate(); err != nil {
		metrics.RecordAppend(metrics.KindModlog, metrics.OutcomeRejected)
		return res, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	if err := s.checkGuild(ev.GuildID); err != nil {
		metrics.RecordAppend(metrics.KindModlog, metrics.OutcomeRejected)
		return res, err
	}
	ev.CreatedAt = normalizeTime(ev.CreatedAt)

	since := s.trigger.Since(s.trigger.Now())
	count, err := s.store.AppendModlog(ctx, ev, since)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			metrics.RecordAppend(metrics.KindModlog, metrics.OutcomeDuplicate)
			slog.Warn("[Ingestion] Duplicate modlog ignored", "event_id", ev.ID, "subject", ev.Subject)
			res.Duplicate = true
			return res, nil
		}
		metrics.RecordAppend(metrics.KindModlog, metrics.OutcomeFailed)
		return res, err
	}
	metrics.RecordAppend(metrics.KindModlog, metrics.OutcomeStored)
	res.SubjectCount = count

	slog.Debug("[Ingestion] Modlog stored",
		"event_id", ev.ID,
		"subject", ev.Subject,
		"type", ev.Type,
		"count", count)

	// A backfilled modlog older than the window did not change the count, so
	// the count it reports was already evaluated when it was reached.
	if ev.CreatedAt.Before(since) {
		slog.Debug("[Ingestion] Modlog outside escalation window",
			"event_id", ev.ID,
			"subject", ev.Subject,
			"since", since)
		return res, nil
	}

	esc, err := s.trigger.Evaluate(ctx, ev, count)
	res.Escalation = esc
	if err != nil {
		res.NotifyError = err.Error()
	}
	return res, nil
}

// GetMessage is a point lookup.
func (s *Service) GetMessage(ctx context.Context, id int64) (*v1.MessageEvent, error) {
	return s.store.GetMessage(ctx, id)
}

// GetModlog is a point lookup.
func (s *Service) GetModlog(ctx context.Context, id int64) (*v1.ModlogEvent, error) {
	return s.store.GetModlog(ctx, id)
}
