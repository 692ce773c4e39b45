// Package platform declares the capabilities the engine borrows from the chat
// platform: identity and role resolution, the channel directory, and
// notification delivery. Implementations are constructed by the host and
// passed in explicitly.
package platform

import (
	"context"
	"errors"
	"time"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/google/uuid"
)

// ErrUnknownUser is returned by Identity for ids it cannot resolve.
var ErrUnknownUser = errors.New("unknown user")

// EveryoneRole is the default role every member holds.
const EveryoneRole = "@everyone"

// Identity resolves user ids to bot flags, roles and moderation rights.
type Identity interface {
	IsBot(ctx context.Context, user int64) (bool, error)
	RolesOf(ctx context.Context, user int64) ([]string, error)
	CanModerate(ctx context.Context, user int64) (bool, error)
}

// Channel is one text channel as the directory knows it.
type Channel struct {
	ID         int64  `json:"id,string" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	CategoryID int64  `json:"category_id,string" yaml:"category_id"`
	Category   string `json:"category" yaml:"category"`
}

// ChannelDirectory lists the guild's channels.
type ChannelDirectory interface {
	Channels(ctx context.Context) ([]Channel, error)
}

// Escalation is emitted when a subject reaches a multiple of the
// escalation cadence.
type Escalation struct {
	ID          uuid.UUID     `json:"id"`
	Subject     int64         `json:"subject,string"`
	Count       int64         `json:"count"`
	ModlogID    int64         `json:"modlog_id,string"`
	Type        v1.ModlogType `json:"type"`
	TriggeredAt time.Time     `json:"triggered_at"`
}

// Notifier delivers escalations to humans.
type Notifier interface {
	NotifyEscalation(ctx context.Context, esc Escalation) error
}

// Collaborators bundles everything the engine needs from the platform.
type Collaborators struct {
	Identity Identity
	Channels ChannelDirectory
	Notifier Notifier
}
