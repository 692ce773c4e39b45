package ingestion

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/platform"
)

// modCommand matches "!warn 123" and ".mute 123 reason". Stored content has
// mention markup stripped, so the subject is a bare user id.
var modCommand = regexp.MustCompile(`^[!.](warn|mute)\s+(\d+)\b`)

// ParseModCommand extracts the action and subject of a moderator command.
func ParseModCommand(content string) (v1.ModlogType, int64, bool) {
	m := modCommand.FindStringSubmatch(content)
	if m == nil {
		return "", 0, false
	}
	subject, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil || subject <= 0 {
		return "", 0, false
	}
	return v1.ModlogType(m[1]), subject, true
}

// deriveModlog returns the modlog a message stands for, or nil when it is
// not a moderator command, was not posted by a moderator, or names a user
// the directory does not know.
func (s *Service) deriveModlog(ctx context.Context, ev *v1.MessageEvent) (*v1.ModlogEvent, error) {
	kind, subject, ok := ParseModCommand(ev.Content)
	if !ok {
		return nil, nil
	}

	canModerate, err := s.identity.CanModerate(ctx, ev.Author)
	if errors.Is(err, platform.ErrUnknownUser) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("check moderator %d: %w", ev.Author, err)
	}
	if !canModerate {
		return nil, nil
	}

	if _, err := s.identity.IsBot(ctx, subject); err != nil {
		if errors.Is(err, platform.ErrUnknownUser) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve subject %d: %w", subject, err)
	}

	return &v1.ModlogEvent{
		ID:          ev.ID,
		Author:      ev.Author,
		ChannelID:   ev.ChannelID,
		ChannelName: ev.ChannelName,
		GuildID:     ev.GuildID,
		Content:     ev.Content,
		CreatedAt:   ev.CreatedAt,
		Subject:     subject,
		Type:        kind,
	}, nil
}
