// Package directory provides a file-backed identity and channel directory.
package directory

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/bigsister-lab/bigsister/internal/platform"
	"gopkg.in/yaml.v3"
)

// User is one directory entry.
type User struct {
	ID        int64    `yaml:"id"`
	Name      string   `yaml:"name"`
	Bot       bool     `yaml:"bot"`
	Moderator bool     `yaml:"moderator"`
	Roles     []string `yaml:"roles"`
}

type file struct {
	Users    []User             `yaml:"users"`
	Channels []platform.Channel `yaml:"channels"`
}

// Static serves identity and channel lookups from a snapshot loaded once.
type Static struct {
	users    map[int64]User
	channels []platform.Channel
}

// Load reads a directory YAML file.
func Load(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory file %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a directory document and rejects duplicate or zero ids.
func Parse(data []byte) (*Static, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse directory: %w", err)
	}
	return New(f.Users, f.Channels)
}

// New builds a directory from in-memory entries.
func New(users []User, channels []platform.Channel) (*Static, error) {
	s := &Static{users: make(map[int64]User, len(users))}
	for _, u := range users {
		if u.ID <= 0 {
			return nil, fmt.Errorf("user %q has invalid id %d", u.Name, u.ID)
		}
		if _, ok := s.users[u.ID]; ok {
			return nil, fmt.Errorf("duplicate user id %d", u.ID)
		}
		s.users[u.ID] = u
	}

	seen := make(map[int64]bool, len(channels))
	for _, c := range channels {
		if c.ID <= 0 {
			return nil, fmt.Errorf("channel %q has invalid id %d", c.Name, c.ID)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate channel id %d", c.ID)
		}
		seen[c.ID] = true
	}
	s.channels = slices.Clone(channels)
	return s, nil
}

func (s *Static) user(id int64) (User, error) {
	u, ok := s.users[id]
	if !ok {
		return User{}, fmt.Errorf("user %d: %w", id, platform.ErrUnknownUser)
	}
	return u, nil
}

// IsBot reports the bot flag of a known user.
func (s *Static) IsBot(_ context.Context, id int64) (bool, error) {
	u, err := s.user(id)
	return u.Bot, err
}

// RolesOf returns a copy of the user's roles.
func (s *Static) RolesOf(_ context.Context, id int64) ([]string, error) {
	u, err := s.user(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(u.Roles), nil
}

// CanModerate reports whether the user may issue modlogs.
func (s *Static) CanModerate(_ context.Context, id int64) (bool, error) {
	u, err := s.user(id)
	return u.Moderator, err
}

// Channels returns the channels in file order.
func (s *Static) Channels(_ context.Context) ([]platform.Channel, error) {
	return slices.Clone(s.channels), nil
}

var (
	_ platform.Identity         = (*Static)(nil)
	_ platform.ChannelDirectory = (*Static)(nil)
)
