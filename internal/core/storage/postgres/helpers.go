package postgres

import (
	"fmt"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanMessageRow scans one messages row in messageColumns order.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanMessageRow(row scanner) (*v1.MessageEvent, error) {
	var evt v1.MessageEvent
	err := row.Scan(
		&evt.ID,
		&evt.Author,
		&evt.ChannelID,
		&evt.ChannelName,
		&evt.GuildID,
		&evt.Content,
		&evt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	evt.CreatedAt = evt.CreatedAt.UTC()
	return &evt, nil
}

// scanModlogRow scans one modlogs row in modlogColumns order.
func scanModlogRow(row scanner) (*v1.ModlogEvent, error) {
	var (
		evt     v1.ModlogEvent
		rawType string
	)
	err := row.Scan(
		&evt.ID,
		&evt.Author,
		&evt.ChannelID,
		&evt.ChannelName,
		&evt.GuildID,
		&evt.Content,
		&evt.CreatedAt,
		&evt.Subject,
		&rawType,
	)
	if err != nil {
		return nil, err
	}
	evt.Type = v1.ModlogType(rawType)
	if !evt.Type.Valid() {
		return nil, fmt.Errorf("modlog %d has unknown type %q", evt.ID, rawType)
	}
	evt.CreatedAt = evt.CreatedAt.UTC()
	return &evt, nil
}
