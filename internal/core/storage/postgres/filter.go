package postgres

import (
	"fmt"
	"strings"

	"github.com/bigsister-lab/bigsister/internal/core/storage"
	"github.com/lib/pq"
)

// relation names the table a filter is compiled against.
type relation string

const (
	relMessages relation = "messages"
	relModlogs  relation = "modlogs"
)

// predicate accumulates positional WHERE clauses.
type predicate struct {
	clauses []string
	args    []interface{}
}

// add appends a clause whose single %d verb receives the next placeholder number.
func (p *predicate) add(clause string, arg interface{}) {
	p.args = append(p.args, arg)
	p.clauses = append(p.clauses, fmt.Sprintf(clause, len(p.args)))
}

// where renders " WHERE a AND b", or "" when nothing filters.
func (p *predicate) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// limit appends a LIMIT placeholder when n > 0.
func (p *predicate) limit(n int) string {
	if n <= 0 {
		return ""
	}
	p.args = append(p.args, n)
	return fmt.Sprintf(" LIMIT $%d", len(p.args))
}

// compileFilter translates a storage.Filter into a predicate over rel.
// Subject and Type are ignored for messages.
// ContentContains uses strpos so that % and _ carry no pattern meaning.
func compileFilter(f storage.Filter, rel relation) *predicate {
	p := &predicate{}
	if len(f.ChannelIDs) > 0 {
		p.add("channel_id = ANY($%d)", pq.Array(f.ChannelIDs))
	}
	if len(f.ExcludeChannelIDs) > 0 {
		p.add("NOT (channel_id = ANY($%d))", pq.Array(f.ExcludeChannelIDs))
	}
	if f.Author != 0 {
		p.add("author = $%d", f.Author)
	}
	if rel == relModlogs {
		if f.Subject != 0 {
			p.add("subject = $%d", f.Subject)
		}
		if f.Type != "" {
			p.add("type = $%d", string(f.Type))
		}
	}
	if !f.Range.Since.IsZero() {
		p.add("created_at >= $%d", f.Range.Since.UTC())
	}
	if !f.Range.Until.IsZero() {
		p.add("created_at < $%d", f.Range.Until.UTC())
	}
	if f.ContentContains != "" {
		p.add("strpos(content, $%d) > 0", f.ContentContains)
	}
	return p
}

func scanQuery(f storage.Filter, rel relation) (string, []interface{}) {
	columns := messageColumns
	if rel == relModlogs {
		columns = modlogColumns
	}
	p := compileFilter(f, rel)
	query := "SELECT " + columns + " FROM " + string(rel) + p.where() +
		" ORDER BY created_at ASC, id ASC" + p.limit(f.Limit)
	return query, p.args
}

func activityQuery(f storage.Filter) (string, []interface{}) {
	p := compileFilter(f, relMessages)
	return "SELECT COUNT(*), COUNT(DISTINCT author) FROM messages" + p.where(), p.args
}

func countQuery(f storage.Filter, rel relation) (string, []interface{}) {
	p := compileFilter(f, rel)
	return "SELECT COUNT(*) FROM " + string(rel) + p.where(), p.args
}

func authorCountsQuery(f storage.Filter, rel relation) (string, []interface{}) {
	p := compileFilter(f, rel)
	return "SELECT author, COUNT(*) AS n FROM " + string(rel) + p.where() +
		" GROUP BY author ORDER BY n DESC, author ASC", p.args
}

func dailyCountsQuery(f storage.Filter) (string, []interface{}) {
	p := compileFilter(f, relMessages)
	return "SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*) FROM messages" +
		p.where() + " GROUP BY day ORDER BY day ASC", p.args
}

func distinctAuthorsQuery(f storage.Filter) (string, []interface{}) {
	p := compileFilter(f, relMessages)
	return "SELECT DISTINCT author FROM messages" + p.where() + " ORDER BY author ASC", p.args
}
