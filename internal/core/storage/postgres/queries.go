package postgres

// SQL for the append-only messages and modlogs relations.

const (
	messageColumns = `id, author, channel_id, channel_name, guild_id, content, created_at`
	modlogColumns  = `id, author, channel_id, channel_name, guild_id, content, created_at, subject, type`

	// queryAppendMessage inserts one message.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	queryAppendMessage = `
		INSERT INTO messages (` + messageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	// queryLockSubject serializes modlog appends for one subject until the
	// surrounding transaction ends, so the post-insert count is exact.
	queryLockSubject = `SELECT pg_advisory_xact_lock($1)`

	queryAppendModlog = `
		INSERT INTO modlogs (` + modlogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	// queryCountSubjectModlogs runs inside the append transaction and therefore
	// sees the row just inserted.
	queryCountSubjectModlogs = `
		SELECT COUNT(*)
		FROM modlogs
		WHERE subject = $1
		  AND created_at >= $2
	`

	queryGetMessage = `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	queryGetModlog = `SELECT ` + modlogColumns + ` FROM modlogs WHERE id = $1`

	queryTablesExist = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_name IN ('messages', 'modlogs')
	`
)
