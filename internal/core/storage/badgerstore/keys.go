package badgerstore

import (
	"fmt"
	"time"
)

// Key layout. Numeric parts are zero padded so lexicographic order matches
// numeric order.
//
//	message:{id}                      -> JSON MessageEvent
//	modlog:{id}                       -> JSON ModlogEvent
//	modlog_subject:{subject}:{ns}:{id} -> empty, drives the escalation count
const (
	prefixMessage       = "message:"
	prefixModlog        = "modlog:"
	prefixModlogSubject = "modlog_subject:"
)

func messageKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefixMessage, id))
}

func modlogKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefixModlog, id))
}

func subjectPrefix(subject int64) []byte {
	return []byte(fmt.Sprintf("%s%020d:", prefixModlogSubject, subject))
}

func subjectIndexKey(subject int64, at time.Time, id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d:%019d:%020d", prefixModlogSubject, subject, unixNano(at), id))
}

// subjectSeekKey is the first index key at or after since.
func subjectSeekKey(subject int64, since time.Time) []byte {
	return []byte(fmt.Sprintf("%s%020d:%019d:", prefixModlogSubject, subject, unixNano(since)))
}

// unixNano clamps pre-epoch instants to zero so padding stays sortable.
func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return max(t.UnixNano(), 0)
}
