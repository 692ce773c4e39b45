package badgerstore

import (
	"fmt"
	"log/slog"
	"strings"
)

// slogLogger routes badger's printf-style logging through slog.
type slogLogger struct {
	log *slog.Logger
}

func (l slogLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(l.format(format, args...))
}

func (l slogLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(l.format(format, args...))
}

func (l slogLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(l.format(format, args...))
}

func (l slogLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(l.format(format, args...))
}

func (l slogLogger) format(format string, args ...interface{}) string {
	return "[Badger] " + strings.TrimSpace(fmt.Sprintf(format, args...))
}
