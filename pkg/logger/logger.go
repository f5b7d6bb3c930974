package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with request-scoped field helpers
type Logger struct {
	*logrus.Logger
}

// New creates a new JSON logger at the given level
func New(level string) *Logger {
	log := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	log.SetOutput(os.Stdout)

	return &Logger{Logger: log}
}

// WithUser creates a log entry carrying the acting user's id and role
func (l *Logger) WithUser(userID uint, role string) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields{
		"user_id": userID,
		"role":    role,
	})
}

// WithEntity creates a log entry for an operation on a stored entity
func (l *Logger) WithEntity(entity string, id uint) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields{
		"entity":    entity,
		"entity_id": id,
	})
}
