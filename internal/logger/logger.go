// Package logger holds the shared logrus logger. Output goes to stderr so
// command output on stdout stays clean.
package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Log is the package-level logger. Usable before Init; Init only adjusts it.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.WarnLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})
}

// Init sets the log level from a string like "debug" or "warn". Unknown
// levels keep the default.
func Init(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(lvl)
	}
}

// WithFields creates a field-annotated log entry.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}
