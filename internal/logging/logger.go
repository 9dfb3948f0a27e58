package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Fields carries structured context attached to a log line.
type Fields map[string]interface{}

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})
}

// SetLevel adjusts the global log level from a config string. Unknown
// values keep the default (info).
func SetLevel(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning with optional fields.
func Warn(msg string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	log.WithFields(logrus.Fields(fields)).Error(msg)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	log.WithFields(logrus.Fields(fields)).Fatal(msg)
}
