package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the process-wide JSON logger. The level can be raised
// with LOG_LEVEL (e.g. "debug") without touching the rest of the config.
func SetupLogging() *logrus.Logger {
	level := logrus.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := logrus.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	return &logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: level,
	}
}
