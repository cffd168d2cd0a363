package logger

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New configures logger to write to outputFile (stderr when empty or unwritable)
// and tags every entry with the application and environment.
func New(logger *logrus.Logger, outputFile, application, environment string) logrus.FieldLogger {
	logger.SetFormatter(&logrus.JSONFormatter{})

	if outputFile != "" {
		if file, err := os.OpenFile(filepath.Clean(outputFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640); err == nil {
			logger.SetOutput(file)
		} else {
			logger.Infof("Failed to open output file %s. Will use stderr. %s", outputFile, err.Error())
		}
	}

	return logger.WithFields(logrus.Fields{
		"application": application,
		"environment": environment,
	})
}

// SetLevel parses level and applies it, keeping the current level when it is invalid
func SetLevel(logger *logrus.Logger, level string) {
	if level == "" {
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level %q, keeping %s", level, logger.GetLevel())
		return
	}
	logger.SetLevel(parsed)
}
