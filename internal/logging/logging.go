package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup builds the application logger. Format "json" switches to the
// JSON formatter, anything else keeps logrus text output.
func Setup(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
