// Package logutils configures the global logrus logger.
package logutils

import (
	"github.com/sirupsen/logrus"
)

func InitLogger(level string) {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level '%s', defaulting to 'info'", level)
		parsedLevel = logrus.InfoLevel
	}
	logrus.SetLevel(parsedLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.Infof("Log level set to %v", parsedLevel)
}
