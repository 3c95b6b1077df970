package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

func L() *logrus.Logger {
	return logg
}

// SetDebug switches to debug level for development environments.
func SetDebug() {
	logg.SetLevel(logrus.DebugLevel)
}

// Error logs an error with module/operation context. This is the error-tracking
// surface of the service; dashboards key off these fields.
func Error(module, op string, err error, fields logrus.Fields) {
	entry := logg.WithFields(logrus.Fields{
		"module": module,
		"op":     op,
	})
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Error(err.Error())
}
