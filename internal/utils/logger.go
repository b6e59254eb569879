package utils

import (
	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Logger exposes the shared application logger.
func Logger() *logrus.Logger {
	return logger
}

// LogEvent emits a standardized line with module/action/request_id fields.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	logger.WithFields(logrus.Fields{
		"module":     module,
		"action":     action,
		"request_id": requestID,
	}).Info(message)
}

// LogWarn mirrors LogEvent at warn level for non-fatal oddities.
func LogWarn(requestID, module, action, message string) {
	logger.WithFields(logrus.Fields{
		"module":     module,
		"action":     action,
		"request_id": requestID,
	}).Warn(message)
}
