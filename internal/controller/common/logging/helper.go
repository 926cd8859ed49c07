package logginghelper

import (
	log "github.com/sirupsen/logrus"
)

func LogReceived(transport, method string, fields log.Fields) {
	log.WithFields(fields).
		WithField("transport", transport).
		WithField("method", method).
		Info("Request received")
}

func LogDone(transport, method string, fields log.Fields) {
	log.WithFields(fields).
		WithField("transport", transport).
		WithField("method", method).
		Info("Request handled")
}

func LogError(transport, method string, fields log.Fields, err error) {
	log.WithFields(fields).
		WithField("transport", transport).
		WithField("method", method).
		WithField("error", err).
		Error("Request failed")
}
