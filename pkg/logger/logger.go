package logger

import (
	"fmt"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const (
	FormatJSON = "json"
	FormatText = "text"

	timestampFormat = "2006-01-02 15:04:05"
)

func callerPrettyfier(frame *runtime.Frame) (function string, file string) {
	return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
}

// SetupLogger configures the global logrus logger. Unknown levels fall back
// to info, unknown formats to json.
func SetupLogger(level, format string) {
	log.SetReportCaller(true)
	log.SetFormatter(NewFormatter(format))

	loggerLevel, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Infof("Level setup default INFO, err: %v", err)
		return
	}
	log.SetLevel(loggerLevel)
}

func NewFormatter(format string) log.Formatter {
	if format == FormatText {
		return &log.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  timestampFormat,
			CallerPrettyfier: callerPrettyfier,
		}
	}
	return &log.JSONFormatter{
		CallerPrettyfier: callerPrettyfier,
		TimestampFormat:  timestampFormat,
	}
}

// Component returns an entry tagged with the emitting component.
func Component(name string) *log.Entry {
	return log.WithField("component", name)
}
