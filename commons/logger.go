package commons

import (
	"strings"

	"github.com/labstack/gommon/log"
)

const logHeader = "${time_rfc3339} ${level} ${short_file}:${line} -"

var Logger = newLogger()

func newLogger() *log.Logger {
	logger := log.New("geo")
	logger.SetLevel(log.INFO)
	logger.SetHeader(logHeader)
	return logger
}

// ConfigureLogger applies a LOG_LEVEL style name to l and returns the level
// that was set.
func ConfigureLogger(l *log.Logger, level string) log.Lvl {
	lvl := ParseLevel(level)
	l.SetLevel(lvl)
	l.SetHeader(logHeader)
	return lvl
}

func ParseLevel(level string) log.Lvl {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return log.DEBUG
	case "WARN":
		return log.WARN
	case "ERROR":
		return log.ERROR
	case "OFF":
		return log.OFF
	default:
		return log.INFO
	}
}
