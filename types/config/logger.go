package config

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const LOGGER_PREFIX = "liveness-probe"

// ParseLevel maps a configured level name to a gommon level. Unknown names
// fall back to WARN.
func ParseLevel(level string) log.Lvl {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DEBUG
	case "INFO":
		return log.INFO
	case "WARN":
		return log.WARN
	case "ERROR":
		return log.ERROR
	case "OFF":
		return log.OFF
	}
	return log.WARN
}

func NewLogger(logConfig LogConfig) echo.Logger {
	l := log.New(LOGGER_PREFIX)
	l.SetLevel(ParseLevel(logConfig.Level))

	return l
}
