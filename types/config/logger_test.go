package config_test

import (
	"bytes"

	"github.com/labstack/gommon/log"

	"liveness-probe/types/config"
)

func (suite *ConfigTestSuite) TestParseLevel() {
	levels := map[string]log.Lvl{
		"debug":   log.DEBUG,
		"INFO":    log.INFO,
		"Warn":    log.WARN,
		"error":   log.ERROR,
		"off":     log.OFF,
		"":        log.WARN,
		"verbose": log.WARN,
	}

	for name, expected := range levels {
		suite.Equal(expected, config.ParseLevel(name), name)
	}
}

func (suite *ConfigTestSuite) TestNewLogger() {
	logger := config.NewLogger(config.LogConfig{Level: "error"})

	suite.Equal(log.ERROR, logger.Level())
	suite.Equal(config.LOGGER_PREFIX, logger.Prefix())

	output := &bytes.Buffer{}
	logger.SetOutput(output)

	logger.Info("hidden")
	suite.Empty(output.String())

	logger.Error("visible")
	suite.Contains(output.String(), "visible")
	suite.Contains(output.String(), config.LOGGER_PREFIX)
}
