// Package logger provides leveled logging for the catalog service.
package logger

import (
	"os"

	"github.com/op/go-logging"

	"catalog/config"
)

const timeFormat = "2006/01/02 15:04:05"

var logger *logging.Logger

// InitLogger initializes the console logging backend with the given level.
func InitLogger(level logging.Level) {
	newLogger := logging.MustGetLogger(config.GetName())

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := `%{time:` + timeFormat + `} %{level} - %{message}`
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))

	leveledBackend := logging.AddModuleLevel(formatted)
	leveledBackend.SetLevel(level, config.GetName())

	newLogger.SetBackend(leveledBackend)
	logger = newLogger
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
