// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "brokerage-service"

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Desugar().Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(l string) *Logger {
	var lvl string

	val := strings.ToLower(l)

	switch val {
	case "debug", "error", "warn", "info":
		lvl = val
	default:
		lvl = "error"
	}

	zapLevel, err := zap.ParseAtomicLevel(lvl)
	if err != nil {
		zapLevel = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}

	c := zap.NewProductionConfig()
	c.Level = zapLevel
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := c.Build()
	if err != nil {
		panic(err)
	}

	logger := new(Logger)
	logger.SugaredLogger = z.With(zap.String("app", appName)).Sugar()

	// security events are always emitted, whatever the configured level
	sc := zap.NewProductionConfig()
	sc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sc.EncoderConfig.TimeKey = "@timestamp"
	sc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	sz, err := sc.Build()
	if err != nil {
		panic(err)
	}

	logger.security = &SecurityLogger{l: sz.With(zap.String("app", appName), zap.String("type", "security"))}

	return logger
}
