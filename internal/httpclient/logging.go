// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package httpclient

import (
	"fmt"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

// NewLeveledLogger adapts a logrus.FieldLogger to the retryablehttp.LeveledLogger interface.
func NewLeveledLogger(logger logrus.FieldLogger) *LeveledLogger {
	return &LeveledLogger{logger: logger}
}

// LeveledLogger is a retryablehttp.LeveledLogger writing to logrus. The key value pairs become logrus fields.
type LeveledLogger struct {
	logger logrus.FieldLogger
}

func (l *LeveledLogger) Error(msg string, keysAndValues ...any) {
	l.entry(keysAndValues).Error(msg)
}

func (l *LeveledLogger) Info(msg string, keysAndValues ...any) {
	l.entry(keysAndValues).Info(msg)
}

func (l *LeveledLogger) Debug(msg string, keysAndValues ...any) {
	l.entry(keysAndValues).Debug(msg)
}

func (l *LeveledLogger) Warn(msg string, keysAndValues ...any) {
	l.entry(keysAndValues).Warn(msg)
}

func (l *LeveledLogger) entry(keysAndValues []any) logrus.FieldLogger {
	if len(keysAndValues) == 0 {
		return l.logger
	}

	fields := make(logrus.Fields, len(keysAndValues)/2+1)

	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprintf("%v", keysAndValues[i])

		if i+1 < len(keysAndValues) {
			fields[key] = keysAndValues[i+1]
		} else {
			fields[key] = "MISSING"
		}
	}

	return l.logger.WithFields(fields)
}

var (
	_ retryablehttp.LeveledLogger = (*LeveledLogger)(nil)
)
