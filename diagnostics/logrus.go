// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"context"

	"github.com/sirupsen/logrus"

	"authelia.com/provider/requestobject"
)

// NewLogrusSink returns a LogrusSink writing to logger, or to the logrus standard logger when logger is nil.
func NewLogrusSink(logger logrus.FieldLogger) *LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &LogrusSink{logger: logger}
}

// LogrusSink writes one structured log entry per diagnostic event. Failed outcomes are logged at the warning level
// and successful outcomes at the info level.
type LogrusSink struct {
	logger logrus.FieldLogger
}

func (s *LogrusSink) Emit(_ context.Context, event requestobject.DiagnosticEvent) error {
	fields := logrus.Fields{
		"event_id":   event.ID,
		"component":  event.Component,
		"action":     event.Action,
		"outcome":    string(event.Outcome),
		"event_time": event.Time,
	}

	if len(event.Params) != 0 {
		fields["params"] = event.Params
	}

	if len(event.Config) != 0 {
		fields["config"] = event.Config
	}

	entry := s.logger.WithFields(fields)

	switch event.Outcome {
	case requestobject.DiagnosticOutcomeFailed:
		entry.Warn(event.Message)
	default:
		entry.Info(event.Message)
	}

	return nil
}

var (
	_ requestobject.DiagnosticsSink = (*LogrusSink)(nil)
)
