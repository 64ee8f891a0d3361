// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DiagnosticOutcome is the result recorded by a DiagnosticEvent.
type DiagnosticOutcome string

const (
	DiagnosticOutcomeSuccess DiagnosticOutcome = "SUCCESS"
	DiagnosticOutcomeFailed  DiagnosticOutcome = "FAILED"
)

// DiagnosticEvent is a structured audit record produced by the Request Object pipeline.
type DiagnosticEvent struct {
	ID        string            `json:"id"`
	Component string            `json:"component"`
	Params    map[string]string `json:"params,omitempty"`
	Outcome   DiagnosticOutcome `json:"outcome"`
	Message   string            `json:"message"`
	Action    string            `json:"action"`
	Config    map[string]string `json:"config,omitempty"`
	Time      time.Time         `json:"time"`
}

// DiagnosticsSink receives diagnostic events. Errors are ignored by the pipeline.
type DiagnosticsSink interface {
	Emit(ctx context.Context, event DiagnosticEvent) (err error)
}

// Emitter forwards DiagnosticEvent values to the configured DiagnosticsSink when diagnostics are enabled. It never
// alters the outcome of the pipeline: sink errors are dropped and sink panics are recovered.
type Emitter struct {
	Config interface {
		DiagnosticsEnabledProvider
		DiagnosticsSinkProvider
		ClockConfigProvider
	}
}

// Emit sends the events in order. The diagnostics flag is read once per call.
func (e *Emitter) Emit(ctx context.Context, events ...DiagnosticEvent) {
	if len(events) == 0 || !e.Config.GetDiagnosticsEnabled(ctx) {
		return
	}

	sink := e.Config.GetDiagnosticsSink(ctx)
	if sink == nil {
		return
	}

	var clock ClockProvider
	if clock = e.Config.GetClock(ctx); clock == nil {
		clock = NewRealClock()
	}

	for _, event := range events {
		if event.ID == "" {
			event.ID = uuid.New().String()
		}

		if event.Time.IsZero() {
			event.Time = clock.Now()
		}

		emitToSink(ctx, sink, event)
	}
}

func emitToSink(ctx context.Context, sink DiagnosticsSink, event DiagnosticEvent) {
	defer func() {
		_ = recover()
	}()

	_ = sink.Emit(ctx, event)
}
