// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"context"
	"errors"
	"sync"

	"authelia.com/provider/requestobject"
)

// MultiSink forwards every event to each of its sinks in order. A failing sink does not prevent delivery to the
// remaining sinks, the errors are joined.
type MultiSink []requestobject.DiagnosticsSink

func (m MultiSink) Emit(ctx context.Context, event requestobject.DiagnosticEvent) error {
	var errs []error

	for _, sink := range m {
		if sink == nil {
			continue
		}

		if err := sink.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NoopSink discards every event.
type NoopSink struct{}

func (NoopSink) Emit(_ context.Context, _ requestobject.DiagnosticEvent) error {
	return nil
}

// RecordingSink keeps every event in memory. It is safe for concurrent use.
type RecordingSink struct {
	mu     sync.Mutex
	events []requestobject.DiagnosticEvent
}

func (r *RecordingSink) Emit(_ context.Context, event requestobject.DiagnosticEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)

	return nil
}

// Events returns a copy of the recorded events in emission order.
func (r *RecordingSink) Events() []requestobject.DiagnosticEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]requestobject.DiagnosticEvent, len(r.events))
	copy(events, r.events)

	return events
}

// Reset removes all recorded events.
func (r *RecordingSink) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}

var (
	_ requestobject.DiagnosticsSink = MultiSink(nil)
	_ requestobject.DiagnosticsSink = NoopSink{}
	_ requestobject.DiagnosticsSink = (*RecordingSink)(nil)
)
