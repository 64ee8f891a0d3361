// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"authelia.com/provider/requestobject"
)

const (
	metricsNamespace = "requestobject"
	metricsName      = "diagnostic_events_total"
)

// NewPrometheusSink returns a PrometheusSink registered with registerer. A nil registerer means the default
// prometheus registerer. If the counter is already registered the existing counter is shared.
func NewPrometheusSink(registerer prometheus.Registerer) (sink *PrometheusSink, err error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	sink = &PrometheusSink{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      metricsName,
			Help:      "The number of Request Object diagnostic events by component, action, and outcome.",
		}, []string{"component", "action", "outcome"}),
	}

	if err = registerer.Register(sink.events); err != nil {
		var are prometheus.AlreadyRegisteredError

		if !errors.As(err, &are) {
			return nil, err
		}

		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}

		sink.events = existing
	}

	return sink, nil
}

// PrometheusSink counts diagnostic events.
type PrometheusSink struct {
	events *prometheus.CounterVec
}

func (s *PrometheusSink) Emit(_ context.Context, event requestobject.DiagnosticEvent) error {
	counter, err := s.events.GetMetricWithLabelValues(event.Component, event.Action, string(event.Outcome))
	if err != nil {
		return err
	}

	counter.Inc()

	return nil
}

var (
	_ requestobject.DiagnosticsSink = (*PrometheusSink)(nil)
)
