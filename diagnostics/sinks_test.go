// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/internal"
)

func TestLogrusSink_Emit(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	testCases := []struct {
		name   string
		event  requestobject.DiagnosticEvent
		level  logrus.Level
		fields logrus.Fields
	}{
		{
			name: "ShouldLogFailureAsWarning",
			event: requestobject.DiagnosticEvent{
				ID:        "abc",
				Component: "oauth-inbound-service",
				Action:    "validate-request-object-signature",
				Outcome:   requestobject.DiagnosticOutcomeFailed,
				Message:   "Request object signature validation is enabled but request object is not signed.",
				Params:    map[string]string{"clientId": "app"},
				Config:    map[string]string{"requestObjectSignatureValidationEnabled": "true"},
				Time:      now,
			},
			level: logrus.WarnLevel,
			fields: logrus.Fields{
				"event_id":   "abc",
				"component":  "oauth-inbound-service",
				"action":     "validate-request-object-signature",
				"outcome":    "FAILED",
				"event_time": now,
				"params":     map[string]string{"clientId": "app"},
				"config":     map[string]string{"requestObjectSignatureValidationEnabled": "true"},
			},
		},
		{
			name: "ShouldLogSuccessAsInfo",
			event: requestobject.DiagnosticEvent{
				ID:        "def",
				Component: "oauth-inbound-service",
				Action:    "validate-request-object-signature",
				Outcome:   requestobject.DiagnosticOutcomeSuccess,
				Message:   "Request Object signature verification is successful.",
				Time:      now,
			},
			level: logrus.InfoLevel,
			fields: logrus.Fields{
				"event_id":   "def",
				"component":  "oauth-inbound-service",
				"action":     "validate-request-object-signature",
				"outcome":    "SUCCESS",
				"event_time": now,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()

			require.NoError(t, NewLogrusSink(logger).Emit(context.Background(), tc.event))

			entry := hook.LastEntry()
			require.NotNil(t, entry)

			assert.Equal(t, tc.level, entry.Level)
			assert.Equal(t, tc.event.Message, entry.Message)
			assert.Equal(t, tc.fields, entry.Data)
		})
	}
}

func TestPrometheusSink_Emit(t *testing.T) {
	registry := prometheus.NewRegistry()

	sink, err := NewPrometheusSink(registry)
	require.NoError(t, err)

	ctx := context.Background()

	failed := requestobject.DiagnosticEvent{Component: "oauth-inbound-service", Action: "parse-request-object", Outcome: requestobject.DiagnosticOutcomeFailed}
	success := requestobject.DiagnosticEvent{Component: "oauth-inbound-service", Action: "validate-request-object-signature", Outcome: requestobject.DiagnosticOutcomeSuccess}

	require.NoError(t, sink.Emit(ctx, failed))
	require.NoError(t, sink.Emit(ctx, failed))
	require.NoError(t, sink.Emit(ctx, success))

	assert.Equal(t, float64(2), testutil.ToFloat64(sink.events.WithLabelValues("oauth-inbound-service", "parse-request-object", "FAILED")))
	assert.Equal(t, float64(1), testutil.ToFloat64(sink.events.WithLabelValues("oauth-inbound-service", "validate-request-object-signature", "SUCCESS")))

	shared, err := NewPrometheusSink(registry)
	require.NoError(t, err)

	require.NoError(t, shared.Emit(ctx, success))

	assert.Equal(t, float64(2), testutil.ToFloat64(sink.events.WithLabelValues("oauth-inbound-service", "validate-request-object-signature", "SUCCESS")))
}

func TestNewPrometheusSink_ShouldFailOnConflictingCollector(t *testing.T) {
	registry := prometheus.NewRegistry()

	require.NoError(t, registry.Register(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "requestobject",
		Name:      "diagnostic_events_total",
		Help:      "The number of Request Object diagnostic events by component, action, and outcome.",
	}, []string{"component", "action", "outcome"})))

	sink, err := NewPrometheusSink(registry)

	assert.Nil(t, sink)
	assert.Error(t, err)
}

func TestMultiSink_Emit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := internal.NewMockDiagnosticsSink(ctrl)
	recording := &RecordingSink{}

	event := requestobject.DiagnosticEvent{Message: "hello"}

	failing.EXPECT().Emit(gomock.Any(), event).Return(errors.New("unavailable"))

	err := MultiSink{failing, nil, recording}.Emit(context.Background(), event)

	assert.EqualError(t, err, "unavailable")
	assert.Equal(t, []requestobject.DiagnosticEvent{event}, recording.Events())

	recording.Reset()
	assert.Empty(t, recording.Events())

	assert.NoError(t, NoopSink{}.Emit(context.Background(), event))
}
