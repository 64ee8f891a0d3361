// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"github.com/sirupsen/logrus"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/builder"
	"authelia.com/provider/requestobject/diagnostics"
	"authelia.com/provider/requestobject/validator"
)

// Factory returns a component of the pipeline. Supported components are a KeyedBuilder, a requestobject.Validator,
// and a requestobject.DiagnosticsSink.
type Factory func(config *requestobject.Config, store requestobject.AppConfigStore) any

// KeyedBuilder is a requestobject.Builder which knows the registry key it must be registered under.
type KeyedBuilder interface {
	RegistryKey() string

	requestobject.Builder
}

// Compose takes a config, an app config store, and factories to instantiate a Pipeline:
//
//	 import "authelia.com/provider/requestobject/compose"
//
//	 var config = &requestobject.Config{
//	 	RequestObjectIssuer: "https://auth.example.com",
//	 	// check Config for further configuration options
//	 }
//
//	 var pipeline = compose.Compose(
//	 	config,
//	 	store,
//	 	compose.RequestParamValueBuilderFactory,
//	 	compose.DefaultValidatorFactory,
//	 	// for a complete list refer to the docs of this package
//	 )
//
// Builders already present in the config registry are kept unless a factory provides one for the same key.
func Compose(config *requestobject.Config, store requestobject.AppConfigStore, factories ...Factory) *requestobject.Pipeline {
	config.AppConfigStore = store

	builders := map[string]requestobject.Builder{}

	if existing, ok := config.BuilderRegistry.(*requestobject.StaticBuilderRegistry); ok {
		for _, key := range existing.Keys() {
			builders[key], _ = existing.Lookup(key)
		}
	}

	var sinks diagnostics.MultiSink

	if config.DiagnosticsSink != nil {
		sinks = append(sinks, config.DiagnosticsSink)
	}

	for _, factory := range factories {
		res := factory(config, store)

		if b, ok := res.(KeyedBuilder); ok {
			builders[b.RegistryKey()] = b
		}

		if v, ok := res.(requestobject.Validator); ok {
			config.RequestObjectValidator = v
		}

		if s, ok := res.(requestobject.DiagnosticsSink); ok {
			sinks = append(sinks, s)
		}
	}

	config.BuilderRegistry = requestobject.NewBuilderRegistry(builders)

	switch len(sinks) {
	case 0:
		break
	case 1:
		config.DiagnosticsSink = sinks[0]
	default:
		config.DiagnosticsSink = sinks
	}

	return requestobject.NewPipeline(config)
}

// ComposeAllEnabled returns a Pipeline with both builders and the default validator enabled.
func ComposeAllEnabled(config *requestobject.Config, store requestobject.AppConfigStore) *requestobject.Pipeline {
	return Compose(
		config,
		store,
		RequestParamValueBuilderFactory,
		RequestURIParamValueBuilderFactory,
		DefaultValidatorFactory,
	)
}

// RequestParamValueBuilderFactory creates the builder for Request Objects passed by value.
func RequestParamValueBuilderFactory(config *requestobject.Config, _ requestobject.AppConfigStore) any {
	return builder.NewValueBuilder(config)
}

// RequestURIParamValueBuilderFactory creates the builder for Request Objects passed by reference.
func RequestURIParamValueBuilderFactory(config *requestobject.Config, _ requestobject.AppConfigStore) any {
	return builder.NewReferenceBuilder(config)
}

// DefaultValidatorFactory creates the default signature and claims validator.
func DefaultValidatorFactory(config *requestobject.Config, _ requestobject.AppConfigStore) any {
	return validator.NewDefaultValidator(config)
}

// LogrusSinkFactory creates a diagnostic sink writing to the logrus standard logger.
func LogrusSinkFactory(_ *requestobject.Config, _ requestobject.AppConfigStore) any {
	return diagnostics.NewLogrusSink(nil)
}

// PrometheusSinkFactory creates a diagnostic sink counting events with the default prometheus registerer.
func PrometheusSinkFactory(_ *requestobject.Config, _ requestobject.AppConfigStore) any {
	sink, err := diagnostics.NewPrometheusSink(nil)
	if err != nil {
		logrus.WithError(err).Error("Error registering the Request Object diagnostic metrics")

		return nil
	}

	return sink
}
