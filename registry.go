// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"context"
)

// Builder constructs a RequestObject from the raw value of the carrier parameter.
type Builder interface {
	// Build parses the raw carrier value. For the 'request' carrier raw is the JWT itself, for the 'request_uri'
	// carrier it is the URI which must be dereferenced. Any error is returned to the caller of the pipeline
	// unchanged.
	Build(ctx context.Context, raw string, params *Parameters) (ro *RequestObject, err error)
}

// BuilderRegistry resolves a Builder by its registry key. Implementations must be safe for concurrent reads.
type BuilderRegistry interface {
	Lookup(key string) (builder Builder, ok bool)
}

// StaticBuilderRegistry is a BuilderRegistry which can't be modified after it's created.
type StaticBuilderRegistry struct {
	builders map[string]Builder
}

// NewBuilderRegistry returns a StaticBuilderRegistry holding a copy of builders. Nil builders are skipped.
func NewBuilderRegistry(builders map[string]Builder) *StaticBuilderRegistry {
	registry := &StaticBuilderRegistry{builders: make(map[string]Builder, len(builders))}

	for key, builder := range builders {
		if builder == nil {
			continue
		}

		registry.builders[key] = builder
	}

	return registry
}

func (r *StaticBuilderRegistry) Lookup(key string) (builder Builder, ok bool) {
	if r == nil {
		return nil, false
	}

	builder, ok = r.builders[key]

	return builder, ok
}

// Keys returns the registered keys.
func (r *StaticBuilderRegistry) Keys() (keys []string) {
	for key := range r.builders {
		keys = append(keys, key)
	}

	return keys
}

var (
	_ BuilderRegistry = (*StaticBuilderRegistry)(nil)
)
