// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package builder

import (
	"context"

	"authelia.com/provider/requestobject"
)

// NewValueBuilder returns a ValueBuilder.
func NewValueBuilder(config ParserConfigurator) *ValueBuilder {
	return &ValueBuilder{parser: parser{config: config}}
}

// ValueBuilder builds Request Objects passed by value using the 'request' parameter. It accepts signed, unsecured,
// and encrypted JSON Web Tokens. Signatures are verified later by the requestobject.Validator.
type ValueBuilder struct {
	parser
}

func (b *ValueBuilder) Build(ctx context.Context, raw string, _ *requestobject.Parameters) (ro *requestobject.RequestObject, err error) {
	return b.parse(ctx, raw, requestobject.CarrierTypeRequest, requestobject.ErrInvalidRequestObject)
}

// RegistryKey returns the requestobject.BuilderRegistry key this builder is registered under.
func (b *ValueBuilder) RegistryKey() string {
	return requestobject.CarrierTypeRequest.RegistryKey()
}

var (
	_ requestobject.Builder = (*ValueBuilder)(nil)
)
