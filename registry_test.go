// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	. "authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/internal"
	"authelia.com/provider/requestobject/internal/consts"
)

func TestStaticBuilderRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	builder := internal.NewMockBuilder(ctrl)

	builders := map[string]Builder{
		consts.BuilderKeyRequestParamValue:    builder,
		consts.BuilderKeyRequestURIParamValue: nil,
	}

	registry := NewBuilderRegistry(builders)

	delete(builders, consts.BuilderKeyRequestParamValue)

	actual, ok := registry.Lookup(consts.BuilderKeyRequestParamValue)
	assert.True(t, ok)
	assert.Equal(t, builder, actual)

	actual, ok = registry.Lookup(consts.BuilderKeyRequestURIParamValue)
	assert.False(t, ok)
	assert.Nil(t, actual)

	assert.Equal(t, []string{consts.BuilderKeyRequestParamValue}, registry.Keys())

	var empty *StaticBuilderRegistry

	actual, ok = empty.Lookup(consts.BuilderKeyRequestParamValue)
	assert.False(t, ok)
	assert.Nil(t, actual)
}
