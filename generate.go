// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/builder.go authelia.com/provider/requestobject Builder
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/builder_registry.go authelia.com/provider/requestobject BuilderRegistry
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/validator.go authelia.com/provider/requestobject Validator
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/app_config_store.go authelia.com/provider/requestobject AppConfigStore
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/client_app_config.go authelia.com/provider/requestobject ClientAppConfig
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/diagnostics_sink.go authelia.com/provider/requestobject DiagnosticsSink
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/jwks_fetcher_strategy.go authelia.com/provider/requestobject JWKSFetcherStrategy
