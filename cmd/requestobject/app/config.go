// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/storage"
)

// FileConfig is the YAML configuration file read by the CLI.
type FileConfig struct {
	Issuer                     string                  `mapstructure:"issuer"`
	SendDebugMessagesToClients bool                    `mapstructure:"send_debug_messages_to_clients"`
	UseLegacyErrorFormat       bool                    `mapstructure:"use_legacy_error_format"`
	Diagnostics                DiagnosticsFileConfig   `mapstructure:"diagnostics"`
	RequestObject              RequestObjectFileConfig `mapstructure:"request_object"`
	RequestURI                 RequestURIFileConfig    `mapstructure:"request_uri"`
	Clients                    []ClientFileConfig      `mapstructure:"clients"`
}

type DiagnosticsFileConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type RequestObjectFileConfig struct {
	Lifespan           time.Duration `mapstructure:"lifespan"`
	ClockSkew          time.Duration `mapstructure:"clock_skew"`
	SigningAlgorithms  []string      `mapstructure:"signing_algorithms"`
	DecryptionKeysFile string        `mapstructure:"decryption_keys_file"`
}

type RequestURIFileConfig struct {
	AllowInsecure     bool  `mapstructure:"allow_insecure"`
	EnforceRegistered bool  `mapstructure:"enforce_registered"`
	MaxBodySize       int64 `mapstructure:"max_body_size"`
}

// ClientFileConfig is a registered client. JWKSFile is resolved relative to the configuration file.
type ClientFileConfig struct {
	requestobject.DefaultClientAppConfig `mapstructure:",squash"`

	JWKSFile string `mapstructure:"jwks_file"`
}

// LoadFileConfig reads the configuration file at path. Values may be overridden with REQUESTOBJECT_ prefixed
// environment variables.
func LoadFileConfig(v *viper.Viper, path string) (config *FileConfig, err error) {
	if path == "" {
		return nil, errors.New("a configuration file is required")
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("REQUESTOBJECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read configuration file '%s'", path)
	}

	config = &FileConfig{}

	if err = v.Unmarshal(config); err != nil {
		return nil, errors.Wrapf(err, "failed to decode configuration file '%s'", path)
	}

	return config, nil
}

// ToConfig converts the file configuration into the pipeline configuration and a store holding the clients.
func (f *FileConfig) ToConfig(dir string) (config *requestobject.Config, store *storage.MemoryStore, err error) {
	config = &requestobject.Config{
		DiagnosticsEnabled:           f.Diagnostics.Enabled,
		RequestObjectIssuer:          f.Issuer,
		RequestObjectLifespan:        f.RequestObject.Lifespan,
		RequestObjectClockSkew:       f.RequestObject.ClockSkew,
		RequestURIMaxBodySize:        f.RequestURI.MaxBodySize,
		AllowInsecureRequestURI:      f.RequestURI.AllowInsecure,
		EnforceRegisteredRequestURIs: f.RequestURI.EnforceRegistered,
		SendDebugMessagesToClients:   f.SendDebugMessagesToClients,
		UseLegacyErrorFormat:         f.UseLegacyErrorFormat,
	}

	for _, alg := range f.RequestObject.SigningAlgorithms {
		config.RequestObjectSigningAlgorithms = append(config.RequestObjectSigningAlgorithms, jose.SignatureAlgorithm(alg))
	}

	if f.RequestObject.DecryptionKeysFile != "" {
		if config.RequestObjectDecryptionKeys, err = readJSONWebKeySet(dir, f.RequestObject.DecryptionKeysFile); err != nil {
			return nil, nil, err
		}
	}

	store = storage.NewMemoryStore()

	for i, c := range f.Clients {
		if c.ID == "" {
			return nil, nil, errors.Errorf("client at index %d has no id", i)
		}

		client := c.DefaultClientAppConfig

		if c.JWKSFile != "" {
			if client.JSONWebKeys, err = readJSONWebKeySet(dir, c.JWKSFile); err != nil {
				return nil, nil, errors.WithMessagef(err, "client '%s'", c.ID)
			}
		}

		store.Clients[client.ID] = &client
	}

	return config, store, nil
}

func readJSONWebKeySet(dir, name string) (jwks *jose.JSONWebKeySet, err error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}

	var data []byte

	if data, err = os.ReadFile(name); err != nil {
		return nil, errors.Wrapf(err, "failed to read JSON Web Key Set '%s'", name)
	}

	jwks = &jose.JSONWebKeySet{}

	if err = json.Unmarshal(data, jwks); err != nil {
		return nil, errors.Wrapf(err, "failed to decode JSON Web Key Set '%s'", name)
	}

	return jwks, nil
}
