// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"net/url"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/compose"
	"authelia.com/provider/requestobject/diagnostics"
)

const (
	flagQuery  = "query"
	flagEvents = "events"
)

// validateOutput is written to stdout by the validate command.
type validateOutput struct {
	RequestObject *requestObjectOutput            `json:"request_object,omitempty"`
	Error         url.Values                      `json:"error,omitempty"`
	Events        []requestobject.DiagnosticEvent `json:"events,omitempty"`
}

type requestObjectOutput struct {
	Carrier   requestobject.CarrierType `json:"carrier"`
	Signed    bool                      `json:"signed"`
	Encrypted bool                      `json:"encrypted"`
	Algorithm string                    `json:"alg,omitempty"`
	KeyID     string                    `json:"kid,omitempty"`
	Claims    map[string]any            `json:"claims"`
}

func newValidateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build and validate the Request Object of an authorization request",
		Long: `Build and validate the Request Object carried by the 'request' or 'request_uri' parameter of the given
authorization request query. The resulting claims, or the OAuth 2.0 error, are printed as JSON.`,
		Example: `  requestobject validate --config clients.yaml --query 'client_id=my-client&response_type=code&request=eyJ...'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return validateCmdFunc(cmd, v)
		},
	}

	cmd.Flags().StringP(flagQuery, "q", "", "Authorization request query string")
	cmd.Flags().Bool(flagEvents, false, "Include the diagnostic events in the output")

	_ = cmd.MarkFlagRequired(flagQuery)

	return cmd
}

func validateCmdFunc(cmd *cobra.Command, v *viper.Viper) (err error) {
	ctx := cmd.Context()

	query, _ := cmd.Flags().GetString(flagQuery)
	events, _ := cmd.Flags().GetBool(flagEvents)

	path := v.GetString(flagConfig)

	var file *FileConfig

	if file, err = LoadFileConfig(v, path); err != nil {
		return err
	}

	config, store, err := file.ToConfig(filepath.Dir(path))
	if err != nil {
		return err
	}

	var values url.Values

	if values, err = url.ParseQuery(query); err != nil {
		return errors.Wrap(err, "failed to parse the authorization request query")
	}

	factories := []compose.Factory{
		compose.RequestParamValueBuilderFactory,
		compose.RequestURIParamValueBuilderFactory,
		compose.DefaultValidatorFactory,
	}

	if v.GetBool(flagDebug) {
		factories = append(factories, compose.LogrusSinkFactory)
	}

	recorder := &diagnostics.RecordingSink{}

	if events {
		config.DiagnosticsEnabled = true
		config.DiagnosticsSink = recorder
	}

	pipeline := compose.Compose(config, store, factories...)

	logrus.WithField("client_id", values.Get("client_id")).Debug("Validating the authorization request")

	params := requestobject.NewParametersFromForm(values)

	output := validateOutput{}

	ro, verr := pipeline.BuildAndValidate(ctx, requestobject.FormRequestView(values), params)

	switch {
	case verr != nil:
		output.Error = pipeline.ErrorValues(ctx, nil, verr)
	case ro != nil:
		output.RequestObject = &requestObjectOutput{
			Carrier:   ro.Carrier(),
			Signed:    ro.IsSigned(),
			Encrypted: ro.IsEncrypted(),
			Algorithm: ro.Algorithm(),
			KeyID:     ro.KeyID(),
			Claims:    ro.Claims(),
		}
	}

	if events {
		output.Events = recorder.Events()
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	if err = encoder.Encode(output); err != nil {
		return errors.Wrap(err, "failed to write the output")
	}

	if verr != nil {
		return errors.WithMessage(verr, "the authorization request was rejected")
	}

	return nil
}
