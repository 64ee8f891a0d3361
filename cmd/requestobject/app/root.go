// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the requestobject command-line application.
package app

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfig = "config"
	flagDebug  = "debug"
)

// NewRootCmd creates a new root command for the requestobject CLI.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "requestobject",
		Short: "Inspect and validate OpenID Connect 1.0 Request Objects",
		Long: `requestobject runs the Request Object pipeline against a set of authorization request parameters.
Clients and provider settings are read from a YAML configuration file.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if v.GetBool(flagDebug) {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().Bool(flagDebug, false, "Enable debug mode")
	rootCmd.PersistentFlags().StringP(flagConfig, "c", "", "Path to the YAML configuration file")

	if err := v.BindPFlag(flagDebug, rootCmd.PersistentFlags().Lookup(flagDebug)); err != nil {
		logrus.WithError(err).Error("Error binding debug flag")
	}

	if err := v.BindPFlag(flagConfig, rootCmd.PersistentFlags().Lookup(flagConfig)); err != nil {
		logrus.WithError(err).Error("Error binding config flag")
	}

	rootCmd.AddCommand(newValidateCmd(v))

	return rootCmd
}
