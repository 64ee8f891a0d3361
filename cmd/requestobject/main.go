// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the requestobject command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"authelia.com/provider/requestobject/cmd/requestobject/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.NewRootCmd().ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Debug("command failed")

		cancel()
		os.Exit(1)
	}
}
